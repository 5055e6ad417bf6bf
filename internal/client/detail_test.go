package client_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Houeta/hrms-lite/internal/client"
)

func TestExtractDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{
			name:        "fastapi detail string",
			contentType: "application/json",
			body:        `{"detail":"Email already exists"}`,
			want:        "Email already exists",
		},
		{
			name:        "fastapi validation array",
			contentType: "application/json",
			body: `{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address","type":"value_error"},` +
				`{"loc":["body","salary"],"msg":"Input should be a valid number","type":"float_parsing"}]}`,
			want: "email: value is not a valid email address; salary: Input should be a valid number",
		},
		{
			name:        "message field",
			contentType: "application/json",
			body:        `{"message":"Employee not found"}`,
			want:        "Employee not found",
		},
		{
			name:        "json without content type",
			contentType: "",
			body:        ` {"detail":"Invalid ID"}`,
			want:        "Invalid ID",
		},
		{
			name:        "json without detail",
			contentType: "application/json",
			body:        `{"error":true}`,
			want:        "",
		},
		{
			name:        "broken json",
			contentType: "application/json",
			body:        `{"detail":`,
			want:        "",
		},
		{
			name:        "html error page with title",
			contentType: "text/html; charset=utf-8",
			body:        `<html><head><title>502 Bad Gateway</title></head><body><h1>Bad Gateway</h1></body></html>`,
			want:        "502 Bad Gateway",
		},
		{
			name:        "html error page without title",
			contentType: "text/html",
			body:        "<html><body><h1>  Service\n  Unavailable </h1></body></html>",
			want:        "Service Unavailable",
		},
		{
			name:        "plain text",
			contentType: "text/plain",
			body:        "Internal Server Error\n",
			want:        "Internal Server Error",
		},
		{
			name:        "empty body",
			contentType: "application/json",
			body:        "   ",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, client.ExtractDetail(tt.contentType, []byte(tt.body)))
		})
	}
}

func TestExtractDetail_Truncates(t *testing.T) {
	t.Parallel()

	got := client.ExtractDetail("text/plain", []byte(strings.Repeat("x", 500)))

	assert.Equal(t, strings.Repeat("x", 200)+"...", got)
}
