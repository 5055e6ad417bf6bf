package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxDetailLen = 200

// validationIssue is one entry of a FastAPI 422 response.
type validationIssue struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// ExtractDetail returns the human readable message of an error response body,
// or an empty string when the body carries none. It understands
// {"detail": "..."}, FastAPI validation arrays, {"message": "..."},
// HTML error pages served by proxies and short plain-text bodies.
func ExtractDetail(contentType string, body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	switch {
	case strings.Contains(contentType, "json") || trimmed[0] == '{':
		return detailFromJSON(trimmed)
	case strings.Contains(contentType, "html") || trimmed[0] == '<':
		return detailFromHTML(trimmed)
	default:
		return truncate(strings.Join(strings.Fields(string(trimmed)), " "))
	}
}

func detailFromJSON(body []byte) string {
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	if len(payload.Detail) > 0 {
		var text string
		if err := json.Unmarshal(payload.Detail, &text); err == nil {
			return text
		}

		var issues []validationIssue
		if err := json.Unmarshal(payload.Detail, &issues); err == nil {
			return joinIssues(issues)
		}
	}

	return payload.Message
}

func joinIssues(issues []validationIssue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		if issue.Msg == "" {
			continue
		}
		if len(issue.Loc) > 0 {
			parts = append(parts, fmt.Sprintf("%v: %s", issue.Loc[len(issue.Loc)-1], issue.Msg))
			continue
		}
		parts = append(parts, issue.Msg)
	}

	return strings.Join(parts, "; ")
}

func detailFromHTML(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return truncate(title)
	}

	for _, selector := range []string{"h1", "body"} {
		text := strings.Join(strings.Fields(doc.Find(selector).First().Text()), " ")
		if text != "" {
			return truncate(text)
		}
	}

	return ""
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxDetailLen {
		return text
	}
	return string(runes[:maxDetailLen]) + "..."
}
