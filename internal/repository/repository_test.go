package repository_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Houeta/hrms-lite/internal/client"
	"github.com/Houeta/hrms-lite/internal/metrics"
)

// newTestTransport starts an API stub and returns a transport pointed at it.
func newTestTransport(t *testing.T, handler http.Handler) *client.Transport {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return client.NewTransport(logger, client.CreateHTTPClient(logger, 2*time.Second),
		metrics.NewMetrics(prometheus.NewRegistry()), server.URL)
}
