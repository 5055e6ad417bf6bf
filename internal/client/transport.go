package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Houeta/hrms-lite/internal/apperror"
	"github.com/Houeta/hrms-lite/internal/lib/logger/sl"
	"github.com/Houeta/hrms-lite/internal/metrics"
	"github.com/Houeta/hrms-lite/internal/models"
)

// Transport sends JSON requests to the HRMS API.
type Transport struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
	metrics *metrics.Metrics
}

// Requester is the part of Transport the repositories depend on.
type Requester interface {
	Do(ctx context.Context, opn, method, path string, query url.Values, body, out any) error
}

// NewTransport creates a transport for the API rooted at baseURL.
func NewTransport(log *slog.Logger, httpClient *http.Client, metrics *metrics.Metrics, baseURL string) *Transport {
	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		log:     log.With(slog.String("division", "transport")),
		metrics: metrics,
	}
}

// BaseURL returns the API root without a trailing slash.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Do sends one request. body, when not nil, is encoded as JSON; a successful
// response is decoded into out when out is not nil and the body is not empty.
// Every failure is returned as *apperror.RequestFailed tagged with opn.
func (t *Transport) Do(ctx context.Context, opn, method, path string, query url.Values, body, out any) error {
	log := t.log.With(slog.String("op", opn))
	startTime := time.Now()
	defer func() {
		t.metrics.RequestDuration.WithLabelValues(opn).Observe(time.Since(startTime).Seconds())
	}()

	err := t.do(ctx, opn, method, path, query, body, out)
	if err != nil {
		t.metrics.RequestFailures.WithLabelValues(opn).Inc()
		log.WarnContext(ctx, "Request failed", "method", method, "path", path, sl.Err(err))
		return err
	}

	log.DebugContext(ctx, "Request completed", "method", method, "path", path,
		"duration", time.Since(startTime).String())
	return nil
}

func (t *Transport) do(ctx context.Context, opn, method, path string, query url.Values, body, out any) error {
	fullURL := t.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &apperror.RequestFailed{Op: opn, Err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return &apperror.RequestFailed{Op: opn, Err: fmt.Errorf("failed to create new request %s: %w", fullURL, err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", models.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return &apperror.RequestFailed{Op: opn, Err: fmt.Errorf("failed to request %s: %w", fullURL, err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperror.RequestFailed{
			Op: opn, Status: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err),
		}
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return &apperror.RequestFailed{
			Op:     opn,
			Status: resp.StatusCode,
			Detail: ExtractDetail(resp.Header.Get("Content-Type"), data),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err = json.Unmarshal(data, out); err != nil {
		return &apperror.RequestFailed{
			Op: opn, Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response body: %w", err),
		}
	}

	return nil
}
