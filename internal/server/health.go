package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Houeta/hrms-lite/internal/lib/logger/sl"
)

// HealthChecker reports whether the HRMS API answers.
type HealthChecker struct {
	apiURL     string
	httpClient *http.Client
	log        *slog.Logger
}

func NewHealthChecker(apiURL string, log *slog.Logger) *HealthChecker {
	clientTO := 5
	return &HealthChecker{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: time.Duration(clientTO) * time.Second},
		log:        log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	status := make(map[string]string)
	overallStatus := http.StatusOK

	resp, err := h.head(req)
	switch {
	case err != nil:
		status["api"] = "unreachable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: API unreachable", "host", h.apiURL, sl.Err(err))
	case resp.StatusCode >= http.StatusInternalServerError:
		status["api"] = "degraded"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: API returned error status",
			"host", h.apiURL,
			"status_code", resp.StatusCode,
		)
	default:
		// FastAPI answers HEAD on routes without a HEAD handler with 405, which still proves liveness.
		status["api"] = "ok"
	}
	if resp != nil {
		if err = resp.Body.Close(); err != nil {
			h.log.WarnContext(req.Context(), "Failed to close response body", sl.Err(err))
		}
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err = json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", sl.Err(err))
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}

func (h *HealthChecker) head(req *http.Request) (*http.Response, error) {
	headReq, err := http.NewRequestWithContext(req.Context(), http.MethodHead, h.apiURL, nil)
	if err != nil {
		return nil, err
	}
	return h.httpClient.Do(headReq)
}
