package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Houeta/hrms-lite/internal/lib/logger/sl"
)

const shutdownTimeout = 5 * time.Second

// NewMonitoringHandler serves /healthz and /metrics.
func NewMonitoringHandler(log *slog.Logger, reg *prometheus.Registry, apiURL string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/healthz", NewHealthChecker(apiURL, log))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))

	return mux
}

// StartMonitoringServer serves the monitoring handler on port until ctx is done.
func StartMonitoringServer(ctx context.Context, log *slog.Logger, reg *prometheus.Registry, port int, apiURL string) {
	log = log.With(slog.String("division", "monitoring"))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           NewMonitoringHandler(log, reg, apiURL),
		ReadHeaderTimeout: shutdownTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(shutdownCtx, "Monitoring server shutdown failed", sl.Err(err))
		}
	}()

	log.InfoContext(ctx, "Starting monitoring server", "port", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "Monitoring server failed", sl.Err(err))
		return
	}
	log.InfoContext(ctx, "Monitoring server stopped.")
}
