package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Houeta/hrms-lite/internal/cache"
	"github.com/Houeta/hrms-lite/internal/client"
	"github.com/Houeta/hrms-lite/internal/config"
	"github.com/Houeta/hrms-lite/internal/lib/clock"
	"github.com/Houeta/hrms-lite/internal/lib/logger/sl"
	"github.com/Houeta/hrms-lite/internal/metrics"
	"github.com/Houeta/hrms-lite/internal/repository"
	"github.com/Houeta/hrms-lite/internal/server"
	"github.com/Houeta/hrms-lite/internal/services/attendance"
	"github.com/Houeta/hrms-lite/internal/services/dashboard"
	"github.com/Houeta/hrms-lite/internal/services/employees"
	"github.com/Houeta/hrms-lite/internal/validation"
	"github.com/Houeta/hrms-lite/internal/views"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	var wgr sync.WaitGroup
	delta := 2

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	httpClient := client.CreateHTTPClient(logger, cfg.API.Timeout)
	transport := client.NewTransport(logger, httpClient, appMetrics, cfg.API.BaseURL)

	store := cache.New(logger, appMetrics)
	today := clock.System{Location: time.UTC}
	validator := validation.New(today)

	employeeService := employees.NewService(logger, repository.NewEmployeeRepository(transport), store,
		validator, appMetrics)
	attendanceService := attendance.NewService(logger, repository.NewAttendanceRepository(transport),
		employeeService, store, validator, appMetrics)
	watcher := dashboard.NewWatcher(logger, store, employeeService, attendanceService, today, appMetrics,
		cfg.Dashboard.Recent)

	watcher.OnUpdate(func(summary views.DashboardSummary) {
		logger.DebugContext(ctx, "Dashboard summary", "summary", summary)
	})

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		server.StartMonitoringServer(ctx, logger, reg, cfg.Monitoring.Port, transport.BaseURL())
	}()

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting Dashboard Watcher")
		if err := watcher.Start(ctx, cfg.Dashboard.Interval); err != nil {
			logger.ErrorContext(ctx, "Dashboard Watcher failed", sl.Err(err))
		}
		logger.InfoContext(ctx, "Dashboard Watcher stopped.")
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "api", transport.BaseURL())

	wgr.Wait()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}
