package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Houeta/hrms-lite/internal/cache"
	"github.com/Houeta/hrms-lite/internal/lib/clock"
	"github.com/Houeta/hrms-lite/internal/lib/logger/sl"
	"github.com/Houeta/hrms-lite/internal/metrics"
	"github.com/Houeta/hrms-lite/internal/models"
	"github.com/Houeta/hrms-lite/internal/views"
)

type EmployeeLister interface {
	List(ctx context.Context) ([]models.Employee, error)
}

type AttendanceLister interface {
	List(ctx context.Context) ([]models.AttendanceRecord, error)
}

// Watcher keeps the dashboard summary current. It recomputes on every change
// of the employee or attendance list and refetches both on an interval.
type Watcher struct {
	log        *slog.Logger
	store      *cache.Store
	employees  EmployeeLister
	attendance AttendanceLister
	clock      clock.Clock
	metrics    *metrics.Metrics
	recent     int

	mu        sync.Mutex
	listeners []func(views.DashboardSummary)
	last      views.DashboardSummary
	computed  bool

	changed chan struct{}
}

func NewWatcher(
	log *slog.Logger,
	store *cache.Store,
	employees EmployeeLister,
	attendance AttendanceLister,
	clk clock.Clock,
	metrics *metrics.Metrics,
	recent int,
) *Watcher {
	if recent <= 0 {
		recent = views.RecentLimit
	}

	return &Watcher{
		log:        log,
		store:      store,
		employees:  employees,
		attendance: attendance,
		clock:      clk,
		metrics:    metrics,
		recent:     recent,
		changed:    make(chan struct{}, 1),
	}
}

func (w *Watcher) initLogger(opn string) *slog.Logger {
	return w.log.With(
		slog.String("op", opn),
		slog.String("division", "dashboard"),
	)
}

// OnUpdate registers fn to receive every recomputed summary. fn runs on the
// watcher goroutine.
func (w *Watcher) OnUpdate(fn func(views.DashboardSummary)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.listeners = append(w.listeners, fn)
}

// Latest returns the last computed summary. ok is false before the first refresh.
func (w *Watcher) Latest() (views.DashboardSummary, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.last, w.computed
}

// Start runs the watcher until ctx is done: an initial refresh, then a
// recompute after every list change and a refetch of both lists every interval.
func (w *Watcher) Start(ctx context.Context, interval time.Duration) error {
	const opn = "Dashboard.Start"
	log := w.initLogger(opn)

	unsubscribe := w.subscribe(ctx)
	defer unsubscribe()

	// 1. Initial refresh
	log.InfoContext(ctx, "Starting initial refresh")
	if _, err := w.Refresh(ctx); err != nil {
		log.ErrorContext(ctx, "Initial refresh failed", sl.Err(err))
	}

	// 2. Watch mode
	log.InfoContext(ctx, "Starting watch mode", "interval", interval.String())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.DebugContext(ctx, "Periodic refresh triggered.")
			w.store.Invalidate(cache.ListKey(cache.Employee), cache.ListKey(cache.Attendance))
		case <-w.changed:
			if _, err := w.Refresh(ctx); err != nil {
				log.ErrorContext(ctx, "Refresh failed", sl.Err(err))
			}
		case <-ctx.Done():
			log.InfoContext(ctx, "Watcher shutting down.")
			return nil
		}
	}
}

// subscribe signals the watch loop on updates and invalidations of both lists.
// Failed fetches are only logged; re-reading on them would retry in a loop.
func (w *Watcher) subscribe(ctx context.Context) func() {
	log := w.initLogger("Dashboard.subscribe")

	listener := func(event cache.Event) {
		if event.Kind == cache.Failed {
			log.WarnContext(ctx, "Dashboard source failed", sl.Query(event.Key), sl.Err(event.Err))
			return
		}
		select {
		case w.changed <- struct{}{}:
		default:
		}
	}

	unsubEmployees := w.store.Subscribe(cache.ListKey(cache.Employee), listener)
	unsubAttendance := w.store.Subscribe(cache.ListKey(cache.Attendance), listener)

	return func() {
		unsubEmployees()
		unsubAttendance()
	}
}

// Refresh reads both lists through the cache, recomputes the summary and
// publishes it to the registered listeners.
func (w *Watcher) Refresh(ctx context.Context) (views.DashboardSummary, error) {
	const opn = "Dashboard.Refresh"
	log := w.initLogger(opn)

	employees, err := w.employees.List(ctx)
	if err != nil {
		return views.DashboardSummary{}, fmt.Errorf("failed to load employees: %w", err)
	}

	records, err := w.attendance.List(ctx)
	if err != nil {
		return views.DashboardSummary{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	summary := views.Dashboard(employees, records, w.clock.Today(), w.recent)

	w.mu.Lock()
	w.last = summary
	w.computed = true
	listeners := append([]func(views.DashboardSummary){}, w.listeners...)
	w.mu.Unlock()

	w.metrics.LastDashboardRefresh.SetToCurrentTime()
	log.InfoContext(ctx, "Dashboard recomputed",
		"date", summary.Date,
		"employees", summary.TotalEmployees,
		"present", summary.Today.Present,
		"absent", summary.Today.Absent,
		"rate", summary.Today.Rate,
	)

	for _, fn := range listeners {
		fn(summary)
	}

	return summary, nil
}
