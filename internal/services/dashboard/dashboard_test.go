package dashboard_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Houeta/hrms-lite/internal/cache"
	"github.com/Houeta/hrms-lite/internal/client"
	"github.com/Houeta/hrms-lite/internal/lib/clock"
	"github.com/Houeta/hrms-lite/internal/metrics"
	"github.com/Houeta/hrms-lite/internal/models"
	"github.com/Houeta/hrms-lite/internal/repository"
	"github.com/Houeta/hrms-lite/internal/services/attendance"
	"github.com/Houeta/hrms-lite/internal/services/dashboard"
	"github.com/Houeta/hrms-lite/internal/services/employees"
	"github.com/Houeta/hrms-lite/internal/validation"
	"github.com/Houeta/hrms-lite/internal/views"
)

var today = clock.Fixed(time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC))

type app struct {
	api        *fakeAPI
	store      *cache.Store
	metrics    *metrics.Metrics
	employees  *employees.Service
	attendance *attendance.Service
	watcher    *dashboard.Watcher
}

// newApp wires the real transport, repositories and services against a fake backend.
func newApp(t *testing.T) app {
	t.Helper()

	api, server := newFakeAPI(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	transport := client.NewTransport(logger, client.CreateHTTPClient(logger, 2*time.Second), testMetrics, server.URL)
	store := cache.New(logger, testMetrics)
	validator := validation.New(today)

	employeeService := employees.NewService(logger, repository.NewEmployeeRepository(transport), store,
		validator, testMetrics)
	attendanceService := attendance.NewService(logger, repository.NewAttendanceRepository(transport),
		employeeService, store, validator, testMetrics)

	return app{
		api:        api,
		store:      store,
		metrics:    testMetrics,
		employees:  employeeService,
		attendance: attendanceService,
		watcher: dashboard.NewWatcher(logger, store, employeeService, attendanceService, today, testMetrics,
			views.RecentLimit),
	}
}

func TestEndToEnd_CreateMarkDelete(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx := t.Context()

	before, err := a.watcher.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, before.TotalEmployees)
	assert.Equal(t, views.Stats{Rate: "0.0"}, before.Today)

	jane, err := a.employees.Create(ctx, models.EmployeeDraft{
		EmployeeID: "EMP001",
		Name:       "Jane",
		Email:      "jane@co.com",
		Department: "Eng",
		Role:       "Dev",
		Salary:     "50000",
	})
	require.NoError(t, err)

	list, err := a.employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, jane, list[0])

	_, err = a.attendance.Mark(ctx, models.AttendanceDraft{
		EmployeeID: jane.ID,
		Date:       today.Today(),
		Status:     models.StatusPresent,
	})
	require.NoError(t, err)

	marked, err := a.watcher.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, marked.TotalEmployees)
	assert.Equal(t, before.Today.Present+1, marked.Today.Present)
	assert.Equal(t, "100.0", marked.Today.Rate)
	require.Len(t, marked.Recent, 1)
	assert.Equal(t, "Jane", marked.Recent[0].EmployeeName)

	require.NoError(t, a.employees.Delete(ctx, jane.ID))

	records, err := a.attendance.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1, "the server keeps the orphaned record")
	assert.Equal(t, jane.ID, records[0].EmployeeID)

	after, err := a.watcher.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, after.TotalEmployees)
	assert.Equal(t, marked.Today.Total-1, after.Today.Total)
	assert.Equal(t, views.Stats{Rate: "0.0"}, after.Today)
	assert.Empty(t, after.Recent)

	summary, err := a.attendance.Summary(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Rows)
}

func TestEndToEnd_MarkForDeletedEmployeeRejected(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx := t.Context()

	_, err := a.attendance.Mark(ctx, models.AttendanceDraft{EmployeeID: "e404", Date: today.Today(),
		Status: models.StatusAbsent})

	_, fields := attendance.ErrorMessages(err)
	assert.Equal(t, map[string]string{"employee_id": "Selected employee does not exist"}, fields)
	assert.Equal(t, 0, a.api.attendanceCount())
}

type failingEmployees struct{}

func (failingEmployees) List(context.Context) ([]models.Employee, error) {
	return nil, assert.AnError
}

func TestRefresh_Error(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	watcher := dashboard.NewWatcher(logger, a.store, failingEmployees{}, a.attendance, today, a.metrics, 0)

	_, err := watcher.Refresh(t.Context())

	require.ErrorIs(t, err, assert.AnError)
	_, ok := watcher.Latest()
	assert.False(t, ok)
	assert.Zero(t, testutil.ToFloat64(a.metrics.LastDashboardRefresh))
}

func TestStart_RecomputesOnListChanges(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	updates := make(chan views.DashboardSummary, 64)
	a.watcher.OnUpdate(func(summary views.DashboardSummary) { updates <- summary })

	done := make(chan error, 1)
	go func() { done <- a.watcher.Start(ctx, time.Hour) }()

	waitFor := func(cond func(views.DashboardSummary) bool) views.DashboardSummary {
		t.Helper()
		timeout := time.After(5 * time.Second)
		for {
			select {
			case summary := <-updates:
				if cond(summary) {
					return summary
				}
			case <-timeout:
				require.FailNow(t, "dashboard was not recomputed")
			}
		}
	}

	waitFor(func(s views.DashboardSummary) bool { return s.TotalEmployees == 0 })

	jane, err := a.employees.Create(t.Context(), models.EmployeeDraft{
		EmployeeID: "EMP001", Name: "Jane", Email: "jane@co.com", Department: "Eng", Role: "Dev", Salary: "1",
	})
	require.NoError(t, err)
	waitFor(func(s views.DashboardSummary) bool { return s.TotalEmployees == 1 })

	_, err = a.attendance.Mark(t.Context(), models.AttendanceDraft{
		EmployeeID: jane.ID, Date: today.Today(), Status: models.StatusAbsent,
	})
	require.NoError(t, err)
	summary := waitFor(func(s views.DashboardSummary) bool { return s.Today.Total == 1 })

	assert.Equal(t, views.Stats{Total: 1, Absent: 1, Rate: "0.0"}, summary.Today)
	assert.Positive(t, testutil.ToFloat64(a.metrics.LastDashboardRefresh))

	latest, ok := a.watcher.Latest()
	require.True(t, ok)
	assert.Equal(t, 1, latest.TotalEmployees)

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "watcher did not stop")
	}
}

func TestStart_PeriodicRefetch(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	go func() { _ = a.watcher.Start(ctx, 20*time.Millisecond) }()

	// rows added behind the client's back show up after a tick
	a.api.mu.Lock()
	a.api.employees = append(a.api.employees, models.Employee{ID: "e9", Name: "Ext"})
	a.api.mu.Unlock()

	require.Eventually(t, func() bool {
		latest, ok := a.watcher.Latest()
		return ok && latest.TotalEmployees == 1
	}, 5*time.Second, 10*time.Millisecond)
}
