package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Houeta/hrms-lite/internal/apperror"
	"github.com/Houeta/hrms-lite/internal/cache"
	"github.com/Houeta/hrms-lite/internal/lib/logger/sl"
	"github.com/Houeta/hrms-lite/internal/metrics"
	"github.com/Houeta/hrms-lite/internal/models"
	"github.com/Houeta/hrms-lite/internal/repository"
	"github.com/Houeta/hrms-lite/internal/validation"
	"github.com/Houeta/hrms-lite/internal/views"
)

// EmployeeLister provides the employees an attendance row may reference.
type EmployeeLister interface {
	List(ctx context.Context) ([]models.Employee, error)
}

type Service struct {
	log       *slog.Logger
	repo      repository.AttendanceRepoIface
	employees EmployeeLister
	store     *cache.Store
	validator *validation.Validator
	metrics   *metrics.Metrics
}

func NewService(
	log *slog.Logger,
	repo repository.AttendanceRepoIface,
	employees EmployeeLister,
	store *cache.Store,
	validator *validation.Validator,
	metrics *metrics.Metrics,
) *Service {
	return &Service{
		log:       log,
		repo:      repo,
		employees: employees,
		store:     store,
		validator: validator,
		metrics:   metrics,
	}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "attendance"),
	)
}

// List returns every attendance row, orphans included, in server order.
func (s *Service) List(ctx context.Context) ([]models.AttendanceRecord, error) {
	return s.read(ctx, cache.ListKey(cache.Attendance), s.repo.ListAttendance)
}

// ListByDate returns the rows of one calendar date.
func (s *Service) ListByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	return s.read(ctx, cache.FilterKey(cache.Attendance, "date", date),
		func(ctx context.Context) ([]models.AttendanceRecord, error) {
			return s.repo.ListAttendanceByDate(ctx, date)
		})
}

// ListByEmployee returns the rows of one employee.
func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error) {
	return s.read(ctx, cache.FilterKey(cache.Attendance, "employee", employeeID),
		func(ctx context.Context) ([]models.AttendanceRecord, error) {
			return s.repo.ListAttendanceByEmployee(ctx, employeeID)
		})
}

func (s *Service) read(
	ctx context.Context,
	key cache.Key,
	fetch func(ctx context.Context) ([]models.AttendanceRecord, error),
) ([]models.AttendanceRecord, error) {
	records, err := cache.Get(ctx, s.store, key, fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return slices.Clone(records), nil
}

// Get returns one attendance row by id, resolved from the cached list.
func (s *Service) Get(ctx context.Context, identifier string) (models.AttendanceRecord, error) {
	return cache.Get(ctx, s.store, cache.IDKey(cache.Attendance, identifier),
		func(ctx context.Context) (models.AttendanceRecord, error) {
			records, err := s.List(ctx)
			if err != nil {
				return models.AttendanceRecord{}, err
			}

			idx := slices.IndexFunc(records, func(rec models.AttendanceRecord) bool { return rec.ID == identifier })
			if idx < 0 {
				return models.AttendanceRecord{}, fmt.Errorf("attendance '%s': %w", identifier, apperror.ErrNotFound)
			}

			return records[idx], nil
		})
}

// Summary computes the attendance page from the current collections.
func (s *Service) Summary(ctx context.Context) (views.AttendanceSummary, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return views.AttendanceSummary{}, err
	}

	records, err := s.List(ctx)
	if err != nil {
		return views.AttendanceSummary{}, err
	}

	return views.Attendance(employees, records), nil
}

// Mark validates the draft and creates an attendance row.
func (s *Service) Mark(ctx context.Context, draft models.AttendanceDraft) (models.AttendanceRecord, error) {
	const opn = "Attendance.Mark"
	log := s.initLogger(opn)

	draft, err := s.validate(ctx, log, draft)
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	created, err := s.repo.MarkAttendance(ctx, draft)
	if err == nil {
		s.store.Set(cache.IDKey(cache.Attendance, created.ID), created)
	}
	s.store.Apply(cache.Attendance, cache.Create, created.ID)

	if err != nil {
		log.WarnContext(ctx, "Failed to mark attendance", "employee", draft.EmployeeID, "date", draft.Date, sl.Err(err))
		return models.AttendanceRecord{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	log.InfoContext(ctx, "Attendance marked", "id", created.ID, "date", created.Date, "status", created.Status)

	return created, nil
}

// Update validates the draft and replaces an attendance row.
func (s *Service) Update(
	ctx context.Context,
	identifier string,
	draft models.AttendanceDraft,
) (models.AttendanceRecord, error) {
	const opn = "Attendance.Update"
	log := s.initLogger(opn)

	draft, err := s.validate(ctx, log, draft)
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	updated, err := s.repo.UpdateAttendance(ctx, identifier, draft)
	s.store.Apply(cache.Attendance, cache.Update, identifier)

	if err != nil {
		log.WarnContext(ctx, "Failed to update attendance", "id", identifier, sl.Err(err))
		return models.AttendanceRecord{}, fmt.Errorf("failed to update attendance '%s': %w", identifier, err)
	}

	log.InfoContext(ctx, "Attendance updated", "id", identifier)

	return updated, nil
}

// Delete removes an attendance row.
func (s *Service) Delete(ctx context.Context, identifier string) error {
	const opn = "Attendance.Delete"
	log := s.initLogger(opn)

	err := s.repo.DeleteAttendance(ctx, identifier)
	s.store.Apply(cache.Attendance, cache.Delete, identifier)

	if err != nil {
		log.WarnContext(ctx, "Failed to delete attendance", "id", identifier, sl.Err(err))
		return fmt.Errorf("failed to delete attendance '%s': %w", identifier, err)
	}

	log.InfoContext(ctx, "Attendance deleted", "id", identifier)

	return nil
}

// validate returns the trimmed draft or a *apperror.ValidationError.
// The employee must be one of the loaded employees; when they cannot be loaded
// the check is left to the server.
func (s *Service) validate(
	ctx context.Context,
	log *slog.Logger,
	draft models.AttendanceDraft,
) (models.AttendanceDraft, error) {
	var selectable map[string]struct{}
	if employees, err := s.employees.List(ctx); err != nil {
		log.WarnContext(ctx, "Employees unavailable, skipping employee check", sl.Err(err))
	} else {
		selectable = views.EmployeeIDs(employees)
	}

	if err := apperror.NewValidation(s.validator.Attendance(draft, selectable)); err != nil {
		s.metrics.ValidationFailures.WithLabelValues("attendance").Inc()
		log.DebugContext(ctx, "Attendance form rejected", sl.Err(err))
		return models.AttendanceDraft{}, err
	}

	return draft.Trimmed(), nil
}

// ErrorMessages returns the form-level message and the per-field messages for
// an error returned by Mark or Update.
func ErrorMessages(err error) (string, map[string]string) {
	return apperror.FormMessage(err, apperror.MsgSaveAttendance), apperror.FieldErrors(err)
}

// DeleteMessage returns the message shown when Delete fails. Server details are not surfaced.
func DeleteMessage(err error) string {
	if err == nil {
		return ""
	}
	return apperror.MsgDeleteAttendance
}
