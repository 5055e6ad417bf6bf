package employees

import (
	"context"
	"errors"
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
)

// MsgCodeChanged is reported on employee_id when an update tries to change the code.
const MsgCodeChanged = "Employee ID cannot be changed"

type Service struct {
	log       *slog.Logger
	repo      repository.EmployeeRepoIface
	store     *cache.Store
	validator *validation.Validator
	metrics   *metrics.Metrics
}

func NewService(
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	store *cache.Store,
	validator *validation.Validator,
	metrics *metrics.Metrics,
) *Service {
	return &Service{log: log, repo: repo, store: store, validator: validator, metrics: metrics}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// List returns the employee collection, served from the cache when fresh.
// The returned slice is a copy and may be modified by the caller.
func (s *Service) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := cache.Get(ctx, s.store, cache.ListKey(cache.Employee), s.repo.ListEmployees)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return slices.Clone(employees), nil
}

// Get returns one employee by server id, resolved from the cached list.
// An id missing from the list yields apperror.ErrNotFound.
func (s *Service) Get(ctx context.Context, identifier string) (models.Employee, error) {
	return cache.Get(ctx, s.store, cache.IDKey(cache.Employee, identifier),
		func(ctx context.Context) (models.Employee, error) {
			employees, err := s.List(ctx)
			if err != nil {
				return models.Employee{}, err
			}

			idx := slices.IndexFunc(employees, func(emp models.Employee) bool { return emp.ID == identifier })
			if idx < 0 {
				return models.Employee{}, fmt.Errorf("employee '%s': %w", identifier, apperror.ErrNotFound)
			}

			return employees[idx], nil
		})
}

// Create validates the draft, posts it and seeds the cache with the stored record.
func (s *Service) Create(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error) {
	const opn = "Employees.Create"
	log := s.initLogger(opn)

	body, err := s.validate(ctx, log, draft)
	if err != nil {
		return models.Employee{}, err
	}

	created, err := s.repo.CreateEmployee(ctx, body)
	if err == nil {
		s.store.Set(cache.IDKey(cache.Employee, created.ID), created)
	}
	s.store.Apply(cache.Employee, cache.Create, created.ID)

	if err != nil {
		log.WarnContext(ctx, "Failed to create employee", "employee_id", body.EmployeeID, sl.Err(err))
		return models.Employee{}, fmt.Errorf("failed to create employee '%s': %w", body.EmployeeID, err)
	}

	log.InfoContext(ctx, "Employee created", "id", created.ID, "employee_id", created.EmployeeID)

	return created, nil
}

// Update replaces the editable fields of an employee. The employee code is
// write-once: an empty code keeps the stored one and a different code is
// rejected with a field error.
func (s *Service) Update(ctx context.Context, identifier string, draft models.EmployeeDraft) (models.Employee, error) {
	const opn = "Employees.Update"
	log := s.initLogger(opn)

	current, err := s.Get(ctx, identifier)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to load employee '%s': %w", identifier, err)
	}

	draft = draft.Trimmed()
	if draft.EmployeeID == "" {
		draft.EmployeeID = current.EmployeeID
	}
	if draft.EmployeeID != current.EmployeeID {
		s.metrics.ValidationFailures.WithLabelValues("employee").Inc()
		log.DebugContext(ctx, "Employee code change rejected", "id", identifier)
		return models.Employee{}, apperror.NewValidation(map[string]string{"employee_id": MsgCodeChanged})
	}

	body, err := s.validate(ctx, log, draft)
	if err != nil {
		return models.Employee{}, err
	}

	updated, err := s.repo.UpdateEmployee(ctx, identifier, body)
	s.store.Apply(cache.Employee, cache.Update, identifier)

	if err != nil {
		log.WarnContext(ctx, "Failed to update employee", "id", identifier, sl.Err(err))
		return models.Employee{}, fmt.Errorf("failed to update employee '%s': %w", identifier, err)
	}

	if updated.CreatedAt == "" {
		updated.CreatedAt = current.CreatedAt
	}

	log.InfoContext(ctx, "Employee updated", "id", identifier)

	return updated, nil
}

// Delete removes an employee. Attendance queries are left alone; records of the
// deleted employee drop out of the derived views instead.
func (s *Service) Delete(ctx context.Context, identifier string) error {
	const opn = "Employees.Delete"
	log := s.initLogger(opn)

	err := s.repo.DeleteEmployee(ctx, identifier)
	s.store.Apply(cache.Employee, cache.Delete, identifier)

	if err != nil {
		log.WarnContext(ctx, "Failed to delete employee", "id", identifier, sl.Err(err))
		return fmt.Errorf("failed to delete employee '%s': %w", identifier, err)
	}

	log.InfoContext(ctx, "Employee deleted", "id", identifier)

	return nil
}

func (s *Service) validate(
	ctx context.Context,
	log *slog.Logger,
	draft models.EmployeeDraft,
) (models.EmployeeBody, error) {
	if err := apperror.NewValidation(s.validator.Employee(draft)); err != nil {
		s.metrics.ValidationFailures.WithLabelValues("employee").Inc()
		log.DebugContext(ctx, "Employee form rejected", sl.Err(err))
		return models.EmployeeBody{}, err
	}

	body, err := draft.Body()
	if err != nil {
		return models.EmployeeBody{}, fmt.Errorf("failed to build employee body: %w", err)
	}

	return body, nil
}

// ErrorMessages returns the form-level message and the per-field messages for
// an error returned by Create or Update.
func ErrorMessages(err error) (string, map[string]string) {
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.MsgLoadEmployees, nil
	}
	return apperror.FormMessage(err, apperror.MsgSaveEmployee), apperror.FieldErrors(err)
}
