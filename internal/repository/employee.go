package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Houeta/hrms-lite/internal/models"
)

// ListEmployees returns the full employee collection.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee

	if err := r.transport.Do(ctx, "list employees", http.MethodGet, employeesPath, nil, nil, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}

// CreateEmployee posts a new employee and returns the record stored by the server.
func (r *Repository) CreateEmployee(ctx context.Context, body models.EmployeeBody) (models.Employee, error) {
	var created models.Employee

	if err := r.transport.Do(ctx, "create employee", http.MethodPost, employeesPath, nil, body, &created); err != nil {
		return models.Employee{}, err
	}

	return created, nil
}

// UpdateEmployee replaces the editable fields of an employee.
// The API acknowledges updates with a message only; in that case the submitted
// values stamped with the identifier are returned.
func (r *Repository) UpdateEmployee(
	ctx context.Context,
	identifier string,
	body models.EmployeeBody,
) (models.Employee, error) {
	var updated models.Employee

	err := r.transport.Do(ctx, "update employee", http.MethodPut, employeesPath+url.PathEscape(identifier),
		nil, body, &updated)
	if err != nil {
		return models.Employee{}, err
	}

	if updated.ID == "" {
		return models.Employee{ID: identifier}.WithBody(body), nil
	}

	return updated, nil
}

// DeleteEmployee removes an employee. Attendance rows referencing it are left in place by the API.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier string) error {
	return r.transport.Do(ctx, "delete employee", http.MethodDelete, employeesPath+url.PathEscape(identifier),
		nil, nil, nil)
}
