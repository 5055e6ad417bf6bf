package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Houeta/hrms-lite/internal/models"
)

// ListAttendance returns the full attendance collection in server order.
func (r *Repository) ListAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	return r.listAttendance(ctx, "list attendance", attendancePath, nil)
}

// ListAttendanceByDate returns the attendance rows of one calendar date.
func (r *Repository) ListAttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	return r.listAttendance(ctx, "list attendance by date", attendancePath, url.Values{"date": {date}})
}

// ListAttendanceByEmployee returns the attendance rows of one employee.
func (r *Repository) ListAttendanceByEmployee(
	ctx context.Context,
	employeeID string,
) ([]models.AttendanceRecord, error) {
	return r.listAttendance(ctx, "list attendance by employee", attendancePath+url.PathEscape(employeeID), nil)
}

func (r *Repository) listAttendance(
	ctx context.Context,
	opn, path string,
	query url.Values,
) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord

	if err := r.transport.Do(ctx, opn, http.MethodGet, path, query, nil, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// MarkAttendance creates an attendance row.
func (r *Repository) MarkAttendance(
	ctx context.Context,
	draft models.AttendanceDraft,
) (models.AttendanceRecord, error) {
	var created models.AttendanceRecord

	if err := r.transport.Do(ctx, "create attendance", http.MethodPost, attendancePath, nil, draft, &created); err != nil {
		return models.AttendanceRecord{}, err
	}

	return created, nil
}

// UpdateAttendance replaces an attendance row.
func (r *Repository) UpdateAttendance(
	ctx context.Context,
	identifier string,
	draft models.AttendanceDraft,
) (models.AttendanceRecord, error) {
	var updated models.AttendanceRecord

	err := r.transport.Do(ctx, "update attendance", http.MethodPut, attendancePath+url.PathEscape(identifier),
		nil, draft, &updated)
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	if updated.ID == "" {
		return draft.Record(identifier), nil
	}

	return updated, nil
}

// DeleteAttendance removes an attendance row.
func (r *Repository) DeleteAttendance(ctx context.Context, identifier string) error {
	return r.transport.Do(ctx, "delete attendance", http.MethodDelete, attendancePath+url.PathEscape(identifier),
		nil, nil, nil)
}
