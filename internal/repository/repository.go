package repository

import (
	"context"

	"github.com/Houeta/hrms-lite/internal/client"
	"github.com/Houeta/hrms-lite/internal/models"
)

const (
	employeesPath  = "/employees/"
	attendancePath = "/attendance/"
)

// Repository talks to the remote HRMS collections.
type Repository struct {
	transport client.Requester
}

// EmployeeRepoIface represents the interface for interacting with the employee collection.
type EmployeeRepoIface interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, body models.EmployeeBody) (models.Employee, error)
	UpdateEmployee(ctx context.Context, identifier string, body models.EmployeeBody) (models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier string) error
}

// AttendanceRepoIface represents the interface for interacting with the attendance collection.
type AttendanceRepoIface interface {
	ListAttendance(ctx context.Context) ([]models.AttendanceRecord, error)
	ListAttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error)
	ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error)
	MarkAttendance(ctx context.Context, draft models.AttendanceDraft) (models.AttendanceRecord, error)
	UpdateAttendance(
		ctx context.Context, identifier string, draft models.AttendanceDraft) (models.AttendanceRecord, error)
	DeleteAttendance(ctx context.Context, identifier string) error
}

func NewEmployeeRepository(transport client.Requester) EmployeeRepoIface {
	return &Repository{transport: transport}
}

func NewAttendanceRepository(transport client.Requester) AttendanceRepoIface {
	return &Repository{transport: transport}
}
