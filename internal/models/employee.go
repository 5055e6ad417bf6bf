package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UserAgent is sent with every request to the HRMS API.
const UserAgent = "hrms-lite-client/1.0 (+https://github.com/Houeta/hrms-lite)"

// Employee represents an employee entity as returned by the API.
type Employee struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"` // human-assigned code, write-once
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	Salary     float64 `json:"salary"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

// EmployeeDraft is the editable part of an employee.
// Salary is kept as typed so an empty value and a non-positive one can be told apart.
type EmployeeDraft struct {
	EmployeeID string `json:"employee_id" validate:"required,min=3"`
	Name       string `json:"name"        validate:"required"`
	Email      string `json:"email"       validate:"required,emailshape"`
	Department string `json:"department"  validate:"required"`
	Role       string `json:"role"        validate:"required"`
	Salary     string `json:"salary"      validate:"required,positive"`
}

// EmployeeBody is the request body of POST /employees/ and PUT /employees/{id}.
type EmployeeBody struct {
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	Salary     float64 `json:"salary"`
}

// DraftFromEmployee prefills an edit form with the stored values.
func DraftFromEmployee(emp Employee) EmployeeDraft {
	return EmployeeDraft{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Email:      emp.Email,
		Department: emp.Department,
		Role:       emp.Role,
		Salary:     formatSalary(emp.Salary),
	}
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (d EmployeeDraft) Trimmed() EmployeeDraft {
	return EmployeeDraft{
		EmployeeID: strings.TrimSpace(d.EmployeeID),
		Name:       strings.TrimSpace(d.Name),
		Email:      strings.TrimSpace(d.Email),
		Department: strings.TrimSpace(d.Department),
		Role:       strings.TrimSpace(d.Role),
		Salary:     strings.TrimSpace(d.Salary),
	}
}

// Body converts a validated draft into the request body. Text fields are trimmed.
func (d EmployeeDraft) Body() (EmployeeBody, error) {
	d = d.Trimmed()

	salary, err := strconv.ParseFloat(d.Salary, 64)
	if err != nil {
		return EmployeeBody{}, fmt.Errorf("failed to parse salary '%s': %w", d.Salary, err)
	}
	if math.IsInf(salary, 0) || math.IsNaN(salary) {
		return EmployeeBody{}, fmt.Errorf("salary '%s' is not a finite number", d.Salary)
	}

	return EmployeeBody{
		EmployeeID: d.EmployeeID,
		Name:       d.Name,
		Email:      d.Email,
		Department: d.Department,
		Role:       d.Role,
		Salary:     salary,
	}, nil
}

// WithBody returns a copy of the employee carrying the submitted values.
func (emp Employee) WithBody(body EmployeeBody) Employee {
	emp.EmployeeID = body.EmployeeID
	emp.Name = body.Name
	emp.Email = body.Email
	emp.Department = body.Department
	emp.Role = body.Role
	emp.Salary = body.Salary

	return emp
}

func formatSalary(salary float64) string {
	if salary == 0 {
		return ""
	}
	return strconv.FormatFloat(salary, 'f', -1, 64)
}
