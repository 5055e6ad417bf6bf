package models

import "strings"

// DateLayout is the calendar-date format used by the API for attendance dates.
const DateLayout = "2006-01-02"

// Status is the attendance status of an employee for one day.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// AttendanceRecord represents one attendance row.
// EmployeeID references Employee.ID; the employee may no longer exist.
type AttendanceRecord struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
}

// AttendanceDraft is both the form state and the request body of attendance mutations.
type AttendanceDraft struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date"        validate:"required,calendardate,notfuture"`
	Status     Status `json:"status"      validate:"required,oneof=Present Absent"`
}

// Trimmed returns a copy with surrounding whitespace removed.
func (d AttendanceDraft) Trimmed() AttendanceDraft {
	return AttendanceDraft{
		EmployeeID: strings.TrimSpace(d.EmployeeID),
		Date:       strings.TrimSpace(d.Date),
		Status:     Status(strings.TrimSpace(string(d.Status))),
	}
}

// Record returns the record the draft describes, stamped with the given id.
func (d AttendanceDraft) Record(id string) AttendanceRecord {
	return AttendanceRecord{ID: id, EmployeeID: d.EmployeeID, Date: d.Date, Status: d.Status}
}

// DraftFromRecord prefills an edit form with the stored values.
func DraftFromRecord(rec AttendanceRecord) AttendanceDraft {
	return AttendanceDraft{EmployeeID: rec.EmployeeID, Date: rec.Date, Status: rec.Status}
}
