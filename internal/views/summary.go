package views

import "github.com/Houeta/hrms-lite/internal/models"

// Row is an attendance record with its resolved employee name.
type Row struct {
	models.AttendanceRecord
	EmployeeName string `json:"employee_name"`
}

// Rows resolves the employee name of every record.
func Rows(records []models.AttendanceRecord, names NameIndex) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{AttendanceRecord: rec, EmployeeName: names.Resolve(rec.EmployeeID)})
	}
	return rows
}

// DashboardSummary is the overview page: employee count, today's attendance
// and the latest valid records.
type DashboardSummary struct {
	Date           string `json:"date"`
	TotalEmployees int    `json:"total_employees"`
	Today          Stats  `json:"today"`
	Recent         []Row  `json:"recent"`
}

// Dashboard computes the overview for the given date from the current collections.
func Dashboard(
	employees []models.Employee,
	records []models.AttendanceRecord,
	today string,
	recentLimit int,
) DashboardSummary {
	names := EmployeeNameIndex(employees)
	valid := ValidAttendance(records, employees)

	return DashboardSummary{
		Date:           today,
		TotalEmployees: len(employees),
		Today:          StatsForSet(TodaysSubset(valid, today)),
		Recent:         Rows(RecentN(valid, recentLimit), names),
	}
}

// AttendanceSummary is the attendance page: stats over every valid record plus the table rows.
type AttendanceSummary struct {
	Stats Stats `json:"stats"`
	Rows  []Row `json:"rows"`
}

// Attendance computes the attendance page from the current collections.
// Orphaned records are excluded from both the counts and the rows.
func Attendance(employees []models.Employee, records []models.AttendanceRecord) AttendanceSummary {
	valid := ValidAttendance(records, employees)

	return AttendanceSummary{
		Stats: StatsForSet(valid),
		Rows:  Rows(valid, EmployeeNameIndex(employees)),
	}
}
