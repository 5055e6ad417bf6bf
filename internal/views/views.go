// Package views derives presentation data from the cached collections.
// Every function is pure: the same inputs always produce the same output and
// inputs are never modified.
package views

import (
	"math/big"
	"slices"
	"strconv"

	"github.com/Houeta/hrms-lite/internal/models"
)

// UnknownEmployee is displayed for attendance rows whose employee no longer exists.
const UnknownEmployee = "Unknown"

// RecentLimit is the number of rows shown in the recent attendance table.
const RecentLimit = 8

// NameIndex maps Employee.ID to Employee.Name.
type NameIndex map[string]string

// EmployeeNameIndex builds the id -> name lookup used while rendering attendance rows.
func EmployeeNameIndex(employees []models.Employee) NameIndex {
	index := make(NameIndex, len(employees))
	for _, emp := range employees {
		index[emp.ID] = emp.Name
	}
	return index
}

// Resolve returns the name of the employee, or UnknownEmployee.
func (n NameIndex) Resolve(employeeID string) string {
	if name, ok := n[employeeID]; ok && name != "" {
		return name
	}
	return UnknownEmployee
}

// Has reports whether employeeID belongs to a live employee.
func (n NameIndex) Has(employeeID string) bool {
	_, ok := n[employeeID]
	return ok
}

// EmployeeIDs returns the set of live employee ids, e.g. for the attendance form selector.
func EmployeeIDs(employees []models.Employee) map[string]struct{} {
	ids := make(map[string]struct{}, len(employees))
	for _, emp := range employees {
		ids[emp.ID] = struct{}{}
	}
	return ids
}

// ValidAttendance keeps the records whose employee is still in employees, in input order.
func ValidAttendance(records []models.AttendanceRecord, employees []models.Employee) []models.AttendanceRecord {
	ids := EmployeeIDs(employees)
	valid := make([]models.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if _, ok := ids[rec.EmployeeID]; ok {
			valid = append(valid, rec)
		}
	}
	return valid
}

// Stats summarises a set of attendance records.
type Stats struct {
	Total   int    `json:"total"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Rate    string `json:"rate"` // percentage with one decimal, "0.0" for an empty set
}

// StatsForSet counts present records and derives the absent count and rate.
// Any status other than Present counts as absent.
func StatsForSet(records []models.AttendanceRecord) Stats {
	present := 0
	for _, rec := range records {
		if rec.Status == models.StatusPresent {
			present++
		}
	}
	return statsFromCounts(len(records), present)
}

func statsFromCounts(total, present int) Stats {
	return Stats{
		Total:   total,
		Present: present,
		Absent:  max(total-present, 0),
		Rate:    rate(present, total),
	}
}

// rate formats present/total*100 with one decimal. Rounding works on the exact
// binary value of the percentage and takes the upper tenth on a tie.
func rate(present, total int) string {
	if total <= 0 {
		return "0.0"
	}
	pct := float64(present) / float64(total) * 100
	tenths := new(big.Rat).SetFloat64(pct)
	tenths.Mul(tenths, big.NewRat(10, 1)).Add(tenths, big.NewRat(1, 2))
	n := new(big.Int).Quo(tenths.Num(), tenths.Denom()).Int64()
	return strconv.FormatInt(n/10, 10) + "." + strconv.FormatInt(n%10, 10)
}

// TodaysSubset keeps the records dated today, in input order.
func TodaysSubset(records []models.AttendanceRecord, today string) []models.AttendanceRecord {
	subset := make([]models.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date == today {
			subset = append(subset, rec)
		}
	}
	return subset
}

// RecentN returns the last n records of the list, most recent first.
// Recency is list order as returned by the API, not the record date.
func RecentN(records []models.AttendanceRecord, n int) []models.AttendanceRecord {
	if n <= 0 {
		return []models.AttendanceRecord{}
	}
	start := max(len(records)-n, 0)
	recent := slices.Clone(records[start:])
	slices.Reverse(recent)
	if recent == nil {
		recent = []models.AttendanceRecord{}
	}
	return recent
}
