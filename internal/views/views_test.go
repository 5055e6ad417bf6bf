package views_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Houeta/hrms-lite/internal/models"
	"github.com/Houeta/hrms-lite/internal/views"
)

var employees = []models.Employee{
	{ID: "e1", Name: "Jane"},
	{ID: "e2", Name: "John"},
	{ID: "e3", Name: ""},
}

func record(id, employeeID, date string, status models.Status) models.AttendanceRecord {
	return models.AttendanceRecord{ID: id, EmployeeID: employeeID, Date: date, Status: status}
}

func TestEmployeeNameIndex(t *testing.T) {
	t.Parallel()

	names := views.EmployeeNameIndex(employees)

	assert.Equal(t, "Jane", names.Resolve("e1"))
	assert.Equal(t, views.UnknownEmployee, names.Resolve("deleted"))
	assert.Equal(t, views.UnknownEmployee, names.Resolve("e3"), "empty names fall back too")
	assert.True(t, names.Has("e3"))
	assert.False(t, names.Has("deleted"))
}

func TestValidAttendance(t *testing.T) {
	t.Parallel()

	records := []models.AttendanceRecord{
		record("a1", "e1", "2026-10-14", models.StatusPresent),
		record("a2", "gone", "2026-10-14", models.StatusPresent),
		record("a3", "e2", "2026-10-13", models.StatusAbsent),
		record("a4", "", "2026-10-13", models.StatusAbsent),
	}
	original := slices.Clone(records)

	valid := views.ValidAttendance(records, employees)

	assert.Equal(t, []models.AttendanceRecord{records[0], records[2]}, valid)
	assert.Equal(t, original, records, "input must not be modified")
	assert.Empty(t, views.ValidAttendance(records, nil))
	assert.Empty(t, views.ValidAttendance(nil, employees))
}

func TestValidAttendance_ExactlyLiveReferences(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	ids := []string{"e1", "e2", "e3", "x1", "x2"}

	for range 50 {
		records := make([]models.AttendanceRecord, rng.IntN(30))
		for i := range records {
			records[i] = record("a", ids[rng.IntN(len(ids))], "2026-10-14", models.StatusPresent)
		}

		valid := views.ValidAttendance(records, employees)

		live := views.EmployeeIDs(employees)
		want := 0
		for _, rec := range records {
			if _, ok := live[rec.EmployeeID]; ok {
				want++
			}
		}
		require.Len(t, valid, want)
		for _, rec := range valid {
			assert.Contains(t, live, rec.EmployeeID)
		}
	}
}

func TestStatsForSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		present int
		absent  int
		want    views.Stats
	}{
		{name: "empty", want: views.Stats{Rate: "0.0"}},
		{name: "three of four", present: 3, absent: 1, want: views.Stats{Total: 4, Present: 3, Absent: 1, Rate: "75.0"}},
		{name: "all present", present: 2, want: views.Stats{Total: 2, Present: 2, Rate: "100.0"}},
		{name: "all absent", absent: 5, want: views.Stats{Total: 5, Absent: 5, Rate: "0.0"}},
		{name: "one of three", present: 1, absent: 2, want: views.Stats{Total: 3, Present: 1, Absent: 2, Rate: "33.3"}},
		{name: "two of three", present: 2, absent: 1, want: views.Stats{Total: 3, Present: 2, Absent: 1, Rate: "66.7"}},
		{name: "one of eight", present: 1, absent: 7, want: views.Stats{Total: 8, Present: 1, Absent: 7, Rate: "12.5"}},
		{name: "exact tie rounds up", present: 1, absent: 15, want: views.Stats{Total: 16, Present: 1, Absent: 15, Rate: "6.3"}},
		{name: "seven of two thousand", present: 7, absent: 1993,
			want: views.Stats{Total: 2000, Present: 7, Absent: 1993, Rate: "0.4"}},
		{name: "three of two thousand", present: 3, absent: 1997,
			want: views.Stats{Total: 2000, Present: 3, Absent: 1997, Rate: "0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var records []models.AttendanceRecord
			for range tt.present {
				records = append(records, record("p", "e1", "2026-10-14", models.StatusPresent))
			}
			for range tt.absent {
				records = append(records, record("a", "e1", "2026-10-14", models.StatusAbsent))
			}

			assert.Equal(t, tt.want, views.StatsForSet(records))
		})
	}
}

func TestStatsFromCounts_AbsentNeverNegative(t *testing.T) {
	t.Parallel()

	stats := views.StatsFromCounts(1, 3)

	assert.Equal(t, 0, stats.Absent)
	assert.Equal(t, 3, stats.Present)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, "300.0", stats.Rate)
}

func TestStatsForSet_OrderIndependent(t *testing.T) {
	t.Parallel()

	records := []models.AttendanceRecord{
		record("a1", "e1", "2026-10-14", models.StatusPresent),
		record("a2", "e2", "2026-10-14", models.StatusAbsent),
		record("a3", "e1", "2026-10-13", models.StatusPresent),
		record("a4", "e2", "2026-10-12", models.StatusPresent),
		record("a5", "e1", "2026-10-11", models.StatusAbsent),
		record("a6", "e2", "2026-10-10", models.StatusAbsent),
		record("a7", "e1", "2026-10-09", models.StatusPresent),
	}
	want := views.StatsForSet(records)

	rng := rand.New(rand.NewPCG(7, 7))
	for range 20 {
		shuffled := slices.Clone(records)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		assert.Equal(t, want, views.StatsForSet(shuffled))
		assert.Equal(t, want, views.StatsForSet(shuffled), "repeated calls give the same result")
	}
}

func TestTodaysSubset(t *testing.T) {
	t.Parallel()

	records := []models.AttendanceRecord{
		record("a1", "e1", "2026-10-14", models.StatusPresent),
		record("a2", "e2", "2026-10-13", models.StatusAbsent),
		record("a3", "e2", "2026-10-14", models.StatusAbsent),
	}

	assert.Equal(t, []models.AttendanceRecord{records[0], records[2]}, views.TodaysSubset(records, "2026-10-14"))
	assert.Empty(t, views.TodaysSubset(records, "2026-10-15"))
}

func TestRecentN(t *testing.T) {
	t.Parallel()

	var records []models.AttendanceRecord
	for _, id := range []string{"a1", "a2", "a3", "a4", "a5"} {
		records = append(records, record(id, "e1", "2026-10-14", models.StatusPresent))
	}
	// list order wins over dates
	records[4].Date = "2020-01-01"

	recent := views.RecentN(records, 3)

	ids := make([]string, 0, len(recent))
	for _, rec := range recent {
		ids = append(ids, rec.ID)
	}
	assert.Equal(t, []string{"a5", "a4", "a3"}, ids)
	assert.Equal(t, "a1", records[0].ID, "input order must be untouched")
	assert.Len(t, views.RecentN(records, 10), 5)
	assert.Empty(t, views.RecentN(records, 0))
	assert.NotNil(t, views.RecentN(nil, 8))
}
