package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/Houeta/hrms-lite/internal/models"
)

// fakeAPI is an in-memory HRMS backend. Deleting an employee leaves its
// attendance rows in place, like the real one.
type fakeAPI struct {
	mu         sync.Mutex
	nextID     int
	employees  []models.Employee
	attendance []models.AttendanceRecord
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()

	api := &fakeAPI{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /employees/", api.listEmployees)
	mux.HandleFunc("POST /employees/", api.createEmployee)
	mux.HandleFunc("DELETE /employees/{id}", api.deleteEmployee)
	mux.HandleFunc("GET /attendance/", api.listAttendance)
	mux.HandleFunc("POST /attendance/", api.markAttendance)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return api, server
}

func (a *fakeAPI) id(prefix string) string {
	a.nextID++
	return prefix + strconv.Itoa(a.nextID)
}

func (a *fakeAPI) listEmployees(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	writeJSON(w, http.StatusOK, append([]models.Employee{}, a.employees...))
}

func (a *fakeAPI) createEmployee(w http.ResponseWriter, r *http.Request) {
	var body models.EmployeeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	emp := models.Employee{ID: a.id("e"), CreatedAt: "2026-10-14T08:00:00.000000"}.WithBody(body)
	a.employees = append(a.employees, emp)
	writeJSON(w, http.StatusCreated, emp)
}

func (a *fakeAPI) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, emp := range a.employees {
		if emp.ID == r.PathValue("id") {
			a.employees = append(a.employees[:i], a.employees[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Employee not found"})
}

func (a *fakeAPI) listAttendance(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	writeJSON(w, http.StatusOK, append([]models.AttendanceRecord{}, a.attendance...))
}

func (a *fakeAPI) markAttendance(w http.ResponseWriter, r *http.Request) {
	var draft models.AttendanceDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	rec := draft.Record(a.id("a"))
	a.attendance = append(a.attendance, rec)
	writeJSON(w, http.StatusCreated, rec)
}

func (a *fakeAPI) attendanceCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.attendance)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
