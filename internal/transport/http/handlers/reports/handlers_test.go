package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"hrmetrics/internal/metrics"
	"hrmetrics/internal/snapshot"
	"hrmetrics/internal/transport/http/middleware"
)

type stubLoader struct {
	data snapshot.Data
}

func (s stubLoader) LoadSnapshot(_ context.Context, asOf time.Time) (*snapshot.Snapshot, error) {
	return snapshot.New(asOf, s.data)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func testData() snapshot.Data {
	return snapshot.Data{
		Departments: []snapshot.Department{
			{ID: "dept-eng", Name: "Engineering"},
			{ID: "dept-sales", Name: "Sales"},
		},
		Positions: []snapshot.Position{
			{ID: "pos-1", Title: "Engineer", MinSalary: 60000, MaxSalary: 150000},
		},
		Employees: []snapshot.Employee{
			{ID: "emp-1", FirstName: "Ben", LastName: "Silva", HireDate: date(2022, 1, 15), Status: snapshot.EmployeeStatusActive, DepartmentID: "dept-eng", PositionID: "pos-1"},
			{ID: "emp-2", FirstName: "Cleo", LastName: "Tan", HireDate: date(2021, 6, 1), Status: snapshot.EmployeeStatusActive, DepartmentID: "dept-sales", PositionID: "pos-1"},
		},
		SalaryRecords: []snapshot.SalaryRecord{
			{EmployeeID: "emp-1", Amount: 90000, EffectiveDate: date(2022, 1, 15), EndDate: datePtr(2023, 4, 1)},
			{EmployeeID: "emp-1", Amount: 99000, EffectiveDate: date(2023, 4, 1)},
			{EmployeeID: "emp-2", Amount: 70000, EffectiveDate: date(2021, 6, 1)},
		},
		Projects: []snapshot.Project{
			{ID: "proj-1", Name: "Atlas", Budget: 500000, StartDate: date(2023, 1, 1), Status: snapshot.ProjectStatusCompleted, EndDate: datePtr(2024, 3, 1)},
		},
		ProjectAssignments: []snapshot.ProjectAssignment{
			{EmployeeID: "emp-1", ProjectID: "proj-1", AllocationPercent: 60, StartDate: date(2023, 1, 1)},
			{EmployeeID: "emp-2", ProjectID: "proj-1", AllocationPercent: 40, StartDate: date(2023, 1, 1)},
		},
	}
}

func testRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	handler := NewHandler(stubLoader{data: testData()}, metrics.DefaultConfig())
	handler.RegisterRoutes(router)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func doRequest(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	var body envelope
	if recorder.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return recorder, body
}

func TestHandleEmployeeReport(t *testing.T) {
	router := testRouter()

	recorder, body := doRequest(t, router, "/reports/employees/emp-1?asOf=2025-01-01")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var report metrics.EmployeeReport
	if err := json.Unmarshal(body.Data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if !report.SalaryGrowthPct.Defined || report.SalaryGrowthPct.Value != 10 {
		t.Fatalf("expected growth 10, got %+v", report.SalaryGrowthPct)
	}
}

func TestHandleEmployeeNotFound(t *testing.T) {
	recorder, body := doRequest(t, testRouter(), "/reports/employees/emp-404?asOf=2025-01-01")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	if body.Error == nil || body.Error.Code != "not_found" {
		t.Fatalf("unexpected error body: %s", body.Data)
	}
}

func TestHandleInvalidAsOf(t *testing.T) {
	recorder, body := doRequest(t, testRouter(), "/reports/employees?asOf=not-a-date")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if body.Error == nil || body.Error.Code != "invalid_as_of" {
		t.Fatalf("unexpected error code")
	}
}

func TestHandleEmployeesBeforeHiresExcludes(t *testing.T) {
	recorder, body := doRequest(t, testRouter(), "/reports/employees?asOf=2021-01-01")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var payload struct {
		Employees []metrics.EmployeeReport `json:"employees"`
		Excluded  []metrics.Exclusion      `json:"excluded"`
	}
	if err := json.Unmarshal(body.Data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Employees) != 0 || len(payload.Excluded) != 2 {
		t.Fatalf("expected all employees excluded before hire dates, got %+v", payload)
	}
}

func TestHandleCollaboration(t *testing.T) {
	recorder, body := doRequest(t, testRouter(), "/reports/collaboration?asOf=2025-01-01")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var pairs []metrics.CollaborationReport
	if err := json.Unmarshal(body.Data, &pairs); err != nil {
		t.Fatalf("decode pairs: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected one pair, got %d", len(pairs))
	}
	if pairs[0].DepartmentA != "dept-eng" || pairs[0].DepartmentB != "dept-sales" {
		t.Fatalf("unexpected pair: %+v", pairs[0])
	}
}

func TestHandleDepartmentPDF(t *testing.T) {
	recorder := httptest.NewRecorder()
	testRouter().ServeHTTP(recorder,
		httptest.NewRequest(http.MethodGet, "/reports/departments/dept-eng/summary.pdf?asOf=2025-01-01", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	if recorder.Body.Len() == 0 {
		t.Fatal("expected non-empty PDF body")
	}
}

func TestParseAsOfFormats(t *testing.T) {
	if _, err := parseAsOf("2024-06-01"); err != nil {
		t.Fatalf("date-only format rejected: %v", err)
	}
	if _, err := parseAsOf("2024-06-01T12:00:00Z"); err != nil {
		t.Fatalf("RFC 3339 format rejected: %v", err)
	}
	if _, err := parseAsOf("yesterday"); err == nil {
		t.Fatal("expected error for junk input")
	}
}
