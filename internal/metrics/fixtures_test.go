package metrics

import (
	"testing"
	"time"

	"hrmetrics/internal/snapshot"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func floatPtr(v float64) *float64 { return &v }

// fixtureData is a small but complete company: two departments, a shared
// project, salary history, reviews, training, and leave.
func fixtureData() snapshot.Data {
	return snapshot.Data{
		Departments: []snapshot.Department{
			{ID: "dept-eng", Name: "Engineering", ManagerID: "emp-lead"},
			{ID: "dept-sales", Name: "Sales"},
			{ID: "dept-empty", Name: "Research"},
		},
		Positions: []snapshot.Position{
			{ID: "pos-eng", Title: "Engineer", MinSalary: 60000, MaxSalary: 160000},
			{ID: "pos-rep", Title: "Sales Rep", MinSalary: 40000, MaxSalary: 120000},
		},
		Employees: []snapshot.Employee{
			{ID: "emp-lead", FirstName: "Ada", LastName: "Mokoena", HireDate: date(2015, 2, 1), Status: snapshot.EmployeeStatusActive, DepartmentID: "dept-eng", PositionID: "pos-eng"},
			{ID: "emp-grow", FirstName: "Ben", LastName: "Silva", HireDate: date(2022, 1, 15), Status: snapshot.EmployeeStatusActive, DepartmentID: "dept-eng", PositionID: "pos-eng", ManagerID: "emp-lead"},
			{ID: "emp-sales", FirstName: "Cleo", LastName: "Tan", HireDate: date(2021, 6, 1), Status: snapshot.EmployeeStatusActive, DepartmentID: "dept-sales", PositionID: "pos-rep"},
			{ID: "emp-nosalary", FirstName: "Dev", LastName: "Okafor", HireDate: date(2023, 3, 1), Status: snapshot.EmployeeStatusActive, DepartmentID: "dept-eng", PositionID: "pos-eng", ManagerID: "emp-lead"},
		},
		SalaryRecords: []snapshot.SalaryRecord{
			{EmployeeID: "emp-lead", Amount: 140000, EffectiveDate: date(2015, 2, 1)},
			{EmployeeID: "emp-grow", Amount: 90000, EffectiveDate: date(2022, 1, 15), EndDate: datePtr(2023, 4, 1)},
			{EmployeeID: "emp-grow", Amount: 99000, EffectiveDate: date(2023, 4, 1)},
			{EmployeeID: "emp-sales", Amount: 70000, EffectiveDate: date(2021, 6, 1)},
		},
		PerformanceReviews: []snapshot.PerformanceReview{
			{EmployeeID: "emp-grow", ReviewerID: "emp-lead", Rating: 3, ReviewDate: date(2022, 7, 1)},
			{EmployeeID: "emp-grow", ReviewerID: "emp-lead", Rating: 5, ReviewDate: date(2024, 7, 1)},
			{EmployeeID: "emp-sales", ReviewerID: "emp-lead", Rating: 4, ReviewDate: date(2023, 7, 1)},
			{EmployeeID: "emp-lead", ReviewerID: "emp-lead", Rating: 5, ReviewDate: date(2024, 1, 1)},
		},
		Projects: []snapshot.Project{
			{ID: "proj-shared", Name: "Atlas", Budget: 500000, StartDate: date(2023, 1, 1), EndDate: datePtr(2024, 3, 1), Status: snapshot.ProjectStatusCompleted},
			{ID: "proj-eng", Name: "Borealis", Budget: 200000, StartDate: date(2024, 1, 1), Status: snapshot.ProjectStatusActive},
		},
		ProjectAssignments: []snapshot.ProjectAssignment{
			{EmployeeID: "emp-grow", ProjectID: "proj-shared", AllocationPercent: 60, StartDate: date(2023, 1, 1)},
			{EmployeeID: "emp-sales", ProjectID: "proj-shared", AllocationPercent: 40, StartDate: date(2023, 2, 1)},
			{EmployeeID: "emp-grow", ProjectID: "proj-eng", AllocationPercent: 40, StartDate: date(2024, 1, 1)},
		},
		TrainingPrograms: []snapshot.TrainingProgram{
			{ID: "prog-go", Name: "Go Fundamentals", Cost: 1200, DurationHours: 24},
			{ID: "prog-new", Name: "New Hire Orientation", Cost: 300, DurationHours: 8},
		},
		TrainingRecords: []snapshot.TrainingRecord{
			{EmployeeID: "emp-grow", ProgramID: "prog-go", Status: snapshot.TrainingStatusCompleted, Score: floatPtr(88), CompletionDate: datePtr(2023, 6, 1)},
			{EmployeeID: "emp-sales", ProgramID: "prog-go", Status: snapshot.TrainingStatusCompleted, Score: floatPtr(74), CompletionDate: datePtr(2023, 8, 1)},
			{EmployeeID: "emp-grow", ProgramID: "prog-new", Status: snapshot.TrainingStatusEnrolled},
		},
		LeaveRequests: []snapshot.LeaveRequest{
			{EmployeeID: "emp-grow", Type: "annual", StartDate: date(2023, 12, 20), EndDate: date(2023, 12, 24), Status: snapshot.LeaveStatusApproved},
			{EmployeeID: "emp-grow", Type: "annual", StartDate: date(2024, 8, 1), EndDate: date(2024, 8, 5), Status: snapshot.LeaveStatusRejected},
		},
		Attendance: []snapshot.Attendance{
			{EmployeeID: "emp-grow", Date: date(2024, 9, 2), Status: snapshot.AttendanceStatusPresent},
			{EmployeeID: "emp-grow", Date: date(2024, 9, 3), Status: snapshot.AttendanceStatusAbsent},
			{EmployeeID: "emp-grow", Date: date(2024, 9, 4), Status: snapshot.AttendanceStatusRemote},
		},
	}
}

func fixtureEngine(t *testing.T, asOf time.Time) *Engine {
	t.Helper()
	snap, err := snapshot.New(asOf, fixtureData())
	if err != nil {
		t.Fatalf("snapshot build failed: %v", err)
	}
	return NewEngine(snap, DefaultConfig())
}
