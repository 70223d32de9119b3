package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"hrmetrics/internal/snapshot"
)

// Querier is the subset of pgxpool.Pool the loader needs; pgxmock
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store loads consistent snapshots of the entity tables.
type Store struct {
	DB Querier
}

func New(db Querier) *Store {
	return &Store{DB: db}
}

// LoadSnapshot reads every entity collection and fixes it at the given
// as-of instant. Visibility filtering happens inside the snapshot, so the
// same tables serve any historical instant.
func (s *Store) LoadSnapshot(ctx context.Context, asOf time.Time) (*snapshot.Snapshot, error) {
	var data snapshot.Data
	var err error

	if data.Departments, err = s.loadDepartments(ctx); err != nil {
		return nil, err
	}
	if data.Positions, err = s.loadPositions(ctx); err != nil {
		return nil, err
	}
	if data.Employees, err = s.loadEmployees(ctx); err != nil {
		return nil, err
	}
	if data.SalaryRecords, err = s.loadSalaryRecords(ctx); err != nil {
		return nil, err
	}
	if data.PerformanceReviews, err = s.loadReviews(ctx); err != nil {
		return nil, err
	}
	if data.Projects, err = s.loadProjects(ctx); err != nil {
		return nil, err
	}
	if data.ProjectAssignments, err = s.loadAssignments(ctx); err != nil {
		return nil, err
	}
	if data.TrainingPrograms, err = s.loadTrainingPrograms(ctx); err != nil {
		return nil, err
	}
	if data.TrainingRecords, err = s.loadTrainingRecords(ctx); err != nil {
		return nil, err
	}
	if data.LeaveRequests, err = s.loadLeaveRequests(ctx); err != nil {
		return nil, err
	}
	if data.Attendance, err = s.loadAttendance(ctx); err != nil {
		return nil, err
	}

	return snapshot.New(asOf, data)
}

func (s *Store) loadDepartments(ctx context.Context) ([]snapshot.Department, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, COALESCE(manager_id, '') FROM departments ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []snapshot.Department
	for rows.Next() {
		var department snapshot.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.ManagerID); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}
	return departments, rows.Err()
}

func (s *Store) loadPositions(ctx context.Context) ([]snapshot.Position, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, title, min_salary, max_salary FROM positions ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []snapshot.Position
	for rows.Next() {
		var position snapshot.Position
		if err := rows.Scan(&position.ID, &position.Title, &position.MinSalary, &position.MaxSalary); err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}
	return positions, rows.Err()
}

func (s *Store) loadEmployees(ctx context.Context) ([]snapshot.Employee, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, first_name, last_name, email, hire_date, termination_date, status,
		       department_id, position_id, COALESCE(manager_id, '')
		FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []snapshot.Employee
	for rows.Next() {
		var employee snapshot.Employee
		if err := rows.Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email,
			&employee.HireDate, &employee.TerminationDate, &employee.Status,
			&employee.DepartmentID, &employee.PositionID, &employee.ManagerID); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (s *Store) loadSalaryRecords(ctx context.Context) ([]snapshot.SalaryRecord, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT employee_id, amount, effective_date, end_date FROM salary_records ORDER BY employee_id, effective_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []snapshot.SalaryRecord
	for rows.Next() {
		var record snapshot.SalaryRecord
		if err := rows.Scan(&record.EmployeeID, &record.Amount, &record.EffectiveDate, &record.EndDate); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) loadReviews(ctx context.Context) ([]snapshot.PerformanceReview, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT employee_id, reviewer_id, rating, review_date FROM performance_reviews ORDER BY employee_id, review_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []snapshot.PerformanceReview
	for rows.Next() {
		var review snapshot.PerformanceReview
		if err := rows.Scan(&review.EmployeeID, &review.ReviewerID, &review.Rating, &review.ReviewDate); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (s *Store) loadProjects(ctx context.Context) ([]snapshot.Project, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, budget, start_date, end_date, status FROM projects ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []snapshot.Project
	for rows.Next() {
		var project snapshot.Project
		if err := rows.Scan(&project.ID, &project.Name, &project.Budget, &project.StartDate, &project.EndDate, &project.Status); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (s *Store) loadAssignments(ctx context.Context) ([]snapshot.ProjectAssignment, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT employee_id, project_id, allocation_percent, start_date, end_date FROM project_assignments ORDER BY project_id, employee_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []snapshot.ProjectAssignment
	for rows.Next() {
		var assignment snapshot.ProjectAssignment
		if err := rows.Scan(&assignment.EmployeeID, &assignment.ProjectID, &assignment.AllocationPercent,
			&assignment.StartDate, &assignment.EndDate); err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, rows.Err()
}

func (s *Store) loadTrainingPrograms(ctx context.Context) ([]snapshot.TrainingProgram, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, cost, duration_hours FROM training_programs ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []snapshot.TrainingProgram
	for rows.Next() {
		var program snapshot.TrainingProgram
		if err := rows.Scan(&program.ID, &program.Name, &program.Cost, &program.DurationHours); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}
	return programs, rows.Err()
}

func (s *Store) loadTrainingRecords(ctx context.Context) ([]snapshot.TrainingRecord, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT employee_id, program_id, status, score, completion_date FROM training_records ORDER BY program_id, employee_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []snapshot.TrainingRecord
	for rows.Next() {
		var record snapshot.TrainingRecord
		if err := rows.Scan(&record.EmployeeID, &record.ProgramID, &record.Status, &record.Score, &record.CompletionDate); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) loadLeaveRequests(ctx context.Context) ([]snapshot.LeaveRequest, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT employee_id, type, start_date, end_date, status FROM leave_requests ORDER BY employee_id, start_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []snapshot.LeaveRequest
	for rows.Next() {
		var request snapshot.LeaveRequest
		if err := rows.Scan(&request.EmployeeID, &request.Type, &request.StartDate, &request.EndDate, &request.Status); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (s *Store) loadAttendance(ctx context.Context) ([]snapshot.Attendance, error) {
	rows, err := s.DB.Query(ctx, "SELECT employee_id, date, status FROM attendance ORDER BY employee_id, date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []snapshot.Attendance
	for rows.Next() {
		var entry snapshot.Attendance
		if err := rows.Scan(&entry.EmployeeID, &entry.Date, &entry.Status); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// UserByEmail returns the login row for the report API.
func (s *Store) UserByEmail(ctx context.Context, email string) (id, passwordHash, role string, err error) {
	err = s.DB.QueryRow(ctx, "SELECT id, password_hash, role FROM users WHERE email = $1", email).
		Scan(&id, &passwordHash, &role)
	return id, passwordHash, role, err
}
