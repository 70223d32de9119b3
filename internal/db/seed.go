package db

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrmetrics/internal/auth"
	"hrmetrics/internal/config"
)

// Seed loads a small sample company into an empty database and makes sure
// the analyst login exists. It is a no-op when employees already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureAnalystUser(ctx, pool, cfg.SeedAnalystEmail, cfg.SeedAnalystPassword); err != nil {
		return err
	}

	var employees int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&employees); err != nil {
		return err
	}
	if employees > 0 {
		return nil
	}

	return seedSampleCompany(ctx, pool)
}

func ensureAnalystUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, 'analyst')",
		uuid.NewString(), email, hash)
	return err
}

func seedSampleCompany(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	deptEng := uuid.NewString()
	deptSales := uuid.NewString()
	deptHR := uuid.NewString()
	for _, dept := range []struct {
		id, name string
	}{
		{deptEng, "Engineering"},
		{deptSales, "Sales"},
		{deptHR, "Human Resources"},
	} {
		if _, err := tx.Exec(ctx, "INSERT INTO departments (id, name) VALUES ($1, $2)", dept.id, dept.name); err != nil {
			return err
		}
	}

	posEngineer := uuid.NewString()
	posLead := uuid.NewString()
	posRep := uuid.NewString()
	posGeneralist := uuid.NewString()
	for _, pos := range []struct {
		id, title string
		min, max  float64
	}{
		{posEngineer, "Software Engineer", 70000, 140000},
		{posLead, "Engineering Lead", 110000, 180000},
		{posRep, "Sales Representative", 45000, 110000},
		{posGeneralist, "HR Generalist", 50000, 95000},
	} {
		if _, err := tx.Exec(ctx,
			"INSERT INTO positions (id, title, min_salary, max_salary) VALUES ($1, $2, $3, $4)",
			pos.id, pos.title, pos.min, pos.max); err != nil {
			return err
		}
	}

	type seedEmployee struct {
		id, first, last, dept, pos, manager string
		hired                               string
		salaries                            []seedSalary
	}

	lead := uuid.NewString()
	eng1 := uuid.NewString()
	eng2 := uuid.NewString()
	rep1 := uuid.NewString()
	rep2 := uuid.NewString()
	hr1 := uuid.NewString()

	people := []seedEmployee{
		{id: lead, first: "Amina", last: "Diallo", dept: deptEng, pos: posLead, hired: "2016-04-01",
			salaries: salaryHistory(118000, "2016-04-01", "2020-01-01", 145000)},
		{id: eng1, first: "Ben", last: "Silva", dept: deptEng, pos: posEngineer, manager: lead, hired: "2022-01-15",
			salaries: salaryHistory(90000, "2022-01-15", "2023-04-01", 99000)},
		{id: eng2, first: "Chen", last: "Wei", dept: deptEng, pos: posEngineer, manager: lead, hired: "2020-09-01",
			salaries: salaryHistory(85000, "2020-09-01", "2023-01-01", 104000)},
		{id: rep1, first: "Dana", last: "Koch", dept: deptSales, pos: posRep, hired: "2019-06-01",
			salaries: salaryHistory(60000, "2019-06-01", "2022-06-01", 78000)},
		{id: rep2, first: "Eli", last: "Okafor", dept: deptSales, pos: posRep, manager: rep1, hired: "2023-02-01",
			salaries: salaryHistory(52000, "2023-02-01", "", 0)},
		{id: hr1, first: "Farah", last: "Nasser", dept: deptHR, pos: posGeneralist, hired: "2018-11-01",
			salaries: salaryHistory(58000, "2018-11-01", "2021-11-01", 71000)},
	}

	for _, person := range people {
		manager := any(nil)
		if person.manager != "" {
			manager = person.manager
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO employees (id, first_name, last_name, email, hire_date, status, department_id, position_id, manager_id)
			VALUES ($1, $2, $3, $4, $5, 'active', $6, $7, $8)`,
			person.id, person.first, person.last,
			strings.ToLower(person.first)+"."+strings.ToLower(person.last)+"@example.com",
			person.hired, person.dept, person.pos, manager); err != nil {
			return err
		}
		for _, record := range person.salaries {
			end := any(nil)
			if record.end != "" {
				end = record.end
			}
			if _, err := tx.Exec(ctx,
				"INSERT INTO salary_records (id, employee_id, amount, effective_date, end_date) VALUES ($1, $2, $3, $4, $5)",
				uuid.NewString(), person.id, record.amount, record.effective, end); err != nil {
				return err
			}
		}
	}

	if _, err := tx.Exec(ctx, "UPDATE departments SET manager_id = $1 WHERE id = $2", lead, deptEng); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "UPDATE departments SET manager_id = $1 WHERE id = $2", rep1, deptSales); err != nil {
		return err
	}

	reviews := []struct {
		employee, reviewer string
		rating             int
		date               string
	}{
		{eng1, lead, 3, "2022-07-01"},
		{eng1, lead, 5, "2024-07-01"},
		{eng2, lead, 4, "2021-07-01"},
		{eng2, lead, 4, "2024-07-01"},
		{rep1, hr1, 5, "2024-01-15"},
		{rep2, rep1, 3, "2024-01-15"},
		{lead, hr1, 5, "2024-02-01"},
	}
	for _, review := range reviews {
		if _, err := tx.Exec(ctx,
			"INSERT INTO performance_reviews (id, employee_id, reviewer_id, rating, review_date) VALUES ($1, $2, $3, $4, $5)",
			uuid.NewString(), review.employee, review.reviewer, review.rating, review.date); err != nil {
			return err
		}
	}

	projAtlas := uuid.NewString()
	projBorealis := uuid.NewString()
	if _, err := tx.Exec(ctx, `
		INSERT INTO projects (id, name, budget, start_date, end_date, status) VALUES
		($1, 'Atlas', 500000, '2023-01-01', '2024-03-01', 'completed'),
		($2, 'Borealis', 200000, '2024-01-01', NULL, 'active')`,
		projAtlas, projBorealis); err != nil {
		return err
	}

	assignments := []struct {
		employee, project string
		allocation        float64
		start             string
	}{
		{eng1, projAtlas, 60, "2023-01-01"},
		{eng2, projAtlas, 50, "2023-01-01"},
		{rep1, projAtlas, 30, "2023-02-01"},
		{eng1, projBorealis, 40, "2024-01-01"},
		{eng2, projBorealis, 50, "2024-01-01"},
	}
	for _, assignment := range assignments {
		if _, err := tx.Exec(ctx,
			"INSERT INTO project_assignments (id, employee_id, project_id, allocation_percent, start_date) VALUES ($1, $2, $3, $4, $5)",
			uuid.NewString(), assignment.employee, assignment.project, assignment.allocation, assignment.start); err != nil {
			return err
		}
	}

	progGo := uuid.NewString()
	progSales := uuid.NewString()
	if _, err := tx.Exec(ctx, `
		INSERT INTO training_programs (id, name, cost, duration_hours) VALUES
		($1, 'Go Fundamentals', 1200, 24),
		($2, 'Consultative Selling', 900, 16)`,
		progGo, progSales); err != nil {
		return err
	}

	trainings := []struct {
		employee, program, status string
		score                     float64
		completed                 string
	}{
		{eng1, progGo, "completed", 88, "2023-06-01"},
		{eng2, progGo, "completed", 92, "2023-06-01"},
		{rep1, progSales, "completed", 81, "2023-09-01"},
		{rep2, progSales, "enrolled", 0, ""},
	}
	for _, training := range trainings {
		score := any(nil)
		completed := any(nil)
		if training.status == "completed" {
			score = training.score
			completed = training.completed
		}
		if _, err := tx.Exec(ctx,
			"INSERT INTO training_records (id, employee_id, program_id, status, score, completion_date) VALUES ($1, $2, $3, $4, $5, $6)",
			uuid.NewString(), training.employee, training.program, training.status, score, completed); err != nil {
			return err
		}
	}

	leaves := []struct {
		employee, leaveType, start, end, status string
	}{
		{eng1, "annual", "2023-12-20", "2023-12-24", "approved"},
		{eng1, "annual", "2024-08-01", "2024-08-05", "rejected"},
		{eng2, "sick", "2024-03-11", "2024-03-12", "approved"},
		{rep1, "annual", "2024-07-15", "2024-07-26", "approved"},
	}
	for _, leave := range leaves {
		if _, err := tx.Exec(ctx,
			"INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5, $6)",
			uuid.NewString(), leave.employee, leave.leaveType, leave.start, leave.end, leave.status); err != nil {
			return err
		}
	}

	attendanceStart := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 5; day++ {
		date := attendanceStart.AddDate(0, 0, day).Format("2006-01-02")
		for _, employee := range []string{lead, eng1, eng2, rep1, rep2, hr1} {
			status := "present"
			if day == 2 && employee == eng1 {
				status = "absent"
			}
			if day == 4 && employee == rep2 {
				status = "remote"
			}
			if _, err := tx.Exec(ctx,
				"INSERT INTO attendance (id, employee_id, date, status) VALUES ($1, $2, $3, $4)",
				uuid.NewString(), employee, date, status); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

type seedSalary struct {
	amount    float64
	effective string
	end       string
}

func salaryHistory(initial float64, start, raiseDate string, raised float64) []seedSalary {
	history := []seedSalary{{amount: initial, effective: start}}
	if raiseDate == "" {
		return history
	}
	history[0].end = raiseDate
	return append(history, seedSalary{amount: raised, effective: raiseDate})
}
