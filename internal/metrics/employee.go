package metrics

import (
	"errors"
	"fmt"
	"time"

	"hrmetrics/internal/snapshot"
)

// EmployeeReport is the full set of per-employee derived metrics at the
// snapshot's as-of instant.
type EmployeeReport struct {
	EmployeeID   string `json:"employeeId"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId"`
	Department   string `json:"department"`
	Position     string `json:"position"`

	TenureYears  int `json:"tenureYears"`
	TenureMonths int `json:"tenureMonths"`

	CurrentSalary   float64 `json:"currentSalary"`
	SalaryGrowthPct Ratio   `json:"salaryGrowthPct"`

	AverageRating *float64 `json:"averageRating,omitempty"`
	LatestRating  *int     `json:"latestRating,omitempty"`
	ReviewCount   int      `json:"reviewCount"`

	CompletedTrainings   int   `json:"completedTrainings"`
	AverageTrainingScore Ratio `json:"averageTrainingScore"`

	ProjectCount          int   `json:"projectCount"`
	ProjectCompletionRate Ratio `json:"projectCompletionRate"`

	LeaveRequests     int   `json:"leaveRequests"`
	LeaveApprovalRate Ratio `json:"leaveApprovalRate"`

	AttendanceRate Ratio `json:"attendanceRate"`

	OverallScore   float64 `json:"overallScore"`
	Classification string  `json:"classification"`
}

// EmployeeMetrics computes the report for one employee. It fails on a
// missing employee, a hire date after the as-of instant, or an absent
// salary history; aggregate callers translate those into exclusions.
func (e *Engine) EmployeeMetrics(employeeID string) (EmployeeReport, error) {
	employee, err := e.snap.Employee(employeeID)
	if err != nil {
		return EmployeeReport{}, err
	}
	if employee.HireDate.After(e.snap.AsOf()) {
		return EmployeeReport{}, fmt.Errorf("employee %s hired %s: %w",
			employeeID, employee.HireDate.Format("2006-01-02"), snapshot.ErrFutureHireDate)
	}

	department, err := e.snap.Department(employee.DepartmentID)
	if err != nil {
		return EmployeeReport{}, err
	}
	position, err := e.snap.Position(employee.PositionID)
	if err != nil {
		return EmployeeReport{}, err
	}

	current, err := e.snap.CurrentSalary(employeeID)
	if err != nil {
		return EmployeeReport{}, err
	}
	initial, err := e.snap.InitialSalary(employeeID)
	if err != nil {
		return EmployeeReport{}, err
	}

	report := EmployeeReport{
		EmployeeID:      employeeID,
		Name:            employee.FirstName + " " + employee.LastName,
		DepartmentID:    department.ID,
		Department:      department.Name,
		Position:        position.Title,
		CurrentSalary:   current,
		SalaryGrowthPct: PercentOf(current-initial, initial),
	}
	report.TenureYears, report.TenureMonths = tenure(employee.HireDate, e.snap.AsOf())

	reviews := e.snap.Reviews(employeeID)
	report.ReviewCount = len(reviews)
	if len(reviews) > 0 {
		var sum float64
		for _, review := range reviews {
			sum += float64(review.Rating)
		}
		avg := Round2(sum / float64(len(reviews)))
		latest := reviews[len(reviews)-1].Rating
		report.AverageRating = &avg
		report.LatestRating = &latest
	}

	completed := e.snap.CompletedTraining(employeeID)
	report.CompletedTrainings = len(completed)
	var scores []float64
	for _, record := range completed {
		if record.Score != nil {
			scores = append(scores, *record.Score)
		}
	}
	report.AverageTrainingScore = MeanOf(scores)

	report.ProjectCount, report.ProjectCompletionRate = e.projectStats(employeeID)
	report.LeaveRequests, report.LeaveApprovalRate = e.leaveStats(employeeID)
	report.AttendanceRate = e.attendanceStats(employeeID)

	report.OverallScore = e.overallScore(report)
	report.Classification = e.classification(report)

	return report, nil
}

// EmployeeReports computes reports for every employee in the snapshot,
// excluding (with a reason) the ones whose computation fails.
func (e *Engine) EmployeeReports() ([]EmployeeReport, []Exclusion) {
	var reports []EmployeeReport
	var excluded []Exclusion
	for _, id := range e.snap.EmployeeIDs() {
		report, err := e.EmployeeMetrics(id)
		if err != nil {
			excluded = append(excluded, Exclusion{EmployeeID: id, Reason: exclusionReason(err)})
			continue
		}
		reports = append(reports, report)
	}
	return reports, excluded
}

func (e *Engine) projectStats(employeeID string) (int, Ratio) {
	assignments := e.snap.Assignments(employeeID)
	seen := map[string]bool{}
	var total, completed int
	for _, assignment := range assignments {
		if seen[assignment.ProjectID] {
			continue
		}
		seen[assignment.ProjectID] = true
		total++
		project, err := e.snap.Project(assignment.ProjectID)
		if err != nil {
			continue
		}
		if project.Status == snapshot.ProjectStatusCompleted {
			completed++
		}
	}
	return total, PercentOf(float64(completed), float64(total))
}

func (e *Engine) leaveStats(employeeID string) (int, Ratio) {
	requests := e.snap.LeaveRequests(employeeID)
	var approved int
	for _, request := range requests {
		if request.Status == snapshot.LeaveStatusApproved {
			approved++
		}
	}
	return len(requests), PercentOf(float64(approved), float64(len(requests)))
}

func (e *Engine) attendanceStats(employeeID string) Ratio {
	entries := e.snap.AttendanceOf(employeeID)
	var present int
	for _, entry := range entries {
		if entry.Status == snapshot.AttendanceStatusPresent || entry.Status == snapshot.AttendanceStatusRemote {
			present++
		}
	}
	return PercentOf(float64(present), float64(len(entries)))
}

// overallScore is the weighted sum of normalized sub-scores. Employees
// with no reviews or no projects score zero on those components; the
// undefined marker is preserved in the report fields themselves.
func (e *Engine) overallScore(report EmployeeReport) float64 {
	norms := e.cfg.Normalization
	weights := e.cfg.Weights

	var performance float64
	if report.AverageRating != nil {
		performance = normalize(*report.AverageRating, norms.MaxRating)
	}
	training := normalize(float64(report.CompletedTrainings), norms.TrainingTarget)

	var projects float64
	if report.ProjectCompletionRate.Defined {
		projects = report.ProjectCompletionRate.Value
	}
	salary := normalize(report.CurrentSalary, norms.SalaryCeiling)
	years := float64(report.TenureYears) + float64(report.TenureMonths)/12
	tenureScore := normalize(years, norms.TenureTargetYears)

	score := performance*weights.Performance +
		training*weights.Training +
		projects*weights.Projects +
		salary*weights.Salary +
		tenureScore*weights.Tenure
	return Round2(score)
}

func (e *Engine) classification(report EmployeeReport) string {
	if report.AverageRating == nil {
		return e.cfg.UnratedBand
	}
	return e.cfg.classify(*report.AverageRating, report.CompletedTrainings)
}

// tenure returns whole years plus remaining whole months between hire and
// the as-of instant.
func tenure(hire, asOf time.Time) (int, int) {
	years := asOf.Year() - hire.Year()
	months := int(asOf.Month()) - int(hire.Month())
	if asOf.Day() < hire.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	if years < 0 {
		return 0, 0
	}
	return years, months
}

func exclusionReason(err error) string {
	switch {
	case errors.Is(err, snapshot.ErrNoSalaryRecord):
		return ReasonNoSalaryRecord
	case errors.Is(err, snapshot.ErrFutureHireDate):
		return ReasonFutureHireDate
	default:
		return ReasonMissingEntity
	}
}
