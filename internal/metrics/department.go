package metrics

import "hrmetrics/internal/snapshot"

// DepartmentReport aggregates per-employee metrics over the employees
// assigned to one department at the as-of instant.
type DepartmentReport struct {
	DepartmentID string `json:"departmentId"`
	Name         string `json:"name"`
	ManagerID    string `json:"managerId,omitempty"`

	Headcount       int     `json:"headcount"`
	TotalSalaryCost float64 `json:"totalSalaryCost"`
	AverageSalary   Ratio   `json:"averageSalary"`

	AverageRating         Ratio `json:"averageRating"`
	ProjectCompletionRate Ratio `json:"projectCompletionRate"`
	CompletedTrainings    int   `json:"completedTrainings"`
	AverageLeaveApproval  Ratio `json:"averageLeaveApproval"`

	Excluded []Exclusion `json:"excluded,omitempty"`
}

// DepartmentMetrics aggregates the department's employees. Employees whose
// own computation fails are excluded with a reason; the aggregate itself
// never aborts.
func (e *Engine) DepartmentMetrics(departmentID string) (DepartmentReport, error) {
	department, err := e.snap.Department(departmentID)
	if err != nil {
		return DepartmentReport{}, err
	}

	report := DepartmentReport{
		DepartmentID: department.ID,
		Name:         department.Name,
		ManagerID:    department.ManagerID,
	}

	team := e.snap.DepartmentEmployees(departmentID)
	report.Headcount = len(team)
	e.aggregateTeam(team, &report.TotalSalaryCost, &report.AverageSalary,
		&report.AverageRating, &report.ProjectCompletionRate,
		&report.CompletedTrainings, &report.AverageLeaveApproval, &report.Excluded)
	return report, nil
}

// DepartmentReports computes a report per department, ordered by id.
func (e *Engine) DepartmentReports() ([]DepartmentReport, error) {
	var reports []DepartmentReport
	for _, id := range e.snap.DepartmentIDs() {
		report, err := e.DepartmentMetrics(id)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// ManagerReport aggregates a manager's direct-report set and scores the
// manager with the configured effectiveness weights.
type ManagerReport struct {
	ManagerID string `json:"managerId"`
	Name      string `json:"name"`

	TeamSize        int     `json:"teamSize"`
	TotalSalaryCost float64 `json:"totalSalaryCost"`
	AverageSalary   Ratio   `json:"averageSalary"`

	AverageRating         Ratio `json:"averageRating"`
	ProjectCompletionRate Ratio `json:"projectCompletionRate"`
	CompletedTrainings    int   `json:"completedTrainings"`
	AverageLeaveApproval  Ratio `json:"averageLeaveApproval"`

	EffectivenessScore float64 `json:"effectivenessScore"`

	Excluded []Exclusion `json:"excluded,omitempty"`
}

func (e *Engine) ManagerMetrics(managerID string) (ManagerReport, error) {
	manager, err := e.snap.Employee(managerID)
	if err != nil {
		return ManagerReport{}, err
	}

	report := ManagerReport{
		ManagerID: managerID,
		Name:      manager.FirstName + " " + manager.LastName,
	}

	team := e.snap.DirectReports(managerID)
	report.TeamSize = len(team)
	e.aggregateTeam(team, &report.TotalSalaryCost, &report.AverageSalary,
		&report.AverageRating, &report.ProjectCompletionRate,
		&report.CompletedTrainings, &report.AverageLeaveApproval, &report.Excluded)

	report.EffectivenessScore = e.effectivenessScore(report, team)
	return report, nil
}

// aggregateTeam folds the per-employee metrics of a team into the shared
// aggregate fields used by both department and manager reports.
func (e *Engine) aggregateTeam(team []string, totalSalary *float64, averageSalary,
	averageRating, completionRate *Ratio, completedTrainings *int,
	leaveApproval *Ratio, excluded *[]Exclusion) {

	var salaried int
	var ratings, approvals []float64
	var projectsTotal, projectsCompleted int

	for _, id := range team {
		report, err := e.EmployeeMetrics(id)
		if err != nil {
			*excluded = append(*excluded, Exclusion{EmployeeID: id, Reason: exclusionReason(err)})
			continue
		}

		*totalSalary += report.CurrentSalary
		salaried++
		if report.AverageRating != nil {
			ratings = append(ratings, *report.AverageRating)
		}
		*completedTrainings += report.CompletedTrainings
		if report.LeaveApprovalRate.Defined {
			approvals = append(approvals, report.LeaveApprovalRate.Value)
		}

		total, completed := e.projectCounts(id)
		projectsTotal += total
		projectsCompleted += completed
	}

	if salaried > 0 {
		*averageSalary = DefinedRatio(Round2(*totalSalary / float64(salaried)))
	} else {
		*averageSalary = UndefinedRatio()
	}
	*averageRating = MeanOf(ratings)
	*completionRate = PercentOf(float64(projectsCompleted), float64(projectsTotal))
	*leaveApproval = MeanOf(approvals)
}

func (e *Engine) projectCounts(employeeID string) (total, completed int) {
	seen := map[string]bool{}
	for _, assignment := range e.snap.Assignments(employeeID) {
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
	return total, completed
}

// effectivenessScore weighs team performance, project completion, training
// score and team size. Undefined team ratios contribute zero components.
func (e *Engine) effectivenessScore(report ManagerReport, team []string) float64 {
	weights := e.cfg.ManagerWeights
	norms := e.cfg.Normalization

	var performance float64
	if report.AverageRating.Defined {
		performance = normalize(report.AverageRating.Value, norms.MaxRating)
	}
	var completion float64
	if report.ProjectCompletionRate.Defined {
		completion = report.ProjectCompletionRate.Value
	}

	var scores []float64
	for _, id := range team {
		for _, record := range e.snap.CompletedTraining(id) {
			if record.Score != nil {
				scores = append(scores, *record.Score)
			}
		}
	}
	var trainingScore float64
	if mean := MeanOf(scores); mean.Defined {
		trainingScore = mean.Value
	}

	teamSize := normalize(float64(report.TeamSize), norms.TeamSizeTarget)

	score := performance*weights.Performance +
		completion*weights.ProjectCompletion +
		trainingScore*weights.TrainingScore +
		teamSize*weights.TeamSize
	return Round2(score)
}
