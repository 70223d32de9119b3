package snapshot

import (
	"fmt"
	"sort"
)

func (s *Snapshot) Employee(id string) (Employee, error) {
	employee, ok := s.employees[id]
	if !ok {
		return Employee{}, fmt.Errorf("employee %s: %w", id, ErrMissingEntity)
	}
	return employee, nil
}

func (s *Snapshot) Department(id string) (Department, error) {
	department, ok := s.departments[id]
	if !ok {
		return Department{}, fmt.Errorf("department %s: %w", id, ErrMissingEntity)
	}
	return department, nil
}

func (s *Snapshot) Position(id string) (Position, error) {
	position, ok := s.positions[id]
	if !ok {
		return Position{}, fmt.Errorf("position %s: %w", id, ErrMissingEntity)
	}
	return position, nil
}

func (s *Snapshot) Project(id string) (Project, error) {
	project, ok := s.projects[id]
	if !ok {
		return Project{}, fmt.Errorf("project %s: %w", id, ErrMissingEntity)
	}
	return project, nil
}

func (s *Snapshot) TrainingProgram(id string) (TrainingProgram, error) {
	program, ok := s.programs[id]
	if !ok {
		return TrainingProgram{}, fmt.Errorf("training program %s: %w", id, ErrMissingEntity)
	}
	return program, nil
}

// EmployeeIDs returns every employee id in the snapshot, sorted.
func (s *Snapshot) EmployeeIDs() []string {
	ids := make([]string, 0, len(s.employees))
	for id := range s.employees {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DepartmentIDs returns every department id in the snapshot, sorted.
func (s *Snapshot) DepartmentIDs() []string {
	ids := make([]string, 0, len(s.departments))
	for id := range s.departments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ProjectIDs returns every project id in the snapshot, sorted.
func (s *Snapshot) ProjectIDs() []string {
	ids := make([]string, 0, len(s.projects))
	for id := range s.projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TrainingProgramIDs returns every training program id, sorted.
func (s *Snapshot) TrainingProgramIDs() []string {
	ids := make([]string, 0, len(s.programs))
	for id := range s.programs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CurrentSalary returns the salary amount whose effective interval contains
// the as-of instant: the latest record with an effective date at or before
// as-of whose end date is nil or after as-of.
func (s *Snapshot) CurrentSalary(employeeID string) (float64, error) {
	if _, ok := s.employees[employeeID]; !ok {
		return 0, fmt.Errorf("employee %s: %w", employeeID, ErrMissingEntity)
	}
	records := s.salariesByEmployee[employeeID]
	for i := len(records) - 1; i >= 0; i-- {
		record := records[i]
		if record.EffectiveDate.After(s.asOf) {
			continue
		}
		if record.EndDate != nil && !record.EndDate.After(s.asOf) {
			continue
		}
		return record.Amount, nil
	}
	return 0, fmt.Errorf("employee %s: %w", employeeID, ErrNoSalaryRecord)
}

// InitialSalary returns the amount of the earliest salary record effective
// at or before the as-of instant.
func (s *Snapshot) InitialSalary(employeeID string) (float64, error) {
	if _, ok := s.employees[employeeID]; !ok {
		return 0, fmt.Errorf("employee %s: %w", employeeID, ErrMissingEntity)
	}
	for _, record := range s.salariesByEmployee[employeeID] {
		if !record.EffectiveDate.After(s.asOf) {
			return record.Amount, nil
		}
	}
	return 0, fmt.Errorf("employee %s: %w", employeeID, ErrNoSalaryRecord)
}

// SalaryRecords returns the employee's salary records effective at or before
// the as-of instant, ordered by effective date.
func (s *Snapshot) SalaryRecords(employeeID string) []SalaryRecord {
	var records []SalaryRecord
	for _, record := range s.salariesByEmployee[employeeID] {
		if !record.EffectiveDate.After(s.asOf) {
			records = append(records, record)
		}
	}
	return records
}

// Reviews returns the employee's reviews dated at or before the as-of
// instant, ordered by review date.
func (s *Snapshot) Reviews(employeeID string) []PerformanceReview {
	var reviews []PerformanceReview
	for _, review := range s.reviewsByEmployee[employeeID] {
		if !review.ReviewDate.After(s.asOf) {
			reviews = append(reviews, review)
		}
	}
	return reviews
}

// LatestReview returns the review with the maximum review date at or before
// the as-of instant.
func (s *Snapshot) LatestReview(employeeID string) (PerformanceReview, error) {
	if _, ok := s.employees[employeeID]; !ok {
		return PerformanceReview{}, fmt.Errorf("employee %s: %w", employeeID, ErrMissingEntity)
	}
	reviews := s.Reviews(employeeID)
	if len(reviews) == 0 {
		return PerformanceReview{}, fmt.Errorf("employee %s: %w", employeeID, ErrNoReview)
	}
	return reviews[len(reviews)-1], nil
}

// EarliestReview returns the review with the minimum review date at or
// before the as-of instant.
func (s *Snapshot) EarliestReview(employeeID string) (PerformanceReview, error) {
	if _, ok := s.employees[employeeID]; !ok {
		return PerformanceReview{}, fmt.Errorf("employee %s: %w", employeeID, ErrMissingEntity)
	}
	reviews := s.Reviews(employeeID)
	if len(reviews) == 0 {
		return PerformanceReview{}, fmt.Errorf("employee %s: %w", employeeID, ErrNoReview)
	}
	return reviews[0], nil
}

// Assignments returns the employee's project assignments started at or
// before the as-of instant.
func (s *Snapshot) Assignments(employeeID string) []ProjectAssignment {
	var assignments []ProjectAssignment
	for _, assignment := range s.assignmentsByEmployee[employeeID] {
		if !assignment.StartDate.After(s.asOf) {
			assignments = append(assignments, assignment)
		}
	}
	return assignments
}

// ProjectMembers returns the assignments on a project started at or before
// the as-of instant.
func (s *Snapshot) ProjectMembers(projectID string) []ProjectAssignment {
	var assignments []ProjectAssignment
	for _, assignment := range s.assignmentsByProject[projectID] {
		if !assignment.StartDate.After(s.asOf) {
			assignments = append(assignments, assignment)
		}
	}
	return assignments
}

// CompletedTraining returns the employee's training records completed at or
// before the as-of instant.
func (s *Snapshot) CompletedTraining(employeeID string) []TrainingRecord {
	var records []TrainingRecord
	for _, record := range s.trainingByEmployee[employeeID] {
		if record.Status != TrainingStatusCompleted || record.CompletionDate == nil {
			continue
		}
		if record.CompletionDate.After(s.asOf) {
			continue
		}
		records = append(records, record)
	}
	return records
}

// ProgramParticipants returns the employee ids with a completed record for
// the program at or before the as-of instant, sorted and de-duplicated.
func (s *Snapshot) ProgramParticipants(programID string) []string {
	seen := map[string]bool{}
	var ids []string
	for _, record := range s.trainingByProgram[programID] {
		if record.Status != TrainingStatusCompleted || record.CompletionDate == nil {
			continue
		}
		if record.CompletionDate.After(s.asOf) {
			continue
		}
		if !seen[record.EmployeeID] {
			seen[record.EmployeeID] = true
			ids = append(ids, record.EmployeeID)
		}
	}
	sort.Strings(ids)
	return ids
}

// LeaveRequests returns the employee's leave requests starting at or before
// the as-of instant.
func (s *Snapshot) LeaveRequests(employeeID string) []LeaveRequest {
	var requests []LeaveRequest
	for _, request := range s.leaveByEmployee[employeeID] {
		if !request.StartDate.After(s.asOf) {
			requests = append(requests, request)
		}
	}
	return requests
}

// AttendanceOf returns the employee's attendance entries dated at or before
// the as-of instant.
func (s *Snapshot) AttendanceOf(employeeID string) []Attendance {
	var entries []Attendance
	for _, entry := range s.attendanceByEmployee[employeeID] {
		if !entry.Date.After(s.asOf) {
			entries = append(entries, entry)
		}
	}
	return entries
}

// DepartmentEmployees returns the ids of employees assigned to the
// department and employed at the as-of instant (hired on or before it,
// not yet terminated).
func (s *Snapshot) DepartmentEmployees(departmentID string) []string {
	var ids []string
	for _, id := range s.employeesByDepartment[departmentID] {
		if s.employedAt(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// DirectReports returns the ids of the manager's direct reports employed at
// the as-of instant.
func (s *Snapshot) DirectReports(managerID string) []string {
	var ids []string
	for _, id := range s.directReports[managerID] {
		if s.employedAt(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// ManagerChain returns the ids from the employee's manager up to the root
// of the forest. The forest is acyclic by construction, so this terminates.
func (s *Snapshot) ManagerChain(employeeID string) []string {
	var chain []string
	current := s.employees[employeeID].ManagerID
	for current != "" {
		chain = append(chain, current)
		current = s.employees[current].ManagerID
	}
	return chain
}

func (s *Snapshot) employedAt(employeeID string) bool {
	employee := s.employees[employeeID]
	if employee.HireDate.After(s.asOf) {
		return false
	}
	if employee.TerminationDate != nil && !employee.TerminationDate.After(s.asOf) {
		return false
	}
	return true
}
