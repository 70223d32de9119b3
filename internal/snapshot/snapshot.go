package snapshot

import (
	"fmt"
	"sort"
	"time"
)

// Data holds the raw entity collections handed over by the external store.
type Data struct {
	Employees          []Employee
	Departments        []Department
	Positions          []Position
	SalaryRecords      []SalaryRecord
	PerformanceReviews []PerformanceReview
	Projects           []Project
	ProjectAssignments []ProjectAssignment
	TrainingPrograms   []TrainingProgram
	TrainingRecords    []TrainingRecord
	LeaveRequests      []LeaveRequest
	Attendance         []Attendance
}

// Snapshot is an immutable, indexed view of the entity collections at a
// single as-of instant. All lookups are pure functions of the data passed
// to New; nothing is mutated after construction.
type Snapshot struct {
	asOf time.Time

	employees   map[string]Employee
	departments map[string]Department
	positions   map[string]Position
	projects    map[string]Project
	programs    map[string]TrainingProgram

	salariesByEmployee    map[string][]SalaryRecord
	reviewsByEmployee     map[string][]PerformanceReview
	assignmentsByEmployee map[string][]ProjectAssignment
	assignmentsByProject  map[string][]ProjectAssignment
	trainingByEmployee    map[string][]TrainingRecord
	trainingByProgram     map[string][]TrainingRecord
	leaveByEmployee       map[string][]LeaveRequest
	attendanceByEmployee  map[string][]Attendance

	employeesByDepartment map[string][]string
	directReports         map[string][]string
}

// New validates the raw collections and builds the secondary indices.
// Referential integrity and the acyclic manager forest are checked once
// here so that accessors never have to re-walk parent pointers.
func New(asOf time.Time, data Data) (*Snapshot, error) {
	s := &Snapshot{
		asOf:                  asOf,
		employees:             make(map[string]Employee, len(data.Employees)),
		departments:           make(map[string]Department, len(data.Departments)),
		positions:             make(map[string]Position, len(data.Positions)),
		projects:              make(map[string]Project, len(data.Projects)),
		programs:              make(map[string]TrainingProgram, len(data.TrainingPrograms)),
		salariesByEmployee:    map[string][]SalaryRecord{},
		reviewsByEmployee:     map[string][]PerformanceReview{},
		assignmentsByEmployee: map[string][]ProjectAssignment{},
		assignmentsByProject:  map[string][]ProjectAssignment{},
		trainingByEmployee:    map[string][]TrainingRecord{},
		trainingByProgram:     map[string][]TrainingRecord{},
		leaveByEmployee:       map[string][]LeaveRequest{},
		attendanceByEmployee:  map[string][]Attendance{},
		employeesByDepartment: map[string][]string{},
		directReports:         map[string][]string{},
	}

	for _, department := range data.Departments {
		s.departments[department.ID] = department
	}
	for _, position := range data.Positions {
		s.positions[position.ID] = position
	}
	for _, project := range data.Projects {
		s.projects[project.ID] = project
	}
	for _, program := range data.TrainingPrograms {
		s.programs[program.ID] = program
	}

	for _, employee := range data.Employees {
		if _, ok := s.departments[employee.DepartmentID]; !ok {
			return nil, fmt.Errorf("employee %s department %s: %w", employee.ID, employee.DepartmentID, ErrMissingEntity)
		}
		if _, ok := s.positions[employee.PositionID]; !ok {
			return nil, fmt.Errorf("employee %s position %s: %w", employee.ID, employee.PositionID, ErrMissingEntity)
		}
		s.employees[employee.ID] = employee
		s.employeesByDepartment[employee.DepartmentID] = append(s.employeesByDepartment[employee.DepartmentID], employee.ID)
	}

	for _, employee := range data.Employees {
		if employee.ManagerID == "" {
			continue
		}
		if _, ok := s.employees[employee.ManagerID]; !ok {
			return nil, fmt.Errorf("employee %s manager %s: %w", employee.ID, employee.ManagerID, ErrMissingEntity)
		}
		s.directReports[employee.ManagerID] = append(s.directReports[employee.ManagerID], employee.ID)
	}

	if err := s.checkManagerForest(); err != nil {
		return nil, err
	}

	for _, record := range data.SalaryRecords {
		if _, ok := s.employees[record.EmployeeID]; !ok {
			return nil, fmt.Errorf("salary record employee %s: %w", record.EmployeeID, ErrMissingEntity)
		}
		s.salariesByEmployee[record.EmployeeID] = append(s.salariesByEmployee[record.EmployeeID], record)
	}
	for id := range s.salariesByEmployee {
		records := s.salariesByEmployee[id]
		sort.Slice(records, func(i, j int) bool {
			return records[i].EffectiveDate.Before(records[j].EffectiveDate)
		})
	}

	for _, review := range data.PerformanceReviews {
		if _, ok := s.employees[review.EmployeeID]; !ok {
			return nil, fmt.Errorf("review employee %s: %w", review.EmployeeID, ErrMissingEntity)
		}
		if _, ok := s.employees[review.ReviewerID]; !ok {
			return nil, fmt.Errorf("review reviewer %s: %w", review.ReviewerID, ErrMissingEntity)
		}
		if review.Rating < RatingMin || review.Rating > RatingMax {
			return nil, fmt.Errorf("review for employee %s rating %d: %w", review.EmployeeID, review.Rating, ErrRatingOutOfRange)
		}
		s.reviewsByEmployee[review.EmployeeID] = append(s.reviewsByEmployee[review.EmployeeID], review)
	}
	for id := range s.reviewsByEmployee {
		reviews := s.reviewsByEmployee[id]
		sort.Slice(reviews, func(i, j int) bool {
			return reviews[i].ReviewDate.Before(reviews[j].ReviewDate)
		})
	}

	for _, assignment := range data.ProjectAssignments {
		if _, ok := s.employees[assignment.EmployeeID]; !ok {
			return nil, fmt.Errorf("assignment employee %s: %w", assignment.EmployeeID, ErrMissingEntity)
		}
		if _, ok := s.projects[assignment.ProjectID]; !ok {
			return nil, fmt.Errorf("assignment project %s: %w", assignment.ProjectID, ErrMissingEntity)
		}
		if assignment.AllocationPercent < 0 || assignment.AllocationPercent > 100 {
			return nil, fmt.Errorf("assignment %s/%s allocation %.1f: %w",
				assignment.EmployeeID, assignment.ProjectID, assignment.AllocationPercent, ErrAllocationOutOfRange)
		}
		s.assignmentsByEmployee[assignment.EmployeeID] = append(s.assignmentsByEmployee[assignment.EmployeeID], assignment)
		s.assignmentsByProject[assignment.ProjectID] = append(s.assignmentsByProject[assignment.ProjectID], assignment)
	}

	for _, record := range data.TrainingRecords {
		if _, ok := s.employees[record.EmployeeID]; !ok {
			return nil, fmt.Errorf("training record employee %s: %w", record.EmployeeID, ErrMissingEntity)
		}
		if _, ok := s.programs[record.ProgramID]; !ok {
			return nil, fmt.Errorf("training record program %s: %w", record.ProgramID, ErrMissingEntity)
		}
		s.trainingByEmployee[record.EmployeeID] = append(s.trainingByEmployee[record.EmployeeID], record)
		s.trainingByProgram[record.ProgramID] = append(s.trainingByProgram[record.ProgramID], record)
	}

	for _, request := range data.LeaveRequests {
		if _, ok := s.employees[request.EmployeeID]; !ok {
			return nil, fmt.Errorf("leave request employee %s: %w", request.EmployeeID, ErrMissingEntity)
		}
		s.leaveByEmployee[request.EmployeeID] = append(s.leaveByEmployee[request.EmployeeID], request)
	}

	for _, entry := range data.Attendance {
		if _, ok := s.employees[entry.EmployeeID]; !ok {
			return nil, fmt.Errorf("attendance employee %s: %w", entry.EmployeeID, ErrMissingEntity)
		}
		s.attendanceByEmployee[entry.EmployeeID] = append(s.attendanceByEmployee[entry.EmployeeID], entry)
	}

	for dept := range s.employeesByDepartment {
		sort.Strings(s.employeesByDepartment[dept])
	}
	for manager := range s.directReports {
		sort.Strings(s.directReports[manager])
	}

	return s, nil
}

// checkManagerForest walks each employee's manager chain with three-color
// marking so every node is visited once across the whole pass.
func (s *Snapshot) checkManagerForest() error {
	const (
		unvisited = 0
		inChain   = 1
		done      = 2
	)
	state := make(map[string]int, len(s.employees))

	for id := range s.employees {
		if state[id] != unvisited {
			continue
		}
		var chain []string
		current := id
		for current != "" && state[current] == unvisited {
			state[current] = inChain
			chain = append(chain, current)
			current = s.employees[current].ManagerID
		}
		if current != "" && state[current] == inChain {
			return fmt.Errorf("employee %s: %w", current, ErrManagerCycle)
		}
		for _, visited := range chain {
			state[visited] = done
		}
	}
	return nil
}

// AsOf returns the instant this snapshot was fixed at.
func (s *Snapshot) AsOf() time.Time {
	return s.asOf
}
