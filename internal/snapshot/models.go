package snapshot

import "time"

type Employee struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	HireDate        time.Time  `json:"hireDate"`
	TerminationDate *time.Time `json:"terminationDate,omitempty"`
	Status          string     `json:"status"`
	DepartmentID    string     `json:"departmentId"`
	PositionID      string     `json:"positionId"`
	ManagerID       string     `json:"managerId,omitempty"`
}

type Department struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ManagerID string `json:"managerId,omitempty"`
}

type Position struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	MinSalary float64 `json:"minSalary"`
	MaxSalary float64 `json:"maxSalary"`
}

type SalaryRecord struct {
	EmployeeID    string     `json:"employeeId"`
	Amount        float64    `json:"amount"`
	EffectiveDate time.Time  `json:"effectiveDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
}

type PerformanceReview struct {
	EmployeeID string    `json:"employeeId"`
	ReviewerID string    `json:"reviewerId"`
	Rating     int       `json:"rating"`
	ReviewDate time.Time `json:"reviewDate"`
}

type Project struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Budget    float64    `json:"budget"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Status    string     `json:"status"`
}

type ProjectAssignment struct {
	EmployeeID        string     `json:"employeeId"`
	ProjectID         string     `json:"projectId"`
	AllocationPercent float64    `json:"allocationPercent"`
	StartDate         time.Time  `json:"startDate"`
	EndDate           *time.Time `json:"endDate,omitempty"`
}

type TrainingProgram struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Cost          float64 `json:"cost"`
	DurationHours int     `json:"durationHours"`
}

type TrainingRecord struct {
	EmployeeID     string     `json:"employeeId"`
	ProgramID      string     `json:"programId"`
	Status         string     `json:"status"`
	Score          *float64   `json:"score,omitempty"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
}

type LeaveRequest struct {
	EmployeeID string    `json:"employeeId"`
	Type       string    `json:"type"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Status     string    `json:"status"`
}

type Attendance struct {
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

const (
	EmployeeStatusActive     = "active"
	EmployeeStatusTerminated = "terminated"
	EmployeeStatusOnLeave    = "on_leave"

	ProjectStatusPlanned   = "planned"
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"

	TrainingStatusEnrolled  = "enrolled"
	TrainingStatusCompleted = "completed"
	TrainingStatusDropped   = "dropped"

	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"

	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusRemote  = "remote"
)

const (
	RatingMin = 1
	RatingMax = 5
)
