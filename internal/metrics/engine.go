package metrics

import "hrmetrics/internal/snapshot"

// Engine computes derived reports over one immutable snapshot. It holds no
// mutable state, so a single Engine may serve concurrent callers; calling
// any report method twice yields identical results.
type Engine struct {
	snap *snapshot.Snapshot
	cfg  Config
}

func NewEngine(snap *snapshot.Snapshot, cfg Config) *Engine {
	return &Engine{snap: snap, cfg: cfg}
}

// Config returns the weighting configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Exclusion records an employee left out of an aggregate and why, instead
// of aborting the whole batch.
type Exclusion struct {
	EmployeeID string `json:"employeeId"`
	Reason     string `json:"reason"`
}

const (
	ReasonNoSalaryRecord = "no_salary_record"
	ReasonFutureHireDate = "future_hire_date"
	ReasonMissingEntity  = "missing_entity"
)
