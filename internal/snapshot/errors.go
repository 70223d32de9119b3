package snapshot

import "errors"

var (
	ErrMissingEntity        = errors.New("snapshot references a row that does not exist")
	ErrManagerCycle         = errors.New("manager hierarchy contains a cycle")
	ErrRatingOutOfRange     = errors.New("review rating outside the 1-5 scale")
	ErrAllocationOutOfRange = errors.New("assignment allocation outside 0-100")
	ErrNoSalaryRecord       = errors.New("employee has no salary record at the as-of instant")
	ErrNoReview             = errors.New("employee has no performance review at the as-of instant")
	ErrFutureHireDate       = errors.New("employee hire date is after the as-of instant")
)
