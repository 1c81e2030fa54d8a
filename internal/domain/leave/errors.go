package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrInvalidDateRange      = errors.New("invalid date range")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
)

// LimitExceededError rejects a submission that would push the employee past
// the monthly cap. RemainingDays is the allowance still open before this
// request, which the failure message must report.
type LimitExceededError struct {
	MaxPerMonth   int
	RemainingDays int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("cannot request more than %d days of leave per month; you have %d days remaining",
		e.MaxPerMonth, e.RemainingDays)
}
