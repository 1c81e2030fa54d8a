package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "PENDING"
	LeaveRequestStatusApproved LeaveRequestStatus = "APPROVED"
	LeaveRequestStatusRejected LeaveRequestStatus = "REJECTED"
)

// IsTerminal reports whether the status can no longer transition.
// PENDING is the only non-terminal state.
func (s LeaveRequestStatus) IsTerminal() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

// LeaveRequest entity. FromDate..ToDate is an inclusive calendar range;
// TotalDays is the inclusive day count.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	FromDate   time.Time
	ToDate     time.Time
	Reason     string
	TotalDays  int
	Status     LeaveRequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}
