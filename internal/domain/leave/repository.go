package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID returns ErrLeaveRequestNotFound when no record matches.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// SumDaysInWindow sums TotalDays over the employee's PENDING and APPROVED
	// requests whose FromDate falls within [start, end]. REJECTED requests
	// never count.
	SumDaysInWindow(ctx context.Context, employeeID string, start, end time.Time) (int, error)

	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus) error

	// List retrieves requests joined with their owning employee, newest-first
	// by creation time. Both filter fields are independently optional.
	List(ctx context.Context, filter Filter) ([]LeaveRequest, error)

	CountByStatus(ctx context.Context, status LeaveRequestStatus) (int64, error)
}
