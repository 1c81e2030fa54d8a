package leave

import "context"

type LeaveService interface {
	// Submit creates a PENDING request after checking the monthly cap. Fails
	// with ErrInvalidDateRange or *LimitExceededError. PENDING requests
	// provisionally reserve allowance until resolved.
	Submit(ctx context.Context, req SubmitLeaveRequest) (SubmitLeaveResponse, error)

	// Decide transitions a PENDING request to APPROVED or REJECTED. A request
	// already in a terminal state fails with ErrLeaveAlreadyProcessed.
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	List(ctx context.Context, filter Filter) ([]LeaveResponse, error)
}
