package permission

import "context"

type PermissionService interface {
	// Submit records a permission after computing the day's minute accounting.
	// Exceeding the daily cap never blocks the request; the overage is tracked
	// in ExtraMinutes and surfaced for reporting. Fails only with
	// ErrInvalidTimeRange.
	Submit(ctx context.Context, req SubmitPermissionRequest) (SubmitPermissionResponse, error)

	List(ctx context.Context, filter Filter) ([]PermissionResponse, error)
}
