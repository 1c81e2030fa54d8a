package permission

import (
	"context"
	"time"
)

type PermissionRepository interface {
	Create(ctx context.Context, permission Permission) (Permission, error)

	// SumMinutesInWindow sums DurationMinutes over the employee's permissions
	// whose date falls within [start, end].
	SumMinutesInWindow(ctx context.Context, employeeID string, start, end time.Time) (int, error)

	// List retrieves permissions joined with their owning employee,
	// newest-first by creation time.
	List(ctx context.Context, filter Filter) ([]Permission, error)
}
