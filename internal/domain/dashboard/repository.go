package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	// CountAttendanceInWindow counts attendance records whose date falls
	// within [start, end].
	CountAttendanceInWindow(ctx context.Context, start, end time.Time) (int64, error)

	// CountPermissionsInWindow counts permissions in the window; when
	// extraOnly is set, only those that exceeded the daily cap.
	CountPermissionsInWindow(ctx context.Context, start, end time.Time, extraOnly bool) (int64, error)
}
