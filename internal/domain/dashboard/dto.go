package dashboard

import "context"

// AdminStats is the aggregate snapshot shown on the admin dashboard.
type AdminStats struct {
	TotalEmployees        int64 `json:"total_employees"`
	TodayAttendance       int64 `json:"today_attendance"`
	PendingLeaves         int64 `json:"pending_leaves"`
	TodayPermissions      int64 `json:"today_permissions"`
	TodayExtraPermissions int64 `json:"today_extra_permissions"`
}

type DashboardService interface {
	Stats(ctx context.Context) (AdminStats, error)
}
