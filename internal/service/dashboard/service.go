package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/dashboard"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/period"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	employeeRepo  employee.EmployeeRepository
	leaveRepo     leave.LeaveRequestRepository
	loc           *time.Location

	now func() time.Time
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, employeeRepo employee.EmployeeRepository, leaveRepo leave.LeaveRequestRepository, loc *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		employeeRepo:  employeeRepo,
		leaveRepo:     leaveRepo,
		loc:           loc,
		now:           time.Now,
	}
}

// Stats implements dashboard.DashboardService. "Today" is the current
// calendar day in the configured timezone.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.AdminStats, error) {
	dayStart, dayEnd := period.DayWindow(s.now(), s.loc)

	totalEmployees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return dashboard.AdminStats{}, fmt.Errorf("failed to count employees: %w", err)
	}

	todayAttendance, err := s.dashboardRepo.CountAttendanceInWindow(ctx, dayStart, dayEnd)
	if err != nil {
		return dashboard.AdminStats{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}

	pendingLeaves, err := s.leaveRepo.CountByStatus(ctx, leave.LeaveRequestStatusPending)
	if err != nil {
		return dashboard.AdminStats{}, fmt.Errorf("failed to count pending leaves: %w", err)
	}

	todayPermissions, err := s.dashboardRepo.CountPermissionsInWindow(ctx, dayStart, dayEnd, false)
	if err != nil {
		return dashboard.AdminStats{}, fmt.Errorf("failed to count today's permissions: %w", err)
	}

	todayExtra, err := s.dashboardRepo.CountPermissionsInWindow(ctx, dayStart, dayEnd, true)
	if err != nil {
		return dashboard.AdminStats{}, fmt.Errorf("failed to count today's extra permissions: %w", err)
	}

	return dashboard.AdminStats{
		TotalEmployees:        totalEmployees,
		TodayAttendance:       todayAttendance,
		PendingLeaves:         pendingLeaves,
		TodayPermissions:      todayPermissions,
		TodayExtraPermissions: todayExtra,
	}, nil
}
