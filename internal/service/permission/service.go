package permission

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/permission"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/period"
)

type PermissionServiceImpl struct {
	tx        database.TxRunner
	loc       *time.Location
	maxPerDay int
	permission.PermissionRepository

	// now is the clock; tests override it.
	now func() time.Time
}

func NewPermissionService(tx database.TxRunner, permissionRepo permission.PermissionRepository, loc *time.Location, maxPerDay int) permission.PermissionService {
	return &PermissionServiceImpl{
		tx:                   tx,
		loc:                  loc,
		maxPerDay:            maxPerDay,
		PermissionRepository: permissionRepo,
		now:                  time.Now,
	}
}

// Submit implements permission.PermissionService. The record and its daily
// accounting are anchored to the submission day, regardless of the start
// time's calendar day.
func (s *PermissionServiceImpl) Submit(ctx context.Context, req permission.SubmitPermissionRequest) (permission.SubmitPermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.SubmitPermissionResponse{}, err
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return permission.SubmitPermissionResponse{}, fmt.Errorf("failed to parse start time: %w", err)
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return permission.SubmitPermissionResponse{}, fmt.Errorf("failed to parse end time: %w", err)
	}

	// Whole minutes only; partial trailing minutes are dropped.
	durationMinutes := int(endTime.Sub(startTime) / time.Minute)
	if durationMinutes <= 0 {
		return permission.SubmitPermissionResponse{}, permission.ErrInvalidTimeRange
	}

	now := s.now()

	var resp permission.SubmitPermissionResponse
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		dayStart, dayEnd := period.DayWindow(now, s.loc)

		usedMinutes, err := s.PermissionRepository.SumMinutesInWindow(ctx, req.EmployeeID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to sum used permission minutes: %w", err)
		}

		extraMinutes := 0
		if usedMinutes+durationMinutes > s.maxPerDay {
			extraMinutes = usedMinutes + durationMinutes - s.maxPerDay
		}

		created, err := s.PermissionRepository.Create(ctx, permission.Permission{
			EmployeeID:      req.EmployeeID,
			Date:            period.StartOfDay(now, s.loc),
			StartTime:       startTime.UTC(),
			EndTime:         endTime.UTC(),
			Reason:          req.Reason,
			DurationMinutes: durationMinutes,
			ExtraMinutes:    extraMinutes,
		})
		if err != nil {
			return fmt.Errorf("failed to create permission: %w", err)
		}

		totalUsed := usedMinutes + durationMinutes
		remaining := s.maxPerDay - totalUsed
		if remaining < 0 {
			remaining = 0
		}

		resp = permission.SubmitPermissionResponse{
			Permission:       permission.MapToResponse(created),
			TotalUsedMinutes: totalUsed,
			RemainingMinutes: remaining,
			ExceededLimit:    totalUsed > s.maxPerDay,
		}
		return nil
	})
	if err != nil {
		return permission.SubmitPermissionResponse{}, err
	}

	return resp, nil
}

// List implements permission.PermissionService.
func (s *PermissionServiceImpl) List(ctx context.Context, filter permission.Filter) ([]permission.PermissionResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	permissions, err := s.PermissionRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	responses := make([]permission.PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		responses = append(responses, permission.MapToResponse(p))
	}

	return responses, nil
}
