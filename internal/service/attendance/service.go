package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/period"
)

type AttendanceServiceImpl struct {
	tx  database.TxRunner
	loc *time.Location
	attendance.AttendanceRepository

	// now is the clock; tests override it.
	now func() time.Time
}

func NewAttendanceService(tx database.TxRunner, attendanceRepo attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		loc:                  loc,
		AttendanceRepository: attendanceRepo,
		now:                  time.Now,
	}
}

// CheckIn implements attendance.AttendanceService. The precondition read and
// the insert run in one transaction; the store's unique constraint backstops
// a concurrent duplicate that passes the read.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now()
	dayStart, dayEnd := period.DayWindow(now, s.loc)

	var created attendance.Attendance
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.AttendanceRepository.GetByEmployeeAndWindow(ctx, employeeID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to check today's attendance: %w", err)
		}

		// One check-in per calendar day, whether or not it was closed.
		if existing != nil {
			return attendance.ErrAlreadyCheckedIn
		}

		created, err = s.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       period.StartOfDay(now, s.loc),
			CheckIn:    now.UTC(),
		})
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.MapToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now()
	dayStart, dayEnd := period.DayWindow(now, s.loc)

	var updated attendance.Attendance
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.AttendanceRepository.GetByEmployeeAndWindow(ctx, employeeID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to check today's attendance: %w", err)
		}

		if existing == nil {
			return attendance.ErrNoCheckInFound
		}
		if existing.CheckOut != nil {
			return attendance.ErrAlreadyCheckedOut
		}

		checkOut := now.UTC()
		totalHours := TotalHours(existing.CheckIn, checkOut)

		if err := s.AttendanceRepository.SetCheckOut(ctx, existing.ID, checkOut, totalHours); err != nil {
			return err
		}

		updated = *existing
		updated.CheckOut = &checkOut
		updated.TotalHours = &totalHours
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.MapToResponse(updated), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	attendances, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.MapToResponse(att))
	}

	return responses, nil
}

// TotalHours computes the elapsed duration between check-in and check-out in
// hours, rounded to two decimal places.
func TotalHours(checkIn, checkOut time.Time) float64 {
	return math.Round(checkOut.Sub(checkIn).Hours()*100) / 100
}
