package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the Record Store surface for attendance records.
type AttendanceRepository interface {
	// Create persists a new record. The store enforces at most one record per
	// employee per calendar day; a second insert for the same day returns
	// ErrAlreadyCheckedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndWindow retrieves the attendance whose date falls within
	// [start, end] for the employee. Returns nil when none exists.
	GetByEmployeeAndWindow(ctx context.Context, employeeID string, start, end time.Time) (*Attendance, error)

	// SetCheckOut records the check-out timestamp and computed total hours.
	// The record is never mutated after this.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time, totalHours float64) error

	// List retrieves records joined with their owning employee, date
	// descending. Both filter fields are independently optional.
	List(ctx context.Context, filter Filter) ([]Attendance, error)
}
