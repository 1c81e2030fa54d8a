package attendance

import "context"

type AttendanceService interface {
	// CheckIn opens today's attendance record for the employee. Fails with
	// ErrAlreadyCheckedIn when a record for the calendar day already exists,
	// whether or not it has been closed.
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes today's record and computes the elapsed hours. Fails
	// with ErrNoCheckInFound or ErrAlreadyCheckedOut.
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	List(ctx context.Context, filter Filter) ([]AttendanceResponse, error)
}
