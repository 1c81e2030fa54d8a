package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNoCheckInFound    = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
)
