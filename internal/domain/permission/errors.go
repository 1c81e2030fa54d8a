package permission

import "errors"

var (
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
