package permission

import "time"

// Permission is a time-limited short absence within a working day. Created
// once per request and never mutated. ExtraMinutes is the portion of the
// duration that pushed the employee past the daily cap; zero when within it.
type Permission struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	StartTime       time.Time
	EndTime         time.Time
	Reason          string
	DurationMinutes int
	ExtraMinutes    int
	CreatedAt       time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}
