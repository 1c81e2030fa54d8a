package attendance

import "time"

// Attendance holds one record per employee per calendar day. Created at
// check-in with CheckOut empty, mutated exactly once at check-out, never
// mutated again.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
	TotalHours *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}
