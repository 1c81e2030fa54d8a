package employee

import "time"

// Employee is the identity record every attendance, leave and permission
// record hangs off. Linked to exactly one account identity via UserID.
type Employee struct {
	ID           string
	UserID       string
	EmployeeCode string
	Name         string
	Department   string
	State        string
	MobileNumber string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	Email *string
}
