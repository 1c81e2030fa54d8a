package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Reviews requests, manages employees
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}
