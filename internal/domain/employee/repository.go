package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID returns ErrEmployeeNotFound when no record matches.
	GetByID(ctx context.Context, id string) (Employee, error)

	GetByEmployeeCode(ctx context.Context, code string) (Employee, error)

	// List returns all employees joined with their account email,
	// newest-first by creation time.
	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
