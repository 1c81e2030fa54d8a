package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail returns ErrUserNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (User, error)
}
