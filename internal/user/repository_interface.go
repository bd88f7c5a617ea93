package user

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id int, role string) error
	SetSuspended(ctx context.Context, id int, suspended bool) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	EmailExists(ctx context.Context, email string) (bool, error)
}
