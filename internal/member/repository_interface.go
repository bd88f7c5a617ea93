package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) (*Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	GetWithMembership(ctx context.Context, id int) (*MemberWithMembership, error)
	GetAll(ctx context.Context) ([]Member, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id int) error
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	HasFutureSessionBookings(ctx context.Context, memberID int) (bool, error)
}
