package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) (*Payment, error)
	GetAll(ctx context.Context) ([]PaymentWithMember, error)
	GetByMember(ctx context.Context, memberID int) ([]Payment, error)
	TotalByMember(ctx context.Context, memberID int) (int64, error)
	MemberExists(ctx context.Context, memberID int) (bool, error)
}
