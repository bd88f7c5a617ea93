package plan

import "context"

type Repository interface {
	Create(ctx context.Context, p *Plan) (*Plan, error)
	GetByID(ctx context.Context, id int) (*Plan, error)
	GetAll(ctx context.Context) ([]Plan, error)
	GetActive(ctx context.Context) ([]Plan, error)
	Update(ctx context.Context, p *Plan) (*Plan, error)
	SetActive(ctx context.Context, id int, active bool) error
	HasActiveMemberships(ctx context.Context, id int) (bool, error)
}
