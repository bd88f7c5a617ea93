package trainer

import "context"

type Repository interface {
	Create(ctx context.Context, t *Trainer) (*Trainer, error)
	GetByID(ctx context.Context, id int) (*Trainer, error)
	GetAll(ctx context.Context) ([]Trainer, error)
	Update(ctx context.Context, t *Trainer) error
	Delete(ctx context.Context, id int) error
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	HasFutureSessions(ctx context.Context, trainerID int) (bool, error)
}
