package session

import "context"

type Repository interface {
	Create(ctx context.Context, s *Session) (*Session, error)
	GetByID(ctx context.Context, id int) (*Session, error)
	GetWithDetails(ctx context.Context, id int) (*SessionWithDetails, error)
	GetAll(ctx context.Context) ([]SessionWithDetails, error)
	GetUpcoming(ctx context.Context) ([]SessionWithDetails, error)
	Update(ctx context.Context, s *Session) (*Session, error)
	Delete(ctx context.Context, id int) error
	BookedCount(ctx context.Context, id int) (int, error)
	TrainerExists(ctx context.Context, trainerID int) (bool, error)
	CategoryExists(ctx context.Context, categoryID int) (bool, error)
}
