package plan

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPlanHasMemberships = errors.New("plan has active memberships")
)

type Service interface {
	Create(ctx context.Context, req *CreatePlanRequest) (*Plan, error)
	Update(ctx context.Context, id int, req *UpdatePlanRequest) (*Plan, error)
	ToggleActive(ctx context.Context, id int) (*Plan, error)
	GetAll(ctx context.Context) ([]Plan, error)
	GetActive(ctx context.Context) ([]Plan, error)
	GetByID(ctx context.Context, id int) (*Plan, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req *CreatePlanRequest) (*Plan, error) {
	return s.repo.Create(ctx, &Plan{
		Name:         req.Name,
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		DurationDays: req.DurationDays,
	})
}

// Update rejects changes to a plan while members hold an active
// membership on it, so the terms they signed up for stay fixed.
func (s *service) Update(ctx context.Context, id int, req *UpdatePlanRequest) (*Plan, error) {
	if _, err := s.getExisting(ctx, id); err != nil {
		return nil, err
	}

	inUse, err := s.repo.HasActiveMemberships(ctx, id)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, ErrPlanHasMemberships
	}

	return s.repo.Update(ctx, &Plan{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		DurationDays: req.DurationDays,
	})
}

func (s *service) ToggleActive(ctx context.Context, id int) (*Plan, error) {
	existing, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.IsActive {
		inUse, err := s.repo.HasActiveMemberships(ctx, id)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, ErrPlanHasMemberships
		}
	}

	if err := s.repo.SetActive(ctx, id, !existing.IsActive); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]Plan, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetActive(ctx context.Context) ([]Plan, error) {
	return s.repo.GetActive(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*Plan, error) {
	return s.getExisting(ctx, id)
}

func (s *service) getExisting(ctx context.Context, id int) (*Plan, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}
