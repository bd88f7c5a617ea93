package session

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrTrainerNotFound   = errors.New("trainer not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidTimeRange  = errors.New("start date must be before end date")
	ErrSessionInPast     = errors.New("session must start in the future")
	ErrSessionStarted    = errors.New("session has already started")
	ErrCapacityTooSmall  = errors.New("capacity is below current bookings")
	ErrSessionHasBookers = errors.New("session has bookings")
)

type Service interface {
	Create(ctx context.Context, req *CreateSessionRequest) (*Session, error)
	Update(ctx context.Context, id int, req *UpdateSessionRequest) (*Session, error)
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]SessionWithDetails, error)
	GetUpcoming(ctx context.Context) ([]SessionWithDetails, error)
	GetDetails(ctx context.Context, id int) (*SessionWithDetails, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, req *CreateSessionRequest) (*Session, error) {
	if err := s.validateSchedule(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if err := s.validateRefs(ctx, req.TrainerID, req.CategoryID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &Session{
		Title:       req.Title,
		Description: req.Description,
		TrainerID:   req.TrainerID,
		CategoryID:  req.CategoryID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Capacity:    req.Capacity,
	})
}

func (s *service) Update(ctx context.Context, id int, req *UpdateSessionRequest) (*Session, error) {
	existing, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.StartDate.After(s.now()) {
		return nil, ErrSessionStarted
	}

	if err := s.validateSchedule(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if err := s.validateRefs(ctx, req.TrainerID, req.CategoryID); err != nil {
		return nil, err
	}

	booked, err := s.repo.BookedCount(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Capacity < booked {
		return nil, ErrCapacityTooSmall
	}

	return s.repo.Update(ctx, &Session{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		TrainerID:   req.TrainerID,
		CategoryID:  req.CategoryID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Capacity:    req.Capacity,
	})
}

// Delete refuses to remove an upcoming session that members have
// already booked. Past sessions go regardless, bookings cascade.
func (s *service) Delete(ctx context.Context, id int) error {
	existing, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}

	if existing.StartDate.After(s.now()) {
		booked, err := s.repo.BookedCount(ctx, id)
		if err != nil {
			return err
		}
		if booked > 0 {
			return ErrSessionHasBookers
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]SessionWithDetails, error) {
	sessions, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	fillAvailableSlots(sessions)
	return sessions, nil
}

func (s *service) GetUpcoming(ctx context.Context) ([]SessionWithDetails, error) {
	sessions, err := s.repo.GetUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	fillAvailableSlots(sessions)
	return sessions, nil
}

func (s *service) GetDetails(ctx context.Context, id int) (*SessionWithDetails, error) {
	details, err := s.repo.GetWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	details.AvailableSlots = details.Capacity - details.BookedCount
	return details, nil
}

func (s *service) validateSchedule(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidTimeRange
	}
	if !start.After(s.now()) {
		return ErrSessionInPast
	}
	return nil
}

func (s *service) validateRefs(ctx context.Context, trainerID, categoryID int) error {
	exists, err := s.repo.TrainerExists(ctx, trainerID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTrainerNotFound
	}

	exists, err = s.repo.CategoryExists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *service) getExisting(ctx context.Context, id int) (*Session, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return existing, nil
}

func fillAvailableSlots(sessions []SessionWithDetails) {
	for i := range sessions {
		sessions[i].AvailableSlots = sessions[i].Capacity - sessions[i].BookedCount
	}
}
