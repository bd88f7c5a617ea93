package attendance

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/metrics"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrNoActiveMembership = errors.New("member has no active membership")
	ErrAlreadyCheckedIn   = errors.New("member already has an open check-in")
	ErrNotCheckedIn       = errors.New("member has no open check-in")
)

type Service interface {
	CheckIn(ctx context.Context, memberID int) (*Attendance, error)
	CheckOut(ctx context.Context, memberID int) (*Attendance, error)
	GetByMember(ctx context.Context, memberID int) ([]Attendance, error)
	GetOpen(ctx context.Context) ([]AttendanceWithMember, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CheckIn(ctx context.Context, memberID int) (*Attendance, error) {
	if err := s.requireMember(ctx, memberID); err != nil {
		return nil, err
	}

	hasMembership, err := s.repo.MemberHasActiveMembership(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !hasMembership {
		return nil, ErrNoActiveMembership
	}

	_, err = s.repo.GetOpenByMember(ctx, memberID)
	if err == nil {
		return nil, ErrAlreadyCheckedIn
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	visit, err := s.repo.CheckIn(ctx, memberID)
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckIn()
	return visit, nil
}

func (s *service) CheckOut(ctx context.Context, memberID int) (*Attendance, error) {
	if err := s.requireMember(ctx, memberID); err != nil {
		return nil, err
	}

	open, err := s.repo.GetOpenByMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotCheckedIn
		}
		return nil, err
	}

	return s.repo.CheckOut(ctx, open.ID)
}

func (s *service) GetByMember(ctx context.Context, memberID int) ([]Attendance, error) {
	if err := s.requireMember(ctx, memberID); err != nil {
		return nil, err
	}

	return s.repo.GetByMember(ctx, memberID)
}

func (s *service) GetOpen(ctx context.Context) ([]AttendanceWithMember, error) {
	return s.repo.GetOpen(ctx)
}

func (s *service) requireMember(ctx context.Context, memberID int) error {
	exists, err := s.repo.MemberExists(ctx, memberID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMemberNotFound
	}
	return nil
}
