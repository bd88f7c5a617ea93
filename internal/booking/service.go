package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymdesk/internal/email"
	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNoActiveMembership = errors.New("member has no active membership")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrBookingCancelled   = errors.New("booking is cancelled")
)

type Service interface {
	Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error)
	Cancel(ctx context.Context, id int) error
	MarkAttended(ctx context.Context, id int) error
	GetBySession(ctx context.Context, sessionID int) ([]BookingWithMember, error)
	GetByMember(ctx context.Context, memberID int) ([]BookingWithSession, error)
	EligibleMembers(ctx context.Context, sessionID int) ([]MemberOption, error)
}

type service struct {
	repo         Repository
	emailService *email.Service
	now          func() time.Time
}

func NewService(repo Repository, emailService *email.Service) Service {
	return &service{repo: repo, emailService: emailService, now: time.Now}
}

// Create books a member into an upcoming session. Membership is
// checked up front, then capacity and the duplicate rule are enforced
// under the session row lock in the repository.
func (s *service) Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	exists, err := s.repo.MemberExists(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	hasMembership, err := s.repo.MemberHasActiveMembership(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !hasMembership {
		return nil, ErrNoActiveMembership
	}

	created, err := s.repo.CreateExclusive(ctx, req.MemberID, req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrSessionNotFound
		case errors.Is(err, ErrSessionFull), errors.Is(err, ErrAlreadyBooked), errors.Is(err, ErrSessionStarted):
			metrics.RecordBooking("rejected")
		}
		return nil, err
	}

	metrics.RecordBooking(StatusBooked)
	s.notify(ctx, created, "confirmation")

	return created, nil
}

func (s *service) Cancel(ctx context.Context, id int) error {
	existing, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	info, err := s.repo.GetSessionInfo(ctx, existing.SessionID)
	if err != nil {
		return err
	}
	if !info.StartDate.After(s.now()) {
		return ErrSessionStarted
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}

	metrics.RecordBookingCancellation()
	s.notify(ctx, existing, "cancellation")

	return nil
}

// MarkAttended flips the booking to attended. Unlike cancellation
// this is allowed after the session has started, front desk staff
// record attendance during and after class.
func (s *service) MarkAttended(ctx context.Context, id int) error {
	existing, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status == StatusCancelled {
		return ErrBookingCancelled
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusAttended); err != nil {
		return err
	}

	metrics.RecordBooking(StatusAttended)
	return nil
}

func (s *service) GetBySession(ctx context.Context, sessionID int) ([]BookingWithMember, error) {
	if _, err := s.repo.GetSessionInfo(ctx, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return s.repo.GetBySession(ctx, sessionID)
}

func (s *service) GetByMember(ctx context.Context, memberID int) ([]BookingWithSession, error) {
	exists, err := s.repo.MemberExists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	return s.repo.GetByMember(ctx, memberID)
}

func (s *service) EligibleMembers(ctx context.Context, sessionID int) ([]MemberOption, error) {
	if _, err := s.repo.GetSessionInfo(ctx, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return s.repo.EligibleMembers(ctx, sessionID)
}

func (s *service) getExisting(ctx context.Context, id int) (*Booking, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *service) notify(ctx context.Context, b *Booking, kind string) {
	name, addr, err := s.repo.MemberContact(ctx, b.MemberID)
	if err != nil {
		logger.Errorf("Failed to look up member %d for booking %s email: %v", b.MemberID, kind, err)
		return
	}
	info, err := s.repo.GetSessionInfo(ctx, b.SessionID)
	if err != nil {
		logger.Errorf("Failed to look up session %d for booking %s email: %v", b.SessionID, kind, err)
		return
	}

	if kind == "cancellation" {
		err = s.emailService.SendBookingCancellation(ctx, addr, name, info.Title)
	} else {
		err = s.emailService.SendBookingConfirmation(ctx, addr, name, info.Title, info.StartDate)
	}
	if err != nil {
		logger.Errorf("Failed to queue booking %s email for member %d: %v", kind, b.MemberID, err)
	}
}
