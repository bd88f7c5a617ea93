package membership

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
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPlanInactive       = errors.New("plan is not active")
	ErrAlreadyEnrolled    = errors.New("member already has an active membership")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrAlreadyInactive    = errors.New("membership is already inactive")
	ErrInvalidStartDate   = errors.New("invalid start date")
)

type Service interface {
	Create(ctx context.Context, req *CreateMembershipRequest) (*Membership, error)
	Deactivate(ctx context.Context, id int) error
	GetByMember(ctx context.Context, memberID int) ([]MembershipWithDetails, error)
	GetAllActive(ctx context.Context) ([]MembershipWithDetails, error)
}

type service struct {
	repo         Repository
	emailService *email.Service
	now          func() time.Time
}

func NewService(repo Repository, emailService *email.Service) Service {
	return &service{repo: repo, emailService: emailService, now: time.Now}
}

// Create enrolls a member on a plan. The end date is derived from the
// plan duration, and the one-active-membership rule is enforced under
// a row lock in the repository.
func (s *service) Create(ctx context.Context, req *CreateMembershipRequest) (*Membership, error) {
	exists, err := s.repo.MemberExists(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	planInfo, err := s.repo.GetPlanInfo(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if !planInfo.IsActive {
		return nil, ErrPlanInactive
	}

	start := s.now()
	if req.StartDate != "" {
		start, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, ErrInvalidStartDate
		}
	}

	created, err := s.repo.CreateExclusive(ctx, &Membership{
		MemberID:  req.MemberID,
		PlanID:    req.PlanID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, planInfo.DurationDays),
	})
	if err != nil {
		if errors.Is(err, ErrActiveMembershipExists) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	metrics.RecordMembership(planInfo.Name)

	name, addr, err := s.repo.MemberEmail(ctx, req.MemberID)
	if err != nil {
		logger.Errorf("Failed to look up member %d for confirmation email: %v", req.MemberID, err)
		return created, nil
	}
	if err := s.emailService.SendMembershipConfirmation(ctx, addr, name, planInfo.Name, created.EndDate); err != nil {
		logger.Errorf("Failed to queue membership confirmation for member %d: %v", req.MemberID, err)
	}

	return created, nil
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMembershipNotFound
		}
		return err
	}
	if !existing.IsActive {
		return ErrAlreadyInactive
	}

	return s.repo.Deactivate(ctx, id)
}

func (s *service) GetByMember(ctx context.Context, memberID int) ([]MembershipWithDetails, error) {
	exists, err := s.repo.MemberExists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	return s.repo.GetByMember(ctx, memberID)
}

func (s *service) GetAllActive(ctx context.Context) ([]MembershipWithDetails, error) {
	return s.repo.GetAllActive(ctx)
}
