package payment

import (
	"context"
	"errors"

	"gymdesk/internal/metrics"
)

var ErrMemberNotFound = errors.New("member not found")

type MemberStatement struct {
	Payments   []Payment `json:"payments"`
	TotalCents int64     `json:"total_cents"`
}

type Service interface {
	Create(ctx context.Context, req *CreatePaymentRequest) (*Payment, error)
	GetAll(ctx context.Context) ([]PaymentWithMember, error)
	GetMemberStatement(ctx context.Context, memberID int) (*MemberStatement, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req *CreatePaymentRequest) (*Payment, error) {
	exists, err := s.repo.MemberExists(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	created, err := s.repo.Create(ctx, &Payment{
		MemberID:    req.MemberID,
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Note:        req.Note,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(created.Method)
	return created, nil
}

func (s *service) GetAll(ctx context.Context) ([]PaymentWithMember, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetMemberStatement(ctx context.Context, memberID int) (*MemberStatement, error) {
	exists, err := s.repo.MemberExists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	payments, err := s.repo.GetByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.TotalByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return &MemberStatement{Payments: payments, TotalCents: total}, nil
}
