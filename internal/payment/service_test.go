package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, p *Payment) (*Payment, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *MockRepo) GetAll(ctx context.Context) ([]PaymentWithMember, error) {
	args := m.Called(ctx)
	return args.Get(0).([]PaymentWithMember), args.Error(1)
}

func (m *MockRepo) GetByMember(ctx context.Context, memberID int) ([]Payment, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).([]Payment), args.Error(1)
}

func (m *MockRepo) TotalByMember(ctx context.Context, memberID int) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepo) MemberExists(ctx context.Context, memberID int) (bool, error) {
	args := m.Called(ctx, memberID)
	return args.Bool(0), args.Error(1)
}

func TestRecordPayment(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("MemberExists", mock.Anything, 1).Return(true, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Payment) bool {
		return p.MemberID == 1 && p.AmountCents == 150000 && p.Method == MethodCard
	})).Return(&Payment{ID: 40, MemberID: 1, AmountCents: 150000, Method: MethodCard}, nil)

	created, err := svc.Create(context.Background(), &CreatePaymentRequest{
		MemberID: 1, AmountCents: 150000, Method: MethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(150000), created.AmountCents)
}

func TestRecordPaymentUnknownMember(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("MemberExists", mock.Anything, 99).Return(false, nil)

	_, err := svc.Create(context.Background(), &CreatePaymentRequest{
		MemberID: 99, AmountCents: 5000, Method: MethodCash,
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMemberStatementSumsPayments(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("MemberExists", mock.Anything, 1).Return(true, nil)
	repo.On("GetByMember", mock.Anything, 1).Return([]Payment{
		{ID: 40, AmountCents: 150000, Method: MethodCard},
		{ID: 41, AmountCents: 5000, Method: MethodCash},
	}, nil)
	repo.On("TotalByMember", mock.Anything, 1).Return(int64(155000), nil)

	statement, err := svc.GetMemberStatement(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, statement.Payments, 2)
	assert.Equal(t, int64(155000), statement.TotalCents)
}
