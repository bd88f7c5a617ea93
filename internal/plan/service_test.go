package plan

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) Create(ctx context.Context, p *Plan) (*Plan, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepo) GetByID(ctx context.Context, id int) (*Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepo) GetAll(ctx context.Context) ([]Plan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Plan), args.Error(1)
}

func (m *MockRepo) GetActive(ctx context.Context) ([]Plan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Plan), args.Error(1)
}

func (m *MockRepo) Update(ctx context.Context, p *Plan) (*Plan, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepo) SetActive(ctx context.Context, id int, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockRepo) HasActiveMemberships(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestUpdatePlanBlockedByActiveMemberships(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 1).Return(&Plan{ID: 1, IsActive: true}, nil)
	repo.On("HasActiveMemberships", mock.Anything, 1).Return(true, nil)

	_, err := svc.Update(context.Background(), 1, &UpdatePlanRequest{
		Name: "Gold", PriceCents: 150000, DurationDays: 30,
	})
	assert.ErrorIs(t, err, ErrPlanHasMemberships)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePlanWithoutMemberships(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 1).Return(&Plan{ID: 1, IsActive: true}, nil)
	repo.On("HasActiveMemberships", mock.Anything, 1).Return(false, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Plan) bool {
		return p.ID == 1 && p.PriceCents == 150000
	})).Return(&Plan{ID: 1, Name: "Gold", PriceCents: 150000}, nil)

	updated, err := svc.Update(context.Background(), 1, &UpdatePlanRequest{
		Name: "Gold", PriceCents: 150000, DurationDays: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(150000), updated.PriceCents)
}

func TestToggleDeactivateBlockedByActiveMemberships(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 2).Return(&Plan{ID: 2, IsActive: true}, nil)
	repo.On("HasActiveMemberships", mock.Anything, 2).Return(true, nil)

	_, err := svc.ToggleActive(context.Background(), 2)
	assert.ErrorIs(t, err, ErrPlanHasMemberships)
	repo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleReactivateSkipsMembershipCheck(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 2).Return(&Plan{ID: 2, IsActive: false}, nil).Once()
	repo.On("SetActive", mock.Anything, 2, true).Return(nil)
	repo.On("GetByID", mock.Anything, 2).Return(&Plan{ID: 2, IsActive: true}, nil)

	updated, err := svc.ToggleActive(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	repo.AssertNotCalled(t, "HasActiveMemberships", mock.Anything, mock.Anything)
}

func TestPlanNotFound(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
