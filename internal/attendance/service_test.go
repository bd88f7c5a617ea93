package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) CheckIn(ctx context.Context, memberID int) (*Attendance, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Attendance), args.Error(1)
}

func (m *MockRepo) CheckOut(ctx context.Context, id int) (*Attendance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Attendance), args.Error(1)
}

func (m *MockRepo) GetOpenByMember(ctx context.Context, memberID int) (*Attendance, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Attendance), args.Error(1)
}

func (m *MockRepo) GetByMember(ctx context.Context, memberID int) ([]Attendance, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).([]Attendance), args.Error(1)
}

func (m *MockRepo) GetOpen(ctx context.Context) ([]AttendanceWithMember, error) {
	args := m.Called(ctx)
	return args.Get(0).([]AttendanceWithMember), args.Error(1)
}

func (m *MockRepo) MemberExists(ctx context.Context, memberID int) (bool, error) {
	args := m.Called(ctx, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) MemberHasActiveMembership(ctx context.Context, memberID int) (bool, error) {
	args := m.Called(ctx, memberID)
	return args.Bool(0), args.Error(1)
}

func TestCheckInOK(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("MemberExists", mock.Anything, 1).Return(true, nil)
	repo.On("MemberHasActiveMembership", mock.Anything, 1).Return(true, nil)
	repo.On("GetOpenByMember", mock.Anything, 1).Return(nil, sql.ErrNoRows)
	repo.On("CheckIn", mock.Anything, 1).Return(&Attendance{ID: 30, MemberID: 1}, nil)

	visit, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 30, visit.ID)
}

func TestCheckInWithoutMembership(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("MemberExists", mock.Anything, 1).Return(true, nil)
	repo.On("MemberHasActiveMembership", mock.Anything, 1).Return(false, nil)

	_, err := svc.CheckIn(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoActiveMembership)
	repo.AssertNotCalled(t, "CheckIn", mock.Anything, mock.Anything)
}

func TestCheckInTwiceRejected(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("MemberExists", mock.Anything, 1).Return(true, nil)
	repo.On("MemberHasActiveMembership", mock.Anything, 1).Return(true, nil)
	repo.On("GetOpenByMember", mock.Anything, 1).Return(&Attendance{ID: 30, MemberID: 1}, nil)

	_, err := svc.CheckIn(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestCheckOutStampsOpenVisit(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	out := time.Now()

	repo.On("MemberExists", mock.Anything, 1).Return(true, nil)
	repo.On("GetOpenByMember", mock.Anything, 1).Return(&Attendance{ID: 30, MemberID: 1}, nil)
	repo.On("CheckOut", mock.Anything, 30).Return(&Attendance{
		ID: 30, MemberID: 1, CheckOutTime: &out,
	}, nil)

	visit, err := svc.CheckOut(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, visit.CheckOutTime)
}

func TestCheckOutWithoutOpenVisit(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("MemberExists", mock.Anything, 1).Return(true, nil)
	repo.On("GetOpenByMember", mock.Anything, 1).Return(nil, sql.ErrNoRows)

	_, err := svc.CheckOut(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotCheckedIn)
}

func TestCheckInUnknownMember(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("MemberExists", mock.Anything, 99).Return(false, nil)

	_, err := svc.CheckIn(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
