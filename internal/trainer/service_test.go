package trainer

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gymdesk/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, t *Trainer) (*Trainer, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trainer), args.Error(1)
}

func (m *MockRepo) GetByID(ctx context.Context, id int) (*Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trainer), args.Error(1)
}

func (m *MockRepo) GetAll(ctx context.Context) ([]Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Trainer), args.Error(1)
}

func (m *MockRepo) Update(ctx context.Context, t *Trainer) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) PhoneExists(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) HasFutureSessions(ctx context.Context, trainerID int) (bool, error) {
	args := m.Called(ctx, trainerID)
	return args.Bool(0), args.Error(1)
}

type MockStore struct{ mock.Mock }

func (m *MockStore) Upload(folder string, header *multipart.FileHeader) (string, error) {
	args := m.Called(folder, header)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Delete(folder, storedName string) error {
	return m.Called(folder, storedName).Error(0)
}

func validCreateRequest() CreateTrainerRequest {
	return CreateTrainerRequest{
		Name:        "Laila Hassan",
		Email:       "laila@example.com",
		Phone:       "+20100000002",
		DateOfBirth: "1988-09-20",
		Gender:      "female",
		Speciality:  "CrossFit",
		BasicSalary: 800000,
		HireDate:    "2023-03-01",
	}
}

func TestService_Create(t *testing.T) {
	t.Run("creates trainer", func(t *testing.T) {
		repo := new(MockRepo)
		photos := new(MockStore)

		repo.On("EmailExists", mock.Anything, "laila@example.com").Return(false, nil)
		repo.On("PhoneExists", mock.Anything, "+20100000002").Return(false, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*trainer.Trainer")).
			Return(&Trainer{ID: 1, Name: "Laila Hassan"}, nil)

		svc := NewService(repo, photos)
		tr, err := svc.Create(context.Background(), validCreateRequest(), nil)

		assert.NoError(t, err)
		assert.Equal(t, 1, tr.ID)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockRepo)
		photos := new(MockStore)

		repo.On("EmailExists", mock.Anything, mock.Anything).Return(true, nil)

		svc := NewService(repo, photos)
		_, err := svc.Create(context.Background(), validCreateRequest(), nil)

		assert.Equal(t, ErrEmailTaken, err)
	})

	t.Run("rejects bad hire date", func(t *testing.T) {
		repo := new(MockRepo)
		photos := new(MockStore)

		repo.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)
		repo.On("PhoneExists", mock.Anything, mock.Anything).Return(false, nil)

		req := validCreateRequest()
		req.HireDate = "March 1st"

		svc := NewService(repo, photos)
		_, err := svc.Create(context.Background(), req, nil)

		assert.Equal(t, ErrInvalidDate, err)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("blocked while future session exists", func(t *testing.T) {
		repo := new(MockRepo)
		photos := new(MockStore)

		repo.On("GetByID", mock.Anything, 2).Return(&Trainer{ID: 2}, nil)
		repo.On("HasFutureSessions", mock.Anything, 2).Return(true, nil)

		svc := NewService(repo, photos)
		err := svc.Delete(context.Background(), 2)

		assert.Equal(t, ErrHasFutureSessions, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("allowed once sessions are in the past", func(t *testing.T) {
		repo := new(MockRepo)
		photos := new(MockStore)

		repo.On("GetByID", mock.Anything, 2).Return(&Trainer{ID: 2, Photo: "t.jpg"}, nil)
		repo.On("HasFutureSessions", mock.Anything, 2).Return(false, nil)
		repo.On("Delete", mock.Anything, 2).Return(nil)
		photos.On("Delete", "trainers", "t.jpg").Return(nil)

		svc := NewService(repo, photos)
		err := svc.Delete(context.Background(), 2)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockRepo)
		photos := new(MockStore)

		repo.On("GetByID", mock.Anything, 9).Return(nil, errors.New("no rows"))

		svc := NewService(repo, photos)
		assert.Equal(t, ErrTrainerNotFound, svc.Delete(context.Background(), 9))
	})
}
