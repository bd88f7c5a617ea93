package user

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/auth"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id int, role string) (*User, error)
	SetSuspended(ctx context.Context, id int, suspended bool) (*User, error)
	ChangePassword(ctx context.Context, userID int, req ChangePasswordRequest) error
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{repo: repo, jwtSecret: jwtSecret}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	role := req.Role
	if role == "" {
		role = RoleStaff
	}

	created, err := s.repo.Create(ctx, req.Name, req.Email, passwordHash, role)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(created.ID, created.Email, created.Role, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if u.IsSuspended {
		return nil, "", ErrAccountSuspended
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.getExisting(ctx, userID)
}

func (s *service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) UpdateRole(ctx context.Context, id int, role string) (*User, error) {
	if _, err := s.getExisting(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *service) SetSuspended(ctx context.Context, id int, suspended bool) (*User, error) {
	if _, err := s.getExisting(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.SetSuspended(ctx, id, suspended); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *service) ChangePassword(ctx context.Context, userID int, req ChangePasswordRequest) error {
	u, err := s.getExisting(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(u.PasswordHash, req.CurrentPassword) {
		return ErrWrongPassword
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *service) getExisting(ctx context.Context, id int) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
