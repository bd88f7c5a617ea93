package user

import (
	"context"

	"github.com/jmoiron/sqlx"

	"gymdesk/internal/db"
)

const userColumns = `id, name, email, password_hash, role, is_suspended, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash, role string) (*User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u,
		`SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) GetAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.SelectContext(ctx, &users,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *repository) UpdateRole(ctx context.Context, id int, role string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`, role, id)
	return err
}

func (r *repository) SetSuspended(ctx context.Context, id int, suspended bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_suspended = $1, updated_at = NOW() WHERE id = $2`, suspended, id)
	return err
}

func (r *repository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	return err
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email)
}
