package category

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrCategoryInUse = errors.New("category has sessions")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, name string, iconURL *string) (*Category, error) {
	query := `
		INSERT INTO categories (name, icon_url)
		VALUES ($1, $2)
		RETURNING id, name, icon_url, created_at
	`

	var c Category
	err := r.db.GetContext(ctx, &c, query, name, iconURL)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]Category, error) {
	query := `
		SELECT id, name, icon_url, created_at
		FROM categories
		ORDER BY name ASC
	`

	var categories []Category
	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*Category, error) {
	query := `
		SELECT id, name, icon_url, created_at
		FROM categories
		WHERE id = $1
	`

	var c Category
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	var inUse bool
	err := r.db.GetContext(ctx, &inUse,
		`SELECT EXISTS(SELECT 1 FROM sessions WHERE category_id = $1)`, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCategoryInUse
	}

	_, err = r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}
