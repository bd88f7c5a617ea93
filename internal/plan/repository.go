package plan

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const planColumns = `id, name, description, price_cents, duration_days, is_active, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Plan) (*Plan, error) {
	query := `
		INSERT INTO plans (name, description, price_cents, duration_days)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + planColumns

	var created Plan
	err := r.db.GetContext(ctx, &created, query, p.Name, p.Description, p.PriceCents, p.DurationDays)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Plan, error) {
	var p Plan
	err := r.db.GetContext(ctx, &p, `SELECT `+planColumns+` FROM plans WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	err := r.db.SelectContext(ctx, &plans, `SELECT `+planColumns+` FROM plans ORDER BY price_cents ASC`)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) GetActive(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	err := r.db.SelectContext(ctx, &plans,
		`SELECT `+planColumns+` FROM plans WHERE is_active = TRUE ORDER BY price_cents ASC`)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) Update(ctx context.Context, p *Plan) (*Plan, error) {
	query := `
		UPDATE plans
		SET name = $1, description = $2, price_cents = $3, duration_days = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + planColumns

	var updated Plan
	err := r.db.GetContext(ctx, &updated, query, p.Name, p.Description, p.PriceCents, p.DurationDays, p.ID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) SetActive(ctx context.Context, id int, active bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE plans SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	return err
}

func (r *repository) HasActiveMemberships(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM memberships
			WHERE plan_id = $1 AND is_active = TRUE AND end_date >= NOW()
		)`, id)
	return exists, err
}
