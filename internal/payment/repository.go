package payment

import (
	"context"

	"github.com/jmoiron/sqlx"

	"gymdesk/internal/db"
)

const paymentColumns = `id, member_id, amount_cents, method, note, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, p *Payment) (*Payment, error) {
	query := `
		INSERT INTO payments (member_id, amount_cents, method, note)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + paymentColumns

	var created Payment
	err := r.db.GetContext(ctx, &created, query, p.MemberID, p.AmountCents, p.Method, p.Note)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetAll(ctx context.Context) ([]PaymentWithMember, error) {
	query := `
		SELECT p.id, p.member_id, p.amount_cents, p.method, p.note, p.created_at,
			m.name AS member_name
		FROM payments p
		JOIN members m ON m.id = p.member_id
		ORDER BY p.created_at DESC
	`

	var payments []PaymentWithMember
	err := r.db.SelectContext(ctx, &payments, query)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) GetByMember(ctx context.Context, memberID int) ([]Payment, error) {
	var payments []Payment
	err := r.db.SelectContext(ctx, &payments,
		`SELECT `+paymentColumns+` FROM payments WHERE member_id = $1 ORDER BY created_at DESC`,
		memberID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) TotalByMember(ctx context.Context, memberID int) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE member_id = $1`, memberID)
	return total, err
}

func (r *repository) MemberExists(ctx context.Context, memberID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM members WHERE id = $1)`, memberID)
}
