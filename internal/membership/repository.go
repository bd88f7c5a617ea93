package membership

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"gymdesk/internal/db"
)

// ErrActiveMembershipExists is raised inside the enrollment
// transaction when the member already holds a live membership.
var ErrActiveMembershipExists = errors.New("member already has an active membership")

const membershipColumns = `id, member_id, plan_id, start_date, end_date, is_active, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

// CreateExclusive enrolls the member inside a transaction. The member
// row is locked first so two concurrent enrollments for the same
// member serialize, then the one-active-membership rule is checked
// under that lock.
func (r *repository) CreateExclusive(ctx context.Context, m *Membership) (*Membership, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var memberID int
	err = tx.QueryRowxContext(ctx,
		`SELECT id FROM members WHERE id = $1 FOR UPDATE`, m.MemberID).Scan(&memberID)
	if err != nil {
		return nil, err
	}

	var hasActive bool
	err = tx.QueryRowxContext(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM memberships
			WHERE member_id = $1 AND is_active = TRUE AND end_date >= NOW()
		)`, m.MemberID).Scan(&hasActive)
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, ErrActiveMembershipExists
	}

	var created Membership
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO memberships (member_id, plan_id, start_date, end_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+membershipColumns,
		m.MemberID, m.PlanID, m.StartDate, m.EndDate,
	).StructScan(&created)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Membership, error) {
	var m Membership
	err := r.db.GetContext(ctx, &m,
		`SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetByMember(ctx context.Context, memberID int) ([]MembershipWithDetails, error) {
	query := `
		SELECT ms.id, ms.member_id, ms.plan_id, ms.start_date, ms.end_date, ms.is_active, ms.created_at,
			m.name AS member_name, p.name AS plan_name
		FROM memberships ms
		JOIN members m ON m.id = ms.member_id
		JOIN plans p ON p.id = ms.plan_id
		WHERE ms.member_id = $1
		ORDER BY ms.start_date DESC
	`

	var memberships []MembershipWithDetails
	err := r.db.SelectContext(ctx, &memberships, query, memberID)
	if err != nil {
		return nil, err
	}

	return memberships, nil
}

func (r *repository) GetAllActive(ctx context.Context) ([]MembershipWithDetails, error) {
	query := `
		SELECT ms.id, ms.member_id, ms.plan_id, ms.start_date, ms.end_date, ms.is_active, ms.created_at,
			m.name AS member_name, p.name AS plan_name
		FROM memberships ms
		JOIN members m ON m.id = ms.member_id
		JOIN plans p ON p.id = ms.plan_id
		WHERE ms.is_active = TRUE AND ms.end_date >= NOW()
		ORDER BY ms.end_date ASC
	`

	var memberships []MembershipWithDetails
	err := r.db.SelectContext(ctx, &memberships, query)
	if err != nil {
		return nil, err
	}

	return memberships, nil
}

// Deactivate ends the membership immediately rather than deleting the
// row, so the enrollment history stays reportable.
func (r *repository) Deactivate(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET is_active = FALSE, end_date = NOW() WHERE id = $1`, id)
	return err
}

func (r *repository) GetPlanInfo(ctx context.Context, planID int) (*PlanInfo, error) {
	var p PlanInfo
	err := r.db.GetContext(ctx, &p,
		`SELECT id, name, duration_days, is_active FROM plans WHERE id = $1`, planID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) MemberExists(ctx context.Context, memberID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM members WHERE id = $1)`, memberID)
}

func (r *repository) MemberEmail(ctx context.Context, memberID int) (string, string, error) {
	var row struct {
		Name  string `db:"name"`
		Email string `db:"email"`
	}
	err := r.db.GetContext(ctx, &row,
		`SELECT name, email FROM members WHERE id = $1`, memberID)
	if err != nil {
		return "", "", err
	}

	return row.Name, row.Email, nil
}
