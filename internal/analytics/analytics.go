package analytics

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Dashboard is the front page summary for staff.
type Dashboard struct {
	TotalMembers      int   `db:"total_members" json:"total_members"`
	TotalTrainers     int   `db:"total_trainers" json:"total_trainers"`
	ActiveMemberships int   `db:"active_memberships" json:"active_memberships"`
	UpcomingSessions  int   `db:"upcoming_sessions" json:"upcoming_sessions"`
	OngoingSessions   int   `db:"ongoing_sessions" json:"ongoing_sessions"`
	CompletedSessions int   `db:"completed_sessions" json:"completed_sessions"`
	CheckedInNow      int   `db:"checked_in_now" json:"checked_in_now"`
	RevenueCents      int64 `db:"revenue_cents" json:"revenue_cents"`
}

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetDashboard(ctx context.Context) (*Dashboard, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM members) AS total_members,
			(SELECT COUNT(*) FROM trainers) AS total_trainers,
			(SELECT COUNT(*) FROM memberships WHERE is_active = TRUE AND end_date >= NOW()) AS active_memberships,
			(SELECT COUNT(*) FROM sessions WHERE start_date > NOW()) AS upcoming_sessions,
			(SELECT COUNT(*) FROM sessions WHERE start_date <= NOW() AND end_date > NOW()) AS ongoing_sessions,
			(SELECT COUNT(*) FROM sessions WHERE end_date <= NOW()) AS completed_sessions,
			(SELECT COUNT(*) FROM attendance WHERE check_out_time IS NULL) AS checked_in_now,
			(SELECT COALESCE(SUM(amount_cents), 0) FROM payments) AS revenue_cents
	`

	var d Dashboard
	err := r.db.GetContext(ctx, &d, query)
	if err != nil {
		return nil, err
	}

	return &d, nil
}
