package session

import (
	"context"

	"github.com/jmoiron/sqlx"

	"gymdesk/internal/db"
)

const sessionColumns = `id, title, description, trainer_id, category_id, start_date, end_date, capacity, created_at, updated_at`

const detailColumns = `
	s.id, s.title, s.description, s.trainer_id, s.category_id,
	s.start_date, s.end_date, s.capacity, s.created_at, s.updated_at,
	t.name AS trainer_name,
	c.name AS category_name,
	COUNT(b.id) FILTER (WHERE b.status != 'cancelled') AS booked_count`

const detailJoins = `
	FROM sessions s
	JOIN trainers t ON t.id = s.trainer_id
	JOIN categories c ON c.id = s.category_id
	LEFT JOIN bookings b ON b.session_id = s.id`

const detailGroupBy = ` GROUP BY s.id, t.name, c.name`

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, s *Session) (*Session, error) {
	query := `
		INSERT INTO sessions (title, description, trainer_id, category_id, start_date, end_date, capacity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + sessionColumns

	var created Session
	err := r.db.GetContext(ctx, &created, query,
		s.Title, s.Description, s.TrainerID, s.CategoryID, s.StartDate, s.EndDate, s.Capacity)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Session, error) {
	var s Session
	err := r.db.GetContext(ctx, &s, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetWithDetails(ctx context.Context, id int) (*SessionWithDetails, error) {
	query := `SELECT ` + detailColumns + detailJoins + ` WHERE s.id = $1` + detailGroupBy

	var s SessionWithDetails
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetAll(ctx context.Context) ([]SessionWithDetails, error) {
	query := `SELECT ` + detailColumns + detailJoins + detailGroupBy + ` ORDER BY s.start_date DESC`

	var sessions []SessionWithDetails
	err := r.db.SelectContext(ctx, &sessions, query)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *repository) GetUpcoming(ctx context.Context) ([]SessionWithDetails, error) {
	query := `SELECT ` + detailColumns + detailJoins +
		` WHERE s.start_date > NOW()` + detailGroupBy + ` ORDER BY s.start_date ASC`

	var sessions []SessionWithDetails
	err := r.db.SelectContext(ctx, &sessions, query)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *repository) Update(ctx context.Context, s *Session) (*Session, error) {
	query := `
		UPDATE sessions
		SET title = $1, description = $2, trainer_id = $3, category_id = $4,
			start_date = $5, end_date = $6, capacity = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + sessionColumns

	var updated Session
	err := r.db.GetContext(ctx, &updated, query,
		s.Title, s.Description, s.TrainerID, s.CategoryID, s.StartDate, s.EndDate, s.Capacity, s.ID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (r *repository) BookedCount(ctx context.Context, id int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bookings WHERE session_id = $1 AND status != 'cancelled'`, id)
	return count, err
}

func (r *repository) TrainerExists(ctx context.Context, trainerID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM trainers WHERE id = $1)`, trainerID)
}

func (r *repository) CategoryExists(ctx context.Context, categoryID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, categoryID)
}
