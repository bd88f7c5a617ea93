package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"gymdesk/internal/db"
)

// Errors raised inside the booking transaction, after the session row
// lock is held.
var (
	ErrSessionFull    = errors.New("session is fully booked")
	ErrAlreadyBooked  = errors.New("member already booked this session")
	ErrSessionStarted = errors.New("session has already started")
)

const bookingColumns = `id, member_id, session_id, status, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

// CreateExclusive books the member into the session. The session row
// is locked for the duration of the transaction, so the capacity
// count and the duplicate check cannot race with a concurrent
// booking for the same session. Cancelled rows count for neither
// check, so a member can book again after cancelling.
func (r *repository) CreateExclusive(ctx context.Context, memberID, sessionID int) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var info SessionInfo
	err = tx.QueryRowxContext(ctx,
		`SELECT id, title, capacity, start_date FROM sessions WHERE id = $1 FOR UPDATE`,
		sessionID,
	).StructScan(&info)
	if err != nil {
		return nil, err
	}
	if !info.StartDate.After(time.Now()) {
		return nil, ErrSessionStarted
	}

	var booked int
	err = tx.QueryRowxContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE session_id = $1 AND status != 'cancelled'`,
		sessionID,
	).Scan(&booked)
	if err != nil {
		return nil, err
	}
	if booked >= info.Capacity {
		return nil, ErrSessionFull
	}

	var duplicate bool
	err = tx.QueryRowxContext(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE member_id = $1 AND session_id = $2 AND status != 'cancelled'
		)`,
		memberID, sessionID,
	).Scan(&duplicate)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, ErrAlreadyBooked
	}

	var created Booking
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO bookings (member_id, session_id, status)
		 VALUES ($1, $2, 'booked')
		 RETURNING `+bookingColumns,
		memberID, sessionID,
	).StructScan(&created)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetBySession(ctx context.Context, sessionID int) ([]BookingWithMember, error) {
	query := `
		SELECT b.id, b.member_id, b.session_id, b.status, b.created_at, b.updated_at,
			m.name AS member_name, m.email AS member_email
		FROM bookings b
		JOIN members m ON m.id = b.member_id
		WHERE b.session_id = $1
		ORDER BY b.created_at ASC
	`

	var bookings []BookingWithMember
	err := r.db.SelectContext(ctx, &bookings, query, sessionID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetByMember(ctx context.Context, memberID int) ([]BookingWithSession, error) {
	query := `
		SELECT b.id, b.member_id, b.session_id, b.status, b.created_at, b.updated_at,
			s.title AS session_title, s.start_date, s.end_date,
			t.name AS trainer_name
		FROM bookings b
		JOIN sessions s ON s.id = b.session_id
		JOIN trainers t ON t.id = s.trainer_id
		WHERE b.member_id = $1
		ORDER BY s.start_date DESC
	`

	var bookings []BookingWithSession
	err := r.db.SelectContext(ctx, &bookings, query, memberID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

func (r *repository) GetSessionInfo(ctx context.Context, sessionID int) (*SessionInfo, error) {
	var info SessionInfo
	err := r.db.GetContext(ctx, &info,
		`SELECT id, title, capacity, start_date FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return nil, err
	}

	return &info, nil
}

func (r *repository) MemberExists(ctx context.Context, memberID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM members WHERE id = $1)`, memberID)
}

func (r *repository) MemberHasActiveMembership(ctx context.Context, memberID int) (bool, error) {
	return db.Exists(ctx, r.db, `
		SELECT EXISTS(
			SELECT 1 FROM memberships
			WHERE member_id = $1 AND is_active = TRUE AND end_date >= NOW()
		)`, memberID)
}

func (r *repository) MemberContact(ctx context.Context, memberID int) (string, string, error) {
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

// EligibleMembers lists members who can still be booked into the
// session: active membership, no live booking on it yet.
func (r *repository) EligibleMembers(ctx context.Context, sessionID int) ([]MemberOption, error) {
	query := `
		SELECT m.id, m.name
		FROM members m
		WHERE EXISTS(
			SELECT 1 FROM memberships ms
			WHERE ms.member_id = m.id AND ms.is_active = TRUE AND ms.end_date >= NOW()
		)
		AND NOT EXISTS(
			SELECT 1 FROM bookings b
			WHERE b.member_id = m.id AND b.session_id = $1 AND b.status != 'cancelled'
		)
		ORDER BY m.name ASC
	`

	var members []MemberOption
	err := r.db.SelectContext(ctx, &members, query, sessionID)
	if err != nil {
		return nil, err
	}

	return members, nil
}
