package attendance

import (
	"context"

	"github.com/jmoiron/sqlx"

	"gymdesk/internal/db"
)

const attendanceColumns = `id, member_id, check_in_time, check_out_time`

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) CheckIn(ctx context.Context, memberID int) (*Attendance, error) {
	query := `
		INSERT INTO attendance (member_id)
		VALUES ($1)
		RETURNING ` + attendanceColumns

	var a Attendance
	err := r.db.GetContext(ctx, &a, query, memberID)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) CheckOut(ctx context.Context, id int) (*Attendance, error) {
	query := `
		UPDATE attendance
		SET check_out_time = NOW()
		WHERE id = $1
		RETURNING ` + attendanceColumns

	var a Attendance
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) GetOpenByMember(ctx context.Context, memberID int) (*Attendance, error) {
	var a Attendance
	err := r.db.GetContext(ctx, &a,
		`SELECT `+attendanceColumns+` FROM attendance
		 WHERE member_id = $1 AND check_out_time IS NULL`, memberID)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) GetByMember(ctx context.Context, memberID int) ([]Attendance, error) {
	var visits []Attendance
	err := r.db.SelectContext(ctx, &visits,
		`SELECT `+attendanceColumns+` FROM attendance
		 WHERE member_id = $1 ORDER BY check_in_time DESC`, memberID)
	if err != nil {
		return nil, err
	}

	return visits, nil
}

func (r *repository) GetOpen(ctx context.Context) ([]AttendanceWithMember, error) {
	query := `
		SELECT a.id, a.member_id, a.check_in_time, a.check_out_time,
			m.name AS member_name
		FROM attendance a
		JOIN members m ON m.id = a.member_id
		WHERE a.check_out_time IS NULL
		ORDER BY a.check_in_time ASC
	`

	var visits []AttendanceWithMember
	err := r.db.SelectContext(ctx, &visits, query)
	if err != nil {
		return nil, err
	}

	return visits, nil
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
