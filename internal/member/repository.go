package member

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const memberColumns = `id, name, email, phone, date_of_birth, gender, street, city, building_number,
		photo, height_cm, weight_kg, blood_type, health_note, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) (*Member, error) {
	query := `
		INSERT INTO members (name, email, phone, date_of_birth, gender, street, city, building_number,
			photo, height_cm, weight_kg, blood_type, health_note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + memberColumns

	var created Member
	err := r.db.GetContext(ctx, &created, query,
		m.Name, m.Email, m.Phone, m.DateOfBirth, m.Gender, m.Street, m.City, m.BuildingNumber,
		m.Photo, m.HeightCm, m.WeightKg, m.BloodType, m.HealthNote)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE id = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetWithMembership(ctx context.Context, id int) (*MemberWithMembership, error) {
	query := `
		SELECT
			m.id, m.name, m.email, m.phone, m.date_of_birth, m.gender, m.street, m.city,
			m.building_number, m.photo, m.height_cm, m.weight_kg, m.blood_type, m.health_note,
			m.created_at, m.updated_at,
			p.name AS plan_name,
			ms.end_date AS membership_end_date
		FROM members m
		LEFT JOIN memberships ms
			ON ms.member_id = m.id AND ms.is_active = TRUE AND ms.end_date >= NOW()
		LEFT JOIN plans p ON p.id = ms.plan_id
		WHERE m.id = $1
	`

	var m MemberWithMembership
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		ORDER BY created_at DESC
	`

	var members []Member
	err := r.db.SelectContext(ctx, &members, query)
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) Update(ctx context.Context, m *Member) error {
	query := `
		UPDATE members
		SET name = $1, phone = $2, street = $3, city = $4, building_number = $5,
			photo = $6, height_cm = $7, weight_kg = $8, blood_type = $9, health_note = $10,
			updated_at = NOW()
		WHERE id = $11
	`

	_, err := r.db.ExecContext(ctx, query,
		m.Name, m.Phone, m.Street, m.City, m.BuildingNumber,
		m.Photo, m.HeightCm, m.WeightKg, m.BloodType, m.HealthNote, m.ID)
	return err
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	return err
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE LOWER(email) = LOWER($1))`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE phone = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, phone)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) HasFutureSessionBookings(ctx context.Context, memberID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings b
			JOIN sessions s ON s.id = b.session_id
			WHERE b.member_id = $1 AND b.status != 'cancelled' AND s.start_date > NOW()
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, memberID)
	if err != nil {
		return false, err
	}

	return exists, nil
}
