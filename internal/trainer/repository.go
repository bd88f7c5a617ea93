package trainer

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const trainerColumns = `id, name, email, phone, date_of_birth, gender, street, city, building_number,
		photo, speciality, basic_salary_cents, hire_date, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Trainer) (*Trainer, error) {
	query := `
		INSERT INTO trainers (name, email, phone, date_of_birth, gender, street, city, building_number,
			photo, speciality, basic_salary_cents, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + trainerColumns

	var created Trainer
	err := r.db.GetContext(ctx, &created, query,
		t.Name, t.Email, t.Phone, t.DateOfBirth, t.Gender, t.Street, t.City, t.BuildingNumber,
		t.Photo, t.Speciality, t.BasicSalary, t.HireDate)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT ` + trainerColumns + `
		FROM trainers
		WHERE id = $1
	`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Trainer, error) {
	query := `
		SELECT ` + trainerColumns + `
		FROM trainers
		ORDER BY created_at DESC
	`

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *repository) Update(ctx context.Context, t *Trainer) error {
	query := `
		UPDATE trainers
		SET name = $1, phone = $2, street = $3, city = $4, building_number = $5,
			photo = $6, speciality = $7, basic_salary_cents = $8, updated_at = NOW()
		WHERE id = $9
	`

	_, err := r.db.ExecContext(ctx, query,
		t.Name, t.Phone, t.Street, t.City, t.BuildingNumber,
		t.Photo, t.Speciality, t.BasicSalary, t.ID)
	return err
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	return err
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM trainers WHERE LOWER(email) = LOWER($1))`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM trainers WHERE phone = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, phone)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) HasFutureSessions(ctx context.Context, trainerID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM sessions
			WHERE trainer_id = $1 AND start_date > NOW()
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, trainerID)
	if err != nil {
		return false, err
	}

	return exists, nil
}
