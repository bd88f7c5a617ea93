package trainer

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func trainerRows(ids ...int) *sqlmock.Rows {
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "date_of_birth", "gender", "street", "city",
		"building_number", "photo", "speciality", "basic_salary_cents", "hire_date",
		"created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(id, "Laila Hassan", "laila@example.com", "+202", now.AddDate(-35, 0, 0),
			"female", "Side St", "Giza", "4", "", "CrossFit", int64(800000), now.AddDate(-1, 0, 0), now, now)
	}
	return rows
}

func TestCreateTrainer(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trainers")).
		WillReturnRows(trainerRows(3))

	tr, err := repo.Create(context.Background(), &Trainer{
		Name:       "Laila Hassan",
		Email:      "laila@example.com",
		Phone:      "+202",
		Gender:     "female",
		Speciality: "CrossFit",
	})
	require.NoError(t, err)
	require.Equal(t, 3, tr.ID)
}

func TestHasFutureSessions(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE trainer_id = $1 AND start_date > NOW()")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	has, err := repo.HasFutureSessions(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, has)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE trainer_id = $1 AND start_date > NOW()")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	has, err = repo.HasFutureSessions(context.Background(), 3)
	require.NoError(t, err)
	require.False(t, has)
}

func TestGetAllTrainers(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM trainers ORDER BY created_at DESC")).
		WillReturnRows(trainerRows(1, 2))

	trainers, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, trainers, 2)
}
