package plan

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupRepoMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestHasActiveMemberships(t *testing.T) {
	repo, mock, close := setupRepoMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE plan_id = $1 AND is_active = TRUE AND end_date >= NOW()")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	inUse, err := repo.HasActiveMemberships(context.Background(), 2)
	require.NoError(t, err)
	require.True(t, inUse)
}

func TestGetActiveOrdersByPrice(t *testing.T) {
	repo, mock, close := setupRepoMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM plans WHERE is_active = TRUE ORDER BY price_cents ASC")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price_cents", "duration_days", "is_active", "created_at", "updated_at",
		}).
			AddRow(1, "Basic", "", int64(50000), 30, true, now, now).
			AddRow(2, "Gold", "", int64(150000), 30, true, now, now))

	plans, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, "Basic", plans[0].Name)
}
