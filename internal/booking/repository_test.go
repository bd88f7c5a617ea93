package booking

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
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func sessionInfoRows(capacity int, start time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "capacity", "start_date"}).
		AddRow(5, "Morning Yoga", capacity, start)
}

func TestCreateExclusive_BooksUnderLock(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Now().Add(24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, capacity, start_date FROM sessions WHERE id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sessionInfoRows(15, start))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE session_id = $1 AND status != 'cancelled'")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(14))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE member_id = $1 AND session_id = $2 AND status != 'cancelled'")).
		WithArgs(1, 5).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (member_id, session_id, status)")).
		WithArgs(1, 5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "member_id", "session_id", "status", "created_at", "updated_at",
		}).AddRow(20, 1, 5, "booked", time.Now(), time.Now()))
	mock.ExpectCommit()

	created, err := repo.CreateExclusive(context.Background(), 1, 5)
	require.NoError(t, err)
	require.Equal(t, 20, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExclusive_FullSessionRollsBack(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Now().Add(24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sessionInfoRows(15, start))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))
	mock.ExpectRollback()

	_, err := repo.CreateExclusive(context.Background(), 1, 5)
	require.ErrorIs(t, err, ErrSessionFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExclusive_DuplicateRollsBack(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Now().Add(24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sessionInfoRows(15, start))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(1, 5).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.CreateExclusive(context.Background(), 1, 5)
	require.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestCreateExclusive_RebooksAfterCancellation(t *testing.T) {
	// The duplicate check skips cancelled rows, so a member whose only
	// booking for the session was cancelled can book it again.
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Now().Add(24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sessionInfoRows(15, start))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE member_id = $1 AND session_id = $2 AND status != 'cancelled'")).
		WithArgs(1, 5).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (member_id, session_id, status)")).
		WithArgs(1, 5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "member_id", "session_id", "status", "created_at", "updated_at",
		}).AddRow(21, 1, 5, "booked", time.Now(), time.Now()))
	mock.ExpectCommit()

	created, err := repo.CreateExclusive(context.Background(), 1, 5)
	require.NoError(t, err)
	require.Equal(t, StatusBooked, created.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExclusive_StartedSessionRollsBack(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sessionInfoRows(15, time.Now().Add(-time.Hour)))
	mock.ExpectRollback()

	_, err := repo.CreateExclusive(context.Background(), 1, 5)
	require.ErrorIs(t, err, ErrSessionStarted)
}

func TestEligibleMembersExcludesBooked(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.member_id = m.id AND b.session_id = $1 AND b.status != 'cancelled'")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Sam Carter").
			AddRow(2, "Laila Hassan"))

	members, err := repo.EligibleMembers(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, members, 2)
}
