package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCoversAllEntities(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	defer sqlxDB.Close()

	hit := func(id int, name string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name"}).AddRow(id, name)
	}
	empty := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name"})
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM members")).
		WithArgs("%gold%").
		WillReturnRows(hit(1, "Golda Farouk"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM trainers")).
		WithArgs("%gold%").
		WillReturnRows(empty())
	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions")).
		WithArgs("%gold%").
		WillReturnRows(empty())
	mock.ExpectQuery(regexp.QuoteMeta("FROM plans WHERE name ILIKE $1")).
		WithArgs("%gold%").
		WillReturnRows(hit(2, "Gold"))

	router := gin.New()
	router.GET("/search", NewSearchHandler(sqlxDB).Search)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?q=gold", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var results SearchResults
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Len(t, results.Members, 1)
	require.Len(t, results.Plans, 1)
	assert.Equal(t, "Gold", results.Plans[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRequiresQuery(t *testing.T) {
	router := gin.New()
	router.GET("/search", NewSearchHandler(nil).Search)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
