package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestAdListNoFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "status", "created_at", "updated_at"}).
		AddRow(2, "newer", "active", time.Now(), time.Now()).
		AddRow(1, "older", "pending_payment", time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM ads ORDER BY created_at DESC")).
		WillReturnRows(rows)

	ads, err := repo.List(context.Background(), AdFilter{Status: "all"})
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, int64(2), ads[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdListStatusAndSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM ads WHERE status = $1 AND (title ILIKE $2 OR dealer_name ILIKE $3 OR brand ILIKE $4) ORDER BY created_at DESC")).
		WithArgs("active", "%bmw%", "%bmw%", "%bmw%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(7, "BMW 320i"))

	ads, err := repo.List(context.Background(), AdFilter{Status: "active", Search: "bmw"})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "BMW 320i", ads[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM ads WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdUpdatePartial(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE ads SET price = $1, status = $2, updated_at = NOW() WHERE id = $3 RETURNING *")).
		WithArgs(15000.0, "active", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price", "status"}).AddRow(7, 15000.0, "active"))

	ad, err := repo.Update(context.Background(), 7, map[string]interface{}{
		"price":  15000.0,
		"status": "active",
		"bogus":  "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", ad.Status)
	assert.Equal(t, 15000.0, ad.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdUpdateNoFields(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewAdRepository(db)

	_, err := repo.Update(context.Background(), 7, map[string]interface{}{"bogus": 1})
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestAdUpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE ads SET title = $1, updated_at = NOW() WHERE id = $2 RETURNING *")).
		WithArgs("x", int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), 404, map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ads WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 7))

	// second delete of the same row hits nothing
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ads WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 7), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
