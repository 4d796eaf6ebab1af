package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

func TestSettingListByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM settings WHERE category = $1 ORDER BY category, key")).
		WithArgs("finance").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value", "category"}).
			AddRow(1, "tax_rate", "20", "finance"))

	settings, err := repo.List(context.Background(), "finance")
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "tax_rate", settings[0].Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingUpsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingRepository(db)

	mock.ExpectQuery("INSERT INTO settings .+ ON CONFLICT \\(key\\) DO UPDATE SET").
		WithArgs("tax_rate", "20", "number", "finance", "VAT percentage").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value", "type", "category", "description"}).
			AddRow(1, "tax_rate", "20", "number", "finance", "VAT percentage"))

	s := &model.Setting{Key: "tax_rate", Value: "20", Type: "number", Category: "finance", Description: "VAT percentage"}
	require.NoError(t, repo.Upsert(context.Background(), s))
	assert.Equal(t, int64(1), s.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingUpdateByKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE settings SET value = $1, updated_at = NOW() WHERE key = $2 RETURNING *")).
		WithArgs("25", "tax_rate").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).AddRow(1, "tax_rate", "25"))

	s, err := repo.Update(context.Background(), "tax_rate", map[string]interface{}{"value": "25"})
	require.NoError(t, err)
	assert.Equal(t, "25", s.Value)
}

func TestSettingValueNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = $1")).
		WithArgs("tax_rate").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Value(context.Background(), "tax_rate")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM settings WHERE key = $1")).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "nope"), ErrNotFound)
}
