package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

func TestSettingUpsertCreated(t *testing.T) {
	db, mock := newMockDB(t)
	r := newRouter(NewSettingHandler(repository.NewSettingRepository(db)))

	mock.ExpectQuery("INSERT INTO settings .+ ON CONFLICT \\(key\\) DO UPDATE SET").
		WithArgs("tax_rate", "20", "number", "finance", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value", "type", "category"}).
			AddRow(1, "tax_rate", "20", "number", "finance"))

	rec := perform(t, r, http.MethodPost, "/api/settings",
		`{"key":"tax_rate","value":"20","type":"number","category":"finance"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tax_rate", body.Data.Key)
	assert.Equal(t, "20", body.Data.Value)
}

func TestSettingUpsertDefaultsTypeString(t *testing.T) {
	db, mock := newMockDB(t)
	r := newRouter(NewSettingHandler(repository.NewSettingRepository(db)))

	mock.ExpectQuery("INSERT INTO settings").
		WithArgs("site_name", "AutoMarket", "string", "general", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key"}).AddRow(2, "site_name"))

	rec := perform(t, r, http.MethodPost, "/api/settings",
		`{"key":"site_name","value":"AutoMarket","category":"general"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingGetByKeyNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := newRouter(NewSettingHandler(repository.NewSettingRepository(db)))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM settings WHERE key = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	rec := perform(t, r, http.MethodGet, "/api/settings/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Setting not found"}`, rec.Body.String())
}

func TestSettingUpdateByKey(t *testing.T) {
	db, mock := newMockDB(t)
	r := newRouter(NewSettingHandler(repository.NewSettingRepository(db)))

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE settings SET value = $1, updated_at = NOW() WHERE key = $2 RETURNING *")).
		WithArgs("25", "tax_rate").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).AddRow(1, "tax_rate", "25"))

	rec := perform(t, r, http.MethodPut, "/api/settings/tax_rate", `{"value":"25"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Value string `json:"value"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "25", body.Data.Value)
}
