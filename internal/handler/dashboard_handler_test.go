package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/service"
)

func newDashboardRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	repo := repository.NewDashboardRepository(db)
	activities := repository.NewActivityRepository(db)
	return newRouter(NewDashboardHandler(repo, activities, service.NewDashboardService(repo))), mock
}

func TestDashboardCategoryDistribution(t *testing.T) {
	r, mock := newDashboardRouter(t)

	mock.ExpectQuery("SELECT category").
		WillReturnRows(sqlmock.NewRows([]string{"category", "count", "percentage"}).
			AddRow("sedan", 60, 60.0).
			AddRow("suv", 40, 40.0))

	rec := perform(t, r, http.MethodGet, "/api/dashboard/category-distribution", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			Category   string  `json:"category"`
			Count      int     `json:"count"`
			Percentage float64 `json:"percentage"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "sedan", body.Data[0].Category)
	assert.Equal(t, 60.0, body.Data[0].Percentage)
}

func TestDashboardRecentAdsDefaultLimit(t *testing.T) {
	r, mock := newDashboardRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM ads ORDER BY created_at DESC LIMIT $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rec := perform(t, r, http.MethodGet, "/api/dashboard/recent-ads", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": []}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRecentRequestsCustomLimit(t *testing.T) {
	r, mock := newDashboardRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM car_requests ORDER BY created_at DESC LIMIT $1")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rec := perform(t, r, http.MethodGet, "/api/dashboard/recent-requests?limit=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardCreateActivity(t *testing.T) {
	r, mock := newDashboardRouter(t)

	mock.ExpectQuery("INSERT INTO activities").
		WithArgs(nil, "admin", "deleted", "Ad #7", "warning").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "action"}).
			AddRow(1, "admin", "deleted"))

	rec := perform(t, r, http.MethodPost, "/api/dashboard/activities",
		`{"user_name":"admin","action":"deleted","item":"Ad #7","type":"warning"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
