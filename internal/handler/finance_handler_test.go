package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/service"
)

func newFinanceRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	repo := repository.NewFinanceRepository(db)
	svc := service.NewFinanceService(repo, repository.NewSettingRepository(db))
	return newRouter(NewFinanceHandler(repo, svc)), mock
}

func TestFinanceDashboard(t *testing.T) {
	r, mock := newFinanceRouter(t)

	mock.ExpectQuery("SELECT type, category, SUM\\(amount\\) AS total_amount").
		WillReturnRows(sqlmock.NewRows([]string{"type", "category", "total_amount"}).
			AddRow("income", "ad_payment", 1000.0).
			AddRow("expense", "advertising", 400.0).
			AddRow("expense", "hosting", 100.0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = $1")).
		WithArgs("tax_rate").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("18"))

	rec := perform(t, r, http.MethodGet, "/api/finance/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Revenue       float64            `json:"revenue"`
			Expenses      map[string]float64 `json:"expenses"`
			TotalExpenses float64            `json:"totalExpenses"`
			TaxRate       float64            `json:"taxRate"`
			Tax           float64            `json:"tax"`
			NetProfit     float64            `json:"netProfit"`
			ProfitMargin  float64            `json:"profitMargin"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1000.0, body.Data.Revenue)
	assert.Equal(t, 500.0, body.Data.TotalExpenses)
	assert.Equal(t, 180.0, body.Data.Tax)
	assert.Equal(t, 320.0, body.Data.NetProfit)
	assert.Equal(t, 32.0, body.Data.ProfitMargin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinanceMonthlyTrend(t *testing.T) {
	r, mock := newFinanceRouter(t)

	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT DATE_TRUNC\\('month', date\\) AS month").
		WillReturnRows(sqlmock.NewRows([]string{"month", "type", "total_amount"}).
			AddRow(march, "income", 900.0).
			AddRow(march, "expense", 200.0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = $1")).
		WithArgs("tax_rate").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("18"))

	rec := perform(t, r, http.MethodGet, "/api/finance/monthly-trend", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			Month   string  `json:"month"`
			Revenue float64 `json:"revenue"`
			Profit  float64 `json:"profit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "2025-03", body.Data[0].Month)
	assert.Equal(t, 900.0, body.Data[0].Revenue)
	assert.Equal(t, 538.0, body.Data[0].Profit)
}

// /finance/summary must route to the aggregate, not be swallowed by /finance/:id.
func TestFinanceSummaryRouting(t *testing.T) {
	r, mock := newFinanceRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT type, SUM(amount) AS total_amount, COUNT(*) AS count FROM finance_records GROUP BY type")).
		WillReturnRows(sqlmock.NewRows([]string{"type", "total_amount", "count"}).
			AddRow("income", 1000.0, 4))

	rec := perform(t, r, http.MethodGet, "/api/finance/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			Type        string  `json:"type"`
			TotalAmount float64 `json:"total_amount"`
			Count       int     `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "income", body.Data[0].Type)
}

func TestFinanceListFallbackDefaults(t *testing.T) {
	r, mock := newFinanceRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM finance_records ORDER BY date DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rec := perform(t, r, http.MethodGet, "/api/finance?type=all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": []}`, rec.Body.String())
}
