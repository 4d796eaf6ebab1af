package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanceListDateRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFinanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM finance_records WHERE type = $1 AND date >= $2 AND date <= $3 ORDER BY date DESC")).
		WithArgs("expense", "2025-01-01", "2025-06-30").
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "category", "amount"}).
			AddRow(1, "expense", "advertising", 400.0))

	records, err := repo.List(context.Background(), FinanceFilter{
		Type:      "expense",
		Category:  "all", // "all" must not filter
		StartDate: "2025-01-01",
		EndDate:   "2025-06-30",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "advertising", records[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinanceSummary(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFinanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT type, SUM(amount) AS total_amount, COUNT(*) AS count FROM finance_records GROUP BY type")).
		WillReturnRows(sqlmock.NewRows([]string{"type", "total_amount", "count"}).
			AddRow("income", 1000.0, 4).
			AddRow("expense", 500.0, 2))

	rows, err := repo.Summary(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1000.0, rows[0].TotalAmount)
	assert.Equal(t, 2, rows[1].Count)
}

func TestFinanceSumsByTypeCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFinanceRepository(db)

	since := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT type, category, SUM\\(amount\\) AS total_amount").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"type", "category", "total_amount"}).
			AddRow("income", "ad_payment", 1000.0).
			AddRow("expense", "advertising", 400.0))

	rows, err := repo.SumsByTypeCategory(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ad_payment", rows[0].Category)
}

func TestFinanceMonthlySums(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFinanceRepository(db)

	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT DATE_TRUNC\\('month', date\\) AS month, type, SUM\\(amount\\) AS total_amount").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"month", "type", "total_amount"}).
			AddRow(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "income", 900.0).
			AddRow(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), "income", 1100.0))

	rows, err := repo.MonthlySums(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Month.Before(rows[1].Month))
}
