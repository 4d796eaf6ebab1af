package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

type FinanceRepository struct {
	DB *sqlx.DB
}

func NewFinanceRepository(db *sqlx.DB) *FinanceRepository {
	return &FinanceRepository{DB: db}
}

type FinanceFilter struct {
	Type      string
	Category  string
	StartDate string
	EndDate   string
}

// TypeCategorySum is one GROUP BY (type, category) aggregate row.
type TypeCategorySum struct {
	Type        string  `db:"type"`
	Category    string  `db:"category"`
	TotalAmount float64 `db:"total_amount"`
}

// MonthTypeSum is one GROUP BY (month, type) aggregate row.
type MonthTypeSum struct {
	Month       time.Time `db:"month"`
	Type        string    `db:"type"`
	TotalAmount float64   `db:"total_amount"`
}

var financeUpdateColumns = []string{"type", "category", "amount", "description", "date"}

// List orders by the business date instead of created_at; finance records
// are bucketed by when the money moved.
func (r *FinanceRepository) List(ctx context.Context, f FinanceFilter) ([]model.FinanceRecord, error) {
	var w whereBuilder
	w.EqFilter("type", f.Type)
	w.EqFilter("category", f.Category)
	w.Cmp("date", ">=", f.StartDate)
	w.Cmp("date", "<=", f.EndDate)

	query := "SELECT * FROM finance_records" + w.Clause() + " ORDER BY date DESC"

	var records []model.FinanceRecord
	err := r.DB.SelectContext(ctx, &records, query, w.Args()...)
	return records, err
}

func (r *FinanceRepository) GetByID(ctx context.Context, id int64) (*model.FinanceRecord, error) {
	var rec model.FinanceRecord
	err := r.DB.GetContext(ctx, &rec, `SELECT * FROM finance_records WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *FinanceRepository) Create(ctx context.Context, rec *model.FinanceRecord) error {
	const query = `
		INSERT INTO finance_records (type, category, amount, description, reference_id, reference_type, date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		rec.Type, rec.Category, rec.Amount, rec.Description,
		rec.ReferenceID, rec.ReferenceType, rec.Date, rec.CreatedBy,
	).StructScan(rec)
}

func (r *FinanceRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.FinanceRecord, error) {
	set, args, err := buildSet(fields, financeUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE finance_records SET %s WHERE id = $%d RETURNING *`, set, len(args))

	var rec model.FinanceRecord
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(&rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *FinanceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM finance_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary sums amounts per type over an optional date range.
func (r *FinanceRepository) Summary(ctx context.Context, startDate, endDate string) ([]model.FinanceSummaryRow, error) {
	var w whereBuilder
	w.Cmp("date", ">=", startDate)
	w.Cmp("date", "<=", endDate)

	query := `SELECT type, SUM(amount) AS total_amount, COUNT(*) AS count FROM finance_records` +
		w.Clause() + ` GROUP BY type`

	var rows []model.FinanceSummaryRow
	err := r.DB.SelectContext(ctx, &rows, query, w.Args()...)
	return rows, err
}

// SumsByTypeCategory aggregates records on or after since, grouped by
// (type, category). The tax/profit arithmetic happens in the service.
func (r *FinanceRepository) SumsByTypeCategory(ctx context.Context, since time.Time) ([]TypeCategorySum, error) {
	const query = `
		SELECT type, category, SUM(amount) AS total_amount
		FROM finance_records
		WHERE date >= $1
		GROUP BY type, category`

	var rows []TypeCategorySum
	err := r.DB.SelectContext(ctx, &rows, query, since)
	return rows, err
}

// MonthlySums aggregates records on or after since into calendar-month
// buckets per type, oldest month first.
func (r *FinanceRepository) MonthlySums(ctx context.Context, since time.Time) ([]MonthTypeSum, error) {
	const query = `
		SELECT DATE_TRUNC('month', date) AS month, type, SUM(amount) AS total_amount
		FROM finance_records
		WHERE date >= $1
		GROUP BY DATE_TRUNC('month', date), type
		ORDER BY month ASC`

	var rows []MonthTypeSum
	err := r.DB.SelectContext(ctx, &rows, query, since)
	return rows, err
}
