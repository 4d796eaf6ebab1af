package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

type PaymentRepository struct {
	DB *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// PaymentFilter narrows the payment list. All three are plain presence
// filters; payments have no "all" sentinel and no text search.
type PaymentFilter struct {
	AdID     string
	DealerID string
	Status   string
}

var paymentUpdateColumns = []string{"status", "payment_method", "amount"}

func (r *PaymentRepository) List(ctx context.Context, f PaymentFilter) ([]model.Payment, error) {
	var w whereBuilder
	if f.AdID != "" {
		w.Eq("ad_id", f.AdID)
	}
	if f.DealerID != "" {
		w.Eq("dealer_id", f.DealerID)
	}
	if f.Status != "" {
		w.Eq("status", f.Status)
	}

	query := "SELECT * FROM payments" + w.Clause() + " ORDER BY created_at DESC"

	var payments []model.Payment
	err := r.DB.SelectContext(ctx, &payments, query, w.Args()...)
	return payments, err
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	var p model.Payment
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM payments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	const query = `
		INSERT INTO payments (ad_id, dealer_id, dealer_name, amount, payment_method, status, duration_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		p.AdID, p.DealerID, p.DealerName, p.Amount, p.PaymentMethod, p.Status, p.DurationDays,
	).StructScan(p)
}

// Update touches only the supplied columns. Payments carry no updated_at.
func (r *PaymentRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.Payment, error) {
	set, args, err := buildSet(fields, paymentUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE payments SET %s WHERE id = $%d RETURNING *`, set, len(args))

	var p model.Payment
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(&p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
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
