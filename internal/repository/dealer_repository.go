package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

type DealerRepository struct {
	DB *sqlx.DB
}

func NewDealerRepository(db *sqlx.DB) *DealerRepository {
	return &DealerRepository{DB: db}
}

type DealerFilter struct {
	Status string
	Search string
}

var dealerUpdateColumns = []string{
	"name", "company_name", "email", "phone", "address", "city", "status",
	"total_ads", "total_sales", "total_revenue", "rating",
}

func (r *DealerRepository) List(ctx context.Context, f DealerFilter) ([]model.Dealer, error) {
	var w whereBuilder
	w.EqFilter("status", f.Status)
	w.Search(f.Search, "name", "company_name", "email")

	query := "SELECT * FROM dealers" + w.Clause() + " ORDER BY created_at DESC"

	var dealers []model.Dealer
	err := r.DB.SelectContext(ctx, &dealers, query, w.Args()...)
	return dealers, err
}

func (r *DealerRepository) GetByID(ctx context.Context, id int64) (*model.Dealer, error) {
	var d model.Dealer
	err := r.DB.GetContext(ctx, &d, `SELECT * FROM dealers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DealerRepository) Create(ctx context.Context, d *model.Dealer) error {
	const query = `
		INSERT INTO dealers (name, company_name, email, phone, address, city, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		d.Name, d.CompanyName, d.Email, d.Phone, d.Address, d.City, d.Status,
	).StructScan(d)
}

func (r *DealerRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.Dealer, error) {
	set, args, err := buildSet(fields, dealerUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE dealers SET %s, updated_at = NOW() WHERE id = $%d RETURNING *`, set, len(args))

	var d model.Dealer
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(&d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DealerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM dealers WHERE id = $1`, id)
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
