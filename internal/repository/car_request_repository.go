package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

type CarRequestRepository struct {
	DB *sqlx.DB
}

func NewCarRequestRepository(db *sqlx.DB) *CarRequestRepository {
	return &CarRequestRepository{DB: db}
}

type CarRequestFilter struct {
	Status string
	Search string
}

var carRequestUpdateColumns = []string{"status", "offers_count", "notes"}

func (r *CarRequestRepository) List(ctx context.Context, f CarRequestFilter) ([]model.CarRequest, error) {
	var w whereBuilder
	w.EqFilter("status", f.Status)
	w.Search(f.Search, "customer_name", "vehicle_brand", "customer_email")

	query := "SELECT * FROM car_requests" + w.Clause() + " ORDER BY created_at DESC"

	var reqs []model.CarRequest
	err := r.DB.SelectContext(ctx, &reqs, query, w.Args()...)
	return reqs, err
}

func (r *CarRequestRepository) GetByID(ctx context.Context, id int64) (*model.CarRequest, error) {
	var cr model.CarRequest
	err := r.DB.GetContext(ctx, &cr, `SELECT * FROM car_requests WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *CarRequestRepository) Create(ctx context.Context, cr *model.CarRequest) error {
	const query = `
		INSERT INTO car_requests (customer_name, customer_email, customer_phone, vehicle_brand, vehicle_model,
			year_min, year_max, budget_min, budget_max, preferred_category, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		cr.CustomerName, cr.CustomerEmail, cr.CustomerPhone, cr.VehicleBrand, cr.VehicleModel,
		cr.YearMin, cr.YearMax, cr.BudgetMin, cr.BudgetMax, cr.PreferredCategory, cr.Notes,
	).StructScan(cr)
}

func (r *CarRequestRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.CarRequest, error) {
	set, args, err := buildSet(fields, carRequestUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE car_requests SET %s, updated_at = NOW() WHERE id = $%d RETURNING *`, set, len(args))

	var cr model.CarRequest
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(&cr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cr, nil
}

func (r *CarRequestRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM car_requests WHERE id = $1`, id)
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
