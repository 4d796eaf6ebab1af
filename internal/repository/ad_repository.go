package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

type AdRepository struct {
	DB *sqlx.DB
}

func NewAdRepository(db *sqlx.DB) *AdRepository {
	return &AdRepository{DB: db}
}

// AdFilter narrows the ad list. Status "all" means no status filter.
type AdFilter struct {
	Status string
	Search string
}

var adUpdateColumns = []string{"title", "description", "price", "brand", "model", "year", "category", "status"}

func (r *AdRepository) List(ctx context.Context, f AdFilter) ([]model.Ad, error) {
	var w whereBuilder
	w.EqFilter("status", f.Status)
	w.Search(f.Search, "title", "dealer_name", "brand")

	query := "SELECT * FROM ads" + w.Clause() + " ORDER BY created_at DESC"

	var ads []model.Ad
	err := r.DB.SelectContext(ctx, &ads, query, w.Args()...)
	return ads, err
}

func (r *AdRepository) GetByID(ctx context.Context, id int64) (*model.Ad, error) {
	var ad model.Ad
	err := r.DB.GetContext(ctx, &ad, `SELECT * FROM ads WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// Create inserts the ad and fills in the generated id and timestamps.
func (r *AdRepository) Create(ctx context.Context, ad *model.Ad) error {
	const query = `
		INSERT INTO ads (title, description, price, brand, model, year, category, dealer_id, dealer_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		ad.Title, ad.Description, ad.Price, ad.Brand, ad.Model, ad.Year,
		ad.Category, ad.DealerID, ad.DealerName,
	).StructScan(ad)
}

// Update applies only the columns present in fields and refreshes
// updated_at. ErrNoFields when nothing updatable was supplied.
func (r *AdRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.Ad, error) {
	set, args, err := buildSet(fields, adUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE ads SET %s, updated_at = NOW() WHERE id = $%d RETURNING *`, set, len(args))

	var ad model.Ad
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(&ad); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ad, nil
}

func (r *AdRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM ads WHERE id = $1`, id)
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
