package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

// ActivityRepository is append-only: activities are written once and read
// most-recent-first, never updated or deleted.
type ActivityRepository struct {
	DB *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.SelectContext(ctx, &activities,
		`SELECT * FROM activities ORDER BY created_at DESC LIMIT $1`, limit)
	return activities, err
}

func (r *ActivityRepository) Create(ctx context.Context, a *model.Activity) error {
	const query = `
		INSERT INTO activities (user_id, user_name, action, item, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		a.UserID, a.UserName, a.Action, a.Item, a.Type,
	).StructScan(a)
}
