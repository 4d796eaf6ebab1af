package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

// SettingRepository is the key-addressed variant of the CRUD pattern:
// rows are looked up by their unique key and created via upsert.
type SettingRepository struct {
	DB *sqlx.DB
}

func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

var settingUpdateColumns = []string{"value", "description"}

func (r *SettingRepository) List(ctx context.Context, category string) ([]model.Setting, error) {
	var w whereBuilder
	w.EqFilter("category", category)

	query := "SELECT * FROM settings" + w.Clause() + " ORDER BY category, key"

	var settings []model.Setting
	err := r.DB.SelectContext(ctx, &settings, query, w.Args()...)
	return settings, err
}

func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*model.Setting, error) {
	var s model.Setting
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM settings WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert inserts the setting or replaces an existing one with the same key.
func (r *SettingRepository) Upsert(ctx context.Context, s *model.Setting) error {
	const query = `
		INSERT INTO settings (key, value, type, category, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			type = EXCLUDED.type,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		s.Key, s.Value, s.Type, s.Category, s.Description,
	).StructScan(s)
}

func (r *SettingRepository) Update(ctx context.Context, key string, fields map[string]interface{}) (*model.Setting, error) {
	set, args, err := buildSet(fields, settingUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, key)

	query := fmt.Sprintf(`UPDATE settings SET %s, updated_at = NOW() WHERE key = $%d RETURNING *`, set, len(args))

	var s model.Setting
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(&s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM settings WHERE key = $1`, key)
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

// Value returns the raw value for key, or ErrNotFound when unset.
func (r *SettingRepository) Value(ctx context.Context, key string) (string, error) {
	var value string
	err := r.DB.GetContext(ctx, &value, `SELECT value FROM settings WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
