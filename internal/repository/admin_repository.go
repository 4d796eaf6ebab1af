package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

type AdminRepository struct {
	DB *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

var adminUpdateColumns = []string{"first_name", "last_name", "email", "phone", "username"}

// GetActiveByUsername looks up an active admin for login. Disabled
// accounts are invisible here on purpose.
func (r *AdminRepository) GetActiveByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var a model.Admin
	err := r.DB.GetContext(ctx, &a,
		`SELECT * FROM admins WHERE username = $1 AND status = 'active'`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetActiveByID(ctx context.Context, id int64) (*model.Admin, error) {
	var a model.Admin
	err := r.DB.GetContext(ctx, &a,
		`SELECT * FROM admins WHERE id = $1 AND status = 'active'`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE admins SET last_login = NOW() WHERE id = $1`, id)
	return err
}

func (r *AdminRepository) UpdateProfile(ctx context.Context, id int64, fields map[string]interface{}) (*model.Admin, error) {
	set, args, err := buildSet(fields, adminUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE admins SET %s WHERE id = $%d RETURNING *`, set, len(args))

	var a model.Admin
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(&a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
