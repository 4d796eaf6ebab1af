package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

type UserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{DB: db}
}

type UserFilter struct {
	Role   string
	Status string
	Search string
}

var userUpdateColumns = []string{"name", "email", "phone", "role", "status", "last_login"}

func (r *UserRepository) List(ctx context.Context, f UserFilter) ([]model.User, error) {
	var w whereBuilder
	w.EqFilter("role", f.Role)
	w.EqFilter("status", f.Status)
	w.Search(f.Search, "name", "email")

	query := "SELECT * FROM users" + w.Clause() + " ORDER BY created_at DESC"

	var users []model.User
	err := r.DB.SelectContext(ctx, &users, query, w.Args()...)
	return users, err
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	const query = `
		INSERT INTO users (name, email, phone, role, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		u.Name, u.Email, u.Phone, u.Role, u.Status,
	).StructScan(u)
}

func (r *UserRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.User, error) {
	set, args, err := buildSet(fields, userUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s, updated_at = NOW() WHERE id = $%d RETURNING *`, set, len(args))

	var u model.User
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(&u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
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
