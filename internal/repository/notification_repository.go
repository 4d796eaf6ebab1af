package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

type NotificationRepository struct {
	DB *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

// NotificationFilter narrows the notification list. IsRead is tri-state:
// nil means unfiltered.
type NotificationFilter struct {
	UserID string
	IsRead *bool
	Type   string
}

func (r *NotificationRepository) List(ctx context.Context, f NotificationFilter) ([]model.Notification, error) {
	var w whereBuilder
	if f.UserID != "" {
		w.Eq("user_id", f.UserID)
	}
	if f.IsRead != nil {
		w.Eq("is_read", *f.IsRead)
	}
	w.EqFilter("type", f.Type)

	query := "SELECT * FROM notifications" + w.Clause() + " ORDER BY created_at DESC"

	var notes []model.Notification
	err := r.DB.SelectContext(ctx, &notes, query, w.Args()...)
	return notes, err
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	var n model.Notification
	err := r.DB.GetContext(ctx, &n, `SELECT * FROM notifications WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	const query = `
		INSERT INTO notifications (user_id, title, message, type, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		n.UserID, n.Title, n.Message, n.Type, n.Link,
	).StructScan(n)
}

// MarkRead flips is_read on a single notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64, isRead bool) (*model.Notification, error) {
	var n model.Notification
	err := r.DB.QueryRowxContext(ctx,
		`UPDATE notifications SET is_read = $1 WHERE id = $2 RETURNING *`, isRead, id,
	).StructScan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkAllRead flips every unread notification of one user. Succeeds even
// when the user has none.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`, userID)
	return err
}

func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
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
