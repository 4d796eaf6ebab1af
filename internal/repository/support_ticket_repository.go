package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

type SupportTicketRepository struct {
	DB *sqlx.DB
}

func NewSupportTicketRepository(db *sqlx.DB) *SupportTicketRepository {
	return &SupportTicketRepository{DB: db}
}

type SupportTicketFilter struct {
	Status   string
	Priority string
	Category string
	Search   string
}

var supportTicketUpdateColumns = []string{"status", "priority", "assigned_to", "resolved_at"}

func (r *SupportTicketRepository) List(ctx context.Context, f SupportTicketFilter) ([]model.SupportTicket, error) {
	var w whereBuilder
	w.EqFilter("status", f.Status)
	w.EqFilter("priority", f.Priority)
	w.EqFilter("category", f.Category)
	w.Search(f.Search, "subject", "description", "ticket_number")

	query := "SELECT * FROM support_tickets" + w.Clause() + " ORDER BY created_at DESC"

	var tickets []model.SupportTicket
	err := r.DB.SelectContext(ctx, &tickets, query, w.Args()...)
	return tickets, err
}

func (r *SupportTicketRepository) GetByID(ctx context.Context, id int64) (*model.SupportTicket, error) {
	var t model.SupportTicket
	err := r.DB.GetContext(ctx, &t, `SELECT * FROM support_tickets WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SupportTicketRepository) Create(ctx context.Context, t *model.SupportTicket) error {
	const query = `
		INSERT INTO support_tickets (ticket_number, subject, description, user_id, user_name, user_email, priority, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		t.TicketNumber, t.Subject, t.Description, t.UserID, t.UserName, t.UserEmail, t.Priority, t.Category,
	).StructScan(t)
}

func (r *SupportTicketRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.SupportTicket, error) {
	set, args, err := buildSet(fields, supportTicketUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE support_tickets SET %s, updated_at = NOW() WHERE id = $%d RETURNING *`, set, len(args))

	var t model.SupportTicket
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(&t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *SupportTicketRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM support_tickets WHERE id = $1`, id)
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
