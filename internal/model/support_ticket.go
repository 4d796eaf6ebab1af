package model

import "time"

type SupportTicket struct {
	ID           int64      `db:"id" json:"id"`
	TicketNumber string     `db:"ticket_number" json:"ticket_number"`
	Subject      string     `db:"subject" json:"subject"`
	Description  string     `db:"description" json:"description"`
	UserID       *int64     `db:"user_id" json:"user_id"`
	UserName     string     `db:"user_name" json:"user_name"`
	UserEmail    string     `db:"user_email" json:"user_email"`
	Priority     string     `db:"priority" json:"priority"` // low/medium/high/urgent
	Category     string     `db:"category" json:"category"`
	Status       string     `db:"status" json:"status"` // open/in_progress/resolved/closed
	AssignedTo   *string    `db:"assigned_to" json:"assigned_to"`
	ResolvedAt   *time.Time `db:"resolved_at" json:"resolved_at"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
