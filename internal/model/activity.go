package model

import "time"

// Activity is an append-only audit line shown on the dashboard.
type Activity struct {
	ID        int64     `db:"id" json:"id"`
	UserID    *int64    `db:"user_id" json:"user_id"`
	UserName  string    `db:"user_name" json:"user_name"`
	Action    string    `db:"action" json:"action"`
	Item      string    `db:"item" json:"item"`
	Type      string    `db:"type" json:"type"` // info/warning/success/error
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
