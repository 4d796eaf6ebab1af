package model

import "time"

// Ad is a vehicle listing placed by a dealer. dealer_name is a snapshot
// taken at creation time and is not refreshed when the dealer renames.
type Ad struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Brand       string    `db:"brand" json:"brand"`
	Model       string    `db:"model" json:"model"`
	Year        int       `db:"year" json:"year"`
	Category    string    `db:"category" json:"category"`
	DealerID    int64     `db:"dealer_id" json:"dealer_id"`
	DealerName  string    `db:"dealer_name" json:"dealer_name"`
	Status      string    `db:"status" json:"status"` // pending_payment/active/expired/rejected
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
