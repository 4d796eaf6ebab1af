package model

import "time"

// Payment records a dealer paying for an ad placement. dealer_name is a
// creation-time snapshot, same as on Ad.
type Payment struct {
	ID            int64     `db:"id" json:"id"`
	AdID          int64     `db:"ad_id" json:"ad_id"`
	DealerID      int64     `db:"dealer_id" json:"dealer_id"`
	DealerName    string    `db:"dealer_name" json:"dealer_name"`
	Amount        float64   `db:"amount" json:"amount"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	Status        string    `db:"status" json:"status"` // pending/completed/failed/refunded
	DurationDays  int       `db:"duration_days" json:"duration_days"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
