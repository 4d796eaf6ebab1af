package model

import "time"

// CarRequest is a customer's "find me a car" request.
type CarRequest struct {
	ID                int64     `db:"id" json:"id"`
	CustomerName      string    `db:"customer_name" json:"customer_name"`
	CustomerEmail     string    `db:"customer_email" json:"customer_email"`
	CustomerPhone     string    `db:"customer_phone" json:"customer_phone"`
	VehicleBrand      string    `db:"vehicle_brand" json:"vehicle_brand"`
	VehicleModel      string    `db:"vehicle_model" json:"vehicle_model"`
	YearMin           int       `db:"year_min" json:"year_min"`
	YearMax           int       `db:"year_max" json:"year_max"`
	BudgetMin         float64   `db:"budget_min" json:"budget_min"`
	BudgetMax         float64   `db:"budget_max" json:"budget_max"`
	PreferredCategory string    `db:"preferred_category" json:"preferred_category"`
	Notes             string    `db:"notes" json:"notes"`
	Status            string    `db:"status" json:"status"` // new/in_progress/matched/closed
	OffersCount       int       `db:"offers_count" json:"offers_count"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}
