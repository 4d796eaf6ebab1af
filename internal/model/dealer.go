package model

import "time"

type Dealer struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	CompanyName  string    `db:"company_name" json:"company_name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	Address      string    `db:"address" json:"address"`
	City         string    `db:"city" json:"city"`
	Status       string    `db:"status" json:"status"` // active/suspended/pending
	TotalAds     int       `db:"total_ads" json:"total_ads"`
	TotalSales   int       `db:"total_sales" json:"total_sales"`
	TotalRevenue float64   `db:"total_revenue" json:"total_revenue"`
	Rating       float64   `db:"rating" json:"rating"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
