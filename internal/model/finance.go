package model

import "time"

// FinanceRecord is a single income or expense entry. Unlike the other
// resources its values feed aggregates, so period bucketing uses the
// business date column rather than created_at.
type FinanceRecord struct {
	ID            int64     `db:"id" json:"id"`
	Type          string    `db:"type" json:"type"` // income/expense
	Category      string    `db:"category" json:"category"`
	Amount        float64   `db:"amount" json:"amount"`
	Description   string    `db:"description" json:"description"`
	ReferenceID   *int64    `db:"reference_id" json:"reference_id"`
	ReferenceType string    `db:"reference_type" json:"reference_type"`
	Date          time.Time `db:"date" json:"date"`
	CreatedBy     string    `db:"created_by" json:"created_by"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// FinanceSummaryRow is one GROUP BY type line of the summary endpoint.
type FinanceSummaryRow struct {
	Type        string  `db:"type" json:"type"`
	TotalAmount float64 `db:"total_amount" json:"total_amount"`
	Count       int     `db:"count" json:"count"`
}

// FinanceDashboard is the derived tax/profit view for one period.
type FinanceDashboard struct {
	Revenue       float64            `json:"revenue"`
	Expenses      map[string]float64 `json:"expenses"`
	TotalExpenses float64            `json:"totalExpenses"`
	TaxRate       float64            `json:"taxRate"`
	Tax           float64            `json:"tax"`
	NetProfit     float64            `json:"netProfit"`
	ProfitMargin  float64            `json:"profitMargin"`
}

// MonthlyTrendRow is one month of the trend report, profit computed with
// the current tax rate.
type MonthlyTrendRow struct {
	Month    string  `json:"month"` // YYYY-MM
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Tax      float64 `json:"tax"`
	Profit   float64 `json:"profit"`
}
