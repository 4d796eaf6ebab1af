package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

// DashboardRepository runs the cross-resource read-only aggregates. Month
// boundaries are computed in SQL with date_trunc so the stats and the
// month-over-month baselines use the database clock consistently.
type DashboardRepository struct {
	DB *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

// StatCounts carries the raw numbers behind /dashboard/stats; the
// percentage deltas are derived in the service layer.
type StatCounts struct {
	TotalAds               int
	AdsThisMonth           int
	AdsLastMonth           int
	ActiveAds              int
	ActiveDealers          int
	DealersBeforeThisMonth int
	CarRequests            int
	RequestsThisMonth      int
	RequestsLastMonth      int
	MonthlyRevenue         float64
	LastMonthRevenue       float64
	PendingAds             int
	TodayPublished         int
}

func (r *DashboardRepository) StatCounts(ctx context.Context) (*StatCounts, error) {
	var c StatCounts

	queries := []struct {
		dest  interface{}
		query string
	}{
		{&c.TotalAds, `SELECT COUNT(*) FROM ads`},
		{&c.AdsThisMonth, `SELECT COUNT(*) FROM ads WHERE created_at >= date_trunc('month', CURRENT_DATE)`},
		{&c.AdsLastMonth, `SELECT COUNT(*) FROM ads
			WHERE created_at >= date_trunc('month', CURRENT_DATE - INTERVAL '1 month')
			AND created_at < date_trunc('month', CURRENT_DATE)`},
		{&c.ActiveAds, `SELECT COUNT(*) FROM ads WHERE status = 'active'`},
		{&c.ActiveDealers, `SELECT COUNT(*) FROM dealers WHERE status = 'active'`},
		{&c.DealersBeforeThisMonth, `SELECT COUNT(*) FROM dealers
			WHERE status = 'active' AND created_at < date_trunc('month', CURRENT_DATE)`},
		{&c.CarRequests, `SELECT COUNT(*) FROM car_requests`},
		{&c.RequestsThisMonth, `SELECT COUNT(*) FROM car_requests WHERE created_at >= date_trunc('month', CURRENT_DATE)`},
		{&c.RequestsLastMonth, `SELECT COUNT(*) FROM car_requests
			WHERE created_at >= date_trunc('month', CURRENT_DATE - INTERVAL '1 month')
			AND created_at < date_trunc('month', CURRENT_DATE)`},
		{&c.MonthlyRevenue, `SELECT COALESCE(SUM(amount), 0) FROM finance_records
			WHERE type = 'income' AND date >= date_trunc('month', CURRENT_DATE)`},
		{&c.LastMonthRevenue, `SELECT COALESCE(SUM(amount), 0) FROM finance_records
			WHERE type = 'income'
			AND date >= date_trunc('month', CURRENT_DATE - INTERVAL '1 month')
			AND date < date_trunc('month', CURRENT_DATE)`},
		{&c.PendingAds, `SELECT COUNT(*) FROM ads WHERE status = 'pending_payment'`},
		{&c.TodayPublished, `SELECT COUNT(*) FROM ads WHERE status = 'active' AND DATE(created_at) = CURRENT_DATE`},
	}

	for _, q := range queries {
		if err := r.DB.GetContext(ctx, q.dest, q.query); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (r *DashboardRepository) RecentAds(ctx context.Context, limit int) ([]model.Ad, error) {
	var ads []model.Ad
	err := r.DB.SelectContext(ctx, &ads,
		`SELECT * FROM ads ORDER BY created_at DESC LIMIT $1`, limit)
	return ads, err
}

func (r *DashboardRepository) RecentRequests(ctx context.Context, limit int) ([]model.CarRequest, error) {
	var reqs []model.CarRequest
	err := r.DB.SelectContext(ctx, &reqs,
		`SELECT * FROM car_requests ORDER BY created_at DESC LIMIT $1`, limit)
	return reqs, err
}

func (r *DashboardRepository) TopDealers(ctx context.Context, limit int) ([]model.Dealer, error) {
	var dealers []model.Dealer
	err := r.DB.SelectContext(ctx, &dealers,
		`SELECT * FROM dealers WHERE status = 'active' ORDER BY total_revenue DESC LIMIT $1`, limit)
	return dealers, err
}

// CategoryDistribution groups active ads by category with each category's
// share of the total, rounded to one decimal, largest first.
func (r *DashboardRepository) CategoryDistribution(ctx context.Context) ([]model.CategoryShare, error) {
	const query = `
		SELECT category,
			COUNT(*) AS count,
			ROUND((COUNT(*) * 100.0 / SUM(COUNT(*)) OVER ()), 1) AS percentage
		FROM ads
		WHERE status = 'active'
		GROUP BY category
		ORDER BY count DESC`

	var shares []model.CategoryShare
	err := r.DB.SelectContext(ctx, &shares, query)
	return shares, err
}
