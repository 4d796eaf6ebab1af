package service

import (
	"context"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

// DashboardService assembles the stat-card block from raw counts,
// applying PercentChange to each month-over-month pair.
type DashboardService struct {
	repo *repository.DashboardRepository
}

func NewDashboardService(r *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: r}
}

func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	c, err := s.repo.StatCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		TotalAds:             c.TotalAds,
		TotalAdsChange:       PercentChange(float64(c.AdsThisMonth), float64(c.AdsLastMonth)),
		ActiveAds:            c.ActiveAds,
		ActiveDealers:        c.ActiveDealers,
		ActiveDealersChange:  PercentChange(float64(c.ActiveDealers), float64(c.DealersBeforeThisMonth)),
		CarRequests:          c.CarRequests,
		CarRequestsChange:    PercentChange(float64(c.RequestsThisMonth), float64(c.RequestsLastMonth)),
		MonthlyRevenue:       c.MonthlyRevenue,
		MonthlyRevenueChange: PercentChange(c.MonthlyRevenue, c.LastMonthRevenue),
		PendingAds:           c.PendingAds,
		TodayPublished:       c.TodayPublished,
		// Not tracked yet; the dashboard renders them as zero.
		ActiveUsers: 0,
		ReportedAds: 0,
	}, nil
}
