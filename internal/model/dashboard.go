package model

// DashboardStats is the stat-card block of the main dashboard. The
// *Change fields are month-over-month percentage deltas (zero when the
// previous month had no baseline).
type DashboardStats struct {
	TotalAds             int     `json:"totalAds"`
	TotalAdsChange       float64 `json:"totalAdsChange"`
	ActiveAds            int     `json:"activeAds"`
	ActiveDealers        int     `json:"activeDealers"`
	ActiveDealersChange  float64 `json:"activeDealersChange"`
	CarRequests          int     `json:"carRequests"`
	CarRequestsChange    float64 `json:"carRequestsChange"`
	MonthlyRevenue       float64 `json:"monthlyRevenue"`
	MonthlyRevenueChange float64 `json:"monthlyRevenueChange"`
	PendingAds           int     `json:"pendingAds"`
	TodayPublished       int     `json:"todayPublished"`
	ActiveUsers          int     `json:"activeUsers"`
	ReportedAds          int     `json:"reportedAds"`
}

// CategoryShare is one slice of the active-ad category breakdown.
type CategoryShare struct {
	Category   string  `db:"category" json:"category"`
	Count      int     `db:"count" json:"count"`
	Percentage float64 `db:"percentage" json:"percentage"`
}
