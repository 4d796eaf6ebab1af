package service

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

// DefaultTaxRate applies when the tax_rate setting is absent or unparsable.
const DefaultTaxRate = 18.0

// FinanceService derives tax, expense and profit figures from raw
// income/expense records plus the configurable tax rate.
type FinanceService struct {
	finance  *repository.FinanceRepository
	settings *repository.SettingRepository
}

func NewFinanceService(fr *repository.FinanceRepository, sr *repository.SettingRepository) *FinanceService {
	return &FinanceService{finance: fr, settings: sr}
}

// Round1 rounds to one decimal place, the precision every percentage in
// the dashboards is reported at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// PercentChange is the period-over-period delta used by every comparator
// in the system: zero when there is no positive baseline, never null or
// infinite.
func PercentChange(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return Round1((current - previous) / previous * 100)
}

// TaxRate resolves the tax_rate setting, falling back to DefaultTaxRate
// when the key is unset or not a number.
func (s *FinanceService) TaxRate(ctx context.Context) (float64, error) {
	value, err := s.settings.Value(ctx, "tax_rate")
	if err != nil {
		if err == repository.ErrNotFound {
			return DefaultTaxRate, nil
		}
		return 0, err
	}
	rate, perr := strconv.ParseFloat(value, 64)
	if perr != nil {
		return DefaultTaxRate, nil
	}
	return rate, nil
}

// periodStart maps a period name onto its lookback boundary. Unknown
// values fall back to monthly.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "daily":
		return now.AddDate(0, 0, -1)
	case "weekly":
		return now.AddDate(0, 0, -7)
	case "yearly":
		return now.AddDate(-1, 0, 0)
	default: // monthly
		return now.AddDate(0, -1, 0)
	}
}

func (s *FinanceService) Dashboard(ctx context.Context, period string) (*model.FinanceDashboard, error) {
	rows, err := s.finance.SumsByTypeCategory(ctx, periodStart(period, time.Now()))
	if err != nil {
		return nil, err
	}
	rate, err := s.TaxRate(ctx)
	if err != nil {
		return nil, err
	}
	return buildDashboard(rows, rate), nil
}

// buildDashboard applies the tax/profit formula to grouped sums:
// tax = revenue * rate / 100, netProfit = revenue - tax - totalExpenses,
// profitMargin = netProfit / revenue * 100 (0 when revenue is 0).
func buildDashboard(rows []repository.TypeCategorySum, taxRate float64) *model.FinanceDashboard {
	var revenue float64
	expenses := map[string]float64{}

	for _, row := range rows {
		switch row.Type {
		case "income":
			revenue += row.TotalAmount
		case "expense":
			expenses[row.Category] += row.TotalAmount
		}
	}

	var totalExpenses float64
	for _, v := range expenses {
		totalExpenses += v
	}

	tax := revenue * taxRate / 100
	netProfit := revenue - tax - totalExpenses

	var margin float64
	if revenue > 0 {
		margin = Round1(netProfit / revenue * 100)
	}

	return &model.FinanceDashboard{
		Revenue:       revenue,
		Expenses:      expenses,
		TotalExpenses: totalExpenses,
		TaxRate:       taxRate,
		Tax:           tax,
		NetProfit:     netProfit,
		ProfitMargin:  margin,
	}
}

func (s *FinanceService) MonthlyTrend(ctx context.Context, months int) ([]model.MonthlyTrendRow, error) {
	rows, err := s.finance.MonthlySums(ctx, time.Now().AddDate(0, -months, 0))
	if err != nil {
		return nil, err
	}
	rate, err := s.TaxRate(ctx)
	if err != nil {
		return nil, err
	}
	trend := buildTrend(rows, rate)
	// A mid-month lookback touches a partial extra calendar month; keep
	// only the most recent N.
	if len(trend) > months {
		trend = trend[len(trend)-months:]
	}
	return trend, nil
}

// buildTrend folds per-(month, type) sums into one row per month,
// chronologically ascending, applying the current tax rate to each month.
// Historical rate changes are not reflected; the trend is a view through
// today's rate.
func buildTrend(rows []repository.MonthTypeSum, taxRate float64) []model.MonthlyTrendRow {
	type bucket struct {
		revenue  float64
		expenses float64
	}
	buckets := map[string]*bucket{}
	var order []string

	for _, row := range rows {
		key := row.Month.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
			order = append(order, key)
		}
		switch row.Type {
		case "income":
			b.revenue += row.TotalAmount
		case "expense":
			b.expenses += row.TotalAmount
		}
	}

	trend := make([]model.MonthlyTrendRow, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		tax := b.revenue * taxRate / 100
		trend = append(trend, model.MonthlyTrendRow{
			Month:    key,
			Revenue:  b.revenue,
			Expenses: b.expenses,
			Tax:      tax,
			Profit:   b.revenue - tax - b.expenses,
		})
	}
	return trend
}
