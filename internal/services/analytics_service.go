package services

import (
	"context"
	"sort"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
)

// AnalyticsService builds the dashboard figures
type AnalyticsService struct {
	brands    repositories.BrandRepository
	campaigns repositories.CampaignRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(brands repositories.BrandRepository, campaigns repositories.CampaignRepository) *AnalyticsService {
	return &AnalyticsService{brands: brands, campaigns: campaigns}
}

// DashboardStats returns status counts, records created per month and the
// number of campaigns whose brand link is still pending
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	brandStats, err := s.brands.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	campaignStats, err := s.campaigns.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.campaigns.CountPendingLinks(ctx)
	if err != nil {
		return nil, err
	}

	brands, err := s.brands.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.campaigns.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	brandDates := make([]time.Time, len(brands))
	for i, b := range brands {
		brandDates[i] = b.CreatedAt
	}
	campaignDates := make([]time.Time, len(campaigns))
	for i, c := range campaigns {
		campaignDates[i] = c.CreatedAt
	}

	return &models.DashboardStats{
		Brands:            brandStats,
		Campaigns:         campaignStats,
		BrandsByMonth:     groupByMonth(brandDates),
		CampaignsByMonth:  groupByMonth(campaignDates),
		PendingBrandLinks: pending,
	}, nil
}

// groupByMonth counts timestamps per calendar month, oldest month first.
// Zero timestamps are skipped.
func groupByMonth(dates []time.Time) []models.MonthCount {
	counts := make(map[time.Time]int)
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		d = d.UTC()
		counts[time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)]++
	}

	months := make([]time.Time, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]models.MonthCount, len(months))
	for i, m := range months {
		out[i] = models.MonthCount{Name: m.Format("Jan 2006"), Value: counts[m]}
	}
	return out
}
