package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
)

func TestGroupByMonth(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, time.March, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		{},
		time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
	}

	want := []models.MonthCount{
		{Name: "Dec 2025", Value: 1},
		{Name: "Jan 2026", Value: 1},
		{Name: "Mar 2026", Value: 2},
	}
	if got := groupByMonth(dates); !reflect.DeepEqual(got, want) {
		t.Errorf("groupByMonth() = %+v, want %+v", got, want)
	}
	if got := groupByMonth(nil); got == nil || len(got) != 0 {
		t.Errorf("groupByMonth(nil) = %#v, want empty", got)
	}
}

func TestDashboardStats(t *testing.T) {
	brands := newFakeBrandRepo(
		&models.Brand{BrandName: "A", Email: "a@x.example", Status: models.StatusActive, CreatedAt: time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)},
		&models.Brand{BrandName: "B", Email: "b@x.example", Status: models.StatusInactive, CreatedAt: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)},
	)
	campaigns := newFakeCampaignRepo(
		&models.Campaign{CampaignName: "Linked", Status: models.StatusActive, BrandLink: models.BrandLink{Status: models.LinkLinked}, CreatedAt: testNow},
		&models.Campaign{CampaignName: "Pending", Status: models.StatusActive, BrandLink: models.BrandLink{Status: models.LinkPending}, CreatedAt: testNow},
	)

	stats, err := NewAnalyticsService(brands, campaigns).DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats() error = %v", err)
	}
	if stats.Brands != (models.StatusStats{Total: 2, Active: 1, Inactive: 1}) {
		t.Errorf("Brands = %+v", stats.Brands)
	}
	if stats.Campaigns != (models.StatusStats{Total: 2, Active: 2}) {
		t.Errorf("Campaigns = %+v", stats.Campaigns)
	}
	if stats.PendingBrandLinks != 1 {
		t.Errorf("PendingBrandLinks = %d, want 1", stats.PendingBrandLinks)
	}
	if len(stats.BrandsByMonth) != 2 || stats.BrandsByMonth[0].Name != "Feb 2026" {
		t.Errorf("BrandsByMonth = %+v", stats.BrandsByMonth)
	}
	if len(stats.CampaignsByMonth) != 1 || stats.CampaignsByMonth[0] != (models.MonthCount{Name: "Mar 2026", Value: 2}) {
		t.Errorf("CampaignsByMonth = %+v", stats.CampaignsByMonth)
	}
}
