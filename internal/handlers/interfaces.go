package handlers

import (
	"context"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/services"
)

// AuthService is the auth behaviour the handlers rely on
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

// BrandService is the brand behaviour the handlers rely on
type BrandService interface {
	CreateBrand(ctx context.Context, in services.CreateBrandInput) (*models.Brand, error)
	ListBrands(ctx context.Context, search, status string) (*models.BrandListResponse, error)
	GetBrand(ctx context.Context, id string) (*models.Brand, error)
	ToggleStatus(ctx context.Context, id string) (string, error)
	DeleteBrand(ctx context.Context, id string) error
	Options(ctx context.Context) ([]models.BrandOption, error)
}

// CampaignService is the campaign behaviour the handlers rely on
type CampaignService interface {
	CreateCampaign(ctx context.Context, in services.CreateCampaignInput) (*models.Campaign, error)
	ListCampaigns(ctx context.Context, search, status string) (*models.CampaignListResponse, error)
	GetCampaign(ctx context.Context, id string) (*models.Campaign, error)
	ToggleStatus(ctx context.Context, id string) (string, error)
	DeleteCampaign(ctx context.Context, id string) error
}

// AnalyticsService is the dashboard behaviour the handlers rely on
type AnalyticsService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

var (
	_ AuthService      = (*services.AuthService)(nil)
	_ BrandService     = (*services.BrandService)(nil)
	_ CampaignService  = (*services.CampaignService)(nil)
	_ AnalyticsService = (*services.AnalyticsService)(nil)
)
