package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"go.uber.org/zap"
)

func brandForm(email string) *models.BrandForm {
	return &models.BrandForm{
		BrandName:       "Acme",
		IndustryType:    "Retail",
		Email:           email,
		PhoneNumber:     "9876543210",
		BusinessAddress: "12 MG Road, Pune",
		PointOfContact: []models.PointOfContact{
			{Name: "Asha", Number: "9123456780", Email: "asha@acme.example"},
		},
	}
}

func newBrandFixture(configured bool, seed ...*models.Brand) (*BrandService, *fakeBrandRepo, *mediaFixture) {
	repo := newFakeBrandRepo(seed...)
	media := newMediaFixture(configured)
	svc := NewBrandService(repo, media.service, testValidator(), zap.NewNop())
	svc.now = testClock
	return svc, repo, media
}

func TestCreateBrandReturnsStoredID(t *testing.T) {
	svc, repo, _ := newBrandFixture(true)

	brand, err := svc.CreateBrand(context.Background(), CreateBrandInput{Form: brandForm("hello@acme.example")})
	if err != nil {
		t.Fatalf("CreateBrand() error = %v", err)
	}

	stored, ok := repo.brands[brand.ID]
	if !ok {
		t.Fatalf("brand %s was not written", brand.ID.Hex())
	}
	if stored.BrandID != brand.ID.Hex() || brand.BrandID != brand.ID.Hex() {
		t.Errorf("brandId not echoed: stored %q returned %q", stored.BrandID, brand.BrandID)
	}
	if stored.Status != models.StatusActive || !stored.CreatedAt.Equal(testNow) {
		t.Errorf("unexpected stored brand %+v", stored)
	}
	if stored.LogoURL != nil || stored.WebsiteURL != nil || stored.GSTNumber != nil {
		t.Error("empty optional fields must be stored as null")
	}
}

func TestCreateBrandDuplicateEmailWritesNothing(t *testing.T) {
	existing := &models.Brand{BrandName: "Acme Old", Email: "hello@acme.example", Status: models.StatusActive}
	svc, repo, media := newBrandFixture(true, existing)
	logo := uploadFile("logo.png", 1024)

	_, err := svc.CreateBrand(context.Background(), CreateBrandInput{Form: brandForm("Hello@Acme.example"), Logo: &logo})

	var precondition *apperrors.PreconditionError
	if !errors.As(err, &precondition) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Errorf("store received %d create calls, want 0", repo.createCalls)
	}
	if media.host.calls != 0 {
		t.Errorf("logo uploaded %d times, want 0", media.host.calls)
	}
}

func TestCreateBrandInvalidFormMakesNoCalls(t *testing.T) {
	svc, repo, media := newBrandFixture(true)
	form := brandForm("not-an-email")
	form.PhoneNumber = "123"
	logo := uploadFile("logo.png", 1024)

	_, err := svc.CreateBrand(context.Background(), CreateBrandInput{Form: form, Logo: &logo})

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields["email"] == "" || verr.Fields["phoneNumber"] == "" {
		t.Errorf("missing field messages: %v", verr.Fields)
	}
	if repo.createCalls != 0 || media.host.calls != 0 {
		t.Errorf("expected no writes, got %d creates and %d uploads", repo.createCalls, media.host.calls)
	}
}

func TestCreateBrandWithLogo(t *testing.T) {
	svc, repo, media := newBrandFixture(true)
	logo := uploadFile("logo.png", 1024)

	brand, err := svc.CreateBrand(context.Background(), CreateBrandInput{Form: brandForm("hello@acme.example"), Logo: &logo, UploadID: "up-1"})
	if err != nil {
		t.Fatalf("CreateBrand() error = %v", err)
	}
	if brand.LogoURL == nil || *brand.LogoURL != "https://media.example/campaigns/1" {
		t.Errorf("LogoURL = %v", brand.LogoURL)
	}
	if repo.brands[brand.ID].LogoURL == nil {
		t.Error("stored brand has no logo")
	}
	if media.staged.len() != 0 {
		t.Errorf("logo still staged after commit")
	}
	if len(media.progress.events) != 1 || media.progress.events[0].Stage != models.StageLogo {
		t.Errorf("unexpected progress %+v", media.progress.events)
	}
}

func TestCreateBrandOversizedLogo(t *testing.T) {
	svc, repo, media := newBrandFixture(true)
	logo := uploadFile("huge.png", 51<<20)

	_, err := svc.CreateBrand(context.Background(), CreateBrandInput{Form: brandForm("hello@acme.example"), Logo: &logo})

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) || verr.Fields["logo"] == "" {
		t.Fatalf("expected logo ValidationError, got %v", err)
	}
	if repo.createCalls != 0 || media.host.calls != 0 {
		t.Error("oversized logo must not reach the media host or the store")
	}
}

func TestCreateBrandLogoNeedsMediaHost(t *testing.T) {
	svc, repo, _ := newBrandFixture(false)
	logo := uploadFile("logo.png", 1024)

	_, err := svc.CreateBrand(context.Background(), CreateBrandInput{Form: brandForm("hello@acme.example"), Logo: &logo})
	if !errors.Is(err, ErrMediaNotConfigured) {
		t.Fatalf("expected ErrMediaNotConfigured, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Error("brand written without its logo")
	}
}

func TestListBrandsFiltersAndCounts(t *testing.T) {
	seed := []*models.Brand{
		{BrandName: "Acme", Email: "hello@acme.example", IndustryType: "Retail", Status: models.StatusActive, CreatedAt: testNow.Add(-3 * time.Hour)},
		{BrandName: "Globex", Email: "info@globex.example", IndustryType: "Technology", Status: models.StatusInactive, CreatedAt: testNow.Add(-2 * time.Hour)},
		{BrandName: "Initech", Email: "acme-partner@initech.example", IndustryType: "Finance", Status: models.StatusActive, CreatedAt: testNow.Add(-time.Hour)},
	}
	svc, _, _ := newBrandFixture(true, seed...)

	tests := []struct {
		search, status string
		want           []string
	}{
		{"", "all", []string{"Initech", "Globex", "Acme"}},
		{"ACME", "all", []string{"Initech", "Acme"}},
		{"acme", models.StatusActive, []string{"Initech", "Acme"}},
		{"", models.StatusInactive, []string{"Globex"}},
		{"technology", "", []string{"Globex"}},
		{"nothing", "all", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search+"/"+tt.status, func(t *testing.T) {
			res, err := svc.ListBrands(context.Background(), tt.search, tt.status)
			if err != nil {
				t.Fatalf("ListBrands() error = %v", err)
			}
			got := make([]string, len(res.Brands))
			for i, b := range res.Brands {
				got[i] = b.BrandName
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
			// stats always describe the whole collection
			if res.Stats != (models.StatusStats{Total: 3, Active: 2, Inactive: 1}) {
				t.Errorf("Stats = %+v", res.Stats)
			}
		})
	}
}

func TestToggleBrandTwiceRestoresStatus(t *testing.T) {
	brand := &models.Brand{BrandName: "Acme", Email: "a@acme.example", Status: models.StatusActive}
	svc, repo, _ := newBrandFixture(true, brand)
	ctx := context.Background()

	first, err := svc.ToggleStatus(ctx, brand.ID.Hex())
	if err != nil || first != models.StatusInactive {
		t.Fatalf("first toggle = %q, %v", first, err)
	}
	second, err := svc.ToggleStatus(ctx, brand.ID.Hex())
	if err != nil || second != models.StatusActive {
		t.Fatalf("second toggle = %q, %v", second, err)
	}
	if repo.brands[brand.ID].Status != models.StatusActive {
		t.Errorf("stored status = %q", repo.brands[brand.ID].Status)
	}
}

func TestDeleteBrandRemovesFromNextFetch(t *testing.T) {
	keep := &models.Brand{BrandName: "Keep", Email: "k@x.example", Status: models.StatusActive}
	drop := &models.Brand{BrandName: "Drop", Email: "d@x.example", Status: models.StatusActive}
	svc, _, _ := newBrandFixture(true, keep, drop)
	ctx := context.Background()

	if err := svc.DeleteBrand(ctx, drop.ID.Hex()); err != nil {
		t.Fatalf("DeleteBrand() error = %v", err)
	}
	res, err := svc.ListBrands(ctx, "", "all")
	if err != nil {
		t.Fatalf("ListBrands() error = %v", err)
	}
	if len(res.Brands) != 1 || res.Brands[0].BrandName != "Keep" {
		t.Errorf("unexpected brands after delete: %+v", res.Brands)
	}

	if err := svc.DeleteBrand(ctx, "zzz"); !errors.Is(err, apperrors.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestBrandOptions(t *testing.T) {
	brand := &models.Brand{BrandName: "Acme", Email: "a@acme.example"}
	svc, _, _ := newBrandFixture(true, brand)

	options, err := svc.Options(context.Background())
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if len(options) != 1 || options[0].Value != brand.ID.Hex() || options[0].Label != "Acme" {
		t.Errorf("unexpected options %+v", options)
	}
}
