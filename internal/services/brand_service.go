package services

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"github.com/ArowuTest/brandhub-admin-backend/internal/utils"
	"github.com/ArowuTest/brandhub-admin-backend/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ErrDuplicateBrandEmail is returned when a brand already uses the submitted email
var ErrDuplicateBrandEmail = apperrors.ErrDuplicateBrandEmail

// CreateBrandInput is a submitted Create-Brand request
type CreateBrandInput struct {
	Form     *models.BrandForm
	Logo     *models.UploadFile
	UploadID string
}

// BrandService implements the brand flows
type BrandService struct {
	brands    repositories.BrandRepository
	media     *MediaService
	validator *validation.Validator
	log       *zap.Logger
	now       func() time.Time
}

// NewBrandService creates a new BrandService
func NewBrandService(brands repositories.BrandRepository, media *MediaService, v *validation.Validator, log *zap.Logger) *BrandService {
	return &BrandService{
		brands:    brands,
		media:     media,
		validator: v,
		log:       log,
		now:       time.Now,
	}
}

// CreateBrand validates the form, rejects duplicate emails, uploads the logo
// and commits the brand. Nothing is written when validation or the email
// check fails.
func (s *BrandService) CreateBrand(ctx context.Context, in CreateBrandInput) (*models.Brand, error) {
	in.Form.Normalize()
	if err := s.validator.Brand(in.Form); err != nil {
		return nil, err
	}

	var logos []models.UploadFile
	if in.Logo != nil {
		logos = []models.UploadFile{*in.Logo}
		if err := s.media.CheckSelection("logo", logos, 1); err != nil {
			return nil, err
		}
	}

	switch _, err := s.brands.FindByEmail(ctx, in.Form.Email); {
	case err == nil:
		return nil, ErrDuplicateBrandEmail
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	var logoURL string
	var logoRefs []models.MediaRef
	if len(logos) > 0 {
		if !s.media.Configured() {
			return nil, ErrMediaNotConfigured
		}
		refs, err := s.media.Upload(ctx, in.UploadID, models.StageLogo, models.ResourceImage, logos)
		if err != nil {
			return nil, err
		}
		logoRefs = refs
		logoURL = refs[0].URL
	}

	brand := models.NewBrand(primitive.NewObjectID(), in.Form, logoURL, s.now())
	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, err
	}
	s.media.Promote(ctx, models.ResourceImage, logoRefs...)

	s.log.Info("brand created", zap.String("brandId", brand.BrandID), zap.String("email", brand.Email))
	return brand, nil
}

// ListBrands filters the full brand collection by search text and status
func (s *BrandService) ListBrands(ctx context.Context, search, status string) (*models.BrandListResponse, error) {
	all, err := s.brands.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]listed, len(all))
	filtered := make([]*models.Brand, 0, len(all))
	for i, b := range all {
		records[i] = listed{status: b.Status, createdAt: b.CreatedAt}
		if utils.MatchesSearch(search, b.BrandName, b.Email, b.IndustryType) && utils.MatchesStatus(status, b.Status) {
			filtered = append(filtered, b)
		}
	}

	return &models.BrandListResponse{
		Brands: filtered,
		Stats:  statusStats(records),
		Charts: statCharts(records),
	}, nil
}

// GetBrand returns a single brand
func (s *BrandService) GetBrand(ctx context.Context, id string) (*models.Brand, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.brands.FindByID(ctx, oid)
}

// ToggleStatus flips a brand between active and inactive and returns the new status
func (s *BrandService) ToggleStatus(ctx context.Context, id string) (string, error) {
	brand, err := s.GetBrand(ctx, id)
	if err != nil {
		return "", err
	}
	next := models.ToggleStatus(brand.Status)
	if err := s.brands.UpdateStatus(ctx, brand.ID, next); err != nil {
		return "", err
	}
	return next, nil
}

// DeleteBrand removes a brand. Its campaigns are kept.
func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return err
	}
	return s.brands.Delete(ctx, oid)
}

// Options lists brands for the campaign form's brand picker
func (s *BrandService) Options(ctx context.Context) ([]models.BrandOption, error) {
	all, err := s.brands.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]models.BrandOption, len(all))
	for i, b := range all {
		options[i] = models.BrandOption{Value: b.BrandID, Label: b.BrandName}
	}
	return options, nil
}
