package services

import (
	"context"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"github.com/ArowuTest/brandhub-admin-backend/internal/utils"
	"github.com/ArowuTest/brandhub-admin-backend/internal/validation"
	"go.uber.org/zap"
)

// CreateCampaignInput is a submitted Create-Campaign request
type CreateCampaignInput struct {
	Form     *models.CampaignForm
	Images   []models.UploadFile
	Video    []models.UploadFile
	UploadID string
}

// CampaignService implements the campaign flows
type CampaignService struct {
	campaigns repositories.CampaignRepository
	linker    *BrandLinker
	media     *MediaService
	validator *validation.Validator
	log       *zap.Logger
	now       func() time.Time
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(
	campaigns repositories.CampaignRepository,
	linker *BrandLinker,
	media *MediaService,
	v *validation.Validator,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaigns: campaigns,
		linker:    linker,
		media:     media,
		validator: v,
		log:       log,
		now:       time.Now,
	}
}

// CreateCampaign runs validate, upload, commit and link in that order.
// The brand link is best-effort: a failed link leaves a pending intent for
// the reconciler and never fails the call.
func (s *CampaignService) CreateCampaign(ctx context.Context, in CreateCampaignInput) (*models.Campaign, error) {
	in.Form.Normalize()
	if err := s.validator.Campaign(in.Form); err != nil {
		return nil, err
	}
	quiz := validation.NormalizeQuiz(in.Form.QuizQuestions)
	leads := validation.NormalizeLeadQuestions(in.Form.LeadQuestions)

	if !s.media.Configured() {
		return nil, ErrMediaNotConfigured
	}
	if err := s.media.CheckSelection("creativeImages", in.Images, 0); err != nil {
		return nil, err
	}
	if err := s.media.CheckSelection("advertisingVideo", in.Video, 1); err != nil {
		return nil, err
	}

	images, err := s.media.Upload(ctx, in.UploadID, models.StageImages, models.ResourceImage, in.Images)
	if err != nil {
		return nil, err
	}
	var video *models.MediaRef
	if len(in.Video) > 0 {
		refs, err := s.media.Upload(ctx, in.UploadID, models.StageVideo, models.ResourceVideo, in.Video)
		if err != nil {
			return nil, err
		}
		video = &refs[0]
	}

	campaign := models.NewCampaign(in.Form, quiz, leads, images, video, s.now())
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.media.Promote(ctx, models.ResourceImage, images...)
	if video != nil {
		s.media.Promote(ctx, models.ResourceVideo, *video)
	}

	if err := s.linker.Link(ctx, campaign); err != nil {
		s.log.Warn("brand link deferred to reconciler",
			zap.String("campaignId", campaign.ID.Hex()),
			zap.String("brandId", campaign.BrandID),
			zap.Error(err),
		)
	}

	s.log.Info("campaign created",
		zap.String("campaignId", campaign.ID.Hex()),
		zap.Int("images", len(images)),
		zap.Bool("video", video != nil),
	)
	return campaign, nil
}

// ListCampaigns filters the full campaign collection by search text and status
func (s *CampaignService) ListCampaigns(ctx context.Context, search, status string) (*models.CampaignListResponse, error) {
	all, err := s.campaigns.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]listed, len(all))
	filtered := make([]*models.Campaign, 0, len(all))
	for i, c := range all {
		records[i] = listed{status: c.Status, createdAt: c.CreatedAt}
		if utils.MatchesSearch(search, c.CampaignName, c.BrandID, c.TargetLocation) && utils.MatchesStatus(status, c.Status) {
			filtered = append(filtered, c)
		}
	}

	return &models.CampaignListResponse{
		Campaigns: filtered,
		Stats:     statusStats(records),
		Charts:    statCharts(records),
	}, nil
}

// GetCampaign returns a single campaign
func (s *CampaignService) GetCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.campaigns.FindByID(ctx, oid)
}

// ToggleStatus flips a campaign between active and inactive and returns the new status
func (s *CampaignService) ToggleStatus(ctx context.Context, id string) (string, error) {
	campaign, err := s.GetCampaign(ctx, id)
	if err != nil {
		return "", err
	}
	next := models.ToggleStatus(campaign.Status)
	if err := s.campaigns.UpdateStatus(ctx, campaign.ID, next); err != nil {
		return "", err
	}
	return next, nil
}

// DeleteCampaign removes a campaign. The brand back-reference is left as is.
func (s *CampaignService) DeleteCampaign(ctx context.Context, id string) error {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return err
	}
	return s.campaigns.Delete(ctx, oid)
}
