package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/metrics"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"github.com/ArowuTest/brandhub-admin-backend/pkg/mediahost"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// ErrMediaNotConfigured blocks create flows that need the media host
var ErrMediaNotConfigured = &apperrors.PreconditionError{
	Message: "Media storage is not configured. Please configure the media host credentials.",
}

// MediaService uploads selected files one at a time and tracks them as
// staged until the owning document commits
type MediaService struct {
	host        mediahost.Host
	staged      repositories.StagedMediaRepository
	progress    repositories.ProgressPublisher
	metrics     *metrics.Metrics
	log         *zap.Logger
	maxFileSize int64
	configured  bool
	now         func() time.Time
}

// MediaOptions configures a MediaService
type MediaOptions struct {
	MaxFileSize int64
	Configured  bool
}

// NewMediaService creates a new MediaService
func NewMediaService(
	host mediahost.Host,
	staged repositories.StagedMediaRepository,
	progress repositories.ProgressPublisher,
	m *metrics.Metrics,
	log *zap.Logger,
	opts MediaOptions,
) *MediaService {
	return &MediaService{
		host:        host,
		staged:      staged,
		progress:    progress,
		metrics:     m,
		log:         log,
		maxFileSize: opts.MaxFileSize,
		configured:  opts.Configured,
		now:         time.Now,
	}
}

// Configured reports whether media uploads can be attempted
func (s *MediaService) Configured() bool {
	return s.configured && s.host != nil
}

// CheckSelection validates a file selection before any upload. One oversized
// file rejects the whole selection for the field.
func (s *MediaService) CheckSelection(field string, files []models.UploadFile, maxCount int) error {
	if maxCount > 0 && len(files) > maxCount {
		if maxCount == 1 {
			return apperrors.NewValidationError(field, "Only one file can be selected")
		}
		return apperrors.NewValidationError(field, fmt.Sprintf("At most %d files can be selected", maxCount))
	}
	for _, f := range files {
		if f.Size > s.maxFileSize {
			return apperrors.NewValidationError(field, fmt.Sprintf(
				"%s is %s. Files must be under %s, please choose the files again",
				f.Name, humanize.IBytes(uint64(f.Size)), humanize.IBytes(uint64(s.maxFileSize)),
			))
		}
	}
	return nil
}

// Upload sends files strictly in order and reports progress after each one.
// The first failure aborts the step with an UploadError naming that file;
// files uploaded before it stay staged and are left to the sweeper.
func (s *MediaService) Upload(ctx context.Context, uploadID, stage, resourceType string, files []models.UploadFile) ([]models.MediaRef, error) {
	refs := make([]models.MediaRef, 0, len(files))
	total := len(files)

	for i, f := range files {
		asset, err := s.uploadOne(ctx, resourceType, f)
		s.metrics.Upload(resourceType, err)
		if err != nil {
			s.log.Warn("media upload failed",
				zap.String("uploadId", uploadID),
				zap.String("file", f.Name),
				zap.Int("index", i+1),
				zap.Int("total", total),
				zap.Error(err),
			)
			return nil, &apperrors.UploadError{File: f.Name, Err: err}
		}

		s.stage(ctx, asset)
		refs = append(refs, models.MediaRef{URL: asset.URL, PublicID: asset.PublicID, Format: asset.Format})
		s.report(ctx, models.UploadProgress{
			UploadID:   uploadID,
			Stage:      stage,
			Current:    i + 1,
			Total:      total,
			Percentage: percentage(i+1, total),
			File:       f.Name,
		})
	}
	return refs, nil
}

// percentage rounds done/total to the nearest whole percent
func percentage(done, total int) int {
	return (200*done + total) / (2 * total)
}

func (s *MediaService) uploadOne(ctx context.Context, resourceType string, f models.UploadFile) (*mediahost.Asset, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return s.host.Upload(ctx, resourceType, f.Name, r)
}

// Promote clears committed assets from the staging ledger. Failures only
// delay cleanup bookkeeping, so they are logged and swallowed.
func (s *MediaService) Promote(ctx context.Context, resourceType string, refs ...models.MediaRef) {
	if s.staged == nil || len(refs) == 0 {
		return
	}
	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.PublicID
	}
	if err := s.staged.Promote(ctx, resourceType, ids...); err != nil {
		s.log.Warn("failed to promote staged media",
			zap.Error(&apperrors.AncillaryWriteError{Op: "promote staged media", Err: err}),
			zap.Strings("publicIds", ids),
		)
	}
}

func (s *MediaService) stage(ctx context.Context, asset *mediahost.Asset) {
	if s.staged == nil {
		return
	}
	err := s.staged.Stage(ctx, models.StagedAsset{
		ResourceType: asset.ResourceType,
		PublicID:     asset.PublicID,
		StagedAt:     s.now(),
	})
	if err != nil {
		s.log.Warn("failed to record staged media",
			zap.Error(&apperrors.AncillaryWriteError{Op: "stage media", Err: err}),
			zap.String("publicId", asset.PublicID),
		)
	}
}

func (s *MediaService) report(ctx context.Context, p models.UploadProgress) {
	if s.progress == nil || p.UploadID == "" {
		return
	}
	if err := s.progress.Publish(ctx, p); err != nil {
		s.log.Debug("failed to publish upload progress", zap.String("uploadId", p.UploadID), zap.Error(err))
	}
}
