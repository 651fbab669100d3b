package services

import (
	"context"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/metrics"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"github.com/ArowuTest/brandhub-admin-backend/internal/utils"
	"go.uber.org/zap"
)

// BrandLinker stamps a campaign onto its brand and settles the campaign's
// pending link intent
type BrandLinker struct {
	brands    repositories.BrandRepository
	campaigns repositories.CampaignRepository
	metrics   *metrics.Metrics
	log       *zap.Logger
	now       func() time.Time
}

// NewBrandLinker creates a new BrandLinker
func NewBrandLinker(brands repositories.BrandRepository, campaigns repositories.CampaignRepository, m *metrics.Metrics, log *zap.Logger) *BrandLinker {
	return &BrandLinker{brands: brands, campaigns: campaigns, metrics: m, log: log, now: time.Now}
}

// Link makes one attempt. A failure is counted on the campaign and returned
// as an AncillaryWriteError.
func (l *BrandLinker) Link(ctx context.Context, campaign *models.Campaign) error {
	err := l.patch(ctx, campaign)
	l.metrics.Reconcile(err)
	if err != nil {
		l.recordFailure(ctx, campaign, err)
		return err
	}
	return l.settle(ctx, campaign)
}

// patch writes the brand back-reference
func (l *BrandLinker) patch(ctx context.Context, campaign *models.Campaign) error {
	brandID, err := utils.ParseObjectID(campaign.BrandID)
	if err != nil {
		return &apperrors.AncillaryWriteError{Op: "link campaign to brand", Err: err}
	}
	if err := l.brands.SetLastCampaign(ctx, brandID, campaign.ID.Hex()); err != nil {
		return &apperrors.AncillaryWriteError{Op: "link campaign to brand", Err: err}
	}
	return nil
}

func (l *BrandLinker) settle(ctx context.Context, campaign *models.Campaign) error {
	at := l.now()
	if err := l.campaigns.MarkLinked(ctx, campaign.ID, at); err != nil {
		// the brand is patched; the next pass repeats an idempotent write
		return &apperrors.AncillaryWriteError{Op: "settle brand link", Err: err}
	}
	campaign.BrandLink.Status = models.LinkLinked
	campaign.BrandLink.LinkedAt = &at
	campaign.BrandLink.LastError = ""
	return nil
}

func (l *BrandLinker) recordFailure(ctx context.Context, campaign *models.Campaign, cause error) {
	campaign.BrandLink.Attempts++
	campaign.BrandLink.LastError = cause.Error()
	if err := l.campaigns.RecordLinkFailure(ctx, campaign.ID, cause.Error()); err != nil {
		l.log.Warn("failed to record brand link failure",
			zap.String("campaignId", campaign.ID.Hex()),
			zap.Error(err),
		)
	}
}

// LinkReconciler retries pending campaign to brand links in the background
type LinkReconciler struct {
	linker      *BrandLinker
	campaigns   repositories.CampaignRepository
	backoff     utils.Backoff
	interval    time.Duration
	batchSize   int
	maxAttempts int
	log         *zap.Logger
}

// ReconcilerOptions configures a LinkReconciler
type ReconcilerOptions struct {
	Interval    time.Duration
	BatchSize   int
	MaxRetries  int
	MaxAttempts int
	Backoff     time.Duration
}

// NewLinkReconciler creates a new LinkReconciler
func NewLinkReconciler(linker *BrandLinker, campaigns repositories.CampaignRepository, log *zap.Logger, opts ReconcilerOptions) *LinkReconciler {
	return &LinkReconciler{
		linker:      linker,
		campaigns:   campaigns,
		backoff:     utils.NewBackoff(opts.Backoff, opts.MaxRetries),
		interval:    opts.Interval,
		batchSize:   opts.BatchSize,
		maxAttempts: opts.MaxAttempts,
		log:         log,
	}
}

// Run reconciles on every interval until ctx is cancelled
func (r *LinkReconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("brand link reconciler started", zap.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.log.Info("brand link reconciler stopped")
			return
		case <-ticker.C:
			if _, err := r.ReconcileOnce(ctx); err != nil && ctx.Err() == nil {
				r.log.Error("brand link reconcile pass failed", zap.Error(err))
			}
		}
	}
}

// ReconcileOnce makes one pass over pending links and returns how many settled.
// Each link is retried with backoff within the pass; a pass that still fails
// counts as one attempt on the campaign.
func (r *LinkReconciler) ReconcileOnce(ctx context.Context) (int, error) {
	pending, err := r.campaigns.FindPendingLinks(ctx, r.maxAttempts, r.batchSize)
	if err != nil {
		return 0, err
	}

	linked := 0
	for _, campaign := range pending {
		err := r.backoff.Do(ctx, func(int) error {
			return r.linker.patch(ctx, campaign)
		})
		r.linker.metrics.Reconcile(err)
		if ctx.Err() != nil {
			return linked, ctx.Err()
		}
		if err != nil {
			r.linker.recordFailure(ctx, campaign, err)
			r.log.Warn("brand link still pending",
				zap.String("campaignId", campaign.ID.Hex()),
				zap.Int("attempts", campaign.BrandLink.Attempts),
				zap.Error(err),
			)
			continue
		}
		if err := r.linker.settle(ctx, campaign); err != nil {
			r.log.Warn("brand linked but intent not settled", zap.String("campaignId", campaign.ID.Hex()), zap.Error(err))
			continue
		}
		linked++
	}

	if len(pending) > 0 {
		r.log.Info("brand link reconcile pass", zap.Int("pending", len(pending)), zap.Int("linked", linked))
	}
	return linked, nil
}
