package services

import (
	"context"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/metrics"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"github.com/ArowuTest/brandhub-admin-backend/pkg/mediahost"
	"go.uber.org/zap"
)

// sweepBatch bounds the destroys of one sweep pass
const sweepBatch = 100

// MediaSweeper destroys staged media that no document committed within the TTL
type MediaSweeper struct {
	host     mediahost.Host
	staged   repositories.StagedMediaRepository
	metrics  *metrics.Metrics
	log      *zap.Logger
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
}

// NewMediaSweeper creates a new MediaSweeper
func NewMediaSweeper(host mediahost.Host, staged repositories.StagedMediaRepository, m *metrics.Metrics, log *zap.Logger, ttl, interval time.Duration) *MediaSweeper {
	return &MediaSweeper{
		host:     host,
		staged:   staged,
		metrics:  m,
		log:      log,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
	}
}

// Run sweeps on every interval until ctx is cancelled
func (s *MediaSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
				s.log.Error("staged media sweep failed", zap.Error(err))
			}
		}
	}
}

// SweepOnce destroys expired staged objects and returns how many were removed.
// Objects that fail to destroy stay in the ledger for the next pass.
func (s *MediaSweeper) SweepOnce(ctx context.Context) (int, error) {
	expired, err := s.staged.Expired(ctx, s.now().Add(-s.ttl), sweepBatch)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, asset := range expired {
		err := s.host.Destroy(ctx, asset.ResourceType, asset.PublicID)
		s.metrics.Swept(err)
		if err != nil {
			s.log.Warn("failed to destroy orphaned media", zap.String("publicId", asset.PublicID), zap.Error(err))
			continue
		}
		if err := s.staged.Remove(ctx, asset); err != nil {
			return removed, err
		}
		removed++
	}

	if removed > 0 {
		s.log.Info("orphaned media swept", zap.Int("removed", removed))
	}
	return removed, nil
}
