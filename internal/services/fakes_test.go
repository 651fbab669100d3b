package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/validation"
	"github.com/ArowuTest/brandhub-admin-backend/pkg/mediahost"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func testValidator() *validation.Validator { return validation.New(testClock) }

// fakeBrandRepo is an in-memory BrandRepository
type fakeBrandRepo struct {
	mu          sync.Mutex
	brands      map[primitive.ObjectID]*models.Brand
	createCalls int
	setLastErrs []error // consumed one per SetLastCampaign call
	setLastHits int
}

func newFakeBrandRepo(seed ...*models.Brand) *fakeBrandRepo {
	r := &fakeBrandRepo{brands: map[primitive.ObjectID]*models.Brand{}}
	for _, b := range seed {
		if b.ID.IsZero() {
			b.ID = primitive.NewObjectID()
		}
		b.BrandID = b.ID.Hex()
		r.brands[b.ID] = b
	}
	return r
}

func (r *fakeBrandRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeBrandRepo) Create(ctx context.Context, brand *models.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	for _, b := range r.brands {
		if strings.EqualFold(b.Email, brand.Email) {
			return ErrDuplicateBrandEmail
		}
	}
	copied := *brand
	r.brands[brand.ID] = &copied
	return nil
}

func (r *fakeBrandRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.brands[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBrandRepo) FindByEmail(ctx context.Context, email string) (*models.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.brands {
		if strings.EqualFold(b.Email, email) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeBrandRepo) FindAll(ctx context.Context) ([]*models.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		copied := *b
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBrandRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.brands[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBrandRepo) SetLastCampaign(ctx context.Context, id primitive.ObjectID, campaignID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setLastHits++
	if len(r.setLastErrs) > 0 {
		err := r.setLastErrs[0]
		r.setLastErrs = r.setLastErrs[1:]
		if err != nil {
			return err
		}
	}
	b, ok := r.brands[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	b.LastCampaignID = campaignID
	return nil
}

func (r *fakeBrandRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.brands[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.brands, id)
	return nil
}

func (r *fakeBrandRepo) CountByStatus(ctx context.Context) (models.StatusStats, error) {
	all, _ := r.FindAll(ctx)
	records := make([]listed, len(all))
	for i, b := range all {
		records[i] = listed{status: b.Status}
	}
	return statusStats(records), nil
}

// fakeCampaignRepo is an in-memory CampaignRepository
type fakeCampaignRepo struct {
	mu          sync.Mutex
	campaigns   map[primitive.ObjectID]*models.Campaign
	createCalls int
	createErr   error
}

func newFakeCampaignRepo(seed ...*models.Campaign) *fakeCampaignRepo {
	r := &fakeCampaignRepo{campaigns: map[primitive.ObjectID]*models.Campaign{}}
	for _, c := range seed {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		r.campaigns[c.ID] = c
	}
	return r
}

func (r *fakeCampaignRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeCampaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	campaign.ID = primitive.NewObjectID()
	copied := *campaign
	r.campaigns[campaign.ID] = &copied
	return nil
}

func (r *fakeCampaignRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCampaignRepo) FindAll(ctx context.Context) ([]*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCampaignRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	c.Status = status
	return nil
}

func (r *fakeCampaignRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.campaigns, id)
	return nil
}

func (r *fakeCampaignRepo) CountByStatus(ctx context.Context) (models.StatusStats, error) {
	all, _ := r.FindAll(ctx)
	records := make([]listed, len(all))
	for i, c := range all {
		records[i] = listed{status: c.Status}
	}
	return statusStats(records), nil
}

func (r *fakeCampaignRepo) FindPendingLinks(ctx context.Context, maxAttempts, limit int) ([]*models.Campaign, error) {
	all, _ := r.FindAll(ctx)
	var out []*models.Campaign
	for _, c := range all {
		if c.BrandLink.Status == models.LinkPending && c.BrandLink.Attempts < maxAttempts && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) CountPendingLinks(ctx context.Context) (int64, error) {
	pending, _ := r.FindPendingLinks(ctx, 1<<30, 1<<30)
	return int64(len(pending)), nil
}

func (r *fakeCampaignRepo) MarkLinked(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	c.BrandLink.Status = models.LinkLinked
	c.BrandLink.LinkedAt = &at
	c.BrandLink.LastError = ""
	return nil
}

func (r *fakeCampaignRepo) RecordLinkFailure(ctx context.Context, id primitive.ObjectID, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	c.BrandLink.Attempts++
	c.BrandLink.LastError = reason
	return nil
}

func (r *fakeCampaignRepo) get(id primitive.ObjectID) *models.Campaign {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil
	}
	copied := *c
	return &copied
}

// fakeHost records uploads and fails the failOn-th call (1-based) when set
type fakeHost struct {
	mu         sync.Mutex
	calls      int
	uploaded   []string
	destroyed  []string
	failOn     int
	destroyErr error
}

func (h *fakeHost) Upload(ctx context.Context, resourceType, filename string, r io.Reader) (*mediahost.Asset, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	if h.failOn > 0 && h.calls == h.failOn {
		return nil, errors.New("connection reset")
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	h.uploaded = append(h.uploaded, filename)
	id := fmt.Sprintf("campaigns/%d", h.calls)
	return &mediahost.Asset{
		URL:          "https://media.example/" + id,
		PublicID:     id,
		Format:       "png",
		ResourceType: resourceType,
	}, nil
}

func (h *fakeHost) Destroy(ctx context.Context, resourceType, publicID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyErr != nil {
		return h.destroyErr
	}
	h.destroyed = append(h.destroyed, resourceType+":"+publicID)
	return nil
}

// fakeStaged is an in-memory StagedMediaRepository
type fakeStaged struct {
	mu     sync.Mutex
	assets map[string]models.StagedAsset
}

func newFakeStaged() *fakeStaged { return &fakeStaged{assets: map[string]models.StagedAsset{}} }

func (s *fakeStaged) Stage(ctx context.Context, asset models.StagedAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets[asset.ResourceType+":"+asset.PublicID] = asset
	return nil
}

func (s *fakeStaged) Promote(ctx context.Context, resourceType string, publicIDs ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range publicIDs {
		delete(s.assets, resourceType+":"+id)
	}
	return nil
}

func (s *fakeStaged) Expired(ctx context.Context, before time.Time, limit int64) ([]models.StagedAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.StagedAsset
	for _, a := range s.assets {
		if a.StagedAt.Before(before) && int64(len(out)) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeStaged) Remove(ctx context.Context, asset models.StagedAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assets, asset.ResourceType+":"+asset.PublicID)
	return nil
}

func (s *fakeStaged) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.assets)
}

// fakeProgress records published progress events
type fakeProgress struct {
	mu     sync.Mutex
	events []models.UploadProgress
}

func (p *fakeProgress) Publish(ctx context.Context, progress models.UploadProgress) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, progress)
	return nil
}

func (p *fakeProgress) Subscribe(ctx context.Context, uploadID string) (<-chan models.UploadProgress, error) {
	ch := make(chan models.UploadProgress)
	close(ch)
	return ch, nil
}

type mediaFixture struct {
	host     *fakeHost
	staged   *fakeStaged
	progress *fakeProgress
	service  *MediaService
}

func newMediaFixture(configured bool) *mediaFixture {
	f := &mediaFixture{host: &fakeHost{}, staged: newFakeStaged(), progress: &fakeProgress{}}
	f.service = NewMediaService(f.host, f.staged, f.progress, nil, zap.NewNop(), MediaOptions{
		MaxFileSize: 50 << 20,
		Configured:  configured,
	})
	f.service.now = testClock
	return f
}

func uploadFile(name string, size int64) models.UploadFile {
	return models.UploadFile{
		Name: name,
		Size: size,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("data")), nil
		},
	}
}
