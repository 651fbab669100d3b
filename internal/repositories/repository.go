package repositories

import (
	"context"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrandRepository defines the interface for brand data operations
type BrandRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, brand *models.Brand) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error)
	FindByEmail(ctx context.Context, email string) (*models.Brand, error)
	// FindAll returns every brand, newest first
	FindAll(ctx context.Context) ([]*models.Brand, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	SetLastCampaign(ctx context.Context, id primitive.ObjectID, campaignID string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByStatus(ctx context.Context) (models.StatusStats, error)
}

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, campaign *models.Campaign) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	// FindAll returns every campaign, newest first
	FindAll(ctx context.Context) ([]*models.Campaign, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByStatus(ctx context.Context) (models.StatusStats, error)

	// Brand link intents
	FindPendingLinks(ctx context.Context, maxAttempts, limit int) ([]*models.Campaign, error)
	CountPendingLinks(ctx context.Context) (int64, error)
	MarkLinked(ctx context.Context, id primitive.ObjectID, at time.Time) error
	RecordLinkFailure(ctx context.Context, id primitive.ObjectID, reason string) error
}

// AdminUserRepository defines the interface for admin user data operations
type AdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	// Upsert creates or replaces the admin with the same email
	Upsert(ctx context.Context, adminUser *models.AdminUser) error
}

// SessionRepository stores server-side sessions behind issued tokens
type SessionRepository interface {
	Save(ctx context.Context, session *models.Session) error
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// StagedMediaRepository is the ledger of uploaded objects that no committed
// document references yet
type StagedMediaRepository interface {
	Stage(ctx context.Context, asset models.StagedAsset) error
	Promote(ctx context.Context, resourceType string, publicIDs ...string) error
	// Expired lists assets staged before the cutoff, oldest first
	Expired(ctx context.Context, before time.Time, limit int64) ([]models.StagedAsset, error)
	Remove(ctx context.Context, asset models.StagedAsset) error
}

// ProgressPublisher fans upload progress out to listeners of an upload
type ProgressPublisher interface {
	Publish(ctx context.Context, progress models.UploadProgress) error
	// Subscribe returns a channel of progress events; it is closed when ctx ends
	Subscribe(ctx context.Context, uploadID string) (<-chan models.UploadProgress, error)
}
