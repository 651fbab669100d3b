package mongodb

import (
	"context"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure CampaignRepository implements repositories.CampaignRepository
var _ repositories.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository implements the repositories.CampaignRepository interface
type CampaignRepository struct {
	collection *mongo.Collection
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{
		collection: db.Collection("campaign"),
	}
}

// EnsureIndexes creates the indexes used by listing and the link reconciler
func (r *CampaignRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "brandLink.status", Value: 1}, {Key: "createdAt", Value: 1}}},
	})
	return err
}

// Create inserts a campaign and assigns its ID
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	if campaign.ID.IsZero() {
		campaign.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, campaign); err != nil {
		return writeError("create campaign", err)
	}
	return nil
}

// FindByID finds a campaign by ID
func (r *CampaignRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign); err != nil {
		return nil, readError(err)
	}
	return &campaign, nil
}

// FindAll returns every campaign, newest first
func (r *CampaignRepository) FindAll(ctx context.Context) ([]*models.Campaign, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

// UpdateStatus sets the lifecycle status in a single write
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return writeError("update campaign status", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a campaign
func (r *CampaignRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return writeError("delete campaign", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountByStatus returns total, active and inactive campaign counts
func (r *CampaignRepository) CountByStatus(ctx context.Context) (models.StatusStats, error) {
	return countByStatus(ctx, r.collection)
}

// FindPendingLinks returns the oldest campaigns whose brand link has not
// settled and has been tried fewer than maxAttempts times
func (r *CampaignRepository) FindPendingLinks(ctx context.Context, maxAttempts, limit int) ([]*models.Campaign, error) {
	filter := bson.M{
		"brandLink.status":   models.LinkPending,
		"brandLink.attempts": bson.M{"$lt": maxAttempts},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

// CountPendingLinks counts campaigns whose brand link has not settled
func (r *CampaignRepository) CountPendingLinks(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"brandLink.status": models.LinkPending})
}

// MarkLinked settles the brand link of a campaign
func (r *CampaignRepository) MarkLinked(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	update := bson.M{
		"$set":   bson.M{"brandLink.status": models.LinkLinked, "brandLink.linkedAt": at},
		"$unset": bson.M{"brandLink.lastError": ""},
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return writeError("mark brand link", err)
	}
	return nil
}

// RecordLinkFailure counts a failed brand link attempt
func (r *CampaignRepository) RecordLinkFailure(ctx context.Context, id primitive.ObjectID, reason string) error {
	update := bson.M{
		"$inc": bson.M{"brandLink.attempts": 1},
		"$set": bson.M{"brandLink.lastError": reason},
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return writeError("record brand link failure", err)
	}
	return nil
}

func (r *CampaignRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]*models.Campaign, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []*models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	// Ensure an empty slice is returned instead of nil if no campaigns found
	if campaigns == nil {
		campaigns = []*models.Campaign{}
	}
	return campaigns, nil
}
