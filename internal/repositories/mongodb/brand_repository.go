package mongodb

import (
	"context"
	"strings"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure BrandRepository implements repositories.BrandRepository
var _ repositories.BrandRepository = (*BrandRepository)(nil)

// BrandRepository implements the repositories.BrandRepository interface
type BrandRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewBrandRepository creates a new BrandRepository
func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{
		collection: db.Collection("brand"),
		now:        time.Now,
	}
}

// EnsureIndexes creates the unique email index
func (r *BrandRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("brand_email_unique"),
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})
	return err
}

// Create inserts a brand. A clash on the unique email index is a PreconditionError.
func (r *BrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	if brand.ID.IsZero() {
		brand.ID = primitive.NewObjectID()
		brand.BrandID = brand.ID.Hex()
	}
	brand.Email = strings.ToLower(brand.Email)

	if _, err := r.collection.InsertOne(ctx, brand); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateBrandEmail
		}
		return writeError("create brand", err)
	}
	return nil
}

// FindByID finds a brand by ID
func (r *BrandRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	var brand models.Brand
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&brand); err != nil {
		return nil, readError(err)
	}
	return &brand, nil
}

// FindByEmail finds a brand by its contact email
func (r *BrandRepository) FindByEmail(ctx context.Context, email string) (*models.Brand, error) {
	var brand models.Brand
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.collection.FindOne(ctx, filter).Decode(&brand); err != nil {
		return nil, readError(err)
	}
	return &brand, nil
}

// FindAll returns every brand, newest first
func (r *BrandRepository) FindAll(ctx context.Context) ([]*models.Brand, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var brands []*models.Brand
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	if brands == nil {
		brands = []*models.Brand{}
	}
	return brands, nil
}

// UpdateStatus sets the lifecycle status in a single write
func (r *BrandRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": r.now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return writeError("update brand status", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetLastCampaign records the most recent campaign created for the brand
func (r *BrandRepository) SetLastCampaign(ctx context.Context, id primitive.ObjectID, campaignID string) error {
	update := bson.M{"$set": bson.M{"lastCampaignId": campaignID, "updatedAt": r.now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return writeError("link campaign to brand", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a brand. Campaigns referencing it are left untouched.
func (r *BrandRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return writeError("delete brand", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountByStatus returns total, active and inactive brand counts
func (r *BrandRepository) CountByStatus(ctx context.Context) (models.StatusStats, error) {
	return countByStatus(ctx, r.collection)
}
