package mongodb

import (
	"context"
	"strings"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure adminUserRepository implements repositories.AdminUserRepository
var _ repositories.AdminUserRepository = (*adminUserRepository)(nil)

type adminUserRepository struct {
	collection *mongo.Collection
}

// NewAdminUserRepository creates a new repository for admin users
func NewAdminUserRepository(db *mongo.Database) repositories.AdminUserRepository {
	return &adminUserRepository{
		collection: db.Collection("admin"),
	}
}

// FindByEmail finds an admin user by their email address
func (r *adminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var adminUser models.AdminUser
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.collection.FindOne(ctx, filter).Decode(&adminUser); err != nil {
		return nil, readError(err)
	}
	return &adminUser, nil
}

// FindByID finds an admin user by their ID
func (r *adminUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	var adminUser models.AdminUser
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&adminUser); err != nil {
		return nil, readError(err)
	}
	return &adminUser, nil
}

// Upsert creates or replaces the admin user with the same email
func (r *adminUserRepository) Upsert(ctx context.Context, adminUser *models.AdminUser) error {
	now := time.Now()
	adminUser.Email = strings.ToLower(strings.TrimSpace(adminUser.Email))
	adminUser.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"name":      adminUser.Name,
			"password":  adminUser.Password,
			"role":      adminUser.Role,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.Update().SetUpsert(true)
	res, err := r.collection.UpdateOne(ctx, bson.M{"email": adminUser.Email}, update, opts)
	if err != nil {
		return writeError("save admin user", err)
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		adminUser.ID = id
		adminUser.CreatedAt = now
	}
	return nil
}
