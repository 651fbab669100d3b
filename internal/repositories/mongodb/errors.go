package mongodb

import (
	"context"
	"errors"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// unauthorizedCode is the server error code for a denied operation
const unauthorizedCode = 13

// writeError wraps a failed write so handlers can tell permission problems apart
func writeError(op string, err error) error {
	var serverErr mongo.ServerError
	return &apperrors.StoreWriteError{
		Op:               op,
		PermissionDenied: errors.As(err, &serverErr) && serverErr.HasErrorCode(unauthorizedCode),
		Err:              err,
	}
}

// readError maps a missing document to apperrors.ErrNotFound
func readError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.ErrNotFound
	}
	return err
}

// countByStatus groups a collection by its status field
func countByStatus(ctx context.Context, coll *mongo.Collection) (models.StatusStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return models.StatusStats{}, err
	}
	defer cursor.Close(ctx)

	var groups []struct {
		Status string `bson:"_id"`
		Count  int    `bson:"count"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return models.StatusStats{}, err
	}

	var stats models.StatusStats
	for _, g := range groups {
		stats.Total += g.Count
		switch g.Status {
		case models.StatusActive:
			stats.Active += g.Count
		case models.StatusInactive:
			stats.Inactive += g.Count
		}
	}
	return stats, nil
}
