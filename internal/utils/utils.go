package utils

import (
	"strings"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchesSearch reports whether any field contains query, ignoring case.
// An empty query matches everything.
func MatchesSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// MatchesStatus reports whether status passes the filter; "all" and "" pass everything
func MatchesStatus(filter, status string) bool {
	return filter == "" || filter == "all" || filter == status
}

// ParseObjectID converts a hex id from a request into an ObjectID
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrInvalidID
	}
	return oid, nil
}
