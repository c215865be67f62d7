package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the query shapes depend on: the dedup
// fallback lookup (email + timestamp range), the newest-first listing, and
// the by-id status update.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	inquiries := db.Collection(inquiryCollection)
	_, err := inquiries.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create inquiry indexes: %w", err)
	}
	return nil
}
