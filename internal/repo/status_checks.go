package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kvbuilders/app/internal/model"
)

const statusCheckCollection = "status_checks"

type statusCheckDoc struct {
	ID         string `bson:"id"`
	ClientName string `bson:"client_name"`
	Timestamp  string `bson:"timestamp"`
}

type mongoStatusCheckRepo struct {
	coll *mongo.Collection
}

func NewStatusCheckRepo(db *mongo.Database) StatusCheckRepo {
	return &mongoStatusCheckRepo{coll: db.Collection(statusCheckCollection)}
}

func (r *mongoStatusCheckRepo) Insert(ctx context.Context, sc *model.StatusCheck) error {
	doc := statusCheckDoc{
		ID:         sc.ID,
		ClientName: sc.ClientName,
		Timestamp:  encodeTime(sc.Timestamp),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (r *mongoStatusCheckRepo) List(ctx context.Context) ([]model.StatusCheck, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer cur.Close(ctx)

	var out []model.StatusCheck
	for cur.Next(ctx) {
		var doc statusCheckDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode status check: %w", err)
		}
		ts, err := decodeTime(doc.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("decode timestamp of status check %s: %w", doc.ID, err)
		}
		out = append(out, model.StatusCheck{
			ID:         doc.ID,
			ClientName: doc.ClientName,
			Timestamp:  ts,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return out, nil
}
