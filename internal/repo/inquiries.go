package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kvbuilders/app/internal/model"
)

const inquiryCollection = "contact_inquiries"

// inquiryDoc is the stored shape of an inquiry. Timestamps are encoded as
// text (see timeLayout) rather than BSON dates, matching the collection's
// existing documents.
type inquiryDoc struct {
	ID        string `bson:"id"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone,omitempty"`
	Service   string `bson:"service"`
	Message   string `bson:"message"`
	Timestamp string `bson:"timestamp"`
	Status    string `bson:"status"`
}

func toInquiryDoc(inq *model.Inquiry) inquiryDoc {
	return inquiryDoc{
		ID:        inq.ID,
		Name:      inq.Name,
		Email:     inq.Email,
		Phone:     inq.Phone,
		Service:   inq.Service,
		Message:   inq.Message,
		Timestamp: encodeTime(inq.Timestamp),
		Status:    inq.Status,
	}
}

func (d inquiryDoc) toModel() (model.Inquiry, error) {
	ts, err := decodeTime(d.Timestamp)
	if err != nil {
		return model.Inquiry{}, fmt.Errorf("decode timestamp of inquiry %s: %w", d.ID, err)
	}
	return model.Inquiry{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Service:   d.Service,
		Message:   d.Message,
		Timestamp: ts,
		Status:    d.Status,
	}, nil
}

type mongoInquiryRepo struct {
	coll *mongo.Collection
}

func NewInquiryRepo(db *mongo.Database) InquiryRepo {
	return &mongoInquiryRepo{coll: db.Collection(inquiryCollection)}
}

func (r *mongoInquiryRepo) Insert(ctx context.Context, inq *model.Inquiry) error {
	if _, err := r.coll.InsertOne(ctx, toInquiryDoc(inq)); err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

func (r *mongoInquiryRepo) FindByEmailSince(ctx context.Context, email string, since time.Time) (*model.Inquiry, error) {
	filter := bson.M{
		"email":     email,
		"timestamp": bson.M{"$gte": encodeTime(since)},
	}
	opts := options.FindOne().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetProjection(bson.M{"_id": 0})

	var doc inquiryDoc
	err := r.coll.FindOne(ctx, filter, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find inquiry by email: %w", err)
	}

	inq, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &inq, nil
}

func (r *mongoInquiryRepo) ListNewestFirst(ctx context.Context) ([]model.Inquiry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetProjection(bson.M{"_id": 0})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer cur.Close(ctx)

	var out []model.Inquiry
	for cur.Next(ctx) {
		var doc inquiryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode inquiry: %w", err)
		}
		inq, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, inq)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return out, nil
}

func (r *mongoInquiryRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
