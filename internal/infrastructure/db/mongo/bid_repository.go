package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

const collectionBids = "bids"

type BidRepository struct {
	col *mongo.Collection
}

func NewBidRepository(db *mongo.Database) *BidRepository {
	return &BidRepository{col: db.Collection(collectionBids)}
}

type bidDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ProjectID    string             `bson:"project_id"`
	FreelancerID string             `bson:"freelancer_id"`
	BidAmount    float64            `bson:"bid_amount"`
	Proposal     string             `bson:"proposal"`
	Status       string             `bson:"status"`
	SubmittedAt  time.Time          `bson:"submitted_at"`
}

func (d *bidDoc) toDomain() *domain.Bid {
	return &domain.Bid{
		ID:           d.ID.Hex(),
		ProjectID:    d.ProjectID,
		FreelancerID: d.FreelancerID,
		BidAmount:    d.BidAmount,
		Proposal:     d.Proposal,
		Status:       domain.BidStatus(d.Status),
		SubmittedAt:  d.SubmittedAt,
	}
}

// Create inserts a new bid document and returns it with the assigned id.
func (r *BidRepository) Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bidDoc{
		ProjectID:    bid.ProjectID,
		FreelancerID: bid.FreelancerID,
		BidAmount:    bid.BidAmount,
		Proposal:     bid.Proposal,
		Status:       string(bid.Status),
		SubmittedAt:  bid.SubmittedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	stored := *bid
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		stored.ID = oid.Hex()
	}
	return &stored, nil
}

// FindByID retrieves a bid by its hex identifier.
func (r *BidRepository) FindByID(ctx context.Context, id string) (*domain.Bid, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBidNotFound
	}

	var doc bidDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBidNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// FindByProject lists the bids submitted against a project.
func (r *BidRepository) FindByProject(ctx context.Context, projectID string) ([]*domain.Bid, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bids []*domain.Bid
	for cur.Next(ctx) {
		var doc bidDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		bids = append(bids, doc.toDomain())
	}
	return bids, cur.Err()
}

// Update replaces the mutable fields of an existing bid.
func (r *BidRepository) Update(ctx context.Context, bid *domain.Bid) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(bid.ID)
	if err != nil {
		return domain.ErrBidNotFound
	}

	update := bson.M{"$set": bson.M{
		"bid_amount": bid.BidAmount,
		"proposal":   bid.Proposal,
		"status":     string(bid.Status),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrBidNotFound
	}
	return nil
}

// Delete removes a bid document.
func (r *BidRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBidNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrBidNotFound
	}
	return nil
}

// EnsureIndexes creates indexes on the bids collection.
func (r *BidRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}}},
		{Keys: bson.D{{Key: "freelancer_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
