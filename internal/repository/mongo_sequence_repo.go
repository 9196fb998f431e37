package repository

import (
	"context"
	"fmt"

	"hospital-records-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sequencesCollection = "sequences"

type MongoSequenceRepository struct {
	coll *mongo.Collection
}

func NewMongoSequenceRepo(db *mongo.Database) *MongoSequenceRepository {
	return &MongoSequenceRepository{coll: db.Collection(sequencesCollection)}
}

// Reserve increments the sequence document with $inc, creating it on first use.
// The single-document update is atomic, so concurrent processes never share a block.
//
// Concurrent first-use upserts can race on the insert. The loser sees E11000
// and its single retry lands as a plain $inc on the document the winner created.
func (r *MongoSequenceRepository) Reserve(ctx context.Context, name string, n int64) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("reserve %d values from sequence %q: block must be positive", n, name)
	}

	seq, err := r.advance(ctx, name, n)
	if mongo.IsDuplicateKeyError(err) {
		seq, err = r.advance(ctx, name, n)
	}
	if err != nil {
		return 0, fmt.Errorf("advance sequence %q: %w", name, err)
	}

	return seq.Value - n, nil
}

func (r *MongoSequenceRepository) advance(ctx context.Context, name string, n int64) (*models.Sequence, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var seq models.Sequence
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": n}},
		opts,
	).Decode(&seq)
	if err != nil {
		return nil, err
	}
	return &seq, nil
}
