package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital-records-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const doctorsCollection = "doctors"

type MongoDoctorRepository struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo(db *mongo.Database) *MongoDoctorRepository {
	return &MongoDoctorRepository{coll: db.Collection(doctorsCollection)}
}

func (r *MongoDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("insert doctor %d: %w", doctor.ID, err)
	}
	return nil
}

func (r *MongoDoctorRepository) GetDoctorByID(ctx context.Context, id int64) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find doctor %d: %w", id, err)
	}
	return &doctor, nil
}

func (r *MongoDoctorRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
