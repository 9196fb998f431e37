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

const patientsCollection = "patients"

type MongoPatientRepository struct {
	coll *mongo.Collection
}

func NewMongoPatientRepo(db *mongo.Database) *MongoPatientRepository {
	return &MongoPatientRepository{coll: db.Collection(patientsCollection)}
}

// CreatePatient inserts a patient as a single document
func (r *MongoPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if _, err := r.coll.InsertOne(ctx, patient); err != nil {
		return fmt.Errorf("insert patient %d: %w", patient.ID, err)
	}
	return nil
}

// GetPatientByID retrieves a patient by its sequential identifier
func (r *MongoPatientRepository) GetPatientByID(ctx context.Context, id int64) (*models.Patient, error) {
	var patient models.Patient
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find patient %d: %w", id, err)
	}
	return &patient, nil
}

// FindPatientsByDisease returns every patient diagnosed with exactly the given disease
func (r *MongoPatientRepository) FindPatientsByDisease(ctx context.Context, disease string) ([]models.Patient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"disease": disease}, opts)
	if err != nil {
		return nil, fmt.Errorf("find patients by disease: %w", err)
	}

	patients := []models.Patient{}
	if err := cur.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("decode patients: %w", err)
	}
	return patients, nil
}

func (r *MongoPatientRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "disease", Value: 1}}},
	})
	return err
}
