package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoStore wires the MongoDB repositories of one database.
func NewMongoStore(client *mongo.Client, db *mongo.Database) *Store {
	patients := NewMongoPatientRepo(db)
	doctors := NewMongoDoctorRepo(db)

	return &Store{
		Patients:  patients,
		Doctors:   doctors,
		Sequences: NewMongoSequenceRepo(db),
		Migrate: func(ctx context.Context) error {
			if err := patients.ensureIndexes(ctx); err != nil {
				return err
			}
			return doctors.ensureIndexes(ctx)
		},
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		Close: client.Disconnect,
	}
}
