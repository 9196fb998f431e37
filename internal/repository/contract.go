package repository

import (
	"context"
	"errors"

	"hospital-records-service/internal/models"
)

// ErrNotFound is returned by point lookups that match no record.
var ErrNotFound = errors.New("record not found")

// PatientRepository persists patient records.
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) error
	GetPatientByID(ctx context.Context, id int64) (*models.Patient, error)
	FindPatientsByDisease(ctx context.Context, disease string) ([]models.Patient, error)
}

// DoctorRepository persists doctor records.
type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) error
	GetDoctorByID(ctx context.Context, id int64) (*models.Doctor, error)
}

// SequenceRepository hands out blocks of identifiers from a durable named sequence.
// Reserve atomically advances the sequence by n and returns the first value of
// the reserved block [start, start+n).
type SequenceRepository interface {
	Reserve(ctx context.Context, name string, n int64) (int64, error)
}

// Store groups the repositories of one storage backend.
type Store struct {
	Patients  PatientRepository
	Doctors   DoctorRepository
	Sequences SequenceRepository
	// Migrate creates indexes or tables. Nil when the backend needs none.
	Migrate func(ctx context.Context) error
	// Ping reports whether the backend is reachable.
	Ping  func(ctx context.Context) error
	Close func(ctx context.Context) error
}
