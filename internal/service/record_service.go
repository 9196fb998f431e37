package service

import (
	"context"
	"errors"
	"time"

	"hospital-records-service/internal/models"
	"hospital-records-service/internal/repository"
)

// IDGenerator issues record identifiers.
type IDGenerator interface {
	Next(ctx context.Context) (int64, error)
}

// RecordService creates and looks up patient and doctor records.
// Every store round-trip runs under the configured timeout.
type RecordService struct {
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
	ids      IDGenerator
	timeout  time.Duration
}

func NewRecordService(
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	ids IDGenerator,
	timeout time.Duration,
) *RecordService {
	return &RecordService{
		patients: patients,
		doctors:  doctors,
		ids:      ids,
		timeout:  timeout,
	}
}

// CreatePatient parses the form, assigns the next identifier and stores the patient.
func (s *RecordService) CreatePatient(ctx context.Context, form PatientForm) (*models.Patient, error) {
	patient, err := ParsePatient(form)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.ids.Next(ctx)
	if err != nil {
		return nil, persistenceError("assign id", KindPatient, err)
	}
	patient.ID = id

	if err := s.patients.CreatePatient(ctx, patient); err != nil {
		return nil, persistenceError("create", KindPatient, err)
	}
	return patient, nil
}

// CreateDoctor parses the form, assigns the next identifier and stores the doctor.
func (s *RecordService) CreateDoctor(ctx context.Context, form DoctorForm) (*models.Doctor, error) {
	doctor, err := ParseDoctor(form)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.ids.Next(ctx)
	if err != nil {
		return nil, persistenceError("assign id", KindDoctor, err)
	}
	doctor.ID = id

	if err := s.doctors.CreateDoctor(ctx, doctor); err != nil {
		return nil, persistenceError("create", KindDoctor, err)
	}
	return doctor, nil
}

// FindPatientByID returns the patient with the identifier, or ErrNotFound.
func (s *RecordService) FindPatientByID(ctx context.Context, id int64) (*models.Patient, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	patient, err := s.patients.GetPatientByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceError("find", KindPatient, err)
	}
	return patient, nil
}

// FindDoctorByID returns the doctor with the identifier, or ErrNotFound.
func (s *RecordService) FindDoctorByID(ctx context.Context, id int64) (*models.Doctor, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doctor, err := s.doctors.GetDoctorByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceError("find", KindDoctor, err)
	}
	return doctor, nil
}

// FindPatientsByDisease returns the patients diagnosed with disease.
// No match yields an empty slice and a nil error.
func (s *RecordService) FindPatientsByDisease(ctx context.Context, disease string) ([]models.Patient, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	patients, err := s.patients.FindPatientsByDisease(ctx, disease)
	if err != nil {
		return nil, persistenceError("scan", KindPatient, err)
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	return patients, nil
}

func (s *RecordService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
