package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital-records-service/internal/models"

	"gorm.io/gorm"
)

type GormPatientRepository struct {
	db *gorm.DB
}

func NewGormPatientRepo(db *gorm.DB) *GormPatientRepository {
	return &GormPatientRepository{db: db}
}

// CreatePatient inserts a new patient row
func (r *GormPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("insert patient %d: %w", patient.ID, err)
	}
	return nil
}

// GetPatientByID retrieves a patient by ID
func (r *GormPatientRepository) GetPatientByID(ctx context.Context, id int64) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find patient %d: %w", id, err)
	}
	return &patient, nil
}

// FindPatientsByDisease retrieves all patients with the given disease
func (r *GormPatientRepository) FindPatientsByDisease(ctx context.Context, disease string) ([]models.Patient, error) {
	patients := []models.Patient{}
	err := r.db.WithContext(ctx).Where("disease = ?", disease).Order("id ASC").Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("find patients by disease: %w", err)
	}
	return patients, nil
}
