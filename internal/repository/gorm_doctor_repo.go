package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital-records-service/internal/models"

	"gorm.io/gorm"
)

type GormDoctorRepository struct {
	db *gorm.DB
}

func NewGormDoctorRepo(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

func (r *GormDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("insert doctor %d: %w", doctor.ID, err)
	}
	return nil
}

func (r *GormDoctorRepository) GetDoctorByID(ctx context.Context, id int64) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find doctor %d: %w", id, err)
	}
	return &doctor, nil
}
