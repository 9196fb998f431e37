package repository

import (
	"context"

	"hospital-records-service/internal/models"

	"gorm.io/gorm"
)

// NewGormStore wires the SQL repositories sharing one GORM connection.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Patients:  NewGormPatientRepo(db),
		Doctors:   NewGormDoctorRepo(db),
		Sequences: NewGormSequenceRepo(db),
		Migrate: func(ctx context.Context) error {
			return db.WithContext(ctx).AutoMigrate(&models.Patient{}, &models.Doctor{}, &models.Sequence{})
		},
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}
