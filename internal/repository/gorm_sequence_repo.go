package repository

import (
	"context"
	"fmt"

	"hospital-records-service/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormSequenceRepository struct {
	db *gorm.DB
}

func NewGormSequenceRepo(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Reserve advances the sequence row under SELECT ... FOR UPDATE.
// The row is created with value 0 the first time a sequence is used.
func (r *GormSequenceRepository) Reserve(ctx context.Context, name string, n int64) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("reserve %d values from sequence %q: block must be positive", n, name)
	}

	var start int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Sequence{Name: name}).Error; err != nil {
			return err
		}

		var seq models.Sequence
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", name).
			First(&seq).Error; err != nil {
			return err
		}

		start = seq.Value
		return tx.Model(&models.Sequence{}).
			Where("name = ?", name).
			Update("value", seq.Value+n).Error
	})
	if err != nil {
		return 0, fmt.Errorf("advance sequence %q: %w", name, err)
	}

	return start, nil
}
