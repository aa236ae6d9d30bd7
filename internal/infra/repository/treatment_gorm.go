package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dentsync/clinic-api/internal/models"
	uctreatment "github.com/dentsync/clinic-api/internal/usecase/treatment"
)

type TreatmentGormRepository struct {
	db *gorm.DB
}

func NewTreatmentGormRepository(db *gorm.DB) *TreatmentGormRepository {
	return &TreatmentGormRepository{db: db}
}

func (r *TreatmentGormRepository) CreateTreatment(
	ctx context.Context,
	t *models.Treatment,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Compile-time check
var _ uctreatment.Repository = (*TreatmentGormRepository)(nil)
