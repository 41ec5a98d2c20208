package repo

import (
	"context"

	"gorm.io/gorm"

	"ecoentorno/internal/models"
)

type EPPStore struct{ db *gorm.DB }

func NewEPPStore(db *gorm.DB) *EPPStore { return &EPPStore{db: db} }

func (s *EPPStore) Create(ctx context.Context, d *models.EPPDelivery) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *EPPStore) List(ctx context.Context) ([]models.EPPDelivery, error) {
	var out []models.EPPDelivery
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EPPStore) FirstByEmployee(ctx context.Context, employeeID int64) (*models.EPPDelivery, error) {
	var d models.EPPDelivery
	if err := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&d).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}
