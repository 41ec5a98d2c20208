package repo

import (
	"context"

	"gorm.io/gorm"

	"ecoentorno/internal/models"
)

type WeightStore struct{ db *gorm.DB }

func NewWeightStore(db *gorm.DB) *WeightStore { return &WeightStore{db: db} }

func (s *WeightStore) Create(ctx context.Context, w *models.WeightRecord) error {
	return s.db.WithContext(ctx).Create(w).Error
}

func (s *WeightStore) List(ctx context.Context) ([]models.WeightRecord, error) {
	var out []models.WeightRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FirstByEmployee — самая ранняя запись сотрудника.
func (s *WeightStore) FirstByEmployee(ctx context.Context, employeeID int64) (*models.WeightRecord, error) {
	var w models.WeightRecord
	if err := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&w).Error; err != nil {
		return nil, translate(err)
	}
	return &w, nil
}
