package repo

import (
	"context"

	"gorm.io/gorm"

	"ecoentorno/internal/models"
)

type CredentialStore struct{ db *gorm.DB }

func NewCredentialStore(db *gorm.DB) *CredentialStore { return &CredentialStore{db: db} }

func (s *CredentialStore) Create(ctx context.Context, c *models.Credential) error {
	return translate(s.db.WithContext(ctx).Create(c).Error)
}

func (s *CredentialStore) GetByEmployeeID(ctx context.Context, employeeID int64) (*models.Credential, error) {
	var c models.Credential
	if err := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *CredentialStore) List(ctx context.Context) ([]models.Credential, error) {
	var out []models.Credential
	if err := s.db.WithContext(ctx).Order("employee_id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SetPasswordHash — единственный путь изменения хэша.
func (s *CredentialStore) SetPasswordHash(ctx context.Context, employeeID int64, hash string) error {
	res := s.db.WithContext(ctx).Model(&models.Credential{}).
		Where("employee_id = ?", employeeID).
		Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CredentialStore) Delete(ctx context.Context, employeeID int64) error {
	res := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).Delete(&models.Credential{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
