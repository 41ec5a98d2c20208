package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"ecoentorno/internal/models"
)

type UserStore struct{ db *gorm.DB }

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

// UserUpdate — изменяемые поля профиля; документ не меняется.
type UserUpdate struct {
	Name    string
	Surname string
	Role    models.Role
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	return translate(s.db.WithContext(ctx).Create(u).Error)
}

func (s *UserStore) Get(ctx context.Context, documentID int64) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("document_id = ?", documentID).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// List возвращает всех пользователей; при непустом query — только тех,
// у кого query входит в документ, имя или фамилию. Поиск буквальный
// (% и _ экранируются) и без учёта регистра на обоих диалектах.
func (s *UserStore) List(ctx context.Context, query string) ([]models.User, error) {
	tx := s.db.WithContext(ctx).Order("document_id")
	if q := strings.TrimSpace(query); q != "" {
		like := "%" + escapeLike(strings.ToLower(q)) + "%"
		tx = tx.Where(s.documentAsText()+" LIKE ? OR LOWER(name) LIKE ? OR LOWER(surname) LIKE ?", like, like, like)
	}
	var out []models.User
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UserStore) Update(ctx context.Context, documentID int64, in UserUpdate) (*models.User, error) {
	u, err := s.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Model(u).Updates(map[string]any{
		"name":    in.Name,
		"surname": in.Surname,
		"role":    in.Role,
	}).Error
	if err != nil {
		return nil, translate(err)
	}
	u.Name, u.Surname, u.Role = in.Name, in.Surname, in.Role
	return u, nil
}

func (s *UserStore) Delete(ctx context.Context, documentID int64) error {
	res := s.db.WithContext(ctx).Where("document_id = ?", documentID).Delete(&models.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) documentAsText() string {
	if s.db.Dialector.Name() == "postgres" {
		return "CAST(document_id AS TEXT)"
	}
	return "CAST(document_id AS CHAR)"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike экранирует спецсимволы LIKE; "\" — escape по умолчанию
// и в MySQL, и в PostgreSQL.
func escapeLike(s string) string { return likeEscaper.Replace(s) }
