package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ecoentorno/internal/logs"
	"ecoentorno/internal/models"
	"ecoentorno/internal/repo"
)

// UserCreator — запись профилей при начальном наполнении.
type UserCreator interface {
	UserFinder
	Create(ctx context.Context, u *models.User) error
}

type seedFile struct {
	Users []struct {
		DocumentID int64       `yaml:"document_id"`
		Name       string      `yaml:"name"`
		Surname    string      `yaml:"surname"`
		Role       models.Role `yaml:"role"`
		Password   string      `yaml:"password"`
	} `yaml:"users"`
}

// SeedFromFile создаёт отсутствующих пользователей и их учётные данные.
// Существующие записи не трогает, поэтому безопасен при каждом старте.
func SeedFromFile(ctx context.Context, path string, users UserCreator, creds *Credentials) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, u := range sf.Users {
		if u.DocumentID <= 0 {
			continue
		}
		if !u.Role.Valid() {
			return fmt.Errorf("seed user %d: invalid role %q", u.DocumentID, u.Role)
		}

		_, err := users.Get(ctx, u.DocumentID)
		switch {
		case errors.Is(err, repo.ErrNotFound):
			if err := users.Create(ctx, &models.User{
				DocumentID: u.DocumentID,
				Name:       u.Name,
				Surname:    u.Surname,
				Role:       u.Role,
			}); err != nil {
				return fmt.Errorf("seed user %d: %w", u.DocumentID, err)
			}
			logs.Logger.Infof("seed: user %d created", u.DocumentID)
		case err != nil:
			return err
		}

		if u.Password == "" {
			continue
		}
		_, err = creds.Register(ctx, u.DocumentID, u.Password)
		switch {
		case errors.Is(err, repo.ErrConflict):
		case err != nil:
			return fmt.Errorf("seed credential %d: %w", u.DocumentID, err)
		default:
			logs.Logger.Infof("seed: credential %d created", u.DocumentID)
		}
	}
	return nil
}
