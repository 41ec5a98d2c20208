package auth

import (
	"context"
	"fmt"

	"ecoentorno/internal/models"
)

// CredentialStore — полное хранилище учётных данных.
type CredentialStore interface {
	CredentialFinder
	Create(ctx context.Context, c *models.Credential) error
	List(ctx context.Context) ([]models.Credential, error)
	SetPasswordHash(ctx context.Context, employeeID int64, hash string) error
	Delete(ctx context.Context, employeeID int64) error
}

// bcrypt учитывает только первые 72 байта
const maxPasswordBytes = 72

// Credentials — регистрация и смена паролей. Хэш меняется только здесь.
type Credentials struct {
	store  CredentialStore
	hasher *Hasher
}

func NewCredentials(store CredentialStore, hasher *Hasher) *Credentials {
	return &Credentials{store: store, hasher: hasher}
}

func (c *Credentials) Register(ctx context.Context, employeeID int64, password string) (*models.Credential, error) {
	hash, err := c.hash(password)
	if err != nil {
		return nil, err
	}
	cred := &models.Credential{EmployeeID: employeeID, PasswordHash: hash}
	if err := c.store.Create(ctx, cred); err != nil {
		return nil, err
	}
	return cred, nil
}

// Update перехэширует пароль только если передан новый. Пустой пароль
// оставляет сохранённый хэш без изменений.
func (c *Credentials) Update(ctx context.Context, employeeID int64, newPassword string) (*models.Credential, error) {
	cred, err := c.store.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if newPassword == "" {
		return cred, nil
	}
	hash, err := c.hash(newPassword)
	if err != nil {
		return nil, err
	}
	if err := c.store.SetPasswordHash(ctx, employeeID, hash); err != nil {
		return nil, err
	}
	return c.store.GetByEmployeeID(ctx, employeeID)
}

func (c *Credentials) List(ctx context.Context) ([]models.Credential, error) {
	return c.store.List(ctx)
}

func (c *Credentials) Delete(ctx context.Context, employeeID int64) error {
	return c.store.Delete(ctx, employeeID)
}

func (c *Credentials) hash(password string) (string, error) {
	switch {
	case password == "":
		return "", ErrEmptyPassword
	case len(password) > maxPasswordBytes:
		return "", ErrPasswordTooLong
	}
	hash, err := c.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
