package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"ecoentorno/internal/logs"
	"ecoentorno/internal/models"
	"ecoentorno/internal/repo"
)

// CredentialFinder — хранилище учётных данных, нужное для логина.
type CredentialFinder interface {
	GetByEmployeeID(ctx context.Context, employeeID int64) (*models.Credential, error)
}

// UserFinder — профиль пользователя по документу.
type UserFinder interface {
	Get(ctx context.Context, documentID int64) (*models.User, error)
}

const TokenTypeBearer = "bearer"

type LoginResult struct {
	AccessToken string
	TokenType   string
	Role        models.Role
}

type Service struct {
	creds  CredentialFinder
	users  UserFinder
	hasher *Hasher
	issuer *Issuer

	// дайджест для выравнивания времени ответа при неизвестном сотруднике
	dummyHash string
}

// NewService заранее считает дайджест для выравнивания времени; без него
// неизвестный сотрудник отвечал бы заметно быстрее.
func NewService(creds CredentialFinder, users UserFinder, hasher *Hasher, issuer *Issuer) (*Service, error) {
	dummy, err := hasher.Hash("ecoentorno-timing-equalizer")
	if err != nil {
		return nil, fmt.Errorf("prepare timing digest: %w", err)
	}
	return &Service{
		creds:     creds,
		users:     users,
		hasher:    hasher,
		issuer:    issuer,
		dummyHash: dummy,
	}, nil
}

// Login: поиск учётки -> проверка пароля -> профиль -> роль -> токен.
// Ничего не пишет в хранилища и не повторяет шаги.
func (s *Service) Login(ctx context.Context, employeeID int64, password string) (*LoginResult, error) {
	cred, err := s.creds.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			loginAttempts.WithLabelValues(outcomeAuthFailed).Inc()
			return nil, ErrAuthenticationFailed
		}
		loginAttempts.WithLabelValues(outcomeInternal).Inc()
		return nil, fmt.Errorf("%w: credential lookup: %v", ErrInternal, err)
	}

	ok, err := s.hasher.VerifyCredential(cred, password)
	if err != nil {
		loginAttempts.WithLabelValues(outcomeInternal).Inc()
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !ok {
		loginAttempts.WithLabelValues(outcomeAuthFailed).Inc()
		return nil, ErrAuthenticationFailed
	}

	user, err := s.users.Get(ctx, cred.EmployeeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logs.Logger.WithFields(logrus.Fields{
				"employee_id": cred.EmployeeID,
				"anomaly":     "credential_without_user",
			}).Warn("login: credential exists without user profile")
			loginAttempts.WithLabelValues(outcomeInconsistent).Inc()
			return nil, ErrInconsistentState
		}
		loginAttempts.WithLabelValues(outcomeInternal).Inc()
		return nil, fmt.Errorf("%w: user lookup: %v", ErrInternal, err)
	}

	// роль из БД не доверенная: схема может хранить что угодно
	if !user.Role.Valid() {
		logs.Logger.WithFields(logrus.Fields{
			"employee_id": user.DocumentID,
			"role":        string(user.Role),
		}).Warn("login: user has role outside the known set")
		loginAttempts.WithLabelValues(outcomeInvalidRole).Inc()
		return nil, ErrInvalidRole
	}

	token, err := s.issuer.Issue(user.DocumentID, user.Role, s.issuer.TTL())
	if err != nil {
		loginAttempts.WithLabelValues(outcomeInternal).Inc()
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	loginAttempts.WithLabelValues(outcomeSuccess).Inc()
	logs.Logger.WithFields(logrus.Fields{
		"employee_id": user.DocumentID,
		"role":        string(user.Role),
	}).Info("login succeeded")

	return &LoginResult{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		Role:        user.Role,
	}, nil
}
