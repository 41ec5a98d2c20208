package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ecoentorno/internal/models"
)

const DefaultTokenTTL = 30 * time.Minute

// Claims — содержимое сессионного токена: sub (документ сотрудника),
// rol (роль) и стандартные iat/exp.
type Claims struct {
	Role models.Role `json:"rol"`
	jwt.RegisteredClaims
}

// EmployeeID разбирает sub обратно в числовой идентификатор.
func (c *Claims) EmployeeID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Issuer подписывает и проверяет токены HS256. Секрет задаётся один раз
// при старте процесса. Без состояния, безопасен для конкурентного вызова.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL — срок жизни токена по умолчанию.
func (i *Issuer) TTL() time.Duration { return i.ttl }

func (i *Issuer) Issue(subjectID int64, role models.Role, ttl time.Duration) (string, error) {
	if len(i.secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	if ttl <= 0 {
		ttl = i.ttl
	}
	now := i.now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(subjectID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись, затем срок. Подпись покрывает exp, поэтому
// подделанный срок даёт ErrTokenInvalid, а не ErrTokenExpired.
func (i *Issuer) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	switch {
	case err == nil && parsed.Valid:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, ErrTokenInvalid
	}
	if _, err := claims.EmployeeID(); err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
