package auth

import (
	"ecoentorno/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Hasher — bcrypt с настраиваемой стоимостью. Соль генерируется на каждый
// вызов Hash и хранится внутри дайджеста.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Cost() int { return h.cost }

func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify никогда не возвращает ошибку: несовпадение, битый дайджест
// и слишком длинный пароль одинаково дают false.
func (h *Hasher) Verify(plaintext, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// VerifyCredential отличает ошибку вызывающего (nil) от неверного пароля.
func (h *Hasher) VerifyCredential(c *models.Credential, plaintext string) (bool, error) {
	if c == nil {
		return false, ErrNilCredential
	}
	return h.Verify(plaintext, c.PasswordHash), nil
}
