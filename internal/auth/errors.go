package auth

import "errors"

var (
	// ErrAuthenticationFailed — неизвестный сотрудник или неверный пароль.
	// Оба случая намеренно неразличимы для клиента.
	ErrAuthenticationFailed = errors.New("invalid username or password")
	// ErrInconsistentState — учётные данные есть, а профиля пользователя нет.
	ErrInconsistentState = errors.New("user profile not found for credential")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInternal          = errors.New("internal authentication failure")

	ErrNilCredential = errors.New("nil credential")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
)

var (
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)
