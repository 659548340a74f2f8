package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// RegisterRequest — тело POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate проверяет логин, почту и пароль до обращения к юзкейсу.
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is required")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("email is invalid")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// LoginRequest — тело POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse — ответ на успешную регистрацию.
type RegisterResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// LoginResponse — JWT для последующих запросов.
type LoginResponse struct {
	Token string `json:"token"`
}
