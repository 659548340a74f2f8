package domain

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись пользователя. PasswordHash — bcrypt-хэш, сырой пароль не храним.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
