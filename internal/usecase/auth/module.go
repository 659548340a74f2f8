package auth

import (
	"log/slog"
	"time"

	"polyCalc/internal/ports"
)

// UseCase — бизнес-логика аутентификации: регистрация, вход с выдачей JWT,
// выход с занесением jti в чёрный список, проверка токена.
type UseCase struct {
	users  ports.IUserRepository
	tokens ports.ITokenStore
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
}

// New создаёт юзкейс аутентификации. secret — ключ подписи HS256, ttl — срок жизни access-токена.
func New(users ports.IUserRepository, tokens ports.ITokenStore, secret string, ttl time.Duration, log *slog.Logger) *UseCase {
	return &UseCase{users: users, tokens: tokens, secret: []byte(secret), ttl: ttl, log: log}
}
