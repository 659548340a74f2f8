package redis

import (
	"context"
	"log/slog"
	"time"

	"polyCalc/internal/ports"
)

var _ ports.ITokenStore = (*TokenStore)(nil)

// Префикс ключей чёрного списка: blacklist:<jti>.
const blacklistPrefix = "blacklist:"

// TokenStore реализует ports.ITokenStore через Redis: отозванные jti живут
// под ключом с TTL, равным остатку жизни токена, и исчезают сами.
type TokenStore struct {
	cli *Client
	log *slog.Logger
}

// NewTokenStore возвращает чёрный список токенов.
func NewTokenStore(cli *Client, log *slog.Logger) *TokenStore {
	return &TokenStore{cli: cli, log: log}
}

// Blacklist заносит jti в чёрный список на ttl.
func (s *TokenStore) Blacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.cli.Client.Set(ctx, blacklistPrefix+jti, "1", ttl).Err(); err != nil {
		s.log.Debug("blacklist set failed", "jti", jti, "error", err)
		return err
	}
	return nil
}

// IsBlacklisted проверяет, отозван ли jti.
func (s *TokenStore) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := s.cli.Client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		s.log.Debug("blacklist check failed", "jti", jti, "error", err)
		return false, err
	}
	return n > 0, nil
}
