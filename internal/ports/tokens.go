package ports

//go:generate mockgen -source=tokens.go -destination=../mocks/tokens_mock.go -package=mocks

import (
	"context"
	"time"
)

// ITokenStore — контракт чёрного списка токенов. После logout jti токена попадает
// в список на остаток его жизни; Verify отвергает токены с занесённым jti.
type ITokenStore interface {
	Blacklist(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}
