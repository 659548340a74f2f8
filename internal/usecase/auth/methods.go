package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"polyCalc/internal/domain"
)

// Register создаёт пользователя с bcrypt-хэшем пароля.
func (u *UseCase) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	u.log.Info("user registered", "id", user.ID, "username", user.Username)
	return &user, nil
}

// Login проверяет пароль и выдаёт подписанный HS256 access-токен
// (sub — id пользователя, jti — для отзыва при logout).
func (u *UseCase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Не раскрываем, существует ли пользователь.
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	u.log.Info("user logged in", "id", user.ID)
	return token, nil
}

// Logout отзывает токен: jti попадает в чёрный список на остаток срока жизни токена.
func (u *UseCase) Logout(ctx context.Context, token string) error {
	claims, err := u.parse(token)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		// Токен уже истёк — заносить нечего.
		return nil
	}
	if err := u.tokens.Blacklist(ctx, claims.ID, ttl); err != nil {
		return err
	}
	u.log.Info("token revoked", "jti", claims.ID)
	return nil
}

// Verify проверяет подпись и срок токена, отвергает отозванные jti
// и возвращает id владельца.
func (u *UseCase) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := u.parse(token)
	if err != nil {
		return uuid.Nil, err
	}

	revoked, err := u.tokens.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return uuid.Nil, err
	}
	if revoked {
		return uuid.Nil, domain.ErrTokenRevoked
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return userID, nil
}

// parse разбирает и проверяет токен (подпись HS256, exp, наличие jti и sub).
func (u *UseCase) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return u.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.ID == "" || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
