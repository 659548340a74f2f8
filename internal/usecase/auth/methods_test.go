package auth

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"polyCalc/internal/domain"
	"polyCalc/internal/mocks"
)

const testSecret = "test-secret"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newUseCase(t *testing.T) (*UseCase, *mocks.MockIUserRepository, *mocks.MockITokenStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	tokens := mocks.NewMockITokenStore(ctrl)
	return New(users, tokens, testSecret, 30*time.Minute, newTestLogger()), users, tokens
}

func TestRegister(t *testing.T) {
	uc, users, _ := newUseCase(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user domain.User) error {
			assert.Equal(t, "liza", user.Username)
			assert.Equal(t, "liza@example.com", user.Email)
			// Сырой пароль не сохраняется, только валидный bcrypt-хэш.
			assert.NotEqual(t, "secret123", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
			return nil
		})

	user, err := uc.Register(context.Background(), "liza", "liza@example.com", "secret123")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestRegister_Duplicate(t *testing.T) {
	uc, users, _ := newUseCase(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(domain.ErrUserExists)

	user, err := uc.Register(context.Background(), "liza", "liza@example.com", "secret123")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

// storedUser собирает пользователя с известным паролем для тестов логина.
func storedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{ID: uuid.New(), Username: "liza", PasswordHash: string(hash)}
}

func TestLoginAndVerify(t *testing.T) {
	uc, users, tokens := newUseCase(t)
	user := storedUser(t, "secret123")

	users.EXPECT().GetUserByUsername(gomock.Any(), "liza").Return(user, nil)
	tokens.EXPECT().IsBlacklisted(gomock.Any(), gomock.Any()).Return(false, nil)

	token, err := uc.Login(context.Background(), "liza", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := uc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, users, _ := newUseCase(t)

	users.EXPECT().GetUserByUsername(gomock.Any(), "liza").Return(storedUser(t, "secret123"), nil)

	token, err := uc.Login(context.Background(), "liza", "wrong")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Несуществующий пользователь неотличим от неверного пароля.
func TestLogin_UnknownUser(t *testing.T) {
	uc, users, _ := newUseCase(t)

	users.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := uc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogout_BlacklistsJTI(t *testing.T) {
	uc, users, tokens := newUseCase(t)

	users.EXPECT().GetUserByUsername(gomock.Any(), "liza").Return(storedUser(t, "secret123"), nil)
	token, err := uc.Login(context.Background(), "liza", "secret123")
	require.NoError(t, err)

	tokens.EXPECT().Blacklist(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, jti string, ttl time.Duration) error {
			assert.NotEmpty(t, jti)
			// TTL — остаток жизни токена, не больше исходных 30 минут.
			assert.Greater(t, ttl, time.Duration(0))
			assert.LessOrEqual(t, ttl, 30*time.Minute)
			return nil
		})

	assert.NoError(t, uc.Logout(context.Background(), token))
}

func TestVerify_RevokedToken(t *testing.T) {
	uc, users, tokens := newUseCase(t)

	users.EXPECT().GetUserByUsername(gomock.Any(), "liza").Return(storedUser(t, "secret123"), nil)
	token, err := uc.Login(context.Background(), "liza", "secret123")
	require.NoError(t, err)

	tokens.EXPECT().IsBlacklisted(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err = uc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)
}

func TestVerify_GarbageToken(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.Verify(context.Background(), "invalid.token.value")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

// Токен, подписанный другим ключом, отвергается.
func TestVerify_WrongSecret(t *testing.T) {
	other := New(mocks.NewMockIUserRepository(gomock.NewController(t)), nil, "other-secret", time.Minute, newTestLogger())
	uc, users, _ := newUseCase(t)

	users.EXPECT().GetUserByUsername(gomock.Any(), "liza").Return(storedUser(t, "secret123"), nil)
	token, err := uc.Login(context.Background(), "liza", "secret123")
	require.NoError(t, err)

	_, err = other.Verify(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
