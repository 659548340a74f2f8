package integration

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyCalc/internal/domain"
	"polyCalc/internal/infrastructure/pg"
)

// newPG подключается к контейнеру PostgreSQL и накатывает миграции.
func newPG(t *testing.T) *pg.DB {
	t.Helper()
	cfg := &pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		DBName:   pgContainer.DBName,
		SSLMode:  "disable",
	}
	db, err := pg.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, pg.Migrate(context.Background(), db))
	return db
}

// newUser создаёт пользователя в БД и возвращает его id (вычисления ссылаются на users).
func newUser(t *testing.T, db *pg.DB) uuid.UUID {
	t.Helper()
	users := pg.NewUserRepo(db, slog.Default())
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + "@test.local",
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, users.CreateUser(context.Background(), user))
	return user.ID
}

// TestPG_UserRepo — создание пользователя, чтение по имени и id, конфликт имени.
func TestPG_UserRepo(t *testing.T) {
	db := newPG(t)
	users := pg.NewUserRepo(db, slog.Default())
	ctx := context.Background()

	user := domain.User{
		ID:           uuid.New(),
		Username:     "alice-" + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + "@test.local",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, users.CreateUser(ctx, user))

	byName, err := users.GetUserByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, user.Email, byName.Email)

	byID, err := users.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, byID.Username)

	// Повтор имени — конфликт.
	dup := user
	dup.ID = uuid.New()
	dup.Email = uuid.NewString()[:8] + "@test.local"
	err = users.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrUserExists)

	// Неизвестный пользователь.
	_, err = users.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// TestPG_CalculationRepo — полный CRUD вычисления.
func TestPG_CalculationRepo(t *testing.T) {
	db := newPG(t)
	repo := pg.NewCalculationRepo(db, slog.Default())
	ctx := context.Background()
	userID := newUser(t, db)

	result := 5.0
	calc := domain.Calculation{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      domain.TypeDivision,
		Inputs:    []float64{60, 3, 4},
		Result:    &result,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, repo.SaveCalculation(ctx, calc))

	got, err := repo.GetCalculation(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, calc.Type, got.Type)
	assert.Equal(t, calc.Inputs, got.Inputs)
	require.NotNil(t, got.Result)
	assert.Equal(t, 5.0, *got.Result)

	// Обновление операндов и результата.
	newResult := 10.0
	calc.Inputs = []float64{100, 5, 2}
	calc.Result = &newResult
	calc.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.UpdateCalculation(ctx, calc))

	got, err = repo.GetCalculation(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 5, 2}, got.Inputs)
	assert.Equal(t, 10.0, *got.Result)

	// Список пользователя.
	list, err := repo.ListCalculations(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, calc.ID, list[0].ID)

	// Чужой список пуст.
	other, err := repo.ListCalculations(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)

	// Удаление.
	require.NoError(t, repo.DeleteCalculation(ctx, calc.ID))
	_, err = repo.GetCalculation(ctx, calc.ID)
	assert.ErrorIs(t, err, domain.ErrCalculationNotFound)
	err = repo.DeleteCalculation(ctx, calc.ID)
	assert.ErrorIs(t, err, domain.ErrCalculationNotFound)
}

// TestPG_NullableResult — вычисление без результата сохраняется и читается с nil.
func TestPG_NullableResult(t *testing.T) {
	db := newPG(t)
	repo := pg.NewCalculationRepo(db, slog.Default())
	ctx := context.Background()

	calc := domain.Calculation{
		ID:        uuid.New(),
		UserID:    newUser(t, db),
		Type:      domain.TypeAddition,
		Inputs:    []float64{1, 2},
		Result:    nil,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.SaveCalculation(ctx, calc))

	got, err := repo.GetCalculation(ctx, calc.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Result)
}
