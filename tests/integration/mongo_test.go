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
	"polyCalc/internal/infrastructure/mongo"
)

// newMongo подключается к контейнеру MongoDB (отдельная коллекция на тест).
func newMongo(t *testing.T) *mongo.CalculationRepo {
	t.Helper()
	ctx := context.Background()
	cli, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "polycalc_test",
		Collection: "calculations_" + uuid.NewString()[:8],
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cli.Disconnect(context.Background()) })
	return mongo.NewCalculationRepo(cli, slog.Default())
}

// TestMongo_CalculationRepo — полный CRUD вычисления в MongoDB.
func TestMongo_CalculationRepo(t *testing.T) {
	repo := newMongo(t)
	ctx := context.Background()
	userID := uuid.New()

	result := 6.0
	calc := domain.Calculation{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      domain.TypeMultiplication,
		Inputs:    []float64{1, 2, 3},
		Result:    &result,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, repo.SaveCalculation(ctx, calc))

	got, err := repo.GetCalculation(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, calc.UserID, got.UserID)
	assert.Equal(t, calc.Inputs, got.Inputs)
	require.NotNil(t, got.Result)
	assert.Equal(t, 6.0, *got.Result)

	// Обновление.
	newResult := 24.0
	calc.Inputs = []float64{2, 3, 4}
	calc.Result = &newResult
	calc.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.UpdateCalculation(ctx, calc))

	got, err = repo.GetCalculation(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, got.Inputs)
	assert.Equal(t, 24.0, *got.Result)

	// Список пользователя; чужой список пуст.
	list, err := repo.ListCalculations(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	other, err := repo.ListCalculations(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)

	// Удаление; повторное удаление и чтение — not found.
	require.NoError(t, repo.DeleteCalculation(ctx, calc.ID))
	_, err = repo.GetCalculation(ctx, calc.ID)
	assert.ErrorIs(t, err, domain.ErrCalculationNotFound)
	err = repo.DeleteCalculation(ctx, calc.ID)
	assert.ErrorIs(t, err, domain.ErrCalculationNotFound)
	err = repo.UpdateCalculation(ctx, calc)
	assert.ErrorIs(t, err, domain.ErrCalculationNotFound)
}
