package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"polyCalc/internal/domain"
)

// ICalculationUseCase — контракт бизнес-логики вычислений: CRUD по вычислениям
// пользователя и обработка событий из Kafka.
type ICalculationUseCase interface {
	Create(ctx context.Context, userID uuid.UUID, calculationType string, inputs []float64) (*domain.Calculation, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Calculation, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Calculation, error)
	Update(ctx context.Context, userID, id uuid.UUID, inputs []float64) (*domain.Calculation, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	HandleCalculationEvent(ctx context.Context, calc domain.Calculation) error
}

// IAuthUseCase — контракт аутентификации: регистрация, вход с выдачей JWT,
// выход с отзывом токена, проверка токена с возвратом id владельца.
type IAuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (token string, err error)
	Logout(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}
