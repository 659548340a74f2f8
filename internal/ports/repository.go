package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"polyCalc/internal/domain"
)

// ICalculationRepository — контракт сохранения и чтения вычислений.
// Get/Update/Delete по отсутствующему id возвращают domain.ErrCalculationNotFound.
type ICalculationRepository interface {
	SaveCalculation(ctx context.Context, calc domain.Calculation) error
	ListCalculations(ctx context.Context, userID uuid.UUID) ([]domain.Calculation, error)
	GetCalculation(ctx context.Context, id uuid.UUID) (*domain.Calculation, error)
	UpdateCalculation(ctx context.Context, calc domain.Calculation) error
	DeleteCalculation(ctx context.Context, id uuid.UUID) error
	Ping(ctx context.Context) error
}

// IUserRepository — контракт хранилища пользователей.
// CreateUser при конфликте имени или почты возвращает domain.ErrUserExists.
type IUserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
