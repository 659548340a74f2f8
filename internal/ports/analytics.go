package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"polyCalc/internal/domain"
)

// ICalculationAnalytics — запись вычислений в хранилище для аналитики (например, ClickHouse).
type ICalculationAnalytics interface {
	WriteCalculation(ctx context.Context, calc domain.Calculation) error
}
