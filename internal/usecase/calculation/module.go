package calculation

import (
	"log/slog"
	"strconv"
	"strings"

	"polyCalc/internal/domain"
	"polyCalc/internal/ports"
)

// cacheKey формирует ключ результата для кэша: тип и операнды в исходном порядке,
// например "division 60 3 4". Порядок сохраняется, поэтому перестановки операндов
// вычитания и деления не пересекаются по ключам.
func cacheKey(t domain.CalculationType, inputs []float64) string {
	parts := make([]string, 0, len(inputs)+1)
	parts = append(parts, string(t))
	for _, v := range inputs {
		parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}

// UseCase — бизнес-логика вычислений.
type UseCase struct {
	repo      ports.ICalculationRepository
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.ICalculationAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс вычислений.
func New(repo ports.ICalculationRepository, cache ports.ICache, broker ports.IProducer, analytics ports.ICalculationAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{repo: repo, cache: cache, broker: broker, analytics: analytics, log: log}
}
