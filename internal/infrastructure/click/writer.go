package click

import (
	"context"
	"encoding/json"
	"fmt"

	"polyCalc/internal/domain"
)

const calculationsAnalyticsFull = "default.calculations_analytics"

// CalculationWriter записывает вычисления в ClickHouse в формате, удобном для
// аналитики (GROUP BY type, по времени и т.д.). Операнды хранятся JSON-строкой.
type CalculationWriter struct {
	db *Client
}

// NewCalculationWriter создаёт писатель вычислений для аналитики.
func NewCalculationWriter(db *Client) *CalculationWriter {
	return &CalculationWriter{db: db}
}

// EnsureTable создаёт таблицу вычислений для аналитики, если её ещё нет. Вызови один раз при старте приложения.
func (w *CalculationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id String,
			user_id String,
			type String,
			inputs String,
			result Float64,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, type)
		PARTITION BY toYYYYMM(created_at)`,
		calculationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCalculation реализует ports.ICalculationAnalytics: пишет одно вычисление в ClickHouse.
func (w *CalculationWriter) WriteCalculation(ctx context.Context, calc domain.Calculation) error {
	inputs, err := json.Marshal(calc.Inputs)
	if err != nil {
		return fmt.Errorf("marshal inputs: %w", err)
	}
	var result float64
	if calc.Result != nil {
		result = *calc.Result
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (id, user_id, type, inputs, result, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		calculationsAnalyticsFull,
	)
	_, err = w.db.DB().ExecContext(ctx, query,
		calc.ID.String(), calc.UserID.String(), string(calc.Type), string(inputs), result, calc.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}
