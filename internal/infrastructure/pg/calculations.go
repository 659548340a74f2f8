package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"polyCalc/internal/domain"
)

// CalculationRepo реализует ports.ICalculationRepository для PostgreSQL.
type CalculationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewCalculationRepo возвращает репозиторий вычислений.
func NewCalculationRepo(db *DB, log *slog.Logger) *CalculationRepo {
	return &CalculationRepo{db: db, log: log}
}

// SaveCalculation сохраняет вычисление в БД (inputs — JSONB).
func (r *CalculationRepo) SaveCalculation(ctx context.Context, calc domain.Calculation) error {
	inputs, err := json.Marshal(calc.Inputs)
	if err != nil {
		return fmt.Errorf("marshal inputs: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO calculations (id, user_id, type, inputs, result, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		calc.ID, calc.UserID, calc.Type, inputs, nullableResult(calc.Result), calc.CreatedAt, calc.UpdatedAt)
	if err != nil {
		r.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// ListCalculations возвращает вычисления пользователя (последние сначала).
func (r *CalculationRepo) ListCalculations(ctx context.Context, userID uuid.UUID) ([]domain.Calculation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, inputs, result, created_at, updated_at
		 FROM calculations WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		r.log.Debug("ListCalculations failed", "error", err)
		return nil, err
	}
	defer rows.Close()

	var list []domain.Calculation
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *calc)
	}
	return list, rows.Err()
}

// GetCalculation возвращает вычисление по id; если записи нет — domain.ErrCalculationNotFound.
func (r *CalculationRepo) GetCalculation(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, type, inputs, result, created_at, updated_at
		 FROM calculations WHERE id = $1`, id)
	calc, err := scanCalculation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCalculationNotFound
		}
		r.log.Debug("GetCalculation failed", "error", err)
		return nil, err
	}
	return calc, nil
}

// UpdateCalculation перезаписывает операнды, результат и updated_at.
func (r *CalculationRepo) UpdateCalculation(ctx context.Context, calc domain.Calculation) error {
	inputs, err := json.Marshal(calc.Inputs)
	if err != nil {
		return fmt.Errorf("marshal inputs: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE calculations SET inputs = $2, result = $3, updated_at = $4 WHERE id = $1`,
		calc.ID, inputs, nullableResult(calc.Result), calc.UpdatedAt)
	if err != nil {
		r.log.Debug("UpdateCalculation failed", "error", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCalculationNotFound
	}
	return nil
}

// DeleteCalculation удаляет вычисление по id.
func (r *CalculationRepo) DeleteCalculation(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calculations WHERE id = $1`, id)
	if err != nil {
		r.log.Debug("DeleteCalculation failed", "error", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCalculationNotFound
	}
	return nil
}

// Ping проверяет доступность БД (readiness).
func (r *CalculationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// scanner покрывает *sql.Row и *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCalculation(s scanner) (*domain.Calculation, error) {
	var (
		calc      domain.Calculation
		rawInputs []byte
		result    sql.NullFloat64
	)
	if err := s.Scan(&calc.ID, &calc.UserID, &calc.Type, &rawInputs, &result, &calc.CreatedAt, &calc.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawInputs, &calc.Inputs); err != nil {
		return nil, fmt.Errorf("unmarshal inputs: %w", err)
	}
	if result.Valid {
		calc.Result = &result.Float64
	}
	return &calc, nil
}

func nullableResult(result *float64) sql.NullFloat64 {
	if result == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *result, Valid: true}
}
