package calculation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"polyCalc/internal/domain"
)

// CalculationCreateRequest — тело POST /calculations. Inputs принимаем сырым JSON,
// чтобы отличить "не список" (invalid input type) от "короткий список" (insufficient operands).
type CalculationCreateRequest struct {
	Type   string          `json:"type"`
	Inputs json.RawMessage `json:"inputs"`
}

// Validate разбирает тип и операнды. Для деления нулевые делители отклоняются
// уже здесь, до домена.
func (r CalculationCreateRequest) Validate() (domain.CalculationType, []float64, error) {
	calcType, err := domain.ParseCalculationType(r.Type)
	if err != nil {
		return "", nil, fmt.Errorf("%w, allowed: %s", err, allowedList())
	}
	inputs, err := parseInputs(r.Inputs)
	if err != nil {
		return "", nil, err
	}
	if calcType == domain.TypeDivision {
		for _, x := range inputs[1:] {
			if x == 0 {
				return "", nil, fmt.Errorf("%w: cannot divide by zero", domain.ErrDivisionByZero)
			}
		}
	}
	return calcType, inputs, nil
}

// CalculationUpdateRequest — тело PUT /calculations/:id. Отсутствующие inputs
// означают "оставить как есть". Нулевые делители здесь не проверяются:
// тип вычисления знает только домен, пересчёт его и поймает.
type CalculationUpdateRequest struct {
	Inputs json.RawMessage `json:"inputs"`
}

// Validate возвращает новые операнды либо nil, если их не прислали.
func (r CalculationUpdateRequest) Validate() ([]float64, error) {
	if len(r.Inputs) == 0 || string(r.Inputs) == "null" {
		return nil, nil
	}
	return parseInputs(r.Inputs)
}

// CalculationResponse — представление вычисления в ответах API.
type CalculationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Inputs    []float64 `json:"inputs"`
	Result    *float64  `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCalculationResponse собирает ответ из доменной сущности, повторно проверяя
// инварианты: битая запись из хранилища не должна уйти клиенту молча.
func NewCalculationResponse(calc domain.Calculation) (CalculationResponse, error) {
	if _, err := domain.ParseCalculationType(string(calc.Type)); err != nil {
		return CalculationResponse{}, err
	}
	if calc.Inputs == nil {
		return CalculationResponse{}, fmt.Errorf("%w: inputs must be a list of numbers", domain.ErrInvalidInputType)
	}
	if len(calc.Inputs) < 2 {
		return CalculationResponse{}, fmt.Errorf("%w: at least two operands required", domain.ErrInsufficientOperands)
	}
	if calc.Result == nil {
		return CalculationResponse{}, fmt.Errorf("%w: id=%s", domain.ErrResultMissing, calc.ID)
	}
	return CalculationResponse{
		ID:        calc.ID,
		UserID:    calc.UserID,
		Type:      string(calc.Type),
		Inputs:    calc.Inputs,
		Result:    calc.Result,
		CreatedAt: calc.CreatedAt,
		UpdatedAt: calc.UpdatedAt,
	}, nil
}

func parseInputs(raw json.RawMessage) ([]float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("%w: inputs must be a list of numbers", domain.ErrInvalidInputType)
	}
	var inputs []float64
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return nil, fmt.Errorf("%w: inputs must be a list of numbers", domain.ErrInvalidInputType)
	}
	if len(inputs) < 2 {
		return nil, fmt.Errorf("%w: at least two operands required", domain.ErrInsufficientOperands)
	}
	return inputs, nil
}

func allowedList() string {
	return strings.Join(domain.AllowedTypes(), ", ")
}
