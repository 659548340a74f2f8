package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CalculationType — дискриминатор варианта вычисления. Набор закрыт:
// четыре типа ниже, новые добавляются только вместе с веткой в GetResult.
type CalculationType string

// Поддерживаемые типы вычислений.
const (
	TypeAddition       CalculationType = "addition"
	TypeSubtraction    CalculationType = "subtraction"
	TypeMultiplication CalculationType = "multiplication"
	TypeDivision       CalculationType = "division"
)

// AllowedTypes возвращает все поддерживаемые типы в отсортированном виде (для сообщений об ошибках).
func AllowedTypes() []string {
	return []string{
		string(TypeAddition),
		string(TypeDivision),
		string(TypeMultiplication),
		string(TypeSubtraction),
	}
}

// ParseCalculationType нормализует строку типа (без учёта регистра) и проверяет
// её по фиксированному набору. Неизвестный тег — ErrUnsupportedType с самим тегом в тексте.
func ParseCalculationType(s string) (CalculationType, error) {
	switch t := CalculationType(strings.ToLower(s)); t {
	case TypeAddition, TypeSubtraction, TypeMultiplication, TypeDivision:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, s)
	}
}

// Calculation — запись об одном вычислении пользователя.
// Inputs — упорядоченный список операндов (порядок важен для вычитания и деления).
// Result — производное значение: всегда равен результату GetResult над текущими Inputs,
// отдельно не мутируется. nil — пока не посчитан.
type Calculation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      CalculationType
	Inputs    []float64
	Result    *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCalculation — фабрика вычислений: разбирает тип, привязывает владельца и операнды.
// Результат не считается — за вызов GetResult и сохранение отвечает вызывающий слой.
func NewCalculation(calculationType string, userID uuid.UUID, inputs []float64) (*Calculation, error) {
	t, err := ParseCalculationType(calculationType)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Calculation{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      t,
		Inputs:    inputs,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetResult считает результат по типу вычисления. Чистая функция от Type и Inputs:
// повторные вызовы над теми же данными возвращают то же значение, ничего не кэшируется.
//
// Свёртка последовательная, слева направо: [60, 3, 4] для деления — это (60 / 3) / 4.
// Нулевой делитель обрывает свёртку до выполнения деления, частичный результат не возвращается.
func (c *Calculation) GetResult() (float64, error) {
	if c.Inputs == nil {
		return 0, ErrInvalidInputType
	}
	if len(c.Inputs) < 2 {
		return 0, ErrInsufficientOperands
	}

	switch c.Type {
	case TypeAddition:
		var sum float64
		for _, v := range c.Inputs {
			sum += v
		}
		return sum, nil
	case TypeSubtraction:
		result := c.Inputs[0]
		for _, v := range c.Inputs[1:] {
			result -= v
		}
		return result, nil
	case TypeMultiplication:
		result := 1.0
		for _, v := range c.Inputs {
			result *= v
		}
		return result, nil
	case TypeDivision:
		result := c.Inputs[0]
		for _, v := range c.Inputs[1:] {
			if v == 0 {
				return 0, ErrDivisionByZero
			}
			result /= v
		}
		return result, nil
	default:
		// Тип вне набора сюда попадает только если сущность собрали в обход фабрики.
		return 0, ErrNotImplemented
	}
}

// String — текстовое представление для отладки и логов.
func (c *Calculation) String() string {
	return fmt.Sprintf("Calculation(type=%s, inputs=%v)", c.Type, c.Inputs)
}
