package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalculationType(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    CalculationType
		wantErr bool
	}{
		{name: "сложение", in: "addition", want: TypeAddition},
		{name: "вычитание", in: "subtraction", want: TypeSubtraction},
		{name: "умножение", in: "multiplication", want: TypeMultiplication},
		{name: "деление", in: "division", want: TypeDivision},
		{name: "верхний регистр", in: "ADDITION", want: TypeAddition},
		{name: "смешанный регистр", in: "DiViSiOn", want: TypeDivision},
		{name: "неизвестный тип", in: "power", wantErr: true},
		{name: "пустая строка", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalculationType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCalculation(t *testing.T) {
	userID := uuid.New()

	calc, err := NewCalculation("addition", userID, []float64{1, 2, 3})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, calc.ID, "ID должен генерироваться при создании")
	assert.Equal(t, userID, calc.UserID)
	assert.Equal(t, TypeAddition, calc.Type)
	assert.Equal(t, []float64{1, 2, 3}, calc.Inputs)
	assert.Nil(t, calc.Result, "результат не считается при создании")
	assert.False(t, calc.CreatedAt.IsZero())
	assert.Equal(t, calc.CreatedAt, calc.UpdatedAt)
}

func TestNewCalculation_CaseInsensitive(t *testing.T) {
	userID := uuid.New()

	lower, err := NewCalculation("addition", userID, []float64{1, 2})
	require.NoError(t, err)
	upper, err := NewCalculation("ADDITION", userID, []float64{1, 2})
	require.NoError(t, err)

	// Тег нормализуется к каноническому нижнему регистру, поведение идентично.
	assert.Equal(t, lower.Type, upper.Type)

	lowerResult, err := lower.GetResult()
	require.NoError(t, err)
	upperResult, err := upper.GetResult()
	require.NoError(t, err)
	assert.Equal(t, lowerResult, upperResult)
}

func TestNewCalculation_UnsupportedType(t *testing.T) {
	_, err := NewCalculation("power", uuid.New(), []float64{5, 2})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	// Сообщение должно включать сам тег — иначе по логам не понять, что прислали.
	assert.Contains(t, err.Error(), "power")
}

func TestGetResult(t *testing.T) {
	tests := []struct {
		name            string
		calculationType string
		inputs          []float64
		want            float64
	}{
		{name: "сумма трёх", calculationType: "addition", inputs: []float64{1, 2, 3}, want: 6},
		{name: "сумма с дробными", calculationType: "addition", inputs: []float64{7, 8, 2.5}, want: 17.5},
		{name: "сумма с отрицательным", calculationType: "addition", inputs: []float64{10, -5}, want: 5},
		{name: "вычитание слева направо", calculationType: "subtraction", inputs: []float64{15, 4, 2}, want: 9},
		{name: "вычитание двух", calculationType: "subtraction", inputs: []float64{12, 7}, want: 5},
		{name: "произведение", calculationType: "multiplication", inputs: []float64{5, 2, 3}, want: 30},
		{name: "произведение с дробным", calculationType: "multiplication", inputs: []float64{10, 0.5}, want: 5},
		{name: "произведение с нулём в операндах", calculationType: "multiplication", inputs: []float64{4, 0, 9}, want: 0},
		{name: "деление слева направо", calculationType: "division", inputs: []float64{60, 3, 4}, want: 5},
		{name: "деление двух", calculationType: "division", inputs: []float64{100, 4}, want: 25},
		{name: "ноль в числителе", calculationType: "division", inputs: []float64{0, 5, 2}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := NewCalculation(tt.calculationType, uuid.New(), tt.inputs)
			require.NoError(t, err)

			got, err := calc.GetResult()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// GetResult — чистая функция: повторные вызовы над теми же Inputs дают то же значение.
func TestGetResult_Deterministic(t *testing.T) {
	calc, err := NewCalculation("division", uuid.New(), []float64{60, 3, 4})
	require.NoError(t, err)

	first, err := calc.GetResult()
	require.NoError(t, err)
	second, err := calc.GetResult()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Сложение коммутативно, вычитание и деление — нет: порядок операндов обязан сохраняться.
func TestGetResult_OperandOrder(t *testing.T) {
	userID := uuid.New()

	addA, err := NewCalculation("addition", userID, []float64{1, 2, 3})
	require.NoError(t, err)
	addB, err := NewCalculation("addition", userID, []float64{3, 1, 2})
	require.NoError(t, err)

	resultA, err := addA.GetResult()
	require.NoError(t, err)
	resultB, err := addB.GetResult()
	require.NoError(t, err)
	assert.Equal(t, resultA, resultB, "перестановка операндов не меняет сумму")

	subA, err := NewCalculation("subtraction", userID, []float64{15, 4, 2})
	require.NoError(t, err)
	subB, err := NewCalculation("subtraction", userID, []float64{2, 4, 15})
	require.NoError(t, err)

	resultA, err = subA.GetResult()
	require.NoError(t, err)
	resultB, err = subB.GetResult()
	require.NoError(t, err)
	assert.NotEqual(t, resultA, resultB, "для вычитания порядок значим")
}

func TestGetResult_DivisionByZero(t *testing.T) {
	tests := []struct {
		name   string
		inputs []float64
	}{
		{name: "ноль в середине", inputs: []float64{25, 0, 2}},
		{name: "ноль в конце", inputs: []float64{60, 3, 0}},
		{name: "единственный делитель ноль", inputs: []float64{10, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := NewCalculation("division", uuid.New(), tt.inputs)
			require.NoError(t, err)

			_, err = calc.GetResult()
			assert.ErrorIs(t, err, ErrDivisionByZero)
		})
	}
}

func TestGetResult_InvalidInputs(t *testing.T) {
	tests := []struct {
		name            string
		calculationType CalculationType
		inputs          []float64
		wantErr         error
	}{
		{name: "nil вместо списка", calculationType: TypeAddition, inputs: nil, wantErr: ErrInvalidInputType},
		{name: "один операнд", calculationType: TypeAddition, inputs: []float64{42}, wantErr: ErrInsufficientOperands},
		{name: "пустой список", calculationType: TypeSubtraction, inputs: []float64{}, wantErr: ErrInsufficientOperands},
		{name: "один операнд для деления", calculationType: TypeDivision, inputs: []float64{99}, wantErr: ErrInsufficientOperands},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := &Calculation{Type: tt.calculationType, Inputs: tt.inputs}
			_, err := calc.GetResult()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Сущность, собранная в обход фабрики с пустым типом, — «абстрактная» форма: считать нечего.
func TestGetResult_NotImplemented(t *testing.T) {
	calc := &Calculation{Inputs: []float64{1, 2}}

	_, err := calc.GetResult()
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestCalculation_String(t *testing.T) {
	calc, err := NewCalculation("addition", uuid.New(), []float64{10.5, 3, 2})
	require.NoError(t, err)

	assert.Equal(t, "Calculation(type=addition, inputs=[10.5 3 2])", calc.String())
}
