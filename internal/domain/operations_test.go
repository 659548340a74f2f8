package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 5.0, Add(2, 3))
	assert.Equal(t, 6.0, Add(2.5, 3.5))
	assert.Equal(t, -3.0, Add(2, -5))
}

func TestSubtract(t *testing.T) {
	assert.Equal(t, 2.0, Subtract(5, 3))
	assert.Equal(t, 3.0, Subtract(5.5, 2.5))
	assert.Equal(t, -8.0, Subtract(-3, 5))
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, 6.0, Multiply(2, 3))
	assert.Equal(t, 10.0, Multiply(2.5, 4))
	assert.Equal(t, 0.0, Multiply(42, 0))
}

func TestDivide(t *testing.T) {
	got, err := Divide(6, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = Divide(7.5, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestDivide_ByZero(t *testing.T) {
	_, err := Divide(5, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

// Свёртка GetResult обязана совпадать с цепочкой двухоперандных примитивов.
func TestFoldMatchesPrimitives(t *testing.T) {
	inputs := []float64{100, 4, 5}

	calc := &Calculation{Type: TypeDivision, Inputs: inputs}
	fold, err := calc.GetResult()
	require.NoError(t, err)

	step, err := Divide(inputs[0], inputs[1])
	require.NoError(t, err)
	chained, err := Divide(step, inputs[2])
	require.NoError(t, err)

	assert.Equal(t, chained, fold)
}
