package domain

// Двухоперандные арифметические примитивы. Свёртки в GetResult реализованы
// независимо, но обязаны давать те же результаты, что цепочка этих функций.

// Add возвращает сумму a и b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract возвращает разность a и b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply возвращает произведение a и b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide возвращает частное a и b. При b == 0 — ErrDivisionByZero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
