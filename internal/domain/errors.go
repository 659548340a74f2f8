package domain

import "errors"

// Ошибки доменной модели вычислений.
var (
	// ErrUnsupportedType возвращается фабрикой, когда тип вычисления не из фиксированного набора.
	ErrUnsupportedType = errors.New("unsupported calculation type")
	// ErrInvalidInputType возвращается, когда inputs — не упорядоченный список чисел.
	ErrInvalidInputType = errors.New("inputs must be a list of numbers")
	// ErrInsufficientOperands возвращается, когда операндов меньше двух.
	ErrInsufficientOperands = errors.New("inputs must contain at least two numbers")
	// ErrDivisionByZero возвращается при делителе, равном нулю (сравнение точное, без эпсилона).
	ErrDivisionByZero = errors.New("cannot divide by zero")
	// ErrNotImplemented возвращается при попытке посчитать результат для неконкретизированного типа.
	ErrNotImplemented = errors.New("result computation is not implemented for this type")
	// ErrResultMissing возвращается, когда у сохранённого вычисления нет результата.
	// В ответ API такое вычисление не отдаётся: result обязателен.
	ErrResultMissing = errors.New("calculation result is missing")
)

// Ошибки хранилища и аутентификации.
var (
	ErrCalculationNotFound = errors.New("calculation not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenRevoked        = errors.New("token has been revoked")
)
