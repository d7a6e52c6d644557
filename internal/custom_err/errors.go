package custom_err

import (
	"errors"
	"fmt"
)

var (
	// Transfer validation errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrSameAccount         = errors.New("source and destination accounts cannot be the same")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrRateUnavailable     = errors.New("fx rate not available")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidCurrency = errors.New("invalid currency")

	// Journal errors
	ErrDuplicateRequest = errors.New("duplicate request")
)

// IsValidation сообщает, что ошибка вызвана пользовательским вводом
func IsValidation(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrSameAccount) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrRateUnavailable) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidCurrency)
}

// UserError несет текст для показа пользователю и исходную ошибку для errors.Is
type UserError struct {
	Err     error
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func NewUserError(err error, format string, args ...any) error {
	return &UserError{Err: err, Message: fmt.Sprintf(format, args...)}
}

// UserMessage возвращает текст для пользователя, если он есть
func UserMessage(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	return err.Error()
}
