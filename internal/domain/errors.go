package domain

import "fmt"

type DomainError struct {
	Code       string
	Message    string
	StatusCode int
	Body       string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

var (
	// ErrTransientIO - сетевой/HTTP сбой после исчерпания повторов
	ErrTransientIO = &DomainError{
		Code:    "TRANSIENT_IO",
		Message: "upstream request failed",
	}

	// ErrProtocol - неожиданная форма ответа или бесконечная пагинация
	ErrProtocol = &DomainError{
		Code:    "PROTOCOL",
		Message: "unexpected upstream response",
	}

	// ErrDelivery - транспорт уведомлений отклонил сообщение
	ErrDelivery = &DomainError{
		Code:    "DELIVERY",
		Message: "notification delivery failed",
	}

	// ErrConfig - некорректная конфигурация
	ErrConfig = &DomainError{
		Code:    "CONFIG",
		Message: "invalid configuration",
	}
)

// NewTransientIOError создает TRANSIENT_IO с последним статусом и телом ответа.
// statusCode равен 0, если ответа не было вовсе.
func NewTransientIOError(statusCode int, body string, err error) *DomainError {
	msg := "upstream request failed"
	if statusCode > 0 {
		msg = fmt.Sprintf("upstream request failed: HTTP %d: %s", statusCode, body)
	}
	return &DomainError{
		Code:       "TRANSIENT_IO",
		Message:    msg,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// NewProtocolError создает PROTOCOL с описанием нарушения
func NewProtocolError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    "PROTOCOL",
		Message: fmt.Sprintf(format, args...),
	}
}

// NewDeliveryError создает DELIVERY со статусом и телом ответа транспорта
func NewDeliveryError(statusCode int, body string, err error) *DomainError {
	msg := "notification delivery failed"
	if statusCode > 0 {
		msg = fmt.Sprintf("notification delivery failed: HTTP %d: %s", statusCode, body)
	}
	return &DomainError{
		Code:       "DELIVERY",
		Message:    msg,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// NewConfigError создает CONFIG с описанием проблемы
func NewConfigError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    "CONFIG",
		Message: fmt.Sprintf(format, args...),
	}
}
