package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения
// Тексты отдаются клиенту как есть, менять формулировки нельзя

// Agent errors
var (
	ErrAgentNotFound      = errors.New("no agent with the given id was found.")
	ErrAgentAlreadyExists = errors.New("agent already registered.")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidPassword    = errors.New("invalid email or password")
)

// Base errors
var (
	ErrBaseNotFound = errors.New("no base with the given id was found.")
	ErrInvalidBase  = errors.New("invalid base id.")
)

// Car errors
var (
	ErrCarNotFound      = errors.New("no car with the given id was found")
	ErrCarAlreadyInRent = errors.New("car already in rent.")
)

// Client errors
var (
	ErrClientNotFound = errors.New("no client with the given id was found.")
)

// Mechanic errors
var (
	ErrMechanicNotFound = errors.New("no mechanic with the given id was found.")
)

// Order errors
var (
	ErrOrderNotFound         = errors.New("no order with the given id was found.")
	ErrArchivedOrderNotFound = errors.New("archived order not found")
)

// Repair errors
var (
	ErrRepairNotFound = errors.New("no repair with the given id was found.")
)

// Authorization errors
var (
	ErrNoToken      = errors.New("access denied. no token provided.")
	ErrInvalidToken = errors.New("invalid token.")
	ErrForbidden    = errors.New("access denied.")
)

// ValidationError - ошибка валидации входных данных (статус 400)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError создает ошибку валидации для поля
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
