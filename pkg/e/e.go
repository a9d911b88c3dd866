package e

import (
	"fmt"
	"strings"
)

var (
	// Ошибки хранилища
	ErrNotFound     = fmt.Errorf("entity not found")
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// 400 Bad Request
	ErrValidation         = fmt.Errorf("validation failed")
	ErrInvalidRequestBody = fmt.Errorf("invalid request body")
	ErrInvalidPageRequest = fmt.Errorf("invalid page request")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownStorageDriver = fmt.Errorf("unknown storage driver")
)

// NotFoundError описывает неудачный поиск сущности по полю.
type NotFoundError struct {
	Entity string
	Field  string
	Value  string
}

func NewNotFoundError(entity, field, value string) *NotFoundError {
	return &NotFoundError{
		Entity: entity,
		Field:  field,
		Value:  value,
	}
}

func (n *NotFoundError) Error() string {
	return fmt.Sprintf("%s was not found for parameters {%s=%s}", n.Entity, n.Field, n.Value)
}

func (n *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Violation — нарушение ограничения конкретного поля.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError содержит все нарушения, найденные при проверке сущности.
type ValidationError struct {
	Violations []Violation
}

func NewValidationError(violations []Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		parts = append(parts, violation.Field+": "+violation.Message)
	}

	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (v *ValidationError) Unwrap() error {
	return ErrValidation
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
