package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Catalog lookup errors

type NotFoundError struct {
	*DomainError
	Kind string
	Key  string
}

func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s %q not found", kind, key)},
		Kind:        kind,
		Key:         key,
	}
}

// FormulaNotFoundError is returned when a product has no registered formula
type FormulaNotFoundError struct {
	*NotFoundError
}

func NewFormulaNotFoundError(productKey string) *FormulaNotFoundError {
	return &FormulaNotFoundError{NotFoundError: NewNotFoundError("formula for product", productKey)}
}

// InvalidQuantityError is returned when a calculation is requested for a
// non-positive quantity
type InvalidQuantityError struct {
	*DomainError
	Quantity float64
}

func NewInvalidQuantityError(quantity float64) *InvalidQuantityError {
	return &InvalidQuantityError{
		DomainError: &DomainError{Message: fmt.Sprintf("quantity must be positive, got %v", quantity)},
		Quantity:    quantity,
	}
}
