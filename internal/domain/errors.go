package domain

import "errors"

// ValidationError is returned when a write would break a uniqueness rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrSKUExists   = &ValidationError{Field: "sku", Message: "SKU already exists"}
	ErrEmailExists = &ValidationError{Field: "email", Message: "Email already exists"}

	ErrRecordNotFound = errors.New("record not found")
)

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
