package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the document workflows. Controllers map
// these onto HTTP status codes (400/403/404); anything else is a 500.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
