// Package services holds the domain logic for categories, products and
// inventory. Services raise typed errors; controllers match them with
// errors.As and map them to HTTP status codes.
package services

import "fmt"

// ValidationError means the input itself is malformed or out of range
// (negative quantity, missing category reference). Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError means the referenced entity does not exist. Raised only for
// write targets and resolved references; read misses are data. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func notFoundf(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError means the operation would violate an invariant given the
// current state: duplicate SKU, second inventory row for a product,
// insufficient stock, category still in use. Maps to 400.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func conflictf(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
