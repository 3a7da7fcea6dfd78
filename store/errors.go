package store

import "fmt"

// NotFoundError maps to HTTP 404 with a {"detail": ...} body.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

func ErrNotFound() *NotFoundError {
	return &NotFoundError{Detail: "Not found."}
}

// ForbiddenError maps to HTTP 403 with a {"detail": ...} body.
type ForbiddenError struct {
	Detail string
}

func (e *ForbiddenError) Error() string {
	return e.Detail
}

// ValidationError maps to HTTP 400. A non-empty Field scopes the messages to
// that field; otherwise they are reported as non_field_errors.
type ValidationError struct {
	Field    string
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	return "invalid input"
}

func ErrValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func ErrFieldValidation(field string, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Messages: []string{fmt.Sprintf(format, args...)}}
}
