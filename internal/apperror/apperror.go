// Package apperror defines the error kinds surfaced to API clients.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// Validation is malformed or out-of-range input.
	Validation Kind = iota
	// NotFound is a reference to an unknown id.
	NotFound
	// Conflict is a uniqueness or duplicate violation.
	Conflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

func is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsValidation(err error) bool { return is(err, Validation) }
func IsNotFound(err error) bool   { return is(err, NotFound) }
func IsConflict(err error) bool   { return is(err, Conflict) }
