// Package apperrors defines the tagged error taxonomy shared by the domain
// services: Conflict (duplicate natural key), NotFound (referenced entity
// absent) and Validation (constraint violation). Anything else is treated
// as an infrastructure failure and surfaces as a generic 500.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindConflict Kind = iota + 1
	KindNotFound
	KindValidation
)

// Error is a domain error with a kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func isKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func IsConflict(err error) bool   { return isKind(err, KindConflict) }
func IsNotFound(err error) bool   { return isKind(err, KindNotFound) }
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// HTTPStatus maps a domain error to its response status. Duplicate keys
// answer 400 rather than 409, matching the established API contract.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
