// Package apperr carries the error taxonomy surfaced to API clients:
// validation (400), conflict (409), invalid credentials (401), not found
// (404). Anything else is treated as an internal error (500) and its
// message is never sent to the client.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

// InvalidCredentials deliberately carries no cause: unknown email and wrong
// password must be indistinguishable to the client.
func InvalidCredentials() *Error {
	return &Error{Status: http.StatusUnauthorized, Message: "Credenciales inválidas"}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}
