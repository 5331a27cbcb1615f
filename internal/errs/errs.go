// Package errs defines the error taxonomy surfaced to API clients.
//
// Every failure is rendered as a JSON object with a single "error" string.
// Store failures always carry the generic "Server error" message; the
// underlying cause is kept in Err for logging only.
package errs

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindStore      Kind = "store"
)

// Messages shared between handlers and tests.
const (
	MsgAllFieldsRequired  = "All fields are required"
	MsgInvalidBody        = "Invalid request body"
	MsgEmailInUse         = "Email already in use"
	MsgInvalidCredentials = "Invalid credentials"
	MsgPatientNotFound    = "Patient not found"
	MsgNoRecords          = "No records found"
	MsgServerError        = "Server error"
)

type HTTPError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error { return e.Err }

func NewValidationError(message string) *HTTPError {
	return &HTTPError{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

func NewConflictError(message string) *HTTPError {
	return &HTTPError{Kind: KindConflict, Status: http.StatusBadRequest, Message: message}
}

// NewAuthError is deliberately message-identical for unknown email and wrong
// password.
func NewAuthError() *HTTPError {
	return &HTTPError{Kind: KindAuth, Status: http.StatusBadRequest, Message: MsgInvalidCredentials}
}

func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

func NewStoreError(cause error) *HTTPError {
	return &HTTPError{Kind: KindStore, Status: http.StatusInternalServerError, Message: MsgServerError, Err: cause}
}

// From classifies err. Anything that is not already an *HTTPError becomes a
// StoreError.
func From(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return NewStoreError(err)
}
