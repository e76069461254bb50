// Package dErrors provides coded domain errors so callers can distinguish
// "you are not permitted" from "try different parameters" from "the system
// ran out of money" without parsing message strings.
package dErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the kind of domain failure. Codes are part of the public
// API surface: they appear verbatim in HTTP error envelopes.
type Code string

const (
	// CodeUnauthorized means the caller lacks the required role.
	CodeUnauthorized Code = "unauthorized"
	// CodeInsufficientFunds means a disbursement exceeds the custodied balance.
	CodeInsufficientFunds Code = "insufficient_funds"
	// CodeInvalidAmount means a zero amount was supplied where a positive
	// amount is required.
	CodeInvalidAmount Code = "invalid_amount"
	// CodeInvalidAddress means a null or malformed principal was supplied.
	CodeInvalidAddress Code = "invalid_address"
	// CodeTransferFailed means the settlement collaborator rejected a
	// disbursement.
	CodeTransferFailed Code = "transfer_failed"

	CodeBadRequest Code = "bad_request"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal_error"
)

// Error is a domain error carrying a machine-readable code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a domain error with a code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates an underlying error with a domain code. A nil err returns
// nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the domain code from err, or CodeInternal when err is not
// a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries the given domain code.
func HasCode(err error, code Code) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == code
}

// ToHTTPStatus maps a domain code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeUnauthorized:
		return http.StatusForbidden
	case CodeInsufficientFunds, CodeTransferFailed:
		return http.StatusUnprocessableEntity
	case CodeInvalidAmount, CodeInvalidAddress, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
