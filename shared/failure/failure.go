package failure

import (
	"errors"
	"net/http"
)

// Kind separates failures that share an HTTP status but mean different things to callers.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindMissingField Kind = "missing_field"
	KindNotFound     Kind = "not_found"
	KindDownstream   Kind = "downstream"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation returns a caller-fixable failure carrying the rejection reason.
func Validation(reason string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: reason,
	}
}

// MissingField is returned when a raw payload lacks a mandatory field.
func MissingField(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindMissingField,
		Message: msg,
	}
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: msg,
	}
}

// Downstream reports a store or network fault. Only msg and the optional short detail reach the client.
func Downstream(msg string, detail ...string) error {
	f := &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindDownstream,
		Message: msg,
	}

	if len(detail) > 0 {
		f.Detail = detail[0]
	}

	return f
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind == kind
	}

	return false
}
