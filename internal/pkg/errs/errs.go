package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification via errors.Is.
var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrObjectNotFound       = errors.New("object not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrAuthorizationDenied  = errors.New("access denied")
	ErrTransitionIsInvalid  = errors.New("transition payload is invalid")
	ErrRequestFailed        = errors.New("request failed")
)

// sanitize removes line breaks from values interpolated into error messages
// so a single log line always carries the whole message.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a value is present but invalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that an object identified by ID cannot be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AuthenticationError indicates that a login attempt was rejected by the
// backend or that the backend response carried no usable credential.
// It is always surfaced to the caller, never swallowed.
type AuthenticationError struct {
	Reason string
	Cause  error
}

// NewAuthenticationError creates an AuthenticationError without a cause.
func NewAuthenticationError(reason string) *AuthenticationError {
	return &AuthenticationError{Reason: reason}
}

// NewAuthenticationErrorWithCause creates an AuthenticationError with a cause.
func NewAuthenticationErrorWithCause(reason string, cause error) *AuthenticationError {
	return &AuthenticationError{Reason: reason, Cause: cause}
}

func (e *AuthenticationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: %s (cause: %v)", ErrAuthenticationFailed, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %s", ErrAuthenticationFailed, e.Reason))
}

func (e *AuthenticationError) Unwrap() error {
	return ErrAuthenticationFailed
}

// AuthorizationDeniedError indicates that a role check failed locally,
// before any network call was made.
type AuthorizationDeniedError struct {
	Operation    string
	RequiredRole string
	ActualRole   string
}

// NewAuthorizationDeniedError creates an AuthorizationDeniedError.
func NewAuthorizationDeniedError(operation, requiredRole, actualRole string) *AuthorizationDeniedError {
	return &AuthorizationDeniedError{
		Operation:    operation,
		RequiredRole: requiredRole,
		ActualRole:   actualRole,
	}
}

func (e *AuthorizationDeniedError) Error() string {
	return sanitize(fmt.Sprintf("%v: %s requires role %s, current role is %s",
		ErrAuthorizationDenied, e.Operation, e.RequiredRole, e.ActualRole))
}

func (e *AuthorizationDeniedError) Unwrap() error {
	return ErrAuthorizationDenied
}

// TransitionValidationError indicates that a delivery status transition was
// submitted without one of its required payload fields. The error is keyed by
// transition and field so callers can decide what to highlight without
// matching on message substrings.
type TransitionValidationError struct {
	Transition string
	Field      string
}

// NewTransitionValidationError creates a TransitionValidationError.
func NewTransitionValidationError(transition, field string) *TransitionValidationError {
	return &TransitionValidationError{Transition: transition, Field: field}
}

func (e *TransitionValidationError) Error() string {
	return sanitize(fmt.Sprintf("%v: %s is required for %s",
		ErrTransitionIsInvalid, e.Field, e.Transition))
}

func (e *TransitionValidationError) Unwrap() error {
	return ErrTransitionIsInvalid
}

// RequestFailureError indicates that a backend call failed, either on the
// network or with a non-2xx status. Message carries the server-supplied
// message when one was present, otherwise a generic per-operation fallback.
type RequestFailureError struct {
	Operation string
	Message   string
	Cause     error
}

// NewRequestFailureError creates a RequestFailureError without a cause.
func NewRequestFailureError(operation, message string) *RequestFailureError {
	return &RequestFailureError{Operation: operation, Message: message}
}

// NewRequestFailureErrorWithCause creates a RequestFailureError with a cause.
func NewRequestFailureErrorWithCause(operation, message string, cause error) *RequestFailureError {
	return &RequestFailureError{Operation: operation, Message: message, Cause: cause}
}

func (e *RequestFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%v: %s: %s (cause: %v)", ErrRequestFailed, e.Operation, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%v: %s: %s", ErrRequestFailed, e.Operation, e.Message))
}

func (e *RequestFailureError) Unwrap() error {
	return ErrRequestFailed
}
