package errs_test

import (
	"errors"
	"testing"

	"hortifruti/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("deliveryId", "123")

		assert.Equal(t, "deliveryId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("backend returned 404")
		err := errs.NewObjectNotFoundErrorWithCause("deliveryId", "123", cause)

		assert.Equal(t, "deliveryId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: deliveryId, ID is: 123 (cause: backend returned 404)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		cause := errors.New("line one\nline two")
		err := errs.NewValueIsInvalidErrorWithCause("note", cause)
		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("recipientName")

		assert.Equal(t, "recipientName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: recipientName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("recipientName", cause)

		assert.Equal(t, "recipientName", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: recipientName (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := errs.NewAuthenticationError("no token in response")

		assert.Equal(t, "no token in response", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "authentication failed: no token in response", err.Error())
		assert.Equal(t, errs.ErrAuthenticationFailed, err.Unwrap())
	})

	t.Run("NewAuthenticationErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewAuthenticationErrorWithCause("login request failed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"authentication failed: login request failed (cause: connection refused)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrAuthenticationFailed))
	})
}

func TestAuthorizationDeniedError(t *testing.T) {
	t.Run("NewAuthorizationDeniedError", func(t *testing.T) {
		err := errs.NewAuthorizationDeniedError("update delivery status", "Courier", "Manager")

		assert.Equal(t, "update delivery status", err.Operation)
		assert.Equal(t, "Courier", err.RequiredRole)
		assert.Equal(t, "Manager", err.ActualRole)
		assert.Equal(t,
			"access denied: update delivery status requires role Courier, current role is Manager",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrAuthorizationDenied))
	})
}

func TestTransitionValidationError(t *testing.T) {
	t.Run("NewTransitionValidationError", func(t *testing.T) {
		err := errs.NewTransitionValidationError("Complete", "recipientName")

		assert.Equal(t, "Complete", err.Transition)
		assert.Equal(t, "recipientName", err.Field)
		assert.Equal(t,
			"transition payload is invalid: recipientName is required for Complete",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrTransitionIsInvalid))
	})

	t.Run("is discriminated by transition and field, not by message", func(t *testing.T) {
		var target *errs.TransitionValidationError
		var err error = errs.NewTransitionValidationError("ReportProblem", "problemDescription")

		require.True(t, errors.As(err, &target))
		assert.Equal(t, "ReportProblem", target.Transition)
		assert.Equal(t, "problemDescription", target.Field)
	})
}

func TestRequestFailureError(t *testing.T) {
	t.Run("NewRequestFailureError", func(t *testing.T) {
		err := errs.NewRequestFailureError("list deliveries", "service unavailable")

		assert.Equal(t, "list deliveries", err.Operation)
		assert.Equal(t, "service unavailable", err.Message)
		assert.Equal(t, "request failed: list deliveries: service unavailable", err.Error())
		assert.Equal(t, errs.ErrRequestFailed, err.Unwrap())
	})

	t.Run("NewRequestFailureErrorWithCause", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := errs.NewRequestFailureErrorWithCause("update delivery status", "could not reach server", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"request failed: update delivery status: could not reach server (cause: dial tcp: connection refused)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrRequestFailed))
	})
}
