package delivery_test

import (
	"fmt"
	"testing"

	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(delivery.StatusUnknown))
		assert.Equal(t, 1, int(delivery.StatusAwaitingPickup))
		assert.Equal(t, 2, int(delivery.StatusEnRoute))
		assert.Equal(t, 3, int(delivery.StatusDelivered))
		assert.Equal(t, 4, int(delivery.StatusProblem))
		assert.Equal(t, 5, int(delivery.StatusCanceled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []delivery.Status{
			delivery.StatusAwaitingPickup,
			delivery.StatusEnRoute,
			delivery.StatusDelivered,
			delivery.StatusProblem,
			delivery.StatusCanceled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := delivery.StatusUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []delivery.Status{
			delivery.Status(-1),
			delivery.Status(6),
			delivery.Status(100),
		}

		for _, status := range invalidStatuses {
			err := status.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   delivery.Status
			expected string
		}{
			{delivery.StatusAwaitingPickup, "AwaitingPickup"},
			{delivery.StatusEnRoute, "EnRoute"},
			{delivery.StatusDelivered, "Delivered"},
			{delivery.StatusProblem, "Problem"},
			{delivery.StatusCanceled, "Canceled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "Unknown", delivery.StatusUnknown.String())
		assert.Equal(t, "Unknown", delivery.Status(42).String())
	})
}

func TestStatusFromWire(t *testing.T) {
	t.Run("should parse backend wire names", func(t *testing.T) {
		testCases := []struct {
			wire     string
			expected delivery.Status
		}{
			{"AWAITING_PICKUP", delivery.StatusAwaitingPickup},
			{"EN_ROUTE", delivery.StatusEnRoute},
			{"DELIVERED", delivery.StatusDelivered},
			{"PROBLEM", delivery.StatusProblem},
			{"CANCELED", delivery.StatusCanceled},
		}

		for _, tc := range testCases {
			status, err := delivery.StatusFromWire(tc.wire)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
			assert.Equal(t, tc.wire, status.WireName())
		}
	})

	t.Run("should reject unknown wire names", func(t *testing.T) {
		for _, wire := range []string{"", "awaiting_pickup", "SHIPPED", "Unknown"} {
			status, err := delivery.StatusFromWire(wire)

			require.Error(t, err, "expected error for %q", wire)
			assert.Equal(t, delivery.StatusUnknown, status)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should be terminal only for Delivered, Problem and Canceled", func(t *testing.T) {
		assert.False(t, delivery.StatusAwaitingPickup.IsTerminal())
		assert.False(t, delivery.StatusEnRoute.IsTerminal())
		assert.True(t, delivery.StatusDelivered.IsTerminal())
		assert.True(t, delivery.StatusProblem.IsTerminal())
		assert.True(t, delivery.StatusCanceled.IsTerminal())
	})
}

func TestStatus_StartRoute(t *testing.T) {
	t.Run("should transition from AwaitingPickup to EnRoute", func(t *testing.T) {
		next, err := delivery.StatusAwaitingPickup.StartRoute()

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusEnRoute, next)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		invalid := []delivery.Status{
			delivery.StatusUnknown,
			delivery.StatusEnRoute,
			delivery.StatusDelivered,
			delivery.StatusProblem,
			delivery.StatusCanceled,
		}

		for _, status := range invalid {
			t.Run(fmt.Sprintf("should reject from %s", status.String()), func(t *testing.T) {
				_, err := status.StartRoute()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "not a valid status to start the route")
			})
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should transition from EnRoute to Delivered", func(t *testing.T) {
		next, err := delivery.StatusEnRoute.Complete()

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusDelivered, next)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		invalid := []delivery.Status{
			delivery.StatusUnknown,
			delivery.StatusAwaitingPickup,
			delivery.StatusDelivered,
			delivery.StatusProblem,
			delivery.StatusCanceled,
		}

		for _, status := range invalid {
			_, err := status.Complete()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "not a valid status to complete")
		}
	})
}

func TestStatus_ReportProblem(t *testing.T) {
	t.Run("should transition from EnRoute to Problem", func(t *testing.T) {
		next, err := delivery.StatusEnRoute.ReportProblem()

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusProblem, next)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		invalid := []delivery.Status{
			delivery.StatusAwaitingPickup,
			delivery.StatusDelivered,
			delivery.StatusProblem,
			delivery.StatusCanceled,
		}

		for _, status := range invalid {
			_, err := status.ReportProblem()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "not a valid status to report a problem")
		}
	})
}

func TestStatus_ValidateAssign(t *testing.T) {
	t.Run("should allow assignment only while awaiting pickup", func(t *testing.T) {
		require.NoError(t, delivery.StatusAwaitingPickup.ValidateAssign())

		invalid := []delivery.Status{
			delivery.StatusEnRoute,
			delivery.StatusDelivered,
			delivery.StatusProblem,
			delivery.StatusCanceled,
		}
		for _, status := range invalid {
			require.Error(t, status.ValidateAssign())
		}
	})
}
