package commands_test

import (
	"context"
	"testing"

	"hortifruti/internal/core/application/usecases/commands"
	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_NewAssignCourierCommand(t *testing.T) {
	t.Run("should create a command", func(t *testing.T) {
		deliveryID := kernel.NewUUID()
		courierID := kernel.NewUUID()

		command, err := commands.NewAssignCourierCommand(deliveryID, courierID)

		require.NoError(t, err)
		assert.True(t, command.DeliveryID().IsEqual(deliveryID))
		assert.True(t, command.CourierID().IsEqual(courierID))
	})

	t.Run("should return an error when the courier ID is empty", func(t *testing.T) {
		_, err := commands.NewAssignCourierCommand(kernel.NewUUID(), kernel.UUID{})

		assert.Error(t, err)
	})
}

func Test_AssignCourierCommandHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should send the assignment to the backend for a manager", func(t *testing.T) {
		// Arrange
		updated := testDelivery(t, delivery.StatusAwaitingPickup)
		deliveryID := updated.ID()
		courierID := *updated.Courier()

		command, err := commands.NewAssignCourierCommand(deliveryID, courierID)
		require.NoError(t, err)

		backend := &MockBackendClient{}
		backend.On("AssignCourier", ctx, "bearer-token", deliveryID, courierID).
			Return(updated, nil)

		handler := commands.NewAssignCourierCommandHandler(backend, managerSession(t))

		// Act
		result, err := handler.Handle(ctx, command)

		// Assert
		require.NoError(t, err)
		assert.True(t, result.ID().IsEqual(deliveryID))
		backend.AssertExpectations(t)
	})

	t.Run("should reject a courier without calling the backend", func(t *testing.T) {
		command, err := commands.NewAssignCourierCommand(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		backend := &MockBackendClient{}
		handler := commands.NewAssignCourierCommandHandler(backend, courierSession(t))

		_, err = handler.Handle(ctx, command)

		assert.ErrorIs(t, err, errs.ErrAuthorizationDenied)
		assert.ErrorContains(t, err, "assign courier requires role Manager, current role is Courier")
		backend.AssertNotCalled(t, "AssignCourier",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
