package commands_test

import (
	"errors"
	"testing"

	"hortifruti/internal/core/application/usecases/commands"
	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewUpdateDeliveryStatusCommand(t *testing.T) {
	t.Run("should create a command for a payload-free transition", func(t *testing.T) {
		// Arrange
		deliveryID := kernel.NewUUID()

		// Act
		command, err := commands.NewUpdateDeliveryStatusCommand(
			deliveryID, delivery.TransitionStartRoute, delivery.TransitionPayload{})

		// Assert
		require.NoError(t, err)
		assert.True(t, command.DeliveryID().IsEqual(deliveryID))
		assert.Equal(t, delivery.TransitionStartRoute, command.Transition())
		assert.NoError(t, command.Validate())
	})

	t.Run("should create a completion command with recipient data", func(t *testing.T) {
		payload := delivery.TransitionPayload{
			RecipientName:     "Maria Souza",
			RecipientDocument: "123.456.789-00",
		}

		command, err := commands.NewUpdateDeliveryStatusCommand(
			kernel.NewUUID(), delivery.TransitionComplete, payload)

		require.NoError(t, err)
		assert.Equal(t, payload, command.Payload())
	})

	t.Run("should return an error when the delivery ID is empty", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryStatusCommand(
			kernel.UUID{}, delivery.TransitionStartRoute, delivery.TransitionPayload{})

		assert.Error(t, err)
	})

	t.Run("should return an error when the transition is unknown", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryStatusCommand(
			kernel.NewUUID(), delivery.TransitionUnknown, delivery.TransitionPayload{})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return an error when the completion payload misses the recipient name", func(t *testing.T) {
		payload := delivery.TransitionPayload{RecipientDocument: "123.456.789-00"}

		_, err := commands.NewUpdateDeliveryStatusCommand(
			kernel.NewUUID(), delivery.TransitionComplete, payload)

		assert.ErrorIs(t, err, errs.ErrTransitionIsInvalid)

		var transitionErr *errs.TransitionValidationError
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, "recipientName", transitionErr.Field)
	})

	t.Run("should return an error when the problem payload misses the description", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryStatusCommand(
			kernel.NewUUID(), delivery.TransitionReportProblem, delivery.TransitionPayload{})

		var transitionErr *errs.TransitionValidationError
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, "problemDescription", transitionErr.Field)
	})

	t.Run("should not validate a command created by the default constructor", func(t *testing.T) {
		command := commands.UpdateDeliveryStatusCommand{}

		assert.Error(t, command.Validate())
	})
}
