package commands_test

import (
	"context"
	"testing"

	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/identity"
	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockBackendClient struct {
	mock.Mock
}

func (m *MockBackendClient) Authenticate(ctx context.Context, email, secret string) (string, error) {
	args := m.Called(ctx, email, secret)
	return args.String(0), args.Error(1)
}

func (m *MockBackendClient) CurrentIdentity(ctx context.Context, token string) (*identity.Identity, error) {
	args := m.Called(ctx, token)
	ident, _ := args.Get(0).(*identity.Identity)
	return ident, args.Error(1)
}

func (m *MockBackendClient) ListMyDeliveries(ctx context.Context, token string) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, token)
	deliveries, _ := args.Get(0).([]*delivery.Delivery)
	return deliveries, args.Error(1)
}

func (m *MockBackendClient) ListDeliveries(ctx context.Context, token string, filter ports.DeliveryFilter) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, token, filter)
	deliveries, _ := args.Get(0).([]*delivery.Delivery)
	return deliveries, args.Error(1)
}

func (m *MockBackendClient) UpdateDeliveryStatus(
	ctx context.Context,
	token string,
	deliveryID kernel.UUID,
	transition delivery.Transition,
	payload delivery.TransitionPayload,
) (*delivery.Delivery, error) {
	args := m.Called(ctx, token, deliveryID, transition, payload)
	updated, _ := args.Get(0).(*delivery.Delivery)
	return updated, args.Error(1)
}

func (m *MockBackendClient) AssignCourier(ctx context.Context, token string, deliveryID, courierID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, token, deliveryID, courierID)
	updated, _ := args.Get(0).(*delivery.Delivery)
	return updated, args.Error(1)
}

// fakeSession is a plain commands.Session stand-in.
type fakeSession struct {
	identity *identity.Identity
	token    string
}

func (s *fakeSession) Identity() *identity.Identity {
	return s.identity
}

func (s *fakeSession) Credential() (string, bool) {
	return s.token, s.token != ""
}

func courierSession(t *testing.T) *fakeSession {
	t.Helper()

	ident, err := identity.NewIdentity(kernel.NewUUID(), "Ana Lima", "ana@hortifruti.com.br", identity.RoleCourier)
	require.NoError(t, err)
	return &fakeSession{identity: ident, token: "bearer-token"}
}

func managerSession(t *testing.T) *fakeSession {
	t.Helper()

	ident, err := identity.NewIdentity(kernel.NewUUID(), "Rui Matos", "rui@hortifruti.com.br", identity.RoleManager)
	require.NoError(t, err)
	return &fakeSession{identity: ident, token: "bearer-token"}
}

func testDelivery(t *testing.T, status delivery.Status) *delivery.Delivery {
	t.Helper()

	item, err := delivery.NewLineItem("Banana Prata kg", 2, decimal.RequireFromString("7.90"))
	require.NoError(t, err)
	order, err := delivery.NewOrder(kernel.NewUUID(), "Carlos Pereira", []delivery.LineItem{item})
	require.NoError(t, err)
	courierID := kernel.NewUUID()
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), order, "Rua das Laranjeiras, 52", status, &courierID, nil)
	require.NoError(t, err)
	return d
}
