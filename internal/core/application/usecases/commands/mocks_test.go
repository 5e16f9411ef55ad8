package commands_test

import (
	"context"
	"testing"
	"time"

	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetByTrackingCode(ctx context.Context, trackingCode string) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetAll(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetAllInPendingStatus(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetAllAssignedTo(ctx context.Context, courierID kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, courierID)
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}
func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*courier.Courier), args.Error(1)
}
func (m *MockCourierRepository) GetAllAssignable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}
func (m *MockClientRepository) GetAll(ctx context.Context) ([]*client.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*client.Client), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}
func (m *MockInvoiceRepository) GetAll(ctx context.Context) ([]*invoice.Invoice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}
func (m *MockInvoiceRepository) GetAllByClient(ctx context.Context, clientID kernel.UUID) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}
func (m *MockInvoiceRepository) GetAllSentPastDue(ctx context.Context, now time.Time) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

// MockUnitOfWork satisfies every command UoW interface, so one mock serves all
// handler tests.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockUnitOfWork) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}
func (m *MockUnitOfWork) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}
func (m *MockUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockShipmentClientUoWFactory struct{ mock.Mock }

func (m *MockShipmentClientUoWFactory) Create() commands.ShipmentClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentClientUoW)
}

type MockInvoiceClientUoWFactory struct{ mock.Mock }

func (m *MockInvoiceClientUoWFactory) Create() commands.InvoiceClientUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceClientUoW)
}

// Shared fixtures.

func testContact(t *testing.T, name string) kernel.Contact {
	t.Helper()
	contact, err := kernel.NewContact(name, "+1-555-0100", "221B Baker Street")
	require.NoError(t, err)
	return contact
}

func testClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(kernel.NewUUID(), testContact(t, "Acme Corp"))
	require.NoError(t, err)
	return c
}

func testCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), testContact(t, "Grace Rider"), "bike")
	require.NoError(t, err)
	return c
}

func testShipment(t *testing.T, clientID kernel.UUID) *shipment.Shipment {
	t.Helper()

	id := kernel.NewUUID()
	dims, err := kernel.NewDimensions(30, 20, 10)
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		id, shipment.NewTrackingCode(id), clientID,
		testContact(t, "Ada Sender"), testContact(t, "Bob Recipient"),
		2.5, dims, kernel.ZeroMoney(),
		shipment.Standard, shipment.Normal,
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return s
}

func deliveredShipment(t *testing.T, courierID kernel.UUID) *shipment.Shipment {
	t.Helper()

	s := testShipment(t, kernel.NewUUID())
	require.NoError(t, s.Assign(courierID))
	at := s.CreatedAt()
	for _, status := range []shipment.Status{
		shipment.PickedUp, shipment.InTransit, shipment.OutForDelivery, shipment.Delivered,
	} {
		at = at.Add(time.Hour)
		event, err := shipment.NewTrackingEvent(status, "Hub", "scan", at, "")
		require.NoError(t, err)
		require.NoError(t, s.TransitionTo(status, event))
	}
	return s
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}
