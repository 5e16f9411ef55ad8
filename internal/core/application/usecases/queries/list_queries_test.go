package queries_test

import (
	"testing"
	"time"

	"courierdesk/internal/adapters/out/inmem"
	"courierdesk/internal/core/application/usecases/queries"
	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContact(t *testing.T, name string) kernel.Contact {
	t.Helper()

	contact, err := kernel.NewContact(name, "+1-555-0199", "5 Depot Street")
	require.NoError(t, err)
	return contact
}

func seedShipment(t *testing.T, registry *inmem.Registry, clientID kernel.UUID, recipient string, weight float64) *shipment.Shipment {
	t.Helper()

	dims, err := kernel.NewDimensions(30, 20, 10)
	require.NoError(t, err)
	declared, err := kernel.NewMoneyFromString("50.00")
	require.NoError(t, err)

	id := kernel.NewUUID()
	shp, err := shipment.NewShipment(
		id,
		shipment.NewTrackingCode(id),
		clientID,
		testContact(t, "Depot Desk"),
		testContact(t, recipient),
		weight,
		dims,
		declared,
		shipment.Standard,
		shipment.Normal,
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NoError(t, registry.ShipmentRepository().Add(t.Context(), shp))
	return shp
}

func seedCourier(t *testing.T, registry *inmem.Registry, name string) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(kernel.NewUUID(), testContact(t, name), "bike")
	require.NoError(t, err)
	require.NoError(t, registry.CourierRepository().Add(t.Context(), c))
	return c
}

func seedClient(t *testing.T, registry *inmem.Registry, name string) *client.Client {
	t.Helper()

	c, err := client.NewClient(kernel.NewUUID(), testContact(t, name))
	require.NoError(t, err)
	require.NoError(t, registry.ClientRepository().Add(t.Context(), c))
	return c
}

func seedInvoice(t *testing.T, registry *inmem.Registry, clientID kernel.UUID, amount string, paid bool) *invoice.Invoice {
	t.Helper()

	issuedAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	inv, err := invoice.NewInvoice(kernel.NewUUID(), clientID, issuedAt, issuedAt.AddDate(0, 0, 30))
	require.NoError(t, err)

	unitPrice, err := kernel.NewMoneyFromString(amount)
	require.NoError(t, err)
	line, err := invoice.NewLineItem("express delivery", 1, unitPrice)
	require.NoError(t, err)
	require.NoError(t, inv.AddLine(line))

	if paid {
		require.NoError(t, inv.MarkSent())
		require.NoError(t, inv.MarkPaid(issuedAt.AddDate(0, 0, 5)))
	}

	require.NoError(t, registry.InvoiceRepository().Add(t.Context(), inv))
	return inv
}

func listParams() query.Params {
	return query.Params{Page: 1, PageSize: 10}
}

func TestListShipmentsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	clientA := kernel.NewUUID()
	clientB := kernel.NewUUID()
	heavy := seedShipment(t, registry, clientA, "Rita Reed", 8.4)
	light := seedShipment(t, registry, clientA, "Sam Stone", 1.2)
	seedShipment(t, registry, clientB, "Tess Tran", 3.0)

	handler := queries.NewListShipmentsQueryHandler(registry.ShipmentRepository())

	t.Run("should filter by client and sort by weight", func(t *testing.T) {
		params := listParams()
		params.Filters = map[string]string{"clientId": clientA.String()}
		params.SortField = "weight"
		params.SortOrder = query.Desc
		q, err := queries.NewListShipmentsQuery(params)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		assert.Equal(t, 2, result.TotalCount)
		assert.Equal(t, heavy.TrackingCode(), result.Items[0].TrackingCode)
		assert.Equal(t, light.TrackingCode(), result.Items[1].TrackingCode)
	})

	t.Run("should search by recipient name", func(t *testing.T) {
		params := listParams()
		params.SearchTerm = "tess"
		params.SearchFields = []string{"recipientName"}
		q, err := queries.NewListShipmentsQuery(params)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Tess Tran", result.Items[0].RecipientName)
	})

	t.Run("should reject an unknown sort field", func(t *testing.T) {
		params := listParams()
		params.SortField = "velocity"
		q, err := queries.NewListShipmentsQuery(params)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, q)

		require.Error(t, err)
	})
}

func TestListCouriersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	busy := seedCourier(t, registry, "Grace Rider")
	idle := seedCourier(t, registry, "Hank Walker")

	clientID := kernel.NewUUID()
	for range 2 {
		shp := seedShipment(t, registry, clientID, "Rita Reed", 2.0)
		require.NoError(t, shp.Assign(busy.ID()))
		require.NoError(t, registry.ShipmentRepository().Update(ctx, shp))
	}

	handler := queries.NewListCouriersQueryHandler(registry.CourierRepository(), registry.ShipmentRepository())

	params := listParams()
	params.SortField = "workload"
	params.SortOrder = query.Desc
	q, err := queries.NewListCouriersQuery(params)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, q)

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Grace Rider", result.Items[0].Name)
	assert.Equal(t, 2, result.Items[0].Workload)
	assert.Equal(t, idle.Contact().Name(), result.Items[1].Name)
	assert.Equal(t, 0, result.Items[1].Workload)
}

func TestListClientsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	acme := seedClient(t, registry, "Acme Corp")
	other := seedClient(t, registry, "Globex")

	seedShipment(t, registry, acme.ID(), "Rita Reed", 2.0)
	seedShipment(t, registry, acme.ID(), "Sam Stone", 4.0)
	seedInvoice(t, registry, acme.ID(), "100.00", true)
	seedInvoice(t, registry, acme.ID(), "999.00", false) // draft, excluded from spend

	handler := queries.NewListClientsQueryHandler(
		registry.ClientRepository(),
		registry.ShipmentRepository(),
		registry.InvoiceRepository(),
	)

	params := listParams()
	params.SortField = "totalPackages"
	params.SortOrder = query.Desc
	q, err := queries.NewListClientsQuery(params)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, q)

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Acme Corp", result.Items[0].Name)
	assert.Equal(t, 2, result.Items[0].TotalPackages)
	assert.Equal(t, "115.00", result.Items[0].TotalSpent, "only paid invoices count toward spend")
	assert.Equal(t, other.Contact().Name(), result.Items[1].Name)
	assert.Equal(t, 0, result.Items[1].TotalPackages)
	assert.Equal(t, "0.00", result.Items[1].TotalSpent)
}

func TestListInvoicesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	clientID := kernel.NewUUID()
	paid := seedInvoice(t, registry, clientID, "40.00", true)
	seedInvoice(t, registry, clientID, "25.00", false)

	handler := queries.NewListInvoicesQueryHandler(registry.InvoiceRepository())

	params := listParams()
	params.Filters = map[string]string{"status": invoice.Paid.String()}
	q, err := queries.NewListInvoicesQuery(params)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, q)

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	row := result.Items[0]
	assert.Equal(t, paid.ID().String(), row.ID)
	assert.Equal(t, 1, row.LineCount)
	assert.Equal(t, "40.00", row.Amount)
	assert.Equal(t, "6.00", row.Tax)
	assert.Equal(t, "46.00", row.Total)
	require.NotNil(t, row.PaidAt)
}
