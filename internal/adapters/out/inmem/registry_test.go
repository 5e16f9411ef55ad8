package inmem_test

import (
	"testing"
	"time"

	"courierdesk/internal/adapters/out/inmem"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	sender, err := kernel.NewContact("Ada Sender", "+15550001", "12 Origin Way")
	require.NoError(t, err)
	recipient, err := kernel.NewContact("Bob Recipient", "+15550002", "77 Target Ave")
	require.NoError(t, err)
	dims, err := kernel.NewDimensions(30, 20, 10)
	require.NoError(t, err)
	declared, err := kernel.NewMoneyFromString("120.00")
	require.NoError(t, err)

	id := kernel.NewUUID()
	shp, err := shipment.NewShipment(
		id,
		shipment.NewTrackingCode(id),
		kernel.NewUUID(),
		sender,
		recipient,
		2.5,
		dims,
		declared,
		shipment.Standard,
		shipment.Normal,
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return shp
}

func TestRegistry_AddAndGet(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	repo := registry.ShipmentRepository()
	shp := testShipment(t)

	require.NoError(t, repo.Add(ctx, shp))

	stored, err := repo.Get(ctx, shp.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsEqual(shp))
	assert.Equal(t, shp.TrackingCode(), stored.TrackingCode())

	t.Run("stored state is isolated from the returned aggregate", func(t *testing.T) {
		require.NoError(t, stored.Assign(kernel.NewUUID()))

		again, err := repo.Get(ctx, shp.ID())
		require.NoError(t, err)
		assert.Nil(t, again.Courier())
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		err := repo.Add(ctx, shp)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.Get(ctx, kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRegistry_GetByTrackingCode(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	repo := registry.ShipmentRepository()
	shp := testShipment(t)
	require.NoError(t, repo.Add(ctx, shp))

	stored, err := repo.GetByTrackingCode(ctx, shp.TrackingCode())
	require.NoError(t, err)
	assert.True(t, stored.IsEqual(shp))

	_, err = repo.GetByTrackingCode(ctx, "CD-DOESNOTEXIST")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_CommitMakesStagedWritesVisible(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	shp := testShipment(t)

	uow := registry.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ShipmentRepository().Add(ctx, shp))

	_, err := registry.ShipmentRepository().Get(ctx, shp.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound, "staged write must not leak before commit")

	require.NoError(t, uow.Commit(ctx))

	stored, err := registry.ShipmentRepository().Get(ctx, shp.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsEqual(shp))
}

func TestUnitOfWork_RollbackDiscardsStagedWrites(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	shp := testShipment(t)

	uow := registry.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ShipmentRepository().Add(ctx, shp))
	require.NoError(t, uow.Rollback(ctx))

	_, err := registry.ShipmentRepository().Get(ctx, shp.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_StaleWriteLosesRace(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	shp := testShipment(t)
	require.NoError(t, registry.ShipmentRepository().Add(ctx, shp))

	firstCourier := kernel.NewUUID()
	secondCourier := kernel.NewUUID()

	first := registry.Create()
	require.NoError(t, first.Begin(ctx))
	firstCopy, err := first.ShipmentRepository().Get(ctx, shp.ID())
	require.NoError(t, err)

	second := registry.Create()
	require.NoError(t, second.Begin(ctx))
	secondCopy, err := second.ShipmentRepository().Get(ctx, shp.ID())
	require.NoError(t, err)

	require.NoError(t, firstCopy.Assign(firstCourier))
	require.NoError(t, first.ShipmentRepository().Update(ctx, firstCopy))
	require.NoError(t, first.Commit(ctx))

	require.NoError(t, secondCopy.Assign(secondCourier))
	require.NoError(t, second.ShipmentRepository().Update(ctx, secondCopy))
	err = second.Commit(ctx)
	require.ErrorIs(t, err, errs.ErrStaleWrite)

	stored, err := registry.ShipmentRepository().Get(ctx, shp.ID())
	require.NoError(t, err)
	require.NotNil(t, stored.Courier())
	assert.True(t, stored.Courier().IsEqual(firstCourier), "winner's write must survive")
}

func TestUnitOfWork_CommitIsAtomic(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	existing := testShipment(t)
	require.NoError(t, registry.ShipmentRepository().Add(ctx, existing))

	fresh := testShipment(t)

	uow := registry.Create()
	require.NoError(t, uow.Begin(ctx))
	repo := uow.ShipmentRepository()
	require.NoError(t, repo.Add(ctx, fresh))
	require.NoError(t, repo.Add(ctx, existing)) // fails the commit-time check

	err := uow.Commit(ctx)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = registry.ShipmentRepository().Get(ctx, fresh.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound, "no staged write may apply when any check fails")
}

func TestUnitOfWork_FinishedTransactionRejectsCommitAndRollback(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()

	uow := registry.Create()
	assert.ErrorIs(t, uow.Commit(ctx), inmem.ErrNoActiveTransaction)
	assert.ErrorIs(t, uow.Rollback(ctx), inmem.ErrNoActiveTransaction)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))
	assert.ErrorIs(t, uow.Commit(ctx), inmem.ErrNoActiveTransaction)
}

func TestShipmentRepository_Filters(t *testing.T) {
	ctx := t.Context()
	registry := inmem.NewRegistry()
	repo := registry.ShipmentRepository()

	courierID := kernel.NewUUID()
	assigned := testShipment(t)
	require.NoError(t, assigned.Assign(courierID))
	pending := testShipment(t)

	require.NoError(t, repo.Add(ctx, assigned))
	require.NoError(t, repo.Add(ctx, pending))

	t.Run("pending", func(t *testing.T) {
		got, err := repo.GetAllInPendingStatus(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2, "assignment alone does not leave pending status")
	})

	t.Run("assigned to courier", func(t *testing.T) {
		got, err := repo.GetAllAssignedTo(ctx, courierID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].IsEqual(assigned))
	})

	t.Run("all", func(t *testing.T) {
		got, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
