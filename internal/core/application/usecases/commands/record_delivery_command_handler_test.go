package commands_test

import (
	"testing"

	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	c := testCourier(t)
	shp := deliveredShipment(t, c.ID())
	cmd, err := commands.NewRecordDeliveryCommand(shp.ID(), money(t, "12.50"), 5)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, shp.ID()).Return(shp, nil).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	courierRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
	courierRepo.On("Update", ctx, c).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, c.TotalDeliveries())
	require.Equal(t, "12.50", c.MonthlyEarnings().StringFixed())
	require.InDelta(t, 5, c.Rating(), 1e-9)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := t.Context()
	shp := testShipment(t, kernel.NewUUID())
	cmd, err := commands.NewRecordDeliveryCommand(shp.ID(), money(t, "12.50"), 5)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, shp.ID()).Return(shp, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrShipmentIsNotDelivered)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertNotCalled(t, "CourierRepository")
}

func TestRecordDeliveryCommandHandler_Handle_RatingOutOfRange(t *testing.T) {
	_, err := commands.NewRecordDeliveryCommand(kernel.NewUUID(), money(t, "12.50"), 5.5)

	require.Error(t, err)
}
