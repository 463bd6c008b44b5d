package commands_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/shipment"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliverExpectations(uow *MockUoW, shipmentRepo *MockShipmentRepository, historyRepo *MockHistoryRepository,
	ctx interface{}, testShip *shipment.Shipment, commits bool) {
	calls := []*mock.Call{
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByCargoCode", ctx, testShip.CargoCode()).Return(testShip, nil).Once(),
	}
	if commits {
		calls = append(calls,
			shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
			uow.On("HistoryRepository").Return(historyRepo).Once(),
			historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Record")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)
	}
	calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
	mock.InOrder(calls...)
}

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkDeliveredCommand("CARGA-001")
	require.NoError(t, err)

	testShip := testShipmentInTransit(t, "CARGA-001")

	shipmentRepo := new(MockShipmentRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	deliverExpectations(uow, shipmentRepo, historyRepo, ctx, testShip, true)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory)
	delivered, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Entregue, delivered.Status())
	assert.Equal(t, delivered.Destination().Text(), delivered.CurrentLocation().Text())

	shipmentRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkDeliveredCommand("CARGA-001")
	require.NoError(t, err)

	testShip := testShipmentInTransit(t, "CARGA-001")
	require.NoError(t, testShip.Deliver())

	shipmentRepo := new(MockShipmentRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	deliverExpectations(uow, shipmentRepo, historyRepo, ctx, testShip, false)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnprocessableEntity)
	assert.Contains(t, err.Error(), "already delivered")
}

func TestMarkDeliveredCommandHandler_Handle_Cancelled(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkDeliveredCommand("CARGA-001")
	require.NoError(t, err)

	testShip := testShipment(t, "CARGA-001")
	require.NoError(t, testShip.Cancel())

	shipmentRepo := new(MockShipmentRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	deliverExpectations(uow, shipmentRepo, historyRepo, ctx, testShip, false)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnprocessableEntity)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestMarkDeliveredCommandHandler_Handle_NotYetInTransit(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkDeliveredCommand("CARGA-001")
	require.NoError(t, err)

	testShip := testShipment(t, "CARGA-001")

	shipmentRepo := new(MockShipmentRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	deliverExpectations(uow, shipmentRepo, historyRepo, ctx, testShip, false)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
}

func TestNewMarkDeliveredCommand(t *testing.T) {
	_, err := commands.NewMarkDeliveredCommand("")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
