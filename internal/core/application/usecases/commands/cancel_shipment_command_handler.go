package commands

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/history"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"
)

// cancelledNotes annotates the ledger entry written when a cargo is called off.
const cancelledNotes = "Carga cancelada"

// CancelShipmentCommandHandler handles the business logic for cancellation.
// Cancellation is an administrative override available from any non-final
// status; it bypasses the step-by-step flow but still refuses to cancel a
// delivered or already cancelled cargo. The status change and its ledger
// entry commit atomically.
type CancelShipmentCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewCancelShipmentCommandHandler creates a handler for cancellation.
func NewCancelShipmentCommandHandler(uowFactory TrackingUoWFactory) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the updated shipment.
func (h *CancelShipmentCommandHandler) Handle(
	ctx context.Context, cmd CancelShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetByCargoCode(ctx, cmd.CargoCode())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	record, err := history.NewRecord(
		kernel.NewUUID(),
		aggregate.ID(),
		shipment.Cancelada,
		aggregate.CurrentLocation(),
		cancelledNotes,
		time.Time{},
	)
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
