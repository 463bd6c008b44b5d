package commands

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/history"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"
)

// deliveredNotes annotates the ledger entry written when a cargo arrives.
const deliveredNotes = "Carga entregue no destino"

// MarkDeliveredCommandHandler handles the business logic for delivery.
// Delivery moves the shipment to Entregue, parks it at its destination, and
// appends the delivery ledger entry, all in one transaction. No geocoding
// happens here: the destination was resolved at registration.
type MarkDeliveredCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery operations.
func NewMarkDeliveredCommandHandler(uowFactory TrackingUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery and returns the updated shipment.
//
// An already delivered or cancelled cargo is reported as unprocessable; a
// cargo the table does not allow to reach Entregue (still in Iniciada)
// yields an invalid-transition error.
func (h *MarkDeliveredCommandHandler) Handle(
	ctx context.Context, cmd MarkDeliveredCommand,
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

	if err = aggregate.Deliver(); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	record, err := history.NewRecord(
		kernel.NewUUID(),
		aggregate.ID(),
		shipment.Entregue,
		aggregate.Destination(),
		deliveredNotes,
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
