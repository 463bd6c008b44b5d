package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/shipment"
	"cargotracker/internal/core/ports"
)

// UpdateLocationCommandHandler handles silent position updates. The cargo's
// current location changes but its status does not, and no ledger entry is
// written.
type UpdateLocationCommandHandler struct {
	uowFactory TrackingUoWFactory
	geocoder   ports.Geocoder
}

// NewUpdateLocationCommandHandler creates a handler for position updates.
func NewUpdateLocationCommandHandler(
	uowFactory TrackingUoWFactory,
	geocoder ports.Geocoder,
) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes the position update and returns the updated shipment.
func (h *UpdateLocationCommandHandler) Handle(
	ctx context.Context, cmd UpdateLocationCommand,
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

	location, err := resolveLocation(ctx, h.geocoder, cmd.LocationText())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateLocation(location); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
