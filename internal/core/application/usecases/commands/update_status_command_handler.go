package commands

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/history"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"
	"cargotracker/internal/core/ports"
)

// UpdateStatusCommandHandler handles the business logic for status changes.
// A status change fetches the shipment, validates the transition against the
// status-flow table, geocodes the reported location, moves the shipment, and
// appends a ledger entry; the shipment update and its ledger entry commit
// atomically. The geocoder is only consulted once the cargo is known to
// exist and the transition is legal.
type UpdateStatusCommandHandler struct {
	uowFactory TrackingUoWFactory
	geocoder   ports.Geocoder
}

// NewUpdateStatusCommandHandler creates a handler for status changes.
func NewUpdateStatusCommandHandler(
	uowFactory TrackingUoWFactory,
	geocoder ports.Geocoder,
) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes the status change and returns the updated shipment.
//
// Returns a not-found error for an unknown cargo code and an
// invalid-transition error when the status-flow table forbids the move.
func (h *UpdateStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateStatusCommand,
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

	if _, err = aggregate.Status().TransitionTo(cmd.Status()); err != nil {
		return nil, err
	}

	location, err := resolveLocation(ctx, h.geocoder, cmd.LocationText())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AdvanceTo(cmd.Status(), location); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	record, err := history.NewRecord(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.Status(),
		location,
		cmd.Notes(),
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
