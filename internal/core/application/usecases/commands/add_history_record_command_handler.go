package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/history"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/ports"
)

// AddHistoryRecordCommandHandler handles manual ledger annotations. The
// entry is attached to the shipment the cargo code resolves to; the shipment
// itself is not modified.
type AddHistoryRecordCommandHandler struct {
	uowFactory TrackingUoWFactory
	geocoder   ports.Geocoder
}

// NewAddHistoryRecordCommandHandler creates a handler for manual ledger entries.
func NewAddHistoryRecordCommandHandler(
	uowFactory TrackingUoWFactory,
	geocoder ports.Geocoder,
) AddHistoryRecordCommandHandler {
	return AddHistoryRecordCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle appends the manual entry and returns it.
func (h *AddHistoryRecordCommandHandler) Handle(
	ctx context.Context, cmd AddHistoryRecordCommand,
) (*history.Record, error) {
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

	aggregate, err := uow.ShipmentRepository().GetByCargoCode(ctx, cmd.CargoCode())
	if err != nil {
		return nil, err
	}

	location, err := resolveLocation(ctx, h.geocoder, cmd.LocationText())
	if err != nil {
		return nil, err
	}

	record, err := history.NewRecord(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.Status(),
		location,
		cmd.Notes(),
		cmd.OccurredAt(),
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

	return record, nil
}
