package commands

import (
	"context"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/history"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

// registeredNotes annotates the first ledger entry of every shipment.
const registeredNotes = "Carga registrada no sistema"

// RegisterShipmentCommandHandler handles the business logic for cargo
// registration. A registration verifies cargo-code uniqueness and the
// existence of the referenced client and operator, geocodes both addresses,
// creates the shipment in Iniciada status at its origin, and appends the
// first ledger entry, all in one transaction.
type RegisterShipmentCommandHandler struct {
	uowFactory RegistrationUoWFactory
	geocoder   ports.Geocoder
}

// NewRegisterShipmentCommandHandler creates a handler for cargo registration.
func NewRegisterShipmentCommandHandler(
	uowFactory RegistrationUoWFactory,
	geocoder ports.Geocoder,
) RegisterShipmentCommandHandler {
	return RegisterShipmentCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes the registration command and returns the new shipment.
//
// Returns a conflict error when the cargo code is taken and a not-found
// error when the client or operator does not exist. A geocoder that finds
// nothing for an address is tolerated; the location stays unresolved.
func (h *RegisterShipmentCommandHandler) Handle(
	ctx context.Context, cmd RegisterShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	origin, err := resolveLocation(ctx, h.geocoder, cmd.OriginText())
	if err != nil {
		return nil, err
	}
	destination, err := resolveLocation(ctx, h.geocoder, cmd.DestText())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	taken, err := shipmentRepo.ExistsByCargoCode(ctx, cmd.CargoCode())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError(fmt.Sprintf("código de carga %s já existe", cmd.CargoCode()))
	}

	if _, err = uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return nil, err
	}
	if _, err = uow.OperatorRepository().Get(ctx, cmd.OperatorID()); err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		cmd.CargoCode(),
		cmd.ClientID(),
		cmd.OperatorID(),
		origin,
		destination,
		cmd.DepartureAt(),
		cmd.ForecastAt(),
	)
	if err != nil {
		return nil, err
	}

	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	record, err := history.NewRecord(
		kernel.NewUUID(),
		aggregate.ID(),
		shipment.Iniciada,
		origin,
		registeredNotes,
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

// resolveLocation geocodes a free-text address into a Location. A provider
// that finds nothing yields an unresolved location carrying just the text.
func resolveLocation(ctx context.Context, geocoder ports.Geocoder, text string) (kernel.Location, error) {
	result, err := geocoder.Geocode(ctx, text)
	if err != nil {
		return kernel.Location{}, err
	}

	if result == nil {
		return kernel.NewLocation(text)
	}

	return kernel.NewGeocodedLocation(text, result.City, result.Country, &result.Lat, &result.Lng)
}
