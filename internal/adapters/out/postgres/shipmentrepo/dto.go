// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The three locations are embedded with column prefixes so one
// row carries origin, destination and current position.
type ShipmentDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CargoCode   string      `gorm:"type:varchar(64);not null;uniqueIndex"`
	ClientID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	OperatorID  uuid.UUID   `gorm:"type:uuid;not null;index"`
	Origin      LocationDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination LocationDTO `gorm:"embedded;embeddedPrefix:dest_"`
	Current     LocationDTO `gorm:"embedded;embeddedPrefix:current_"`
	DepartureAt time.Time   `gorm:"not null"`
	ForecastAt  time.Time   `gorm:"not null"`
	Status      string      `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time   `gorm:"not null"`
	UpdatedAt   time.Time   `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// LocationDTO represents an embedded location within a table row: the raw
// address text plus whatever geocoding resolved. Lat and Lng are null when
// the address was never resolved to coordinates.
type LocationDTO struct {
	Text    string   `gorm:"type:varchar(512);not null"`
	City    string   `gorm:"type:varchar(255)"`
	Country string   `gorm:"type:varchar(255)"`
	Lat     *float64 `gorm:"type:double precision"`
	Lng     *float64 `gorm:"type:double precision"`
}

// LocationFromDomain converts a location value object to its embedded
// database representation.
func LocationFromDomain(loc kernel.Location) LocationDTO {
	dto := LocationDTO{
		Text:    loc.Text(),
		City:    loc.City(),
		Country: loc.Country(),
	}

	if lat, lng, ok := loc.Coordinates(); ok {
		dto.Lat = &lat
		dto.Lng = &lng
	}

	return dto
}

// LocationToDomain reconstructs a location value object from its embedded
// database representation.
func LocationToDomain(dto LocationDTO) (kernel.Location, error) {
	return kernel.NewGeocodedLocation(dto.Text, dto.City, dto.Country, dto.Lat, dto.Lng)
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:          aggregate.ID().Bytes(),
		CargoCode:   aggregate.CargoCode(),
		ClientID:    aggregate.ClientID().Bytes(),
		OperatorID:  aggregate.OperatorID().Bytes(),
		Origin:      LocationFromDomain(aggregate.Origin()),
		Destination: LocationFromDomain(aggregate.Destination()),
		Current:     LocationFromDomain(aggregate.CurrentLocation()),
		DepartureAt: aggregate.DepartureAt(),
		ForecastAt:  aggregate.ForecastAt(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate using
// RestoreShipment, skipping registration rules but keeping structural checks.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	origin, err := LocationToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := LocationToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	current, err := LocationToDomain(dto.Current)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		dto.CargoCode,
		clientID,
		operatorID,
		origin,
		destination,
		current,
		dto.DepartureAt,
		dto.ForecastAt,
		shipment.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
