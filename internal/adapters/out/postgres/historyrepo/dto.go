// Package historyrepo provides data transfer objects and mapping functions
// for movement-ledger persistence. The ledger is append-only; the repository
// exposes no update or delete operations.
package historyrepo

import (
	"time"

	"cargotracker/internal/adapters/out/postgres/shipmentrepo"
	"cargotracker/internal/core/domain/model/history"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting ledger entries.
// Seq is a database-assigned sequence that breaks ties between entries
// stamped at the same instant, keeping insertion order stable.
type RecordDTO struct {
	ID         uuid.UUID                `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID                `gorm:"type:uuid;not null;index"`
	Seq        int64                    `gorm:"autoIncrement;not null;uniqueIndex"`
	Status     string                   `gorm:"type:varchar(32);not null"`
	Location   shipmentrepo.LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Notes      string                   `gorm:"type:text"`
	OccurredAt time.Time                `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "movement_records".
func (RecordDTO) TableName() string {
	return "movement_records"
}

// fromDomain converts a ledger record to its database representation.
// Seq is left zero so the database assigns the next sequence value.
func fromDomain(record *history.Record) RecordDTO {
	return RecordDTO{
		ID:         record.ID().Bytes(),
		ShipmentID: record.ShipmentID().Bytes(),
		Status:     record.Status().String(),
		Location:   shipmentrepo.LocationFromDomain(record.Location()),
		Notes:      record.Notes(),
		OccurredAt: record.OccurredAt(),
	}
}

// toDomain converts a database DTO to a ledger record.
func toDomain(dto RecordDTO) (*history.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	location, err := shipmentrepo.LocationToDomain(dto.Location)
	if err != nil {
		return nil, err
	}

	return history.RestoreRecord(id, shipmentID, shipment.Status(dto.Status), location, dto.Notes, dto.OccurredAt)
}
