// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cargotracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// OperatorRepoFactory provides access to the operator repository within a transaction.
	OperatorRepoFactory interface {
		OperatorRepository() ports.OperatorRepository
	}

	// TrackingUoW manages transactions for operations that mutate a shipment
	// and append to its movement ledger. Every shipment mutation writes its
	// ledger entry in the same transaction, so a mutation is never visible
	// without its history record.
	TrackingUoW interface {
		TxManager
		ShipmentRepoFactory
		HistoryRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// RegistrationUoW manages transactions for shipment registration, which
	// additionally verifies that the referenced client and operator exist.
	RegistrationUoW interface {
		TxManager
		ShipmentRepoFactory
		HistoryRepoFactory
		ClientRepoFactory
		OperatorRepoFactory
	}

	// RegistrationUoWFactory creates new registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// OperatorUoW manages transactions for operator-only operations.
	OperatorUoW interface {
		TxManager
		OperatorRepoFactory
	}

	// OperatorUoWFactory creates new operator unit of work instances.
	OperatorUoWFactory interface {
		Create() OperatorUoW
	}
)
