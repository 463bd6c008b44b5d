package queries

import (
	"context"
	"errors"

	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentDetailsQueryHandler assembles the full picture of a cargo:
// the shipment row, the owning client, the responsible operator, and the
// movement ledger newest first.
type GetShipmentDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentDetailsQueryHandler creates a handler for detail lookups.
func NewGetShipmentDetailsQueryHandler(db *gorm.DB) GetShipmentDetailsQueryHandler {
	return GetShipmentDetailsQueryHandler{db: db}
}

// Handle executes the lookup. Returns a not-found error when the cargo, its
// client, or its operator is missing.
func (h GetShipmentDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentDetailsQuery,
) (ShipmentDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentDetailsResponse{}, err
	}

	var shipRow shipmentRow
	err := h.db.WithContext(ctx).
		Where("cargo_code = ?", query.CargoCode()).
		First(&shipRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShipmentDetailsResponse{}, errs.NewObjectNotFoundError("codigoCarga", query.CargoCode())
		}
		return ShipmentDetailsResponse{}, err
	}

	var cliRow clientRow
	err = h.db.WithContext(ctx).Where("id = ?", shipRow.ClientID).First(&cliRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShipmentDetailsResponse{}, errs.NewObjectNotFoundError("cliente", shipRow.ClientID)
		}
		return ShipmentDetailsResponse{}, err
	}

	var opRow operatorRow
	err = h.db.WithContext(ctx).Where("id = ?", shipRow.OperatorID).First(&opRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShipmentDetailsResponse{}, errs.NewObjectNotFoundError("operador", shipRow.OperatorID)
		}
		return ShipmentDetailsResponse{}, err
	}

	historyRows := make([]historyRow, 0)
	err = h.db.WithContext(ctx).
		Where("shipment_id = ?", shipRow.ID).
		Order("occurred_at DESC, seq DESC").
		Find(&historyRows).Error
	if err != nil {
		return ShipmentDetailsResponse{}, err
	}

	records := make([]HistoryRecordResponse, 0, len(historyRows))
	for _, r := range historyRows {
		records = append(records, r.toResponse())
	}

	return ShipmentDetailsResponse{
		Shipment: shipRow.toResponse(),
		Client:   cliRow.toResponse(),
		Operator: opRow.toResponse(),
		History:  records,
	}, nil
}
