// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"time"
)

// LocationResponse is the read model for a stored location: the raw address
// plus whatever geocoding resolved. Lat/Lng are nil when unresolved.
type LocationResponse struct {
	Text    string   `json:"texto"`
	City    string   `json:"cidade,omitempty"`
	Country string   `json:"pais,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// ShipmentResponse is the read model for a tracked cargo.
type ShipmentResponse struct {
	ID              string           `json:"id"`
	CargoCode       string           `json:"codigoCarga"`
	ClientID        string           `json:"clienteId"`
	OperatorID      string           `json:"operadorId"`
	Origin          LocationResponse `json:"origem"`
	Destination     LocationResponse `json:"destino"`
	CurrentLocation LocationResponse `json:"localAtual"`
	DepartureAt     time.Time        `json:"dataSaida"`
	ForecastAt      time.Time        `json:"previsaoEntrega"`
	Status          string           `json:"statusAtual"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// HistoryRecordResponse is the read model for one movement-ledger entry.
type HistoryRecordResponse struct {
	ID         string           `json:"id"`
	ShipmentID string           `json:"viagemId"`
	Status     string           `json:"status"`
	Location   LocationResponse `json:"local"`
	Notes      string           `json:"observacoes,omitempty"`
	OccurredAt time.Time        `json:"ocorridoEm"`
}

// ClientResponse is the read model for a cargo owner.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OperatorResponse is the read model for a logistics operator.
// The password hash is deliberately absent.
type OperatorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShipmentDetailsResponse aggregates everything known about a cargo: the
// shipment itself, the parties involved, and the full movement ledger.
type ShipmentDetailsResponse struct {
	Shipment ShipmentResponse        `json:"viagem"`
	Client   ClientResponse          `json:"cliente"`
	Operator OperatorResponse        `json:"operador"`
	History  []HistoryRecordResponse `json:"historico"`
}

// PaginatedShipmentsResponse is one page of a shipment listing.
type PaginatedShipmentsResponse struct {
	Items      []ShipmentResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int64              `json:"totalPages"`
}

// shipmentRow mirrors the shipments table for gorm scanning.
type shipmentRow struct {
	ID             string
	CargoCode      string
	ClientID       string
	OperatorID     string
	OriginText     string
	OriginCity     string
	OriginCountry  string
	OriginLat      *float64
	OriginLng      *float64
	DestText       string
	DestCity       string
	DestCountry    string
	DestLat        *float64
	DestLng        *float64
	CurrentText    string
	CurrentCity    string
	CurrentCountry string
	CurrentLat     *float64
	CurrentLng     *float64
	DepartureAt    time.Time
	ForecastAt     time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (shipmentRow) TableName() string { return "shipments" }

func (r shipmentRow) toResponse() ShipmentResponse {
	return ShipmentResponse{
		ID:         r.ID,
		CargoCode:  r.CargoCode,
		ClientID:   r.ClientID,
		OperatorID: r.OperatorID,
		Origin: LocationResponse{
			Text: r.OriginText, City: r.OriginCity, Country: r.OriginCountry,
			Lat: r.OriginLat, Lng: r.OriginLng,
		},
		Destination: LocationResponse{
			Text: r.DestText, City: r.DestCity, Country: r.DestCountry,
			Lat: r.DestLat, Lng: r.DestLng,
		},
		CurrentLocation: LocationResponse{
			Text: r.CurrentText, City: r.CurrentCity, Country: r.CurrentCountry,
			Lat: r.CurrentLat, Lng: r.CurrentLng,
		},
		DepartureAt: r.DepartureAt,
		ForecastAt:  r.ForecastAt,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// historyRow mirrors the movement_records table for gorm scanning.
type historyRow struct {
	ID              string
	ShipmentID      string
	Status          string
	LocationText    string
	LocationCity    string
	LocationCountry string
	LocationLat     *float64
	LocationLng     *float64
	Notes           string
	OccurredAt      time.Time
}

func (historyRow) TableName() string { return "movement_records" }

func (r historyRow) toResponse() HistoryRecordResponse {
	return HistoryRecordResponse{
		ID:         r.ID,
		ShipmentID: r.ShipmentID,
		Status:     r.Status,
		Location: LocationResponse{
			Text: r.LocationText, City: r.LocationCity, Country: r.LocationCountry,
			Lat: r.LocationLat, Lng: r.LocationLng,
		},
		Notes:      r.Notes,
		OccurredAt: r.OccurredAt,
	}
}

// clientRow mirrors the clients table for gorm scanning.
type clientRow struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (clientRow) TableName() string { return "clients" }

func (r clientRow) toResponse() ClientResponse {
	return ClientResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// operatorRow mirrors the operators table for gorm scanning.
type operatorRow struct {
	ID        string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (operatorRow) TableName() string { return "operators" }

func (r operatorRow) toResponse() OperatorResponse {
	return OperatorResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
