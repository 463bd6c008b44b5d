package http

import (
	"time"

	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/client"
	"cargotracker/internal/core/domain/model/history"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/core/domain/model/shipment"
)

// Command endpoints return the mutated resource in the same shape the query
// endpoints use, so clients see one representation of a cargo everywhere.

type loginResponse struct {
	Token     string                   `json:"token"`
	ExpiresAt time.Time                `json:"expiraEm"`
	Operator  queries.OperatorResponse `json:"operador"`
}

func locationToResponse(loc kernel.Location) queries.LocationResponse {
	response := queries.LocationResponse{
		Text:    loc.Text(),
		City:    loc.City(),
		Country: loc.Country(),
	}

	if lat, lng, ok := loc.Coordinates(); ok {
		response.Lat = &lat
		response.Lng = &lng
	}

	return response
}

func shipmentToResponse(s *shipment.Shipment) queries.ShipmentResponse {
	return queries.ShipmentResponse{
		ID:              s.ID().String(),
		CargoCode:       s.CargoCode(),
		ClientID:        s.ClientID().String(),
		OperatorID:      s.OperatorID().String(),
		Origin:          locationToResponse(s.Origin()),
		Destination:     locationToResponse(s.Destination()),
		CurrentLocation: locationToResponse(s.CurrentLocation()),
		DepartureAt:     s.DepartureAt(),
		ForecastAt:      s.ForecastAt(),
		Status:          s.Status().String(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func recordToResponse(r *history.Record) queries.HistoryRecordResponse {
	return queries.HistoryRecordResponse{
		ID:         r.ID().String(),
		ShipmentID: r.ShipmentID().String(),
		Status:     r.Status().String(),
		Location:   locationToResponse(r.Location()),
		Notes:      r.Notes(),
		OccurredAt: r.OccurredAt(),
	}
}

func clientToResponse(c *client.Client) queries.ClientResponse {
	return queries.ClientResponse{
		ID:        c.ID().String(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func operatorToResponse(o *operator.Operator) queries.OperatorResponse {
	return queries.OperatorResponse{
		ID:        o.ID().String(),
		Name:      o.Name(),
		Email:     o.Email(),
		Role:      o.Role().String(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}
