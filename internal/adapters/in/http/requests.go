package http

import (
	"time"
)

// Request bodies use the same Portuguese field names as the read models so
// the API surface stays consistent for its Brazilian logistics users.

type registerShipmentRequest struct {
	CargoCode   string    `json:"codigoCarga"`
	ClientID    string    `json:"clienteId"`
	OperatorID  string    `json:"operadorId"`
	Origin      string    `json:"origem"`
	Destination string    `json:"destino"`
	DepartureAt time.Time `json:"dataSaida"`
	ForecastAt  time.Time `json:"previsaoEntrega"`
}

type updateStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"localizacao"`
	Notes    string `json:"observacoes"`
}

type updateLocationRequest struct {
	Location string `json:"localizacao"`
}

type addHistoryRecordRequest struct {
	Status     string    `json:"status"`
	Location   string    `json:"localizacao"`
	Notes      string    `json:"observacoes"`
	OccurredAt time.Time `json:"ocorridoEm"`
}

type clientRequest struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
}

type createOperatorRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Role     string `json:"role"`
}

type updateOperatorRequest struct {
	Password string `json:"senha"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}
