// Package http is the inbound REST adapter. It binds request bodies,
// builds commands and queries, and translates domain errors to status codes.
// All business rules live in the use cases; handlers stay thin.
package http

import (
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/operator"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles every write-side handler the server needs.
type CommandHandlers struct {
	RegisterShipment commands.RegisterShipmentCommandHandler
	UpdateStatus     commands.UpdateStatusCommandHandler
	UpdateLocation   commands.UpdateLocationCommandHandler
	MarkDelivered    commands.MarkDeliveredCommandHandler
	CancelShipment   commands.CancelShipmentCommandHandler
	AddHistoryRecord commands.AddHistoryRecordCommandHandler
	CreateClient     commands.CreateClientCommandHandler
	UpdateClient     commands.UpdateClientCommandHandler
	CreateOperator   commands.CreateOperatorCommandHandler
	UpdateOperator   commands.UpdateOperatorCommandHandler
	Login            commands.LoginCommandHandler
}

// QueryHandlers bundles every read-side handler the server needs.
type QueryHandlers struct {
	GetShipment          queries.GetShipmentQueryHandler
	GetShipmentDetails   queries.GetShipmentDetailsQueryHandler
	ListShipments        queries.ListShipmentsQueryHandler
	GetShipmentsByStatus queries.GetShipmentsByStatusQueryHandler
	GetHistory           queries.GetHistoryQueryHandler
	GetAllHistory        queries.GetAllHistoryQueryHandler
	GetAllClients        queries.GetAllClientsQueryHandler
	GetAllOperators      queries.GetAllOperatorsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	verifier TokenVerifier
}

// NewServer creates the REST server over the given use-case handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, verifier TokenVerifier) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		verifier: verifier,
	}
}

// RegisterRoutes wires the full API surface onto the echo instance.
//
// Cargo lookup and its movement history are public so end customers can
// track their cargo by code. Everything that mutates state requires an
// authenticated operator; operator management and cancellation are
// admin-only.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/login", s.Login)
	api.GET("/tracking/:codigoCarga", s.GetShipment)
	api.GET("/historico/:codigoCarga", s.GetHistory)

	authed := api.Group("", requireAuth(s.verifier))
	authed.POST("/tracking", s.RegisterShipment)
	authed.GET("/tracking", s.ListShipments)
	authed.GET("/tracking/status/:status", s.GetShipmentsByStatus)
	authed.GET("/tracking/:codigoCarga/detalhes", s.GetShipmentDetails)
	authed.PATCH("/tracking/:codigoCarga/status", s.UpdateStatus)
	authed.PATCH("/tracking/:codigoCarga/localizacao", s.UpdateLocation)
	authed.POST("/tracking/:codigoCarga/entrega", s.MarkDelivered)

	authed.GET("/historico", s.GetAllHistory)
	authed.POST("/historico/:codigoCarga", s.AddHistoryRecord)

	authed.GET("/clientes", s.GetAllClients)
	authed.POST("/clientes", s.CreateClient)
	authed.PATCH("/clientes/:id", s.UpdateClient)

	admin := api.Group("", requireAuth(s.verifier), requireRole(operator.RoleAdmin))
	admin.DELETE("/tracking/:codigoCarga", s.CancelShipment)
	admin.GET("/operadores", s.GetAllOperators)
	admin.POST("/operadores", s.CreateOperator)
	admin.PATCH("/operadores/:id", s.UpdateOperator)
}
