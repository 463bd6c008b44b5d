package http

import (
	"net/http"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetAllClients handles GET /api/v1/clientes.
func (s *Server) GetAllClients(ctx echo.Context) error {
	response, err := s.queries.GetAllClients.Handle(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /api/v1/clientes.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req clientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "corpo da requisição inválido")
	}

	cmd, err := commands.NewCreateClientCommand(req.Name, req.Email, req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.commands.CreateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, clientToResponse(created))
}

// UpdateClient handles PATCH /api/v1/clientes/:id.
func (s *Server) UpdateClient(ctx echo.Context) error {
	var req clientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "corpo da requisição inválido")
	}

	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateClientCommand(clientID, req.Name, req.Email, req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.commands.UpdateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, clientToResponse(updated))
}
