package http

import (
	"net/http"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/operator"

	"github.com/labstack/echo/v4"
)

// GetAllOperators handles GET /api/v1/operadores. Admin only; password
// hashes never appear in the response.
func (s *Server) GetAllOperators(ctx echo.Context) error {
	response, err := s.queries.GetAllOperators.Handle(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOperator handles POST /api/v1/operadores. Admin only.
func (s *Server) CreateOperator(ctx echo.Context) error {
	var req createOperatorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "corpo da requisição inválido")
	}

	cmd, err := commands.NewCreateOperatorCommand(req.Name, req.Email, req.Password, operator.Role(req.Role))
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.commands.CreateOperator.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, operatorToResponse(created))
}

// UpdateOperator handles PATCH /api/v1/operadores/:id - changes the
// password, the role, or both. Admin only.
func (s *Server) UpdateOperator(ctx echo.Context) error {
	var req updateOperatorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "corpo da requisição inválido")
	}

	operatorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOperatorCommand(operatorID, req.Password, operator.Role(req.Role))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.commands.UpdateOperator.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, operatorToResponse(updated))
}
