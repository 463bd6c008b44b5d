package http

import (
	"net/http"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetHistory handles GET /api/v1/historico/:codigoCarga - the public
// movement ledger of one cargo, newest entries first.
func (s *Server) GetHistory(ctx echo.Context) error {
	query, err := queries.NewGetHistoryQuery(ctx.Param("codigoCarga"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.queries.GetHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllHistory handles GET /api/v1/historico - the full ledger across all
// cargoes, for auditing.
func (s *Server) GetAllHistory(ctx echo.Context) error {
	response, err := s.queries.GetAllHistory.Handle(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddHistoryRecord handles POST /api/v1/historico/:codigoCarga - appends a
// manual, optionally back-dated annotation to a cargo's ledger without
// touching the cargo itself.
func (s *Server) AddHistoryRecord(ctx echo.Context) error {
	var req addHistoryRecordRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "corpo da requisição inválido")
	}

	cmd, err := commands.NewAddHistoryRecordCommand(
		ctx.Param("codigoCarga"), req.Status, req.Location, req.Notes, req.OccurredAt)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.commands.AddHistoryRecord.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, recordToResponse(record))
}
