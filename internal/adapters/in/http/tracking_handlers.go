package http

import (
	"net/http"
	"strconv"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterShipment handles POST /api/v1/tracking - registers a new cargo.
func (s *Server) RegisterShipment(ctx echo.Context) error {
	var req registerShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "corpo da requisição inválido")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return writeError(ctx, err)
	}

	operatorID, err := kernel.UUIDFromString(req.OperatorID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterShipmentCommand(
		req.CargoCode, clientID, operatorID,
		req.Origin, req.Destination,
		req.DepartureAt, req.ForecastAt,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	registered, err := s.commands.RegisterShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentToResponse(registered))
}

// GetShipment handles GET /api/v1/tracking/:codigoCarga - the public lookup
// customers use to track their cargo.
func (s *Server) GetShipment(ctx echo.Context) error {
	query, err := queries.NewGetShipmentQuery(ctx.Param("codigoCarga"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.queries.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentDetails handles GET /api/v1/tracking/:codigoCarga/detalhes.
func (s *Server) GetShipmentDetails(ctx echo.Context) error {
	query, err := queries.NewGetShipmentDetailsQuery(ctx.Param("codigoCarga"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.queries.GetShipmentDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListShipments handles GET /api/v1/tracking - filtered, sorted pages.
func (s *Server) ListShipments(ctx echo.Context) error {
	filters, err := listFiltersFromQuery(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := intQueryParam(ctx, "page")
	if err != nil {
		return badRequest(ctx, "page deve ser um número inteiro")
	}
	pageSize, err := intQueryParam(ctx, "pageSize")
	if err != nil {
		return badRequest(ctx, "pageSize deve ser um número inteiro")
	}

	sortDesc := ctx.QueryParam("sortDir") != "asc"

	query, err := queries.NewListShipmentsQuery(filters, page, pageSize, ctx.QueryParam("sortBy"), sortDesc)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.queries.ListShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentsByStatus handles GET /api/v1/tracking/status/:status.
func (s *Server) GetShipmentsByStatus(ctx echo.Context) error {
	query, err := queries.NewGetShipmentsByStatusQuery(ctx.Param("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.queries.GetShipmentsByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /api/v1/tracking/:codigoCarga/status - moves a
// cargo through its lifecycle and appends the movement to the ledger.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "corpo da requisição inválido")
	}

	cmd, err := commands.NewUpdateStatusCommand(ctx.Param("codigoCarga"), req.Status, req.Location, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.commands.UpdateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentToResponse(updated))
}

// UpdateLocation handles PATCH /api/v1/tracking/:codigoCarga/localizacao -
// reports where the cargo is without changing its status.
func (s *Server) UpdateLocation(ctx echo.Context) error {
	var req updateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "corpo da requisição inválido")
	}

	cmd, err := commands.NewUpdateLocationCommand(ctx.Param("codigoCarga"), req.Location)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.commands.UpdateLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentToResponse(updated))
}

// MarkDelivered handles POST /api/v1/tracking/:codigoCarga/entrega.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	cmd, err := commands.NewMarkDeliveredCommand(ctx.Param("codigoCarga"))
	if err != nil {
		return writeError(ctx, err)
	}

	delivered, err := s.commands.MarkDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentToResponse(delivered))
}

// CancelShipment handles DELETE /api/v1/tracking/:codigoCarga - the
// administrative override that calls a cargo off.
func (s *Server) CancelShipment(ctx echo.Context) error {
	cmd, err := commands.NewCancelShipmentCommand(ctx.Param("codigoCarga"))
	if err != nil {
		return writeError(ctx, err)
	}

	cancelled, err := s.commands.CancelShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentToResponse(cancelled))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// listFiltersFromQuery parses the optional listing filters. Dates accept
// RFC 3339 timestamps.
func listFiltersFromQuery(ctx echo.Context) (queries.ListShipmentsFilters, error) {
	filters := queries.ListShipmentsFilters{
		Status: ctx.QueryParam("status"),
	}

	if raw := ctx.QueryParam("clienteId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return queries.ListShipmentsFilters{}, err
		}
		filters.ClientID = &id
	}

	if raw := ctx.QueryParam("operadorId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return queries.ListShipmentsFilters{}, err
		}
		filters.OperatorID = &id
	}

	var err error
	if filters.DepartureFrom, err = timeQueryParam(ctx, "dataSaidaInicio"); err != nil {
		return queries.ListShipmentsFilters{}, err
	}
	if filters.DepartureTo, err = timeQueryParam(ctx, "dataSaidaFim"); err != nil {
		return queries.ListShipmentsFilters{}, err
	}
	if filters.ForecastFrom, err = timeQueryParam(ctx, "previsaoInicio"); err != nil {
		return queries.ListShipmentsFilters{}, err
	}
	if filters.ForecastTo, err = timeQueryParam(ctx, "previsaoFim"); err != nil {
		return queries.ListShipmentsFilters{}, err
	}

	return filters, nil
}

func timeQueryParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &parsed, nil
}
