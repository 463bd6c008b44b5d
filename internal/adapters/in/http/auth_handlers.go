package http

import (
	"net/http"

	"cargotracker/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/auth/login - authenticates an operator and
// returns a signed token. Unknown email and wrong password produce the same
// response so accounts cannot be enumerated.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "corpo da requisição inválido")
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	authToken, err := s.commands.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:     authToken.Token,
		ExpiresAt: authToken.ExpiresAt,
		Operator:  operatorToResponse(authToken.Operator),
	})
}
