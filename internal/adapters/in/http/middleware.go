package http

import (
	"net/http"
	"strings"

	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "operatorClaims"

// TokenVerifier validates bearer tokens and returns the claims they carry.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// requireAuth rejects requests without a valid bearer token and stores the
// verified claims on the echo context for downstream handlers.
func requireAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "token de autenticação ausente",
				})
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "token inválido ou expirado",
				})
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// requireRole rejects authenticated requests whose token does not carry the
// given role. Must run after requireAuth.
func requireRole(role operator.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := ctx.Get(claimsContextKey).(*auth.Claims)
			if !ok || claims.Role != role.String() {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "acesso restrito",
				})
			}
			return next(ctx)
		}
	}
}
