package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/pkg/auth"
	"cargotracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (v stubVerifier) Verify(string) (*auth.Claims, error) {
	return v.claims, v.err
}

func invokeMiddleware(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	nextCalled := false
	handler := mw(func(echo.Context) error {
		nextCalled = true
		return nil
	})
	require.NoError(t, handler(ctx))

	return rec, nextCalled
}

func Test_RequireAuth_RejectsMissingHeader(t *testing.T) {
	mw := requireAuth(stubVerifier{})

	rec, nextCalled := invokeMiddleware(t, mw, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func Test_RequireAuth_RejectsNonBearerHeader(t *testing.T) {
	mw := requireAuth(stubVerifier{})

	rec, nextCalled := invokeMiddleware(t, mw, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func Test_RequireAuth_RejectsInvalidToken(t *testing.T) {
	mw := requireAuth(stubVerifier{err: errs.NewUnauthorizedError("token inválido ou expirado")})

	rec, nextCalled := invokeMiddleware(t, mw, "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func Test_RequireAuth_StoresClaimsAndCallsNext(t *testing.T) {
	claims := &auth.Claims{Email: "maria@transportes.com", Role: operator.RoleOperator.String()}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var stored *auth.Claims
	handler := requireAuth(stubVerifier{claims: claims})(func(c echo.Context) error {
		stored, _ = c.Get(claimsContextKey).(*auth.Claims)
		return nil
	})
	require.NoError(t, handler(ctx))

	require.NotNil(t, stored)
	assert.Equal(t, "maria@transportes.com", stored.Email)
}

func Test_RequireRole_RejectsMissingClaims(t *testing.T) {
	mw := requireRole(operator.RoleAdmin)

	rec, nextCalled := invokeMiddleware(t, mw, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}

func Test_RequireRole_RejectsWrongRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(claimsContextKey, &auth.Claims{Role: operator.RoleOperator.String()})

	handler := requireRole(operator.RoleAdmin)(func(echo.Context) error {
		t.Fatal("next should not run")
		return nil
	})
	require.NoError(t, handler(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func Test_RequireRole_AllowsMatchingRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(claimsContextKey, &auth.Claims{Role: operator.RoleAdmin.String()})

	nextCalled := false
	handler := requireRole(operator.RoleAdmin)(func(echo.Context) error {
		nextCalled = true
		return nil
	})
	require.NoError(t, handler(ctx))

	assert.True(t, nextCalled)
}
