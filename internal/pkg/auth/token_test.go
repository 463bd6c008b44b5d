package auth_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/pkg/auth"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOperator(t *testing.T) *operator.Operator {
	t.Helper()
	op, err := operator.NewOperator(
		kernel.NewUUID(), "Maria Silva", "maria@empresa.com.br",
		"$2a$10$fakehashfakehashfakehash", operator.RoleAdmin,
	)
	require.NoError(t, err)
	return op
}

func TestJWTIssuer_IssueAndVerify(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	op := testOperator(t)
	token, expiresAt, err := issuer.Issue(op)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, op.ID().String(), claims.Subject)
	assert.Equal(t, "maria@empresa.com.br", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestJWTIssuer_Verify_WrongSecret(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("secret-a", time.Hour)
	require.NoError(t, err)
	other, err := auth.NewJWTIssuer("secret-b", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Issue(testOperator(t))
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.Error(t, err)

	var unauthorizedErr *errs.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorizedErr)
}

func TestJWTIssuer_Verify_ExpiredToken(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("test-secret", time.Nanosecond)
	require.NoError(t, err)

	token, _, err := issuer.Issue(testOperator(t))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = issuer.Verify(token)
	require.Error(t, err)
}

func TestJWTIssuer_Verify_Garbage(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Verify("not-a-token")
	require.Error(t, err)
}

func TestJWTIssuer_Issue_NotConstructedOperator(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	_, _, err = issuer.Issue(&operator.Operator{})
	require.Error(t, err)
	assert.ErrorIs(t, err, operator.ErrOperatorIsNotConstructed)
}

func TestNewJWTIssuer_RequiresSecret(t *testing.T) {
	_, err := auth.NewJWTIssuer("", time.Hour)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewJWTIssuer_DefaultTTL(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("test-secret", 0)
	require.NoError(t, err)

	_, expiresAt, err := issuer.Issue(testOperator(t))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(auth.DefaultTokenTTL), expiresAt, time.Minute)
}
