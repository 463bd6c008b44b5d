package auth

import (
	"time"

	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
)

// DefaultTokenTTL is how long an issued token stays valid when no TTL is
// configured.
const DefaultTokenTTL = 24 * time.Hour

// Claims carries the operator identity inside a signed token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWTIssuer implements the TokenIssuer port with HS256-signed JWTs and also
// verifies incoming tokens for the HTTP middleware.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTIssuer creates an issuer signing with the given secret. The secret
// must not be empty; a non-positive ttl falls back to the default.
func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &JWTIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue mints a signed token for the operator carrying its id, email and role.
func (i *JWTIssuer) Issue(op *operator.Operator) (string, time.Time, error) {
	if err := op.Validate(); err != nil {
		return "", time.Time{}, err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   op.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: op.Email(),
		Role:  op.Role().String(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify parses and validates a token, returning its claims. Expired,
// malformed or wrongly signed tokens yield an unauthorized error.
func (i *JWTIssuer) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.NewUnauthorizedError("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errs.NewUnauthorizedError("token inválido ou expirado")
	}

	return claims, nil
}
