package ports

import (
	"time"

	"cargotracker/internal/core/domain/model/operator"
)

// PasswordHasher hashes plaintext passwords and verifies candidates against
// stored hashes. Comparison failures return an error; the caller decides how
// to surface it.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// TokenIssuer mints signed authentication tokens for operators.
type TokenIssuer interface {
	Issue(op *operator.Operator) (token string, expiresAt time.Time, err error)
}
