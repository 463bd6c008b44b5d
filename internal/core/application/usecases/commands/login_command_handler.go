package commands

import (
	"context"
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

// invalidCredentialsMessage is deliberately the same for an unknown email
// and a wrong password, so login attempts cannot probe for accounts.
const invalidCredentialsMessage = "credenciais inválidas"

// AuthToken is the outcome of a successful login: a signed token, its
// expiry, and the authenticated operator.
type AuthToken struct {
	Token     string
	ExpiresAt time.Time
	Operator  *operator.Operator
}

// LoginCommandHandler authenticates operators. It looks the account up by
// email, verifies the password against the stored hash, and mints a signed
// token carrying the operator's identity and role.
type LoginCommandHandler struct {
	uowFactory OperatorUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

// NewLoginCommandHandler creates a handler for operator authentication.
func NewLoginCommandHandler(
	uowFactory OperatorUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle processes the authentication attempt.
// Returns an unauthorized error on unknown email or wrong password.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (AuthToken, error) {
	if err := cmd.Validate(); err != nil {
		return AuthToken{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthToken{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OperatorRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthToken{}, errs.NewUnauthorizedError(invalidCredentialsMessage)
		}
		return AuthToken{}, err
	}

	if err = h.hasher.Compare(aggregate.PasswordHash(), cmd.Password()); err != nil {
		return AuthToken{}, errs.NewUnauthorizedError(invalidCredentialsMessage)
	}

	token, expiresAt, err := h.issuer.Issue(aggregate)
	if err != nil {
		return AuthToken{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthToken{}, err
	}

	return AuthToken{
		Token:     token,
		ExpiresAt: expiresAt,
		Operator:  aggregate,
	}, nil
}
