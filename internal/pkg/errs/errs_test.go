package errs_test

import (
	"errors"
	"testing"

	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("codigoCarga", "CRG-001")

		assert.Equal(t, "codigoCarga", err.ParamName)
		assert.Equal(t, "CRG-001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: CRG-001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("clienteId", "123", cause)

		assert.Equal(t, "clienteId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: clienteId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("page", 0, 1, 1000)

		assert.Equal(t, "page", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is page, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("codigoCarga")

	assert.Equal(t, "codigoCarga", err.ParamName)
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is required: codigoCarga", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("cargo code CRG-001 already exists")

		assert.Equal(t, "conflict: cargo code CRG-001 already exists", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violated")
		err := errs.NewConflictErrorWithCause("duplicate email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: duplicate email (cause: unique constraint violated)", err.Error())
	})
}

func TestInvalidStatusTransitionError(t *testing.T) {
	err := errs.NewInvalidStatusTransitionError("ENTREGUE", "EM_TRANSITO")

	assert.Equal(t, "ENTREGUE", err.From)
	assert.Equal(t, "EM_TRANSITO", err.To)
	assert.Equal(t, "invalid status transition: cannot move from ENTREGUE to EM_TRANSITO", err.Error())
	assert.Equal(t, errs.ErrInvalidStatusTransition, err.Unwrap())
}

func TestUnprocessableEntityError(t *testing.T) {
	err := errs.NewUnprocessableEntityError("shipment already delivered")

	assert.Equal(t, "unprocessable entity: shipment already delivered", err.Error())
	assert.Equal(t, errs.ErrUnprocessableEntity, err.Unwrap())
}

func TestExternalServiceError(t *testing.T) {
	cause := errors.New("HTTP 503: service unavailable")
	err := errs.NewExternalServiceError("Nominatim", cause)

	assert.Equal(t, "Nominatim", err.Service)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "external service error: Nominatim (cause: HTTP 503: service unavailable)", err.Error())
	assert.Equal(t, errs.ErrExternalService, err.Unwrap())
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("invalid credentials")

	assert.Equal(t, "unauthorized: invalid credentials", err.Error())
	assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("id", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewConflictError("dup"), errs.ErrConflict)
		require.ErrorIs(t,
			errs.NewInvalidStatusTransitionError("INICIADA", "ENTREGUE"),
			errs.ErrInvalidStatusTransition)
		require.ErrorIs(t, errs.NewUnprocessableEntityError("bad dates"), errs.ErrUnprocessableEntity)
		require.ErrorIs(t, errs.NewExternalServiceError("Nominatim", errors.New("x")), errs.ErrExternalService)
		require.ErrorIs(t, errs.NewUnauthorizedError("nope"), errs.ErrUnauthorized)
	})

	t.Run("errors.As extracts transition details", func(t *testing.T) {
		var transitionErr *errs.InvalidStatusTransitionError
		err := errs.NewInvalidStatusTransitionError("INICIADA", "ENTREGUE")
		require.ErrorAs(t, error(err), &transitionErr)
		assert.Equal(t, "INICIADA", transitionErr.From)
		assert.Equal(t, "ENTREGUE", transitionErr.To)
	})
}
