package shipment_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, text string) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(text)
	require.NoError(t, err)
	return loc
}

func validShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		"CARGA-001",
		kernel.NewUUID(),
		kernel.NewUUID(),
		mustLocation(t, "Porto de Santos, SP"),
		mustLocation(t, "Manaus, AM"),
		departure,
		departure.Add(5*24*time.Hour),
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("should create a shipment in Iniciada status at its origin", func(t *testing.T) {
		origin := mustLocation(t, "Porto de Santos, SP")
		departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

		s, err := shipment.NewShipment(
			kernel.NewUUID(),
			"CARGA-001",
			kernel.NewUUID(),
			kernel.NewUUID(),
			origin,
			mustLocation(t, "Manaus, AM"),
			departure,
			departure.Add(5*24*time.Hour),
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Iniciada, s.Status())
		assert.Equal(t, "CARGA-001", s.CargoCode())
		assert.Equal(t, origin.Text(), s.CurrentLocation().Text())
		assert.WithinDuration(t, time.Now().UTC(), s.CreatedAt(), time.Minute)
		assert.Equal(t, s.CreatedAt(), s.UpdatedAt())
	})

	t.Run("should trim the cargo code", func(t *testing.T) {
		departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

		s, err := shipment.NewShipment(
			kernel.NewUUID(),
			"  CARGA-002  ",
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustLocation(t, "Santos"),
			mustLocation(t, "Manaus"),
			departure,
			departure,
		)

		require.NoError(t, err)
		assert.Equal(t, "CARGA-002", s.CargoCode())
	})

	t.Run("should reject a blank cargo code", func(t *testing.T) {
		departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

		_, err := shipment.NewShipment(
			kernel.NewUUID(),
			"   ",
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustLocation(t, "Santos"),
			mustLocation(t, "Manaus"),
			departure,
			departure,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid client and operator identifiers", func(t *testing.T) {
		departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

		_, err := shipment.NewShipment(
			kernel.NewUUID(),
			"CARGA-003",
			kernel.UUID{},
			kernel.UUID{},
			mustLocation(t, "Santos"),
			mustLocation(t, "Manaus"),
			departure,
			departure,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "clientID")
		assert.Contains(t, err.Error(), "operatorID")
	})

	t.Run("should reject a forecast before the departure date", func(t *testing.T) {
		departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

		_, err := shipment.NewShipment(
			kernel.NewUUID(),
			"CARGA-004",
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustLocation(t, "Santos"),
			mustLocation(t, "Manaus"),
			departure,
			departure.Add(-time.Hour),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnprocessableEntity)
		assert.Contains(t, err.Error(), "forecast")
	})

	t.Run("should accept a forecast equal to the departure date", func(t *testing.T) {
		departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

		_, err := shipment.NewShipment(
			kernel.NewUUID(),
			"CARGA-005",
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustLocation(t, "Santos"),
			mustLocation(t, "Manaus"),
			departure,
			departure,
		)

		require.NoError(t, err)
	})

	t.Run("should reject zero dates", func(t *testing.T) {
		_, err := shipment.NewShipment(
			kernel.NewUUID(),
			"CARGA-006",
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustLocation(t, "Santos"),
			mustLocation(t, "Manaus"),
			time.Time{},
			time.Time{},
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("should rebuild a shipment from persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		departure := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		createdAt := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

		s, err := shipment.RestoreShipment(
			id,
			"CARGA-010",
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustLocation(t, "Santos"),
			mustLocation(t, "Manaus"),
			mustLocation(t, "Brasília"),
			departure,
			departure.Add(48*time.Hour),
			shipment.EmTransito,
			createdAt,
			createdAt.Add(time.Hour),
		)

		require.NoError(t, err)
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, shipment.EmTransito, s.Status())
		assert.Equal(t, "Brasília", s.CurrentLocation().Text())
		assert.Equal(t, createdAt, s.CreatedAt())
	})

	t.Run("should reject an unrecognized persisted status", func(t *testing.T) {
		departure := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

		_, err := shipment.RestoreShipment(
			kernel.NewUUID(),
			"CARGA-011",
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustLocation(t, "Santos"),
			mustLocation(t, "Manaus"),
			mustLocation(t, "Santos"),
			departure,
			departure,
			shipment.Status("PENDENTE"),
			departure,
			departure,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_AdvanceTo(t *testing.T) {
	t.Run("should advance through the table and track the location", func(t *testing.T) {
		s := validShipment(t)
		checkpoint := mustLocation(t, "Registro, SP")

		err := s.AdvanceTo(shipment.EmTransito, checkpoint)

		require.NoError(t, err)
		assert.Equal(t, shipment.EmTransito, s.Status())
		assert.Equal(t, "Registro, SP", s.CurrentLocation().Text())
	})

	t.Run("should keep the current location when none is supplied", func(t *testing.T) {
		s := validShipment(t)
		before := s.CurrentLocation()

		err := s.AdvanceTo(shipment.EmTransito, kernel.Location{})

		require.NoError(t, err)
		assert.Equal(t, before.Text(), s.CurrentLocation().Text())
	})

	t.Run("should reject a forbidden transition and leave the shipment untouched", func(t *testing.T) {
		s := validShipment(t)

		err := s.AdvanceTo(shipment.Entregue, kernel.Location{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, shipment.Iniciada, s.Status())
	})
}

func TestShipment_UpdateLocation(t *testing.T) {
	t.Run("should move the cargo without changing the status", func(t *testing.T) {
		s := validShipment(t)
		require.NoError(t, s.AdvanceTo(shipment.EmTransito, kernel.Location{}))

		err := s.UpdateLocation(mustLocation(t, "Campinas, SP"))

		require.NoError(t, err)
		assert.Equal(t, shipment.EmTransito, s.Status())
		assert.Equal(t, "Campinas, SP", s.CurrentLocation().Text())
	})

	t.Run("should accept a positional report on a delivered shipment", func(t *testing.T) {
		s := validShipment(t)
		require.NoError(t, s.AdvanceTo(shipment.EmTransito, kernel.Location{}))
		require.NoError(t, s.Deliver())

		err := s.UpdateLocation(mustLocation(t, "Campinas, SP"))

		require.NoError(t, err)
		assert.Equal(t, shipment.Entregue, s.Status())
		assert.Equal(t, "Campinas, SP", s.CurrentLocation().Text())
	})

	t.Run("should reject an unconstructed location", func(t *testing.T) {
		s := validShipment(t)

		err := s.UpdateLocation(kernel.Location{})

		require.Error(t, err)
	})
}

func TestShipment_Deliver(t *testing.T) {
	t.Run("should deliver a shipment in transit and park it at the destination", func(t *testing.T) {
		s := validShipment(t)
		require.NoError(t, s.AdvanceTo(shipment.EmTransito, kernel.Location{}))

		err := s.Deliver()

		require.NoError(t, err)
		assert.Equal(t, shipment.Entregue, s.Status())
		assert.Equal(t, s.Destination().Text(), s.CurrentLocation().Text())
	})

	t.Run("should deliver a shipment in transshipment", func(t *testing.T) {
		s := validShipment(t)
		require.NoError(t, s.AdvanceTo(shipment.EmTransito, kernel.Location{}))
		require.NoError(t, s.AdvanceTo(shipment.Transbordo, kernel.Location{}))

		require.NoError(t, s.Deliver())
		assert.Equal(t, shipment.Entregue, s.Status())
	})

	t.Run("should report an already delivered shipment as unprocessable", func(t *testing.T) {
		s := validShipment(t)
		require.NoError(t, s.AdvanceTo(shipment.EmTransito, kernel.Location{}))
		require.NoError(t, s.Deliver())

		err := s.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnprocessableEntity)
		assert.Contains(t, err.Error(), "already delivered")
	})

	t.Run("should report a cancelled shipment as unprocessable", func(t *testing.T) {
		s := validShipment(t)
		require.NoError(t, s.Cancel())

		err := s.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnprocessableEntity)
		assert.Contains(t, err.Error(), "cancelled")
	})

	t.Run("should reject delivering straight from Iniciada as an invalid transition", func(t *testing.T) {
		s := validShipment(t)

		err := s.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, shipment.Iniciada, s.Status())
	})
}

func TestShipment_Cancel(t *testing.T) {
	t.Run("should cancel from any non-final status", func(t *testing.T) {
		s := validShipment(t)

		require.NoError(t, s.Cancel())
		assert.Equal(t, shipment.Cancelada, s.Status())
	})

	t.Run("should reject cancelling a delivered shipment", func(t *testing.T) {
		s := validShipment(t)
		require.NoError(t, s.AdvanceTo(shipment.EmTransito, kernel.Location{}))
		require.NoError(t, s.Deliver())

		err := s.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnprocessableEntity)
	})

	t.Run("should reject cancelling twice", func(t *testing.T) {
		s := validShipment(t)
		require.NoError(t, s.Cancel())

		err := s.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnprocessableEntity)
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("should reject a shipment not built by a constructor", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})

	t.Run("should reject a nil shipment", func(t *testing.T) {
		var s *shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_IsEqual(t *testing.T) {
	a := validShipment(t)
	b := validShipment(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
