package history_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/history"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, text string) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(text)
	require.NoError(t, err)
	return loc
}

func TestNewRecord(t *testing.T) {
	t.Run("should create a ledger entry", func(t *testing.T) {
		occurredAt := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

		r, err := history.NewRecord(
			kernel.NewUUID(),
			kernel.NewUUID(),
			shipment.EmTransito,
			mustLocation(t, "Registro, SP"),
			"Parada para pesagem",
			occurredAt,
		)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, shipment.EmTransito, r.Status())
		assert.Equal(t, "Registro, SP", r.Location().Text())
		assert.Equal(t, "Parada para pesagem", r.Notes())
		assert.Equal(t, occurredAt, r.OccurredAt())
	})

	t.Run("should stamp the current time when occurredAt is zero", func(t *testing.T) {
		r, err := history.NewRecord(
			kernel.NewUUID(),
			kernel.NewUUID(),
			shipment.Iniciada,
			mustLocation(t, "Santos"),
			"",
			time.Time{},
		)

		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), r.OccurredAt(), time.Minute)
	})

	t.Run("should reject an invalid shipment identifier", func(t *testing.T) {
		_, err := history.NewRecord(
			kernel.NewUUID(),
			kernel.UUID{},
			shipment.Iniciada,
			mustLocation(t, "Santos"),
			"",
			time.Time{},
		)

		require.Error(t, err)
	})

	t.Run("should reject an unrecognized status", func(t *testing.T) {
		_, err := history.NewRecord(
			kernel.NewUUID(),
			kernel.NewUUID(),
			shipment.Status("PENDENTE"),
			mustLocation(t, "Santos"),
			"",
			time.Time{},
		)

		require.Error(t, err)
	})

	t.Run("should reject an unconstructed location", func(t *testing.T) {
		_, err := history.NewRecord(
			kernel.NewUUID(),
			kernel.NewUUID(),
			shipment.Iniciada,
			kernel.Location{},
			"",
			time.Time{},
		)

		require.Error(t, err)
	})
}

func TestRestoreRecord(t *testing.T) {
	t.Run("should rebuild a record from persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		occurredAt := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

		r, err := history.RestoreRecord(
			id,
			kernel.NewUUID(),
			shipment.Entregue,
			mustLocation(t, "Manaus, AM"),
			"Carga entregue no destino",
			occurredAt,
		)

		require.NoError(t, err)
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, occurredAt, r.OccurredAt())
	})
}

func TestRecord_Validate(t *testing.T) {
	var r history.Record
	require.ErrorIs(t, r.Validate(), history.ErrRecordIsNotConstructed)

	var nilRecord *history.Record
	require.ErrorIs(t, nilRecord.Validate(), history.ErrRecordIsNotConstructed)
}

func TestRecord_IsEqual(t *testing.T) {
	a, err := history.NewRecord(
		kernel.NewUUID(), kernel.NewUUID(), shipment.Iniciada, mustLocation(t, "Santos"), "", time.Time{})
	require.NoError(t, err)
	b, err := history.NewRecord(
		kernel.NewUUID(), kernel.NewUUID(), shipment.Iniciada, mustLocation(t, "Santos"), "", time.Time{})
	require.NoError(t, err)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
