package queries_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentDetailsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentDetailsQuery("CARGA-2024-001")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "CARGA-2024-001", query.CargoCode())
}

func TestNewGetShipmentDetailsQuery_EmptyCargoCode(t *testing.T) {
	_, err := queries.NewGetShipmentDetailsQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetShipmentDetailsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentDetailsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentDetailsQueryIsNotConstructed)
}
