package queries_test

import (
	"testing"

	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/domain/model/delivery"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveriesQuery_NoFilters(t *testing.T) {
	_, err := queries.NewGetDeliveriesQuery("", nil, false)
	require.NoError(t, err)
}

func TestNewGetDeliveriesQuery_WithFilters(t *testing.T) {
	driverID := kernel.NewUUID()
	_, err := queries.NewGetDeliveriesQuery(delivery.StatusInProgress, &driverID, false)
	require.NoError(t, err)
}

func TestNewGetDeliveriesQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetDeliveriesQuery(delivery.Status("teleporting"), nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetDeliveriesQuery_InvalidDriverID(t *testing.T) {
	driverID := kernel.UUID{}
	_, err := queries.NewGetDeliveriesQuery("", &driverID, false)
	require.Error(t, err)
}
