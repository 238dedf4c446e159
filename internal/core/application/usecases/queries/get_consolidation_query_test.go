package queries_test

import (
	"testing"

	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetConsolidationQueryByID_Valid(t *testing.T) {
	query, err := queries.NewGetConsolidationQueryByID(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetConsolidationQueryByID_EmptyID(t *testing.T) {
	_, err := queries.NewGetConsolidationQueryByID(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetConsolidationQueryByReferenceCode_Empty(t *testing.T) {
	_, err := queries.NewGetConsolidationQueryByReferenceCode("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetConsolidationQueryByTrackingNumber_Empty(t *testing.T) {
	_, err := queries.NewGetConsolidationQueryByTrackingNumber("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetConsolidationQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetConsolidationQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetConsolidationQueryIsNotConstructed)
}
