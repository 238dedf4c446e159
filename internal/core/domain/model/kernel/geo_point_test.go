package kernel_test

import (
	"testing"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(52.52, 13.405, "Berlin")

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InEpsilon(t, 52.52, point.Latitude(), 1e-9)
		assert.InEpsilon(t, 13.405, point.Longitude(), 1e-9)
		assert.Equal(t, "Berlin", point.Address())
	})

	t.Run("should allow empty address", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(0, 0, "")

		require.NoError(t, err)
		assert.Empty(t, point.Address())
	})

	t.Run("should fail on latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail on longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPointValidate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGeoPointIsEqual(t *testing.T) {
	t.Run("should compare coordinates and address", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(1.5, 2.5, "Depot")
		b, _ := kernel.NewGeoPoint(1.5, 2.5, "Depot")
		c, _ := kernel.NewGeoPoint(1.5, 2.5, "Gate 3")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
