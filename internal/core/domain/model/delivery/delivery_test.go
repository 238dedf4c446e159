package delivery_test

import (
	"testing"
	"time"

	"consolidation/internal/core/domain/model/delivery"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignedDelivery(t *testing.T, now time.Time) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	t.Run("should start out assigned with no timestamps", func(t *testing.T) {
		d := assignedDelivery(t, now)

		assert.Equal(t, delivery.StatusAssigned, d.Status())
		assert.Nil(t, d.StartTime())
		assert.Nil(t, d.EndTime())
		assert.Empty(t, d.LocationHistory())
	})

	t.Run("should fail without a driver", func(t *testing.T) {
		var driverID kernel.UUID
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), driverID, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDeliveryStart(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	point, _ := kernel.NewGeoPoint(52.52, 13.405, "Depot")

	t.Run("should record start time, location and a ping", func(t *testing.T) {
		d := assignedDelivery(t, now)
		startAt := now.Add(time.Minute)

		err := d.Start(point, startAt)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInProgress, d.Status())
		require.NotNil(t, d.StartTime())
		assert.Equal(t, startAt, *d.StartTime())
		require.NotNil(t, d.StartLocation())
		assert.True(t, d.StartLocation().IsEqual(point))
		require.NotNil(t, d.CurrentLocation())
		require.Len(t, d.LocationHistory(), 1)
	})

	t.Run("should fail when already in progress", func(t *testing.T) {
		d := assignedDelivery(t, now)
		require.NoError(t, d.Start(point, now))

		err := d.Start(point, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.ErrorContains(t, err, "already in progress")
	})

	t.Run("should fail when completed", func(t *testing.T) {
		d := assignedDelivery(t, now)
		require.NoError(t, d.Start(point, now))
		require.NoError(t, d.End(point, "", now))

		err := d.Start(point, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestDeliveryEnd(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	start, _ := kernel.NewGeoPoint(52.52, 13.405, "Depot")
	dest, _ := kernel.NewGeoPoint(52.53, 13.42, "Customer")

	t.Run("should record end time, location and notes", func(t *testing.T) {
		d := assignedDelivery(t, now)
		require.NoError(t, d.Start(start, now))
		endAt := now.Add(2 * time.Hour)

		err := d.End(dest, "left at the door", endAt)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusCompleted, d.Status())
		require.NotNil(t, d.EndTime())
		assert.Equal(t, endAt, *d.EndTime())
		require.NotNil(t, d.ActualDeliveryTime())
		require.NotNil(t, d.EndLocation())
		assert.True(t, d.EndLocation().IsEqual(dest))
		assert.Equal(t, "left at the door", d.Notes())
		assert.Len(t, d.LocationHistory(), 2)
	})

	t.Run("should fail when not in progress", func(t *testing.T) {
		d := assignedDelivery(t, now)

		err := d.End(dest, "", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.ErrorContains(t, err, "not in progress")
	})
}

func TestDeliveryUpdateLocation(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	start, _ := kernel.NewGeoPoint(52.52, 13.405, "Depot")

	t.Run("should append pings in order while in progress", func(t *testing.T) {
		d := assignedDelivery(t, now)
		require.NoError(t, d.Start(start, now))

		for i := 1; i <= 3; i++ {
			point, _ := kernel.NewGeoPoint(52.52+float64(i)*0.01, 13.405, "")
			require.NoError(t, d.UpdateLocation(point, now.Add(time.Duration(i)*time.Minute)))
		}

		history := d.LocationHistory()
		require.Len(t, history, 4)
		for i := 1; i < len(history); i++ {
			assert.False(t, history[i].Timestamp.Before(history[i-1].Timestamp))
		}
		assert.True(t, d.CurrentLocation().Point.IsEqual(history[3].Point))
	})

	t.Run("should fail before the delivery starts", func(t *testing.T) {
		d := assignedDelivery(t, now)

		err := d.UpdateLocation(start, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestDeliveryStatus(t *testing.T) {
	t.Run("active statuses", func(t *testing.T) {
		assert.True(t, delivery.StatusAssigned.IsActive())
		assert.True(t, delivery.StatusInProgress.IsActive())
		assert.False(t, delivery.StatusCompleted.IsActive())
		assert.False(t, delivery.StatusCancelled.IsActive())
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		require.Error(t, delivery.Status("paused").Validate())
	})
}
