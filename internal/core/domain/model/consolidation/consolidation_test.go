package consolidation_test

import (
	"testing"
	"time"

	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConsolidation(t *testing.T, now time.Time) *consolidation.Consolidation {
	t.Helper()
	c, err := consolidation.NewConsolidation(
		kernel.NewUUID(), "REF1", "MTN-20240115-0001", kernel.NewUUID(), nil, "", now)
	require.NoError(t, err)
	return c
}

func TestNewConsolidation(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	t.Run("should default to pending and record a creation history entry", func(t *testing.T) {
		c := validConsolidation(t, now)

		assert.Equal(t, consolidation.StatusPending, c.Status())
		require.Len(t, c.History(), 1)
		assert.Equal(t, consolidation.StatusPending, c.History()[0].Status)
		assert.Equal(t, "Consolidation created", c.History()[0].Note)
		assert.Equal(t, now, c.History()[0].Timestamp)
	})

	t.Run("should accept an explicit initial status", func(t *testing.T) {
		c, err := consolidation.NewConsolidation(
			kernel.NewUUID(), "REF2", "MTN-20240115-0002", kernel.NewUUID(), nil,
			consolidation.StatusProcessing, now)

		require.NoError(t, err)
		assert.Equal(t, consolidation.StatusProcessing, c.Status())
	})

	t.Run("should fail without reference code", func(t *testing.T) {
		_, err := consolidation.NewConsolidation(
			kernel.NewUUID(), "", "MTN-20240115-0001", kernel.NewUUID(), nil, "", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without creator", func(t *testing.T) {
		var createdBy kernel.UUID
		_, err := consolidation.NewConsolidation(
			kernel.NewUUID(), "REF1", "MTN-20240115-0001", createdBy, nil, "", now)

		require.Error(t, err)
	})

	t.Run("should fail on unknown initial status", func(t *testing.T) {
		_, err := consolidation.NewConsolidation(
			kernel.NewUUID(), "REF1", "MTN-20240115-0001", kernel.NewUUID(), nil,
			consolidation.Status("lost"), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestConsolidationChangeStatus(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	t.Run("should apply a legal transition and append exactly one entry", func(t *testing.T) {
		c := validConsolidation(t, now)
		later := now.Add(time.Hour)

		err := c.ChangeStatus(consolidation.StatusProcessing, "picked up", nil, later)

		require.NoError(t, err)
		assert.Equal(t, consolidation.StatusProcessing, c.Status())
		require.Len(t, c.History(), 2)
		last := c.History()[1]
		assert.Equal(t, consolidation.StatusProcessing, last.Status)
		assert.Equal(t, "picked up", last.Note)
		assert.False(t, last.Timestamp.Before(c.History()[0].Timestamp))
	})

	t.Run("should carry the location into the history entry", func(t *testing.T) {
		c := validConsolidation(t, now)
		require.NoError(t, c.ChangeStatus(consolidation.StatusProcessing, "", nil, now))
		require.NoError(t, c.AssignDriver(kernel.NewUUID(), now))
		point, _ := kernel.NewGeoPoint(52.52, 13.405, "Depot")

		err := c.ChangeStatus(consolidation.StatusInTransit, "Delivery started", &point, now)

		require.NoError(t, err)
		last := c.History()[len(c.History())-1]
		require.NotNil(t, last.Location)
		assert.True(t, last.Location.IsEqual(point))
	})

	t.Run("should reject an illegal transition", func(t *testing.T) {
		c := validConsolidation(t, now)

		err := c.ChangeStatus(consolidation.StatusDelivered, "", nil, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, consolidation.StatusPending, c.Status())
		assert.Len(t, c.History(), 1)
	})

	t.Run("should reject a self-transition", func(t *testing.T) {
		c := validConsolidation(t, now)

		err := c.ChangeStatus(consolidation.StatusPending, "", nil, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject any change out of a terminal status", func(t *testing.T) {
		c := validConsolidation(t, now)
		require.NoError(t, c.ChangeStatus(consolidation.StatusCancelled, "", nil, now))

		err := c.ChangeStatus(consolidation.StatusProcessing, "", nil, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestConsolidationAssignDriver(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	t.Run("should set driver, status and history", func(t *testing.T) {
		c := validConsolidation(t, now)
		driverID := kernel.NewUUID()

		err := c.AssignDriver(driverID, now)

		require.NoError(t, err)
		require.NotNil(t, c.AssignedDriver())
		assert.True(t, c.AssignedDriver().IsEqual(driverID))
		assert.Equal(t, consolidation.StatusAssignedToDriver, c.Status())
		last := c.History()[len(c.History())-1]
		assert.Equal(t, consolidation.StatusAssignedToDriver, last.Status)
		assert.Equal(t, "Driver assigned", last.Note)
	})

	t.Run("should allow reassignment while still assigned", func(t *testing.T) {
		c := validConsolidation(t, now)
		require.NoError(t, c.AssignDriver(kernel.NewUUID(), now))
		replacement := kernel.NewUUID()

		err := c.AssignDriver(replacement, now)

		require.NoError(t, err)
		assert.True(t, c.AssignedDriver().IsEqual(replacement))
	})

	t.Run("should refuse assignment once in transit", func(t *testing.T) {
		c := validConsolidation(t, now)
		require.NoError(t, c.AssignDriver(kernel.NewUUID(), now))
		require.NoError(t, c.ChangeStatus(consolidation.StatusInTransit, "", nil, now))

		err := c.AssignDriver(kernel.NewUUID(), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestConsolidationParcels(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	t.Run("adding the same parcel twice keeps one membership entry", func(t *testing.T) {
		c := validConsolidation(t, now)

		added, err := c.AddParcel("parcel-1", now)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = c.AddParcel("parcel-1", now)
		require.NoError(t, err)
		assert.False(t, added)

		assert.Equal(t, []string{"parcel-1"}, c.Parcels())
	})

	t.Run("removing an absent parcel is a no-op", func(t *testing.T) {
		c := validConsolidation(t, now)
		_, err := c.AddParcel("parcel-1", now)
		require.NoError(t, err)

		require.NoError(t, c.RemoveParcel("parcel-2", now))

		assert.Equal(t, []string{"parcel-1"}, c.Parcels())
	})

	t.Run("removing a member parcel shrinks the set", func(t *testing.T) {
		c := validConsolidation(t, now)
		_, _ = c.AddParcel("parcel-1", now)
		_, _ = c.AddParcel("parcel-2", now)

		require.NoError(t, c.RemoveParcel("parcel-1", now))

		assert.Equal(t, []string{"parcel-2"}, c.Parcels())
	})

	t.Run("adding an empty parcel id fails", func(t *testing.T) {
		c := validConsolidation(t, now)

		_, err := c.AddParcel("", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestStatusTable(t *testing.T) {
	t.Run("terminal statuses", func(t *testing.T) {
		assert.True(t, consolidation.StatusDelivered.IsTerminal())
		assert.True(t, consolidation.StatusCancelled.IsTerminal())
		assert.False(t, consolidation.StatusInTransit.IsTerminal())
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		require.Error(t, consolidation.Status("teleported").Validate())
	})

	t.Run("full happy path is legal", func(t *testing.T) {
		path := []consolidation.Status{
			consolidation.StatusProcessing,
			consolidation.StatusAssignedToDriver,
			consolidation.StatusInTransit,
			consolidation.StatusOutForDelivery,
			consolidation.StatusDelivered,
		}
		current := consolidation.StatusPending
		for _, next := range path {
			assert.True(t, current.CanTransitionTo(next), "%s -> %s", current, next)
			current = next
		}
	})
}
