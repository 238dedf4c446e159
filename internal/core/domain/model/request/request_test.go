package request_test

import (
	"testing"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/request"
	"consolidation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittedRequest(t *testing.T, now time.Time) *request.Request {
	t.Helper()
	r, err := request.NewRequest(
		kernel.NewUUID(), "REQ-20240302-0001", kernel.NewUUID(), "two boxes", now)
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	now := time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)

	t.Run("should start out submitted", func(t *testing.T) {
		r := submittedRequest(t, now)

		assert.Equal(t, request.StatusSubmitted, r.Status())
		assert.Equal(t, "two boxes", r.Notes())
		assert.Nil(t, r.ProcessedBy())
		assert.Nil(t, r.ConsolidationID())
	})

	t.Run("should fail without a customer", func(t *testing.T) {
		var customerID kernel.UUID
		_, err := request.NewRequest(
			kernel.NewUUID(), "REQ-20240302-0001", customerID, "", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without a request number", func(t *testing.T) {
		_, err := request.NewRequest(
			kernel.NewUUID(), "", kernel.NewUUID(), "", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRequestApprove(t *testing.T) {
	now := time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)

	t.Run("should record the processor and time", func(t *testing.T) {
		r := submittedRequest(t, now)
		processor := kernel.NewUUID()

		err := r.Approve(processor, nil, now.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, request.StatusApproved, r.Status())
		require.NotNil(t, r.ProcessedBy())
		assert.True(t, r.ProcessedBy().IsEqual(processor))
		require.NotNil(t, r.ProcessedAt())
		assert.Equal(t, now.Add(time.Hour), *r.ProcessedAt())
	})

	t.Run("should keep an early consolidation link when given", func(t *testing.T) {
		r := submittedRequest(t, now)
		consolidationID := kernel.NewUUID()

		require.NoError(t, r.Approve(kernel.NewUUID(), &consolidationID, now))

		require.NotNil(t, r.ConsolidationID())
		assert.True(t, r.ConsolidationID().IsEqual(consolidationID))
	})

	t.Run("should fail on an already approved request", func(t *testing.T) {
		r := submittedRequest(t, now)
		require.NoError(t, r.Approve(kernel.NewUUID(), nil, now))

		err := r.Approve(kernel.NewUUID(), nil, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should fail without a processor", func(t *testing.T) {
		r := submittedRequest(t, now)
		var processor kernel.UUID

		err := r.Approve(processor, nil, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRequestReject(t *testing.T) {
	now := time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)

	t.Run("should record the reason", func(t *testing.T) {
		r := submittedRequest(t, now)

		err := r.Reject(kernel.NewUUID(), "parcels never arrived", now)

		require.NoError(t, err)
		assert.Equal(t, request.StatusRejected, r.Status())
		assert.Equal(t, "parcels never arrived", r.RejectionReason())
	})

	t.Run("should require a reason", func(t *testing.T) {
		r := submittedRequest(t, now)

		err := r.Reject(kernel.NewUUID(), "", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, request.StatusSubmitted, r.Status())
	})

	t.Run("should fail on an approved request", func(t *testing.T) {
		r := submittedRequest(t, now)
		require.NoError(t, r.Approve(kernel.NewUUID(), nil, now))

		err := r.Reject(kernel.NewUUID(), "too late", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRequestProcess(t *testing.T) {
	now := time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)

	t.Run("should link the consolidation", func(t *testing.T) {
		r := submittedRequest(t, now)
		require.NoError(t, r.Approve(kernel.NewUUID(), nil, now))
		consolidationID := kernel.NewUUID()

		err := r.Process(kernel.NewUUID(), consolidationID, now)

		require.NoError(t, err)
		assert.Equal(t, request.StatusProcessed, r.Status())
		require.NotNil(t, r.ConsolidationID())
		assert.True(t, r.ConsolidationID().IsEqual(consolidationID))
	})

	t.Run("should fail on a submitted request", func(t *testing.T) {
		r := submittedRequest(t, now)

		err := r.Process(kernel.NewUUID(), kernel.NewUUID(), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should require a consolidation", func(t *testing.T) {
		r := submittedRequest(t, now)
		require.NoError(t, r.Approve(kernel.NewUUID(), nil, now))
		var consolidationID kernel.UUID

		err := r.Process(kernel.NewUUID(), consolidationID, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRequestChangeStatus(t *testing.T) {
	now := time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)

	t.Run("should approve by name", func(t *testing.T) {
		r := submittedRequest(t, now)

		require.NoError(t, r.ChangeStatus(request.StatusApproved, kernel.NewUUID(), now))
		assert.Equal(t, request.StatusApproved, r.Status())
	})

	t.Run("should refuse rejecting without a reason", func(t *testing.T) {
		r := submittedRequest(t, now)

		err := r.ChangeStatus(request.StatusRejected, kernel.NewUUID(), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should refuse an unknown status", func(t *testing.T) {
		r := submittedRequest(t, now)

		err := r.ChangeStatus(request.Status("archived"), kernel.NewUUID(), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRequestStatusTable(t *testing.T) {
	t.Run("terminal statuses", func(t *testing.T) {
		assert.False(t, request.StatusSubmitted.IsTerminal())
		assert.False(t, request.StatusApproved.IsTerminal())
		assert.True(t, request.StatusRejected.IsTerminal())
		assert.True(t, request.StatusProcessed.IsTerminal())
	})

	t.Run("allowed transitions", func(t *testing.T) {
		assert.True(t, request.StatusSubmitted.CanTransitionTo(request.StatusApproved))
		assert.True(t, request.StatusSubmitted.CanTransitionTo(request.StatusRejected))
		assert.True(t, request.StatusApproved.CanTransitionTo(request.StatusProcessed))
		assert.False(t, request.StatusSubmitted.CanTransitionTo(request.StatusProcessed))
		assert.False(t, request.StatusRejected.CanTransitionTo(request.StatusApproved))
	})
}
