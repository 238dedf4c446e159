package commands_test

import (
	"testing"
	"time"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/delivery"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/notification"
	"consolidation/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assignedConsolidationWithDelivery(t *testing.T) (*consolidation.Consolidation, *delivery.Delivery) {
	t.Helper()
	now := time.Now()
	c := pendingConsolidation(t)
	driverID := kernel.NewUUID()
	require.NoError(t, c.AssignDriver(driverID, now))
	d, err := delivery.NewDelivery(kernel.NewUUID(), c.ID(), driverID, now)
	require.NoError(t, err)
	return c, d
}

func TestStartDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, run := assignedConsolidationWithDelivery(t)
	point, _ := kernel.NewGeoPoint(52.52, 13.405, "Depot")
	cmd, err := commands.NewStartDeliveryCommand(run.ID(), point)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	consolidationRepo := new(MockConsolidationRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, run).Return(nil).Once(),
		uow.On("ConsolidationRepository").Return(consolidationRepo).Once(),
		consolidationRepo.On("Get", mock.Anything, run.ConsolidationID()).Return(aggregate, nil).Once(),
		consolidationRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("[]notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, delivery.StatusInProgress, run.Status())
	require.Equal(t, consolidation.StatusInTransit, aggregate.Status())

	history := aggregate.History()
	last := history[len(history)-1]
	require.Equal(t, consolidation.StatusInTransit, last.Status)
	require.NotNil(t, last.Location)

	queued := outboxRepo.Calls[0].Arguments.Get(1).([]notification.Notification)
	require.Len(t, queued, 1)
	require.Equal(t, "Delivery Started", queued[0].Title())

	deliveryRepo.AssertExpectations(t)
	consolidationRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartDeliveryCommandHandler_Handle_AlreadyInProgress(t *testing.T) {
	ctx := t.Context()
	_, run := assignedConsolidationWithDelivery(t)
	point, _ := kernel.NewGeoPoint(52.52, 13.405, "Depot")
	require.NoError(t, run.Start(point, time.Now()))

	cmd, err := commands.NewStartDeliveryCommand(run.ID(), point)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}

func TestEndDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, run := assignedConsolidationWithDelivery(t)
	now := time.Now()
	start, _ := kernel.NewGeoPoint(52.52, 13.405, "Depot")
	dest, _ := kernel.NewGeoPoint(52.53, 13.42, "Customer")
	require.NoError(t, run.Start(start, now))
	require.NoError(t, aggregate.ChangeStatus(consolidation.StatusInTransit, "Delivery started", &start, now))

	cmd, err := commands.NewEndDeliveryCommand(run.ID(), dest, "left at the door")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	consolidationRepo := new(MockConsolidationRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, run).Return(nil).Once(),
		uow.On("ConsolidationRepository").Return(consolidationRepo).Once(),
		consolidationRepo.On("Get", mock.Anything, run.ConsolidationID()).Return(aggregate, nil).Once(),
		consolidationRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("[]notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEndDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, delivery.StatusCompleted, run.Status())
	require.Equal(t, consolidation.StatusDelivered, aggregate.Status())

	history := aggregate.History()
	last := history[len(history)-1]
	require.Equal(t, "left at the door", last.Note)

	queued := outboxRepo.Calls[0].Arguments.Get(1).([]notification.Notification)
	require.Len(t, queued, 1)
	require.Equal(t, "Delivery Completed", queued[0].Title())

	uow.AssertExpectations(t)
}

func TestEndDeliveryCommandHandler_Handle_NotInProgress(t *testing.T) {
	ctx := t.Context()
	_, run := assignedConsolidationWithDelivery(t)
	dest, _ := kernel.NewGeoPoint(52.53, 13.42, "Customer")

	cmd, err := commands.NewEndDeliveryCommand(run.ID(), dest, "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEndDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}
