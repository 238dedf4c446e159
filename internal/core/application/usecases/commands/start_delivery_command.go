package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents a driver starting a delivery run at a
// given location.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start a delivery.
func NewStartDeliveryCommand(deliveryID kernel.UUID, location kernel.GeoPoint) (StartDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return StartDeliveryCommand{}, err
	}
	if err := location.Validate(); err != nil {
		return StartDeliveryCommand{}, err
	}

	return StartDeliveryCommand{
		deliveryID: deliveryID,
		location:   location,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to start.
func (c StartDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Location returns the starting location.
func (c StartDeliveryCommand) Location() kernel.GeoPoint {
	return c.location
}

// StartDeliveryCommandHandler starts a delivery run. The delivery moves to
// in_progress and the consolidation to in_transit with a history entry
// carrying the start location, all in one transaction. The start
// notification is queued for the consolidation creator.
type StartDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	fanout     services.NotificationFanout
}

// NewStartDeliveryCommandHandler creates a handler for delivery start
// operations.
func NewStartDeliveryCommandHandler(uowFactory DeliveryUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		fanout:     services.NewNotificationFanout(),
	}
}

// Handle processes the start. Starting a delivery that is already in
// progress or not in assigned status fails with an InvalidStateError.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	run, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	now := time.Now()
	location := cmd.Location()
	if err = run.Start(location, now); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, run); err != nil {
		return err
	}

	consolidationRepo := uow.ConsolidationRepository()
	aggregate, err := consolidationRepo.Get(ctx, run.ConsolidationID())
	if err != nil {
		return err
	}
	if err = aggregate.ChangeStatus(consolidation.StatusInTransit, "Delivery started", &location, now); err != nil {
		return err
	}
	if err = consolidationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	notifications, err := h.fanout.DeliveryStarted(aggregate)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, notifications); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
