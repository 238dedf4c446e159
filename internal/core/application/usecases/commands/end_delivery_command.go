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

var ErrEndDeliveryCommandIsNotConstructed = errors.New(
	"EndDeliveryCommand must be created via NewEndDeliveryCommand constructor",
)

// EndDeliveryCommand represents a driver completing a delivery run at a
// given location, optionally leaving notes.
type EndDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	location   kernel.GeoPoint
	notes      string

	guard guard.ConstructorGuard
}

// NewEndDeliveryCommand creates a command to complete a delivery.
func NewEndDeliveryCommand(deliveryID kernel.UUID, location kernel.GeoPoint, notes string) (EndDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return EndDeliveryCommand{}, err
	}
	if err := location.Validate(); err != nil {
		return EndDeliveryCommand{}, err
	}

	return EndDeliveryCommand{
		deliveryID: deliveryID,
		location:   location,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EndDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrEndDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to complete.
func (c EndDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Location returns the completion location.
func (c EndDeliveryCommand) Location() kernel.GeoPoint {
	return c.location
}

// Notes returns the optional completion notes.
func (c EndDeliveryCommand) Notes() string {
	return c.notes
}

// EndDeliveryCommandHandler completes a delivery run. The delivery moves to
// completed and the consolidation to delivered with a history entry carrying
// the final location, all in one transaction. The completion notification is
// queued for the consolidation creator.
type EndDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	fanout     services.NotificationFanout
}

// NewEndDeliveryCommandHandler creates a handler for delivery completion
// operations.
func NewEndDeliveryCommandHandler(uowFactory DeliveryUoWFactory) EndDeliveryCommandHandler {
	return EndDeliveryCommandHandler{
		uowFactory: uowFactory,
		fanout:     services.NewNotificationFanout(),
	}
}

// Handle processes the completion. Ending a delivery that is not in progress
// fails with an InvalidStateError.
func (h *EndDeliveryCommandHandler) Handle(ctx context.Context, cmd EndDeliveryCommand) error {
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
	if err = run.End(location, cmd.Notes(), now); err != nil {
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

	note := cmd.Notes()
	if note == "" {
		note = "Delivery completed"
	}
	if err = aggregate.ChangeStatus(consolidation.StatusDelivered, note, &location, now); err != nil {
		return err
	}
	if err = consolidationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	notifications, err := h.fanout.DeliveryCompleted(aggregate)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, notifications); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
