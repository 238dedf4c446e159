package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/delivery"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to put a consolidation into the
// hands of a driver.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	consolidationID kernel.UUID
	driverID        kernel.UUID
	deliveryID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver. The delivery
// identifier is generated up front so the handler stays deterministic.
func NewAssignDriverCommand(consolidationID, driverID, deliveryID kernel.UUID) (AssignDriverCommand, error) {
	if err := consolidationID.Validate(); err != nil {
		return AssignDriverCommand{}, errs.NewValueIsRequiredErrorWithCause("consolidationId", err)
	}
	if err := driverID.Validate(); err != nil {
		return AssignDriverCommand{}, errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	if err := deliveryID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		consolidationID: consolidationID,
		driverID:        driverID,
		deliveryID:      deliveryID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// ConsolidationID returns the consolidation getting a driver.
func (c AssignDriverCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// DriverID returns the driver being assigned.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// DeliveryID returns the identifier for the delivery record created by the
// assignment.
func (c AssignDriverCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// AssignDriverCommandHandler assigns a driver to a consolidation and creates
// the matching delivery record in the same transaction, then queues the
// assignment notifications.
type AssignDriverCommandHandler struct {
	uowFactory DeliveryUoWFactory
	fanout     services.NotificationFanout
}

// NewAssignDriverCommandHandler creates a handler for driver assignment
// operations.
func NewAssignDriverCommandHandler(uowFactory DeliveryUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		fanout:     services.NewNotificationFanout(),
	}
}

// Handle processes the assignment. The consolidation moves to
// assigned_to_driver with a history entry, and a delivery in assigned status
// is created for the driver. Reassignment replaces the driver but keeps the
// consolidation's history intact.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	consolidationRepo := uow.ConsolidationRepository()
	aggregate, err := consolidationRepo.Get(ctx, cmd.ConsolidationID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = aggregate.AssignDriver(cmd.DriverID(), now); err != nil {
		return err
	}
	if err = consolidationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	run, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.ConsolidationID(), cmd.DriverID(), now)
	if err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Add(ctx, run); err != nil {
		return err
	}

	notifications, err := h.fanout.DriverAssigned(aggregate, cmd.DriverID())
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, notifications); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
