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

var ErrUpdateConsolidationStatusCommandIsNotConstructed = errors.New(
	"UpdateConsolidationStatusCommand must be created via NewUpdateConsolidationStatusCommand constructor",
)

// UpdateConsolidationStatusCommand represents a request to move a
// consolidation to a new status with an optional note and location.
type UpdateConsolidationStatusCommand struct { //nolint:recvcheck //using for validation
	consolidationID kernel.UUID
	status          consolidation.Status
	note            string
	location        *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateConsolidationStatusCommand creates a command to change a
// consolidation's status. The target status must be a known enum value;
// whether the transition is legal is decided by the aggregate.
func NewUpdateConsolidationStatusCommand(
	consolidationID kernel.UUID,
	status consolidation.Status,
	note string,
	location *kernel.GeoPoint,
) (UpdateConsolidationStatusCommand, error) {
	if err := consolidationID.Validate(); err != nil {
		return UpdateConsolidationStatusCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return UpdateConsolidationStatusCommand{}, err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return UpdateConsolidationStatusCommand{}, err
		}
	}

	return UpdateConsolidationStatusCommand{
		consolidationID: consolidationID,
		status:          status,
		note:            note,
		location:        location,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateConsolidationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConsolidationStatusCommandIsNotConstructed)
}

// ConsolidationID returns the consolidation to transition.
func (c UpdateConsolidationStatusCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// Status returns the target status.
func (c UpdateConsolidationStatusCommand) Status() consolidation.Status {
	return c.status
}

// Note returns the optional history note.
func (c UpdateConsolidationStatusCommand) Note() string {
	return c.note
}

// Location returns the optional location recorded with the history entry.
func (c UpdateConsolidationStatusCommand) Location() *kernel.GeoPoint {
	return c.location
}

// UpdateConsolidationStatusCommandHandler applies a status transition,
// appends the history entry and queues the status-change notifications in
// the same transaction.
type UpdateConsolidationStatusCommandHandler struct {
	uowFactory ConsolidationUoWFactory
	fanout     services.NotificationFanout
}

// NewUpdateConsolidationStatusCommandHandler creates a handler for status
// transition operations.
func NewUpdateConsolidationStatusCommandHandler(uowFactory ConsolidationUoWFactory) UpdateConsolidationStatusCommandHandler {
	return UpdateConsolidationStatusCommandHandler{
		uowFactory: uowFactory,
		fanout:     services.NewNotificationFanout(),
	}
}

// Handle processes the status change. Illegal transitions fail with an
// InvalidStateError and leave the aggregate untouched.
func (h *UpdateConsolidationStatusCommandHandler) Handle(ctx context.Context, cmd UpdateConsolidationStatusCommand) error {
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

	repo := uow.ConsolidationRepository()
	aggregate, err := repo.Get(ctx, cmd.ConsolidationID())
	if err != nil {
		return err
	}

	oldStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status(), cmd.Note(), cmd.Location(), time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	notifications, err := h.fanout.ConsolidationStatusChanged(aggregate, oldStatus)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, notifications); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
