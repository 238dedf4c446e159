package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/request"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrUpdateRequestStatusCommandIsNotConstructed = errors.New(
	"UpdateRequestStatusCommand must be created via NewUpdateRequestStatusCommand constructor",
)

// UpdateRequestStatusCommand represents a status transition requested by
// name rather than through the dedicated approve/reject/process operations.
type UpdateRequestStatusCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	status      request.Status
	processedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateRequestStatusCommand creates a command to change a request's
// status by name.
func NewUpdateRequestStatusCommand(
	requestID kernel.UUID,
	status request.Status,
	processedBy kernel.UUID,
) (UpdateRequestStatusCommand, error) {
	if err := requestID.Validate(); err != nil {
		return UpdateRequestStatusCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return UpdateRequestStatusCommand{}, err
	}
	if err := processedBy.Validate(); err != nil {
		return UpdateRequestStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}

	return UpdateRequestStatusCommand{
		requestID:   requestID,
		status:      status,
		processedBy: processedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRequestStatusCommandIsNotConstructed)
}

// RequestID returns the request to transition.
func (c UpdateRequestStatusCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Status returns the target status.
func (c UpdateRequestStatusCommand) Status() request.Status {
	return c.status
}

// ProcessedBy returns the user performing the transition.
func (c UpdateRequestStatusCommand) ProcessedBy() kernel.UUID {
	return c.processedBy
}

// UpdateRequestStatusCommandHandler handles status transitions by name.
type UpdateRequestStatusCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewUpdateRequestStatusCommandHandler creates a handler for status
// transition operations.
func NewUpdateRequestStatusCommandHandler(uowFactory RequestUoWFactory) UpdateRequestStatusCommandHandler {
	return UpdateRequestStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the transition through the aggregate's transition table.
func (h *UpdateRequestStatusCommandHandler) Handle(ctx context.Context, cmd UpdateRequestStatusCommand) error {
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

	repo := uow.RequestRepository()
	aggregate, err := repo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status(), cmd.ProcessedBy(), time.Now()); err != nil {
		return err
	}
	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
