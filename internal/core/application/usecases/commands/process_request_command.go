package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrProcessRequestCommandIsNotConstructed = errors.New(
	"ProcessRequestCommand must be created via NewProcessRequestCommand constructor",
)

// ProcessRequestCommand represents a staff member marking an approved
// request as processed into a consolidation.
type ProcessRequestCommand struct { //nolint:recvcheck //using for validation
	requestID       kernel.UUID
	processedBy     kernel.UUID
	consolidationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessRequestCommand creates a command to process a request. Both the
// processor and the fulfilling consolidation are mandatory.
func NewProcessRequestCommand(
	requestID kernel.UUID,
	processedBy kernel.UUID,
	consolidationID kernel.UUID,
) (ProcessRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return ProcessRequestCommand{}, err
	}
	if err := processedBy.Validate(); err != nil {
		return ProcessRequestCommand{}, errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}
	if err := consolidationID.Validate(); err != nil {
		return ProcessRequestCommand{}, errs.NewValueIsRequiredErrorWithCause("consolidationId", err)
	}

	return ProcessRequestCommand{
		requestID:       requestID,
		processedBy:     processedBy,
		consolidationID: consolidationID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessRequestCommand) Validate() error {
	return c.guard.Validate(ErrProcessRequestCommandIsNotConstructed)
}

// RequestID returns the request to process.
func (c ProcessRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ProcessedBy returns the processing user.
func (c ProcessRequestCommand) ProcessedBy() kernel.UUID {
	return c.processedBy
}

// ConsolidationID returns the fulfilling consolidation.
func (c ProcessRequestCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// ProcessRequestCommandHandler handles request processing.
type ProcessRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewProcessRequestCommandHandler creates a handler for processing
// operations.
func NewProcessRequestCommandHandler(uowFactory RequestUoWFactory) ProcessRequestCommandHandler {
	return ProcessRequestCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. Processing a request that is not approved
// fails with an InvalidStateError.
func (h *ProcessRequestCommandHandler) Handle(ctx context.Context, cmd ProcessRequestCommand) error {
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

	if err = aggregate.Process(cmd.ProcessedBy(), cmd.ConsolidationID(), time.Now()); err != nil {
		return err
	}
	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
