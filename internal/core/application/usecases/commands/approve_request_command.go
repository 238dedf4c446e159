package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrApproveRequestCommandIsNotConstructed = errors.New(
	"ApproveRequestCommand must be created via NewApproveRequestCommand constructor",
)

// ApproveRequestCommand represents a staff member approving a submitted
// request, optionally linking the consolidation being prepared for it.
type ApproveRequestCommand struct { //nolint:recvcheck //using for validation
	requestID       kernel.UUID
	processedBy     kernel.UUID
	consolidationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRequestCommand creates a command to approve a request.
func NewApproveRequestCommand(
	requestID kernel.UUID,
	processedBy kernel.UUID,
	consolidationID *kernel.UUID,
) (ApproveRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return ApproveRequestCommand{}, err
	}
	if err := processedBy.Validate(); err != nil {
		return ApproveRequestCommand{}, errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}

	return ApproveRequestCommand{
		requestID:       requestID,
		processedBy:     processedBy,
		consolidationID: consolidationID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveRequestCommandIsNotConstructed)
}

// RequestID returns the request to approve.
func (c ApproveRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ProcessedBy returns the approving user.
func (c ApproveRequestCommand) ProcessedBy() kernel.UUID {
	return c.processedBy
}

// ConsolidationID returns the optional early consolidation link.
func (c ApproveRequestCommand) ConsolidationID() *kernel.UUID {
	return c.consolidationID
}

// ApproveRequestCommandHandler handles request approval.
type ApproveRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewApproveRequestCommandHandler creates a handler for approval operations.
func NewApproveRequestCommandHandler(uowFactory RequestUoWFactory) ApproveRequestCommandHandler {
	return ApproveRequestCommandHandler{uowFactory: uowFactory}
}

// Handle processes the approval. Approving a request that is not in
// submitted status fails with an InvalidStateError.
func (h *ApproveRequestCommandHandler) Handle(ctx context.Context, cmd ApproveRequestCommand) error {
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

	if err = aggregate.Approve(cmd.ProcessedBy(), cmd.ConsolidationID(), time.Now()); err != nil {
		return err
	}
	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
