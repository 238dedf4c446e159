package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrRejectRequestCommandIsNotConstructed = errors.New(
	"RejectRequestCommand must be created via NewRejectRequestCommand constructor",
)

// RejectRequestCommand represents a staff member declining a submitted
// request with a mandatory reason.
type RejectRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	processedBy kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewRejectRequestCommand creates a command to reject a request.
func NewRejectRequestCommand(
	requestID kernel.UUID,
	processedBy kernel.UUID,
	reason string,
) (RejectRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return RejectRequestCommand{}, err
	}
	if err := processedBy.Validate(); err != nil {
		return RejectRequestCommand{}, errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}
	if reason == "" {
		return RejectRequestCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return RejectRequestCommand{
		requestID:   requestID,
		processedBy: processedBy,
		reason:      reason,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectRequestCommandIsNotConstructed)
}

// RequestID returns the request to reject.
func (c RejectRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ProcessedBy returns the rejecting user.
func (c RejectRequestCommand) ProcessedBy() kernel.UUID {
	return c.processedBy
}

// Reason returns the rejection reason.
func (c RejectRequestCommand) Reason() string {
	return c.reason
}

// RejectRequestCommandHandler handles request rejection.
type RejectRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewRejectRequestCommandHandler creates a handler for rejection operations.
func NewRejectRequestCommandHandler(uowFactory RequestUoWFactory) RejectRequestCommandHandler {
	return RejectRequestCommandHandler{uowFactory: uowFactory}
}

// Handle processes the rejection. Rejecting a request that is not in
// submitted status fails with an InvalidStateError.
func (h *RejectRequestCommandHandler) Handle(ctx context.Context, cmd RejectRequestCommand) error {
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

	if err = aggregate.Reject(cmd.ProcessedBy(), cmd.Reason(), time.Now()); err != nil {
		return err
	}
	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
