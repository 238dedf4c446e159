package commands

import (
	"context"
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/guard"
)

var ErrDeleteRequestCommandIsNotConstructed = errors.New(
	"DeleteRequestCommand must be created via NewDeleteRequestCommand constructor",
)

// DeleteRequestCommand represents a request record deletion.
type DeleteRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRequestCommand creates a command to delete a request.
func NewDeleteRequestCommand(requestID kernel.UUID) (DeleteRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return DeleteRequestCommand{}, err
	}

	return DeleteRequestCommand{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRequestCommandIsNotConstructed)
}

// RequestID returns the request to delete.
func (c DeleteRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// DeleteRequestCommandHandler handles request deletion.
type DeleteRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewDeleteRequestCommandHandler creates a handler for request deletion
// operations.
func NewDeleteRequestCommandHandler(uowFactory RequestUoWFactory) DeleteRequestCommandHandler {
	return DeleteRequestCommandHandler{uowFactory: uowFactory}
}

// Handle processes the deletion. Deleting an unknown request fails with an
// ObjectNotFoundError.
func (h *DeleteRequestCommandHandler) Handle(ctx context.Context, cmd DeleteRequestCommand) error {
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
	if _, err := repo.Get(ctx, cmd.RequestID()); err != nil {
		return err
	}
	if err := repo.Delete(ctx, cmd.RequestID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
