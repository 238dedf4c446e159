package commands

import (
	"context"
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/guard"
)

var ErrDeleteConsolidationCommandIsNotConstructed = errors.New(
	"DeleteConsolidationCommand must be created via NewDeleteConsolidationCommand constructor",
)

// DeleteConsolidationCommand represents a request to delete a consolidation.
type DeleteConsolidationCommand struct { //nolint:recvcheck //using for validation
	consolidationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteConsolidationCommand creates a command to delete a consolidation.
func NewDeleteConsolidationCommand(consolidationID kernel.UUID) (DeleteConsolidationCommand, error) {
	if err := consolidationID.Validate(); err != nil {
		return DeleteConsolidationCommand{}, err
	}

	return DeleteConsolidationCommand{
		consolidationID: consolidationID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteConsolidationCommandIsNotConstructed)
}

// ConsolidationID returns the consolidation to delete.
func (c DeleteConsolidationCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// DeleteConsolidationCommandHandler handles consolidation deletion.
type DeleteConsolidationCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

// NewDeleteConsolidationCommandHandler creates a handler for deletion
// operations.
func NewDeleteConsolidationCommandHandler(uowFactory ConsolidationUoWFactory) DeleteConsolidationCommandHandler {
	return DeleteConsolidationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the deletion. Deleting an unknown consolidation fails
// with an ObjectNotFoundError.
func (h *DeleteConsolidationCommandHandler) Handle(ctx context.Context, cmd DeleteConsolidationCommand) error {
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
	if _, err := repo.Get(ctx, cmd.ConsolidationID()); err != nil {
		return err
	}
	if err := repo.Delete(ctx, cmd.ConsolidationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
