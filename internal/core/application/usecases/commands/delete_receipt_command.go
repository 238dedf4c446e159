package commands

import (
	"context"
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/guard"
)

var ErrDeleteReceiptCommandIsNotConstructed = errors.New(
	"DeleteReceiptCommand must be created via NewDeleteReceiptCommand constructor",
)

// DeleteReceiptCommand represents a request to delete a receipt.
type DeleteReceiptCommand struct { //nolint:recvcheck //using for validation
	receiptID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteReceiptCommand creates a command to delete a receipt.
func NewDeleteReceiptCommand(receiptID kernel.UUID) (DeleteReceiptCommand, error) {
	if err := receiptID.Validate(); err != nil {
		return DeleteReceiptCommand{}, err
	}

	return DeleteReceiptCommand{
		receiptID: receiptID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReceiptCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReceiptCommandIsNotConstructed)
}

// ReceiptID returns the receipt to delete.
func (c DeleteReceiptCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

// DeleteReceiptCommandHandler handles receipt deletion.
type DeleteReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewDeleteReceiptCommandHandler creates a handler for receipt deletion
// operations.
func NewDeleteReceiptCommandHandler(uowFactory ReceiptUoWFactory) DeleteReceiptCommandHandler {
	return DeleteReceiptCommandHandler{uowFactory: uowFactory}
}

// Handle processes the deletion. Deleting an unknown receipt fails with an
// ObjectNotFoundError.
func (h *DeleteReceiptCommandHandler) Handle(ctx context.Context, cmd DeleteReceiptCommand) error {
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

	repo := uow.ReceiptRepository()
	if _, err := repo.Get(ctx, cmd.ReceiptID()); err != nil {
		return err
	}
	if err := repo.Delete(ctx, cmd.ReceiptID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
