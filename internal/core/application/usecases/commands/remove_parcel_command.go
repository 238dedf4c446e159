package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrRemoveParcelCommandIsNotConstructed = errors.New(
	"RemoveParcelCommand must be created via NewRemoveParcelCommand constructor",
)

// RemoveParcelCommand represents a request to remove a parcel from a
// consolidation. Removing an absent parcel is a no-op.
type RemoveParcelCommand struct { //nolint:recvcheck //using for validation
	consolidationID kernel.UUID
	parcelID        string

	guard guard.ConstructorGuard
}

// NewRemoveParcelCommand creates a command to remove a parcel.
func NewRemoveParcelCommand(consolidationID kernel.UUID, parcelID string) (RemoveParcelCommand, error) {
	if err := consolidationID.Validate(); err != nil {
		return RemoveParcelCommand{}, err
	}
	if parcelID == "" {
		return RemoveParcelCommand{}, errs.NewValueIsRequiredError("parcelId")
	}

	return RemoveParcelCommand{
		consolidationID: consolidationID,
		parcelID:        parcelID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveParcelCommand) Validate() error {
	return c.guard.Validate(ErrRemoveParcelCommandIsNotConstructed)
}

// ConsolidationID returns the consolidation losing the parcel.
func (c RemoveParcelCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// ParcelID returns the parcel to remove.
func (c RemoveParcelCommand) ParcelID() string {
	return c.parcelID
}

// RemoveParcelCommandHandler handles parcel removal.
type RemoveParcelCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

// NewRemoveParcelCommandHandler creates a handler for parcel removal operations.
func NewRemoveParcelCommandHandler(uowFactory ConsolidationUoWFactory) RemoveParcelCommandHandler {
	return RemoveParcelCommandHandler{uowFactory: uowFactory}
}

// Handle processes the parcel removal.
func (h *RemoveParcelCommandHandler) Handle(ctx context.Context, cmd RemoveParcelCommand) error {
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

	if err = aggregate.RemoveParcel(cmd.ParcelID(), time.Now()); err != nil {
		return err
	}
	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
