package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrAddParcelCommandIsNotConstructed = errors.New(
	"AddParcelCommand must be created via NewAddParcelCommand constructor",
)

// AddParcelCommand represents a request to add a parcel to a consolidation.
// Adding a parcel that is already in the consolidation is a no-op.
type AddParcelCommand struct { //nolint:recvcheck //using for validation
	consolidationID kernel.UUID
	parcelID        string

	guard guard.ConstructorGuard
}

// NewAddParcelCommand creates a command to add a parcel.
func NewAddParcelCommand(consolidationID kernel.UUID, parcelID string) (AddParcelCommand, error) {
	if err := consolidationID.Validate(); err != nil {
		return AddParcelCommand{}, err
	}
	if parcelID == "" {
		return AddParcelCommand{}, errs.NewValueIsRequiredError("parcelId")
	}

	return AddParcelCommand{
		consolidationID: consolidationID,
		parcelID:        parcelID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddParcelCommand) Validate() error {
	return c.guard.Validate(ErrAddParcelCommandIsNotConstructed)
}

// ConsolidationID returns the consolidation receiving the parcel.
func (c AddParcelCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// ParcelID returns the parcel to add.
func (c AddParcelCommand) ParcelID() string {
	return c.parcelID
}

// AddParcelCommandHandler handles idempotent parcel addition.
type AddParcelCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

// NewAddParcelCommandHandler creates a handler for parcel addition operations.
func NewAddParcelCommandHandler(uowFactory ConsolidationUoWFactory) AddParcelCommandHandler {
	return AddParcelCommandHandler{uowFactory: uowFactory}
}

// Handle processes the parcel addition. A duplicate parcel leaves the
// aggregate unchanged and skips the update entirely.
func (h *AddParcelCommandHandler) Handle(ctx context.Context, cmd AddParcelCommand) error {
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

	added, err := aggregate.AddParcel(cmd.ParcelID(), time.Now())
	if err != nil {
		return err
	}
	if added {
		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
