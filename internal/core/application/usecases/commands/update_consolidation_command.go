package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/guard"
)

var ErrUpdateConsolidationCommandIsNotConstructed = errors.New(
	"UpdateConsolidationCommand must be created via NewUpdateConsolidationCommand constructor",
)

// UpdateConsolidationCommand represents a general update of a consolidation's
// mutable attributes. The status, history, reference code and tracking number
// are not writable through this command.
type UpdateConsolidationCommand struct { //nolint:recvcheck //using for validation
	consolidationID kernel.UUID
	warehouseID     *kernel.UUID
	parcels         []string
	replaceParcels  bool

	guard guard.ConstructorGuard
}

// NewUpdateConsolidationCommand creates a general update command. A nil
// parcels slice leaves the parcel list untouched; a non-nil slice replaces
// it, with duplicates collapsed.
func NewUpdateConsolidationCommand(
	consolidationID kernel.UUID,
	warehouseID *kernel.UUID,
	parcels []string,
	replaceParcels bool,
) (UpdateConsolidationCommand, error) {
	if err := consolidationID.Validate(); err != nil {
		return UpdateConsolidationCommand{}, err
	}

	return UpdateConsolidationCommand{
		consolidationID: consolidationID,
		warehouseID:     warehouseID,
		parcels:         parcels,
		replaceParcels:  replaceParcels,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConsolidationCommandIsNotConstructed)
}

// ConsolidationID returns the consolidation to update.
func (c UpdateConsolidationCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// WarehouseID returns the new warehouse, nil to leave unchanged.
func (c UpdateConsolidationCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

// Parcels returns the replacement parcel list.
func (c UpdateConsolidationCommand) Parcels() []string {
	return c.parcels
}

// ReplaceParcels reports whether the parcel list should be replaced.
func (c UpdateConsolidationCommand) ReplaceParcels() bool {
	return c.replaceParcels
}

// UpdateConsolidationCommandHandler handles general consolidation updates.
type UpdateConsolidationCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

// NewUpdateConsolidationCommandHandler creates a handler for general update
// operations.
func NewUpdateConsolidationCommandHandler(uowFactory ConsolidationUoWFactory) UpdateConsolidationCommandHandler {
	return UpdateConsolidationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the update.
func (h *UpdateConsolidationCommandHandler) Handle(ctx context.Context, cmd UpdateConsolidationCommand) error {
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

	now := time.Now()
	if cmd.WarehouseID() != nil {
		if err = aggregate.SetWarehouse(cmd.WarehouseID(), now); err != nil {
			return err
		}
	}
	if cmd.ReplaceParcels() {
		for _, parcelID := range aggregate.Parcels() {
			if err = aggregate.RemoveParcel(parcelID, now); err != nil {
				return err
			}
		}
		for _, parcelID := range cmd.Parcels() {
			if _, err = aggregate.AddParcel(parcelID, now); err != nil {
				return err
			}
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
