package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/receipt"
	"consolidation/internal/pkg/guard"
)

var ErrUpdateReceiptCommandIsNotConstructed = errors.New(
	"UpdateReceiptCommand must be created via NewUpdateReceiptCommand constructor",
)

// ChargesInput carries a full charge breakdown supplied by the caller. Any
// caller-supplied total is ignored; it is always recomputed.
type ChargesInput struct {
	ServiceFee  float64
	HandlingFee float64
	Discount    float64
}

// UpdateReceiptCommand represents a general receipt update. Nil fields leave
// the corresponding attribute unchanged; the receipt number is not writable.
type UpdateReceiptCommand struct { //nolint:recvcheck //using for validation
	receiptID    kernel.UUID
	totalParcels *int
	totalWeight  *float64
	charges      *ChargesInput
	issuedBy     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateReceiptCommand creates a general receipt update command.
func NewUpdateReceiptCommand(
	receiptID kernel.UUID,
	totalParcels *int,
	totalWeight *float64,
	charges *ChargesInput,
	issuedBy *kernel.UUID,
) (UpdateReceiptCommand, error) {
	if err := receiptID.Validate(); err != nil {
		return UpdateReceiptCommand{}, err
	}

	return UpdateReceiptCommand{
		receiptID:    receiptID,
		totalParcels: totalParcels,
		totalWeight:  totalWeight,
		charges:      charges,
		issuedBy:     issuedBy,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReceiptCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReceiptCommandIsNotConstructed)
}

// ReceiptID returns the receipt to update.
func (c UpdateReceiptCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

// TotalParcels returns the new parcel count, nil to leave unchanged.
func (c UpdateReceiptCommand) TotalParcels() *int {
	return c.totalParcels
}

// TotalWeight returns the new total weight, nil to leave unchanged.
func (c UpdateReceiptCommand) TotalWeight() *float64 {
	return c.totalWeight
}

// Charges returns the new charge breakdown, nil to leave unchanged.
func (c UpdateReceiptCommand) Charges() *ChargesInput {
	return c.charges
}

// IssuedBy returns the new issuer, nil to leave unchanged.
func (c UpdateReceiptCommand) IssuedBy() *kernel.UUID {
	return c.issuedBy
}

// UpdateReceiptCommandHandler handles general receipt updates.
type UpdateReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewUpdateReceiptCommandHandler creates a handler for general receipt
// update operations.
func NewUpdateReceiptCommandHandler(uowFactory ReceiptUoWFactory) UpdateReceiptCommandHandler {
	return UpdateReceiptCommandHandler{uowFactory: uowFactory}
}

// Handle processes the update. When charges are present the total is
// recomputed from the components.
func (h *UpdateReceiptCommandHandler) Handle(ctx context.Context, cmd UpdateReceiptCommand) error {
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
	aggregate, err := repo.Get(ctx, cmd.ReceiptID())
	if err != nil {
		return err
	}

	now := time.Now()
	if cmd.TotalParcels() != nil {
		if err = aggregate.UpdateParcels(*cmd.TotalParcels(), now); err != nil {
			return err
		}
	}
	if cmd.TotalWeight() != nil {
		if err = aggregate.SetTotalWeight(*cmd.TotalWeight(), now); err != nil {
			return err
		}
	}
	if cmd.Charges() != nil {
		charges, err := receipt.NewCharges(
			cmd.Charges().ServiceFee, cmd.Charges().HandlingFee, cmd.Charges().Discount)
		if err != nil {
			return err
		}
		if err = aggregate.UpdateCharges(charges, now); err != nil {
			return err
		}
	}
	if cmd.IssuedBy() != nil {
		if err = aggregate.SetIssuedBy(*cmd.IssuedBy(), now); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
