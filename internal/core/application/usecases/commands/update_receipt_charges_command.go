package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/receipt"
	"consolidation/internal/pkg/guard"
)

var ErrUpdateReceiptChargesCommandIsNotConstructed = errors.New(
	"UpdateReceiptChargesCommand must be created via NewUpdateReceiptChargesCommand constructor",
)

// UpdateReceiptChargesCommand represents a request to replace a receipt's
// charge breakdown. The total is recomputed from the components.
type UpdateReceiptChargesCommand struct { //nolint:recvcheck //using for validation
	receiptID   kernel.UUID
	serviceFee  float64
	handlingFee float64
	discount    float64

	guard guard.ConstructorGuard
}

// NewUpdateReceiptChargesCommand creates a command to update charges.
func NewUpdateReceiptChargesCommand(
	receiptID kernel.UUID,
	serviceFee, handlingFee, discount float64,
) (UpdateReceiptChargesCommand, error) {
	if err := receiptID.Validate(); err != nil {
		return UpdateReceiptChargesCommand{}, err
	}

	return UpdateReceiptChargesCommand{
		receiptID:   receiptID,
		serviceFee:  serviceFee,
		handlingFee: handlingFee,
		discount:    discount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReceiptChargesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReceiptChargesCommandIsNotConstructed)
}

// ReceiptID returns the receipt to update.
func (c UpdateReceiptChargesCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

// ServiceFee returns the new service fee component.
func (c UpdateReceiptChargesCommand) ServiceFee() float64 {
	return c.serviceFee
}

// HandlingFee returns the new handling fee component.
func (c UpdateReceiptChargesCommand) HandlingFee() float64 {
	return c.handlingFee
}

// Discount returns the new discount component.
func (c UpdateReceiptChargesCommand) Discount() float64 {
	return c.discount
}

// UpdateReceiptChargesCommandHandler handles charge updates.
type UpdateReceiptChargesCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewUpdateReceiptChargesCommandHandler creates a handler for charge update
// operations.
func NewUpdateReceiptChargesCommandHandler(uowFactory ReceiptUoWFactory) UpdateReceiptChargesCommandHandler {
	return UpdateReceiptChargesCommandHandler{uowFactory: uowFactory}
}

// Handle processes the charge update.
func (h *UpdateReceiptChargesCommandHandler) Handle(ctx context.Context, cmd UpdateReceiptChargesCommand) error {
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

	charges, err := receipt.NewCharges(cmd.ServiceFee(), cmd.HandlingFee(), cmd.Discount())
	if err != nil {
		return err
	}
	if err = aggregate.UpdateCharges(charges, time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
