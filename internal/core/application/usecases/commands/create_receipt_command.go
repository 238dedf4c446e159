package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/receipt"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrCreateReceiptCommandIsNotConstructed = errors.New(
	"CreateReceiptCommand must be created via NewCreateReceiptCommand constructor",
)

// CreateReceiptCommand represents a request to issue a receipt for a
// consolidation. An empty receipt number asks the handler to generate one.
type CreateReceiptCommand struct { //nolint:recvcheck //using for validation
	receiptID       kernel.UUID
	receiptNumber   string
	consolidationID kernel.UUID
	totalParcels    int
	totalWeight     *float64
	serviceFee      float64
	handlingFee     float64
	discount        float64
	issuedBy        *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateReceiptCommand creates a command to issue a receipt. The
// consolidation and a positive parcel count are mandatory; the charge total
// is always derived from the three components, never taken from input.
func NewCreateReceiptCommand(
	receiptID kernel.UUID,
	receiptNumber string,
	consolidationID kernel.UUID,
	totalParcels int,
	totalWeight *float64,
	serviceFee, handlingFee, discount float64,
	issuedBy *kernel.UUID,
) (CreateReceiptCommand, error) {
	if err := receiptID.Validate(); err != nil {
		return CreateReceiptCommand{}, err
	}
	if err := consolidationID.Validate(); err != nil {
		return CreateReceiptCommand{}, errs.NewValueIsRequiredErrorWithCause("consolidationId", err)
	}
	if totalParcels <= 0 {
		return CreateReceiptCommand{}, errs.NewValueIsRequiredError("totalParcels")
	}

	return CreateReceiptCommand{
		receiptID:       receiptID,
		receiptNumber:   receiptNumber,
		consolidationID: consolidationID,
		totalParcels:    totalParcels,
		totalWeight:     totalWeight,
		serviceFee:      serviceFee,
		handlingFee:     handlingFee,
		discount:        discount,
		issuedBy:        issuedBy,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReceiptCommand) Validate() error {
	return c.guard.Validate(ErrCreateReceiptCommandIsNotConstructed)
}

// ReceiptID returns the identifier for the new receipt.
func (c CreateReceiptCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

// ReceiptNumber returns the caller-supplied number, empty to generate one.
func (c CreateReceiptCommand) ReceiptNumber() string {
	return c.receiptNumber
}

// ConsolidationID returns the consolidation being billed.
func (c CreateReceiptCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// TotalParcels returns the parcel count covered by the receipt.
func (c CreateReceiptCommand) TotalParcels() int {
	return c.totalParcels
}

// TotalWeight returns the optional total weight.
func (c CreateReceiptCommand) TotalWeight() *float64 {
	return c.totalWeight
}

// ServiceFee returns the service fee component.
func (c CreateReceiptCommand) ServiceFee() float64 {
	return c.serviceFee
}

// HandlingFee returns the handling fee component.
func (c CreateReceiptCommand) HandlingFee() float64 {
	return c.handlingFee
}

// Discount returns the discount component.
func (c CreateReceiptCommand) Discount() float64 {
	return c.discount
}

// IssuedBy returns the optional issuing user.
func (c CreateReceiptCommand) IssuedBy() *kernel.UUID {
	return c.issuedBy
}

// CreateReceiptCommandHandler issues receipts. Missing receipt numbers are
// drawn from the day-scoped RCP sequence inside the same transaction.
type CreateReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewCreateReceiptCommandHandler creates a handler for receipt creation
// operations.
func NewCreateReceiptCommandHandler(uowFactory ReceiptUoWFactory) CreateReceiptCommandHandler {
	return CreateReceiptCommandHandler{uowFactory: uowFactory}
}

// Handle processes the receipt creation. The referenced consolidation must
// exist; a duplicate receipt number fails with an ObjectAlreadyExistsError
// from the unique index.
func (h *CreateReceiptCommandHandler) Handle(ctx context.Context, cmd CreateReceiptCommand) error {
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

	if _, err := uow.ConsolidationRepository().Get(ctx, cmd.ConsolidationID()); err != nil {
		return err
	}

	now := time.Now()
	receiptNumber := cmd.ReceiptNumber()
	if receiptNumber == "" {
		sequence, err := uow.SequenceRepository().Next(ctx, kernel.PrefixReceipt, now)
		if err != nil {
			return err
		}
		receiptNumber = kernel.FormatBusinessNumber(kernel.PrefixReceipt, now, sequence)
	}

	charges, err := receipt.NewCharges(cmd.ServiceFee(), cmd.HandlingFee(), cmd.Discount())
	if err != nil {
		return err
	}
	aggregate, err := receipt.NewReceipt(
		cmd.ReceiptID(), receiptNumber, cmd.ConsolidationID(), cmd.TotalParcels(), charges, now)
	if err != nil {
		return err
	}
	if cmd.TotalWeight() != nil {
		if err = aggregate.SetTotalWeight(*cmd.TotalWeight(), now); err != nil {
			return err
		}
	}
	if cmd.IssuedBy() != nil {
		if err = aggregate.SetIssuedBy(*cmd.IssuedBy(), now); err != nil {
			return err
		}
	}

	if err = uow.ReceiptRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
