package receipt

import (
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrReceiptIsNotConstructed = errs.NewValueIsRequiredError(
	"receipt must be created via NewReceipt or RestoreReceipt")

// Receipt is the billing record issued for a consolidation.
type Receipt struct {
	id              kernel.UUID
	receiptNumber   string
	consolidationID kernel.UUID
	totalParcels    int
	totalWeight     *float64
	charges         Charges
	issuedBy        *kernel.UUID
	issuedAt        time.Time
	updatedAt       time.Time

	guard guard.ConstructorGuard
}

// NewReceipt issues a receipt for a consolidation.
func NewReceipt(
	id kernel.UUID,
	receiptNumber string,
	consolidationID kernel.UUID,
	totalParcels int,
	charges Charges,
	now time.Time,
) (*Receipt, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if receiptNumber == "" {
		return nil, errs.NewValueIsRequiredError("receiptNumber")
	}
	if err := consolidationID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("consolidationId", err)
	}
	if totalParcels <= 0 {
		return nil, errs.NewValueIsRequiredError("totalParcels")
	}
	if err := charges.Validate(); err != nil {
		return nil, err
	}

	return &Receipt{
		id:              id,
		receiptNumber:   receiptNumber,
		consolidationID: consolidationID,
		totalParcels:    totalParcels,
		charges:         charges,
		issuedAt:        now,
		updatedAt:       now,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreReceipt reconstructs a receipt from persistence.
func RestoreReceipt(
	id kernel.UUID,
	receiptNumber string,
	consolidationID kernel.UUID,
	totalParcels int,
	totalWeight *float64,
	charges Charges,
	issuedBy *kernel.UUID,
	issuedAt time.Time,
	updatedAt time.Time,
) *Receipt {
	return &Receipt{
		id:              id,
		receiptNumber:   receiptNumber,
		consolidationID: consolidationID,
		totalParcels:    totalParcels,
		totalWeight:     totalWeight,
		charges:         charges,
		issuedBy:        issuedBy,
		issuedAt:        issuedAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}
}

func (r *Receipt) ID() kernel.UUID {
	return r.id
}

func (r *Receipt) ReceiptNumber() string {
	return r.receiptNumber
}

func (r *Receipt) ConsolidationID() kernel.UUID {
	return r.consolidationID
}

func (r *Receipt) TotalParcels() int {
	return r.totalParcels
}

func (r *Receipt) TotalWeight() *float64 {
	return r.totalWeight
}

func (r *Receipt) Charges() Charges {
	return r.charges
}

func (r *Receipt) IssuedBy() *kernel.UUID {
	return r.issuedBy
}

func (r *Receipt) IssuedAt() time.Time {
	return r.issuedAt
}

func (r *Receipt) UpdatedAt() time.Time {
	return r.updatedAt
}

// UpdateCharges replaces the charge breakdown. The total follows the new
// components automatically.
func (r *Receipt) UpdateCharges(charges Charges, now time.Time) error {
	if err := charges.Validate(); err != nil {
		return err
	}
	r.charges = charges
	r.updatedAt = now
	return nil
}

// UpdateParcels changes the parcel count the receipt covers.
func (r *Receipt) UpdateParcels(totalParcels int, now time.Time) error {
	if totalParcels <= 0 {
		return errs.NewValueIsRequiredError("totalParcels")
	}
	r.totalParcels = totalParcels
	r.updatedAt = now
	return nil
}

func (r *Receipt) SetTotalWeight(weight float64, now time.Time) error {
	if weight < 0 {
		return errs.NewValueIsInvalidError("totalWeight")
	}
	r.totalWeight = &weight
	r.updatedAt = now
	return nil
}

func (r *Receipt) SetIssuedBy(issuedBy kernel.UUID, now time.Time) error {
	if err := issuedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("issuedBy", err)
	}
	r.issuedBy = &issuedBy
	r.updatedAt = now
	return nil
}

func (r *Receipt) Validate() error {
	return r.guard.Validate(ErrReceiptIsNotConstructed)
}
