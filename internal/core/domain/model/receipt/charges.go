package receipt

import (
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

// Charges is the billing breakdown of a receipt. The total is always derived
// from the three component fields and is never taken from caller input.
type Charges struct {
	serviceFee  float64
	handlingFee float64
	discount    float64

	guard guard.ConstructorGuard
}

var ErrChargesAreNotConstructed = errs.NewValueIsRequiredError(
	"charges must be created via NewCharges")

// NewCharges creates a charge breakdown. Every component must be non-negative.
func NewCharges(serviceFee, handlingFee, discount float64) (Charges, error) {
	if serviceFee < 0 {
		return Charges{}, errs.NewValueIsInvalidError("serviceFee")
	}
	if handlingFee < 0 {
		return Charges{}, errs.NewValueIsInvalidError("handlingFee")
	}
	if discount < 0 {
		return Charges{}, errs.NewValueIsInvalidError("discount")
	}

	return Charges{
		serviceFee:  serviceFee,
		handlingFee: handlingFee,
		discount:    discount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c Charges) ServiceFee() float64 {
	return c.serviceFee
}

func (c Charges) HandlingFee() float64 {
	return c.handlingFee
}

func (c Charges) Discount() float64 {
	return c.discount
}

// Total recomputes the amount due from the components.
func (c Charges) Total() float64 {
	return c.serviceFee + c.handlingFee - c.discount
}

func (c Charges) IsEqual(other Charges) bool {
	return c.serviceFee == other.serviceFee &&
		c.handlingFee == other.handlingFee &&
		c.discount == other.discount
}

func (c Charges) Validate() error {
	return c.guard.Validate(ErrChargesAreNotConstructed)
}
