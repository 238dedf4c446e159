package request

import (
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrRequestIsNotConstructed = errs.NewValueIsRequiredError(
	"request must be created via NewRequest or RestoreRequest")

// Request is a customer-submitted intake record asking for parcels to be
// consolidated. Its status moves forward only: submitted requests get
// approved or rejected, approved ones get processed into a consolidation.
type Request struct {
	id              kernel.UUID
	requestNumber   string
	customerID      kernel.UUID
	status          Status
	consolidationID *kernel.UUID
	processedBy     *kernel.UUID
	processedAt     *time.Time
	rejectionReason string
	notes           string
	createdAt       time.Time
	updatedAt       time.Time

	guard guard.ConstructorGuard
}

// NewRequest submits a new consolidation request for a customer.
func NewRequest(
	id kernel.UUID,
	requestNumber string,
	customerID kernel.UUID,
	notes string,
	now time.Time,
) (*Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if requestNumber == "" {
		return nil, errs.NewValueIsRequiredError("requestNumber")
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	return &Request{
		id:            id,
		requestNumber: requestNumber,
		customerID:    customerID,
		status:        StatusSubmitted,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(
	id kernel.UUID,
	requestNumber string,
	customerID kernel.UUID,
	status Status,
	consolidationID *kernel.UUID,
	processedBy *kernel.UUID,
	processedAt *time.Time,
	rejectionReason string,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) *Request {
	return &Request{
		id:              id,
		requestNumber:   requestNumber,
		customerID:      customerID,
		status:          status,
		consolidationID: consolidationID,
		processedBy:     processedBy,
		processedAt:     processedAt,
		rejectionReason: rejectionReason,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) RequestNumber() string {
	return r.requestNumber
}

func (r *Request) CustomerID() kernel.UUID {
	return r.customerID
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) ConsolidationID() *kernel.UUID {
	return r.consolidationID
}

func (r *Request) ProcessedBy() *kernel.UUID {
	return r.processedBy
}

func (r *Request) ProcessedAt() *time.Time {
	return r.processedAt
}

func (r *Request) RejectionReason() string {
	return r.rejectionReason
}

func (r *Request) Notes() string {
	return r.notes
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

// Approve moves a submitted request to approved. The approved request may
// already point at the consolidation being prepared for it.
func (r *Request) Approve(processedBy kernel.UUID, consolidationID *kernel.UUID, now time.Time) error {
	if err := processedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}
	if !r.status.CanTransitionTo(StatusApproved) {
		return errs.NewInvalidStateError(
			"cannot approve request in status " + r.status.String())
	}

	r.status = StatusApproved
	r.processedBy = &processedBy
	r.processedAt = &now
	if consolidationID != nil {
		id := *consolidationID
		r.consolidationID = &id
	}
	r.updatedAt = now
	return nil
}

// Reject declines a submitted request. A reason is mandatory.
func (r *Request) Reject(processedBy kernel.UUID, reason string, now time.Time) error {
	if err := processedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if !r.status.CanTransitionTo(StatusRejected) {
		return errs.NewInvalidStateError(
			"cannot reject request in status " + r.status.String())
	}

	r.status = StatusRejected
	r.processedBy = &processedBy
	r.processedAt = &now
	r.rejectionReason = reason
	r.updatedAt = now
	return nil
}

// Process links an approved request to the consolidation that fulfils it.
func (r *Request) Process(processedBy kernel.UUID, consolidationID kernel.UUID, now time.Time) error {
	if err := processedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}
	if err := consolidationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("consolidationId", err)
	}
	if !r.status.CanTransitionTo(StatusProcessed) {
		return errs.NewInvalidStateError(
			"cannot process request in status " + r.status.String())
	}

	r.status = StatusProcessed
	r.processedBy = &processedBy
	r.processedAt = &now
	r.consolidationID = &consolidationID
	r.updatedAt = now
	return nil
}

// ChangeStatus applies a transition by name, using the same rules as the
// dedicated operations. Rejection via ChangeStatus carries no reason, so it
// is routed through Reject with a generic one only when reason is supplied.
func (r *Request) ChangeStatus(next Status, processedBy kernel.UUID, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	switch next {
	case StatusApproved:
		return r.Approve(processedBy, nil, now)
	case StatusProcessed:
		if r.consolidationID == nil {
			return errs.NewValueIsRequiredError("consolidationId")
		}
		return r.Process(processedBy, *r.consolidationID, now)
	case StatusRejected:
		return errs.NewValueIsRequiredError("reason")
	default:
		return errs.NewInvalidStateError(
			"cannot change request status to " + next.String())
	}
}

// UpdateNotes replaces the free-form notes.
func (r *Request) UpdateNotes(notes string, now time.Time) {
	r.notes = notes
	r.updatedAt = now
}

func (r *Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}
