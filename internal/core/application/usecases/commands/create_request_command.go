package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/request"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand represents a customer submitting a consolidation
// request. An empty request number asks the handler to generate one.
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID     kernel.UUID
	requestNumber string
	customerID    kernel.UUID
	notes         string

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to submit a request. The
// customer is mandatory.
func NewCreateRequestCommand(
	requestID kernel.UUID,
	requestNumber string,
	customerID kernel.UUID,
	notes string,
) (CreateRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return CreateRequestCommand{}, err
	}
	if err := customerID.Validate(); err != nil {
		return CreateRequestCommand{}, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	return CreateRequestCommand{
		requestID:     requestID,
		requestNumber: requestNumber,
		customerID:    customerID,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// RequestID returns the identifier for the new request.
func (c CreateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// RequestNumber returns the caller-supplied number, empty to generate one.
func (c CreateRequestCommand) RequestNumber() string {
	return c.requestNumber
}

// CustomerID returns the submitting customer.
func (c CreateRequestCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Notes returns the free-form notes.
func (c CreateRequestCommand) Notes() string {
	return c.notes
}

// CreateRequestCommandHandler submits requests. Missing request numbers are
// drawn from the day-scoped REQ sequence inside the same transaction.
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateRequestCommandHandler creates a handler for request submission
// operations.
func NewCreateRequestCommandHandler(uowFactory RequestUoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{uowFactory: uowFactory}
}

// Handle processes the submission. A duplicate request number fails with an
// ObjectAlreadyExistsError from the unique index.
func (h *CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) error {
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

	now := time.Now()
	requestNumber := cmd.RequestNumber()
	if requestNumber == "" {
		sequence, err := uow.SequenceRepository().Next(ctx, kernel.PrefixRequest, now)
		if err != nil {
			return err
		}
		requestNumber = kernel.FormatBusinessNumber(kernel.PrefixRequest, now, sequence)
	}

	aggregate, err := request.NewRequest(
		cmd.RequestID(), requestNumber, cmd.CustomerID(), cmd.Notes(), now)
	if err != nil {
		return err
	}
	if err = uow.RequestRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
