package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/guard"
)

var ErrUpdateRequestCommandIsNotConstructed = errors.New(
	"UpdateRequestCommand must be created via NewUpdateRequestCommand constructor",
)

// UpdateRequestCommand represents a general request update. Only the notes
// are writable; the request number and status are not.
type UpdateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	notes     string

	guard guard.ConstructorGuard
}

// NewUpdateRequestCommand creates a general request update command.
func NewUpdateRequestCommand(requestID kernel.UUID, notes string) (UpdateRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return UpdateRequestCommand{}, err
	}

	return UpdateRequestCommand{
		requestID: requestID,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRequestCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRequestCommandIsNotConstructed)
}

// RequestID returns the request to update.
func (c UpdateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Notes returns the replacement notes.
func (c UpdateRequestCommand) Notes() string {
	return c.notes
}

// UpdateRequestCommandHandler handles general request updates.
type UpdateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewUpdateRequestCommandHandler creates a handler for general request
// update operations.
func NewUpdateRequestCommandHandler(uowFactory RequestUoWFactory) UpdateRequestCommandHandler {
	return UpdateRequestCommandHandler{uowFactory: uowFactory}
}

// Handle processes the update.
func (h *UpdateRequestCommandHandler) Handle(ctx context.Context, cmd UpdateRequestCommand) error {
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

	repo := uow.RequestRepository()
	aggregate, err := repo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	aggregate.UpdateNotes(cmd.Notes(), time.Now())
	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
