package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/guard"
)

var ErrGenerateBusinessNumberCommandIsNotConstructed = errors.New(
	"GenerateBusinessNumberCommand must be created via NewGenerateBusinessNumberCommand constructor",
)

// GenerateBusinessNumberCommand represents a request to draw the next
// day-scoped business number for a prefix, as used by the generate-number
// endpoints. The drawn sequence value is consumed even if the caller never
// uses the number.
type GenerateBusinessNumberCommand struct { //nolint:recvcheck //using for validation
	prefix kernel.NumberPrefix

	guard guard.ConstructorGuard
}

// NewGenerateBusinessNumberCommand creates a command to generate a number.
func NewGenerateBusinessNumberCommand(prefix kernel.NumberPrefix) (GenerateBusinessNumberCommand, error) {
	if err := prefix.Validate(); err != nil {
		return GenerateBusinessNumberCommand{}, err
	}

	return GenerateBusinessNumberCommand{
		prefix: prefix,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateBusinessNumberCommand) Validate() error {
	return c.guard.Validate(ErrGenerateBusinessNumberCommandIsNotConstructed)
}

// Prefix returns the number prefix to draw from.
func (c GenerateBusinessNumberCommand) Prefix() kernel.NumberPrefix {
	return c.prefix
}

// GenerateBusinessNumberCommandHandler draws day-scoped sequence numbers.
type GenerateBusinessNumberCommandHandler struct {
	uowFactory SequenceUoWFactory
}

// NewGenerateBusinessNumberCommandHandler creates a handler for number
// generation operations.
func NewGenerateBusinessNumberCommandHandler(uowFactory SequenceUoWFactory) GenerateBusinessNumberCommandHandler {
	return GenerateBusinessNumberCommandHandler{uowFactory: uowFactory}
}

// Handle draws the next sequence value for today and returns the formatted
// number.
func (h *GenerateBusinessNumberCommandHandler) Handle(ctx context.Context, cmd GenerateBusinessNumberCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	sequence, err := uow.SequenceRepository().Next(ctx, cmd.Prefix(), now)
	if err != nil {
		return "", err
	}
	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return kernel.FormatBusinessNumber(cmd.Prefix(), now, sequence), nil
}
