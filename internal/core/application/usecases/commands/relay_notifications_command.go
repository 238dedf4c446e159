package commands

import (
	"context"
	"errors"

	"consolidation/internal/core/ports"
	"consolidation/internal/pkg/guard"
)

var ErrRelayNotificationsCommandIsNotConstructed = errors.New(
	"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
)

// RelayNotificationsCommand represents one relay pass over the notification
// outbox.
type RelayNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize   int
	maxAttempts int

	guard guard.ConstructorGuard
}

// NewRelayNotificationsCommand creates a command for a relay pass. Both the
// batch size and the attempt ceiling must be positive.
func NewRelayNotificationsCommand(batchSize, maxAttempts int) (RelayNotificationsCommand, error) {
	if batchSize <= 0 {
		return RelayNotificationsCommand{}, errors.New("batch size must be greater than 0")
	}
	if maxAttempts <= 0 {
		return RelayNotificationsCommand{}, errors.New("max attempts must be greater than 0")
	}

	return RelayNotificationsCommand{
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of messages relayed per pass.
func (c RelayNotificationsCommand) BatchSize() int {
	return c.batchSize
}

// MaxAttempts returns the attempt ceiling before a message is marked failed.
func (c RelayNotificationsCommand) MaxAttempts() int {
	return c.maxAttempts
}

// RelayNotificationsCommandHandler drains the notification outbox. Each
// pending message is POSTed to the notification service; failures bump the
// attempt counter and the message is eventually marked failed. Relay
// outcomes never propagate to the API callers whose mutations queued the
// messages.
type RelayNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	client     ports.NotificationClient
}

// NewRelayNotificationsCommandHandler creates a handler for relay passes.
func NewRelayNotificationsCommandHandler(
	uowFactory OutboxUoWFactory,
	client ports.NotificationClient,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		client:     client,
	}
}

// Handle performs one relay pass and returns the number of messages sent.
// Send failures are recorded per message and do not abort the pass.
func (h *RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	pending, err := outbox.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, message := range pending {
		if sendErr := h.client.Send(ctx, message.Notification); sendErr != nil {
			if err = outbox.MarkFailed(ctx, message.ID, sendErr.Error(), cmd.MaxAttempts()); err != nil {
				return sent, err
			}
			continue
		}
		if err = outbox.MarkSent(ctx, message.ID); err != nil {
			return sent, err
		}
		sent++
	}

	return sent, uow.Commit(ctx)
}
