package ports

import (
	"context"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/notification"
)

// OutboxMessage is a notification queued for relay together with its relay
// bookkeeping. Rows are written in the same transaction as the mutation that
// produced them.
type OutboxMessage struct {
	ID           kernel.UUID
	Notification notification.Notification
	Status       notification.RelayStatus
	Attempts     int
	LastError    string
	CreatedAt    time.Time
}

// OutboxRepository defines the persistence contract for the notification
// outbox.
type OutboxRepository interface {
	// Add queues notifications for relay. Called inside the transaction of
	// the mutation that produced them.
	Add(ctx context.Context, notifications []notification.Notification) error

	// GetPending retrieves up to limit messages still awaiting relay, oldest
	// first.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent records a successful relay of the message.
	MarkSent(ctx context.Context, id kernel.UUID) error

	// MarkFailed records a failed relay attempt. Once attempts reaches
	// maxAttempts the message moves to the failed state and is not retried.
	MarkFailed(ctx context.Context, id kernel.UUID, relayErr string, maxAttempts int) error
}
