package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ConsolidationRepository returns a repository bound to the current transaction.
	ConsolidationRepository() ConsolidationRepository

	// DeliveryRepository returns a repository bound to the current transaction.
	DeliveryRepository() DeliveryRepository

	// ReceiptRepository returns a repository bound to the current transaction.
	ReceiptRepository() ReceiptRepository

	// RequestRepository returns a repository bound to the current transaction.
	RequestRepository() RequestRepository

	// OutboxRepository returns a repository bound to the current transaction.
	OutboxRepository() OutboxRepository

	// SequenceRepository returns a repository bound to the current transaction.
	// Sequence numbers issued through it commit or roll back with the rest of
	// the unit of work.
	SequenceRepository() SequenceRepository
}
