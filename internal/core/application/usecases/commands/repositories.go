// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"consolidation/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ConsolidationRepoFactory provides access to the consolidation repository within a transaction.
	ConsolidationRepoFactory interface {
		ConsolidationRepository() ports.ConsolidationRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ReceiptRepoFactory provides access to the receipt repository within a transaction.
	ReceiptRepoFactory interface {
		ReceiptRepository() ports.ReceiptRepository
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// OutboxRepoFactory provides access to the notification outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// SequenceRepoFactory provides access to the sequence counters within a transaction.
	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	// ConsolidationUoW manages transactions for consolidation operations.
	// Creation and status changes also queue notifications and draw sequence
	// numbers, so the outbox and sequence repositories ride along.
	ConsolidationUoW interface {
		TxManager
		ConsolidationRepoFactory
		OutboxRepoFactory
		SequenceRepoFactory
	}

	// ConsolidationUoWFactory creates new consolidation unit of work instances.
	ConsolidationUoWFactory interface {
		Create() ConsolidationUoW
	}

	// DeliveryUoW manages transactions that span a delivery and its
	// consolidation, such as assigning a driver or starting and ending a run.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		ConsolidationRepoFactory
		OutboxRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ReceiptUoW manages transactions for receipt operations.
	ReceiptUoW interface {
		TxManager
		ReceiptRepoFactory
		ConsolidationRepoFactory
		SequenceRepoFactory
	}

	// ReceiptUoWFactory creates new receipt unit of work instances.
	ReceiptUoWFactory interface {
		Create() ReceiptUoW
	}

	// RequestUoW manages transactions for request operations.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
		SequenceRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// OutboxUoW manages transactions for the notification relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// SequenceUoW manages transactions that only draw a sequence number,
	// such as the generate-number endpoints.
	SequenceUoW interface {
		TxManager
		SequenceRepoFactory
	}

	// SequenceUoWFactory creates new sequence unit of work instances.
	SequenceUoWFactory interface {
		Create() SequenceUoW
	}
)
