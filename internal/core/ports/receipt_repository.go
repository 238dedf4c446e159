package ports

import (
	"context"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/receipt"
)

// ReceiptRepository defines the persistence contract for receipt aggregates.
type ReceiptRepository interface {
	// Add persists a new receipt aggregate to storage.
	Add(ctx context.Context, aggregate *receipt.Receipt) error

	// Update persists changes to an existing receipt aggregate.
	Update(ctx context.Context, aggregate *receipt.Receipt) error

	// Get retrieves a receipt by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error)

	// GetByNumber retrieves a receipt by its receipt number.
	GetByNumber(ctx context.Context, receiptNumber string) (*receipt.Receipt, error)

	// Delete removes a receipt by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
