package ports

import (
	"context"

	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/kernel"
)

// ConsolidationRepository defines the persistence contract for consolidation
// aggregates. Lookups exist for every business key the HTTP surface exposes.
type ConsolidationRepository interface {
	// Add persists a new consolidation aggregate to storage.
	Add(ctx context.Context, aggregate *consolidation.Consolidation) error

	// Update persists changes to an existing consolidation aggregate.
	Update(ctx context.Context, aggregate *consolidation.Consolidation) error

	// Get retrieves a consolidation by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error)

	// GetByReferenceCode retrieves a consolidation by its reference code.
	GetByReferenceCode(ctx context.Context, referenceCode string) (*consolidation.Consolidation, error)

	// GetByTrackingNumber retrieves a consolidation by its master tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*consolidation.Consolidation, error)

	// ExistsByReferenceCode reports whether the reference code is taken.
	ExistsByReferenceCode(ctx context.Context, referenceCode string) (bool, error)

	// ExistsByTrackingNumber reports whether the master tracking number is taken.
	ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error)

	// Delete removes a consolidation by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
