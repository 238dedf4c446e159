package ports

import (
	"context"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for request aggregates.
type RequestRepository interface {
	// Add persists a new request aggregate to storage.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing request aggregate.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// GetByNumber retrieves a request by its request number.
	GetByNumber(ctx context.Context, requestNumber string) (*request.Request, error)

	// Delete removes a request by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
