package ports

import (
	"context"
	"time"

	"consolidation/internal/core/domain/model/kernel"
)

// SequenceRepository hands out day-scoped sequence numbers for business
// identifiers such as tracking, receipt and request numbers. Next is atomic:
// two concurrent calls for the same prefix and day never return the same
// value.
type SequenceRepository interface {
	// Next returns the next sequence value for the prefix on the calendar
	// day of the given time, starting at 1.
	Next(ctx context.Context, prefix kernel.NumberPrefix, day time.Time) (int64, error)
}
