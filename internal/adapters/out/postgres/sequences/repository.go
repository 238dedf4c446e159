// Package sequences hands out day-scoped sequence numbers for business
// identifiers. The counter is a single row per prefix and day, advanced with
// an atomic upsert, so concurrent callers never receive the same value.
package sequences

import (
	"context"
	"time"

	"consolidation/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// SequenceCounterDTO represents one per-day counter row.
type SequenceCounterDTO struct {
	Prefix string `gorm:"primaryKey;size:8"`
	Day    string `gorm:"primaryKey;size:8"`
	Value  int64  `gorm:"not null"`
}

// TableName specifies the database table name for sequence counters.
func (SequenceCounterDTO) TableName() string {
	return "sequence_counters"
}

// GormSequenceRepository implements SequenceRepository using GORM.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GORM sequence repository.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next returns the next sequence value for the prefix on the calendar day of
// the given time, starting at 1. The counter is keyed on the date in the
// time's own location, the same date FormatBusinessNumber stamps into the
// issued identifier, so every instant of one local day draws from one
// counter row. The insert-or-increment runs as one statement so two
// concurrent calls for the same prefix and day can never observe the same
// value.
func (r *GormSequenceRepository) Next(
	ctx context.Context,
	prefix kernel.NumberPrefix,
	day time.Time,
) (int64, error) {
	if err := prefix.Validate(); err != nil {
		return 0, err
	}

	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (prefix, day, value)
		VALUES (?, ?, 1)
		ON CONFLICT (prefix, day)
		DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value
	`, prefix.String(), day.Format("20060102")).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
