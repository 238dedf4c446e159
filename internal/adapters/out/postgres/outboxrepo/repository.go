package outboxrepo

import (
	"context"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/notification"
	"consolidation/internal/core/ports"
	"consolidation/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add queues notifications for relay. Meant to run inside the transaction of
// the mutation that produced them so the queue and the mutation commit or
// roll back together.
func (r *GormOutboxRepository) Add(ctx context.Context, notifications []notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	now := time.Now().UTC()
	dtos := make([]OutboxMessageDTO, 0, len(notifications))
	for _, note := range notifications {
		if err := note.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromNotification(note, now))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetPending retrieves up to limit pending messages, oldest first. Rows are
// locked with FOR UPDATE SKIP LOCKED so overlapping relay passes never pick
// up the same message.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, nil)
	}

	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", notification.RelayPending.String()).
		Order("created_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		message, msgErr := toMessage(dto)
		if msgErr != nil {
			return nil, msgErr
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// MarkSent records a successful relay of the message.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"status":     notification.RelaySent.String(),
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": "",
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxMessage", id.String())
	}

	return nil
}

// MarkFailed records a failed relay attempt. The message stays pending until
// attempts reaches maxAttempts, after which it moves to the failed state and
// is not picked up again.
func (r *GormOutboxRepository) MarkFailed(
	ctx context.Context,
	id kernel.UUID,
	relayErr string,
	maxAttempts int,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": relayErr,
			"status": gorm.Expr(
				"CASE WHEN attempts + 1 >= ? THEN ? ELSE ? END",
				maxAttempts,
				notification.RelayFailed.String(),
				notification.RelayPending.String(),
			),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxMessage", id.String())
	}

	return nil
}
