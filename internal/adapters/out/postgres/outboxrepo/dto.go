// Package outboxrepo persists the notification outbox. Outbox rows are
// written in the same transaction as the domain mutation that produced them
// and relayed to the notification service by a background job.
package outboxrepo

import (
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/notification"
	"consolidation/internal/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OutboxMessageDTO represents the database structure for queued
// notifications. Status and created_at are indexed together because the
// relay polls pending rows oldest first.
type OutboxMessageDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null"`
	Type       string         `gorm:"not null"`
	Title      string         `gorm:"not null"`
	Message    string         `gorm:"not null"`
	EntityType string         `gorm:"not null"`
	EntityID   uuid.UUID      `gorm:"type:uuid;not null"`
	Channels   pq.StringArray `gorm:"type:text[]"`
	Status     string         `gorm:"index:idx_outbox_pending;not null"`
	Attempts   int            `gorm:"not null;default:0"`
	LastError  string
	CreatedAt  time.Time `gorm:"index:idx_outbox_pending"`
}

// TableName specifies the database table name for outbox messages.
func (OutboxMessageDTO) TableName() string {
	return "notification_outbox"
}

// fromNotification converts a freshly queued notification to its database
// representation.
func fromNotification(note notification.Notification, now time.Time) OutboxMessageDTO {
	channels := make(pq.StringArray, 0, len(note.Channels()))
	for _, channel := range note.Channels() {
		channels = append(channels, channel.String())
	}

	return OutboxMessageDTO{
		ID:         uuid.New(),
		UserID:     note.UserID().Bytes(),
		Type:       note.Type(),
		Title:      note.Title(),
		Message:    note.Message(),
		EntityType: note.EntityType(),
		EntityID:   note.EntityID().Bytes(),
		Channels:   channels,
		Status:     notification.RelayPending.String(),
		Attempts:   0,
		CreatedAt:  now,
	}
}

// toMessage converts a database DTO to an outbox message.
func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	channels := make([]notification.Channel, 0, len(dto.Channels))
	for _, channel := range dto.Channels {
		channels = append(channels, notification.Channel(channel))
	}

	note, err := notification.NewNotification(userID, dto.Title, dto.Message, entityID, channels)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:           id,
		Notification: note,
		Status:       notification.RelayStatus(dto.Status),
		Attempts:     dto.Attempts,
		LastError:    dto.LastError,
		CreatedAt:    dto.CreatedAt,
	}, nil
}
