package notification

import (
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

// Channel is a delivery channel of the external notification service.
type Channel string

const (
	ChannelInApp Channel = "in_app"
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
	ChannelSMS   Channel = "sms"
)

func (c Channel) Validate() error {
	switch c {
	case ChannelInApp, ChannelEmail, ChannelPush, ChannelSMS:
		return nil
	default:
		return errs.NewValueIsInvalidError("channel")
	}
}

func (c Channel) String() string {
	return string(c)
}

// TypeConsolidationUpdate is the only notification type this service emits.
const TypeConsolidationUpdate = "consolidation_update"

// EntityTypeConsolidation labels the entity a notification refers to.
const EntityTypeConsolidation = "Consolidation"

// RelayStatus is the outbox state of a queued notification.
type RelayStatus string

const (
	RelayPending RelayStatus = "pending"
	RelaySent    RelayStatus = "sent"
	RelayFailed  RelayStatus = "failed"
)

// String returns the string representation of the relay status.
func (s RelayStatus) String() string {
	return string(s)
}

var ErrNotificationIsNotConstructed = errs.NewValueIsRequiredError(
	"notification must be created via NewNotification")

// Notification is one message queued for a single recipient. Fan-out to
// multiple recipients produces one Notification per recipient.
type Notification struct {
	userID     kernel.UUID
	title      string
	message    string
	entityType string
	entityID   kernel.UUID
	channels   []Channel

	guard guard.ConstructorGuard
}

// NewNotification queues a consolidation update for one recipient.
func NewNotification(
	userID kernel.UUID,
	title string,
	message string,
	entityID kernel.UUID,
	channels []Channel,
) (Notification, error) {
	if err := userID.Validate(); err != nil {
		return Notification{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if title == "" {
		return Notification{}, errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return Notification{}, errs.NewValueIsRequiredError("message")
	}
	if err := entityID.Validate(); err != nil {
		return Notification{}, errs.NewValueIsRequiredErrorWithCause("entityId", err)
	}
	if len(channels) == 0 {
		return Notification{}, errs.NewValueIsRequiredError("channels")
	}
	for _, channel := range channels {
		if err := channel.Validate(); err != nil {
			return Notification{}, err
		}
	}

	return Notification{
		userID:     userID,
		title:      title,
		message:    message,
		entityType: EntityTypeConsolidation,
		entityID:   entityID,
		channels:   append([]Channel(nil), channels...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (n Notification) UserID() kernel.UUID {
	return n.userID
}

// Type is constant across all notifications this service produces.
func (n Notification) Type() string {
	return TypeConsolidationUpdate
}

func (n Notification) Title() string {
	return n.title
}

func (n Notification) Message() string {
	return n.message
}

func (n Notification) EntityType() string {
	return n.entityType
}

func (n Notification) EntityID() kernel.UUID {
	return n.entityID
}

func (n Notification) Channels() []Channel {
	return append([]Channel(nil), n.channels...)
}

func (n Notification) Validate() error {
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}
