package ports

import (
	"context"

	"consolidation/internal/core/domain/model/notification"
)

// NotificationClient delivers a notification to the external notification
// service. Implementations return an error on transport failures and
// non-success responses; retries are the relay's concern.
type NotificationClient interface {
	Send(ctx context.Context, n notification.Notification) error
}
