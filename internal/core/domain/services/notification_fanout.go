package services

import (
	"fmt"

	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/notification"
)

// NotificationFanout is a domain service that decides who gets notified about
// a consolidation event and over which channels.
//
// Fan-out rules:
//   - Consolidation created: creator via in_app and email
//   - Status changed (old != new): creator via in_app and email; the assigned
//     driver additionally via in_app and push when the new status is
//     in_transit or out_for_delivery
//   - Driver assigned: driver via in_app, push and email; creator via in_app
//   - Delivery started: consolidation creator via in_app and email
//   - Delivery completed: consolidation creator via in_app, email and sms
//
// The service only produces Notification values. Queueing and delivery are
// the caller's concern, and delivery failures never reach the API caller.
type NotificationFanout struct{}

// NewNotificationFanout creates a new NotificationFanout instance.
func NewNotificationFanout() NotificationFanout {
	return NotificationFanout{}
}

// ConsolidationCreated notifies the creator that the consolidation exists.
func (f NotificationFanout) ConsolidationCreated(c *consolidation.Consolidation) ([]notification.Notification, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := notification.NewNotification(
		c.CreatedBy(),
		"Consolidation Created",
		fmt.Sprintf("Consolidation %s has been created", c.ReferenceCode()),
		c.ID(),
		[]notification.Channel{notification.ChannelInApp, notification.ChannelEmail},
	)
	if err != nil {
		return nil, err
	}

	return []notification.Notification{created}, nil
}

// ConsolidationStatusChanged notifies the creator about a status transition
// and, when the consolidation goes on the road, the assigned driver as well.
// Equal old and new statuses produce no notifications.
func (f NotificationFanout) ConsolidationStatusChanged(
	c *consolidation.Consolidation,
	oldStatus consolidation.Status,
) ([]notification.Notification, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if oldStatus == c.Status() {
		return nil, nil
	}

	creatorNote, err := notification.NewNotification(
		c.CreatedBy(),
		"Consolidation Status Updated",
		fmt.Sprintf("Consolidation %s status changed from %s to %s",
			c.ReferenceCode(), oldStatus, c.Status()),
		c.ID(),
		[]notification.Channel{notification.ChannelInApp, notification.ChannelEmail},
	)
	if err != nil {
		return nil, err
	}
	notifications := []notification.Notification{creatorNote}

	if f.notifiesDriver(c.Status()) && c.AssignedDriver() != nil {
		driverNote, err := notification.NewNotification(
			*c.AssignedDriver(),
			"Consolidation Status Updated",
			fmt.Sprintf("Consolidation %s is now %s", c.ReferenceCode(), c.Status()),
			c.ID(),
			[]notification.Channel{notification.ChannelInApp, notification.ChannelPush},
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, driverNote)
	}

	return notifications, nil
}

// DriverAssigned notifies the driver about the new delivery and the creator
// that a driver has been found.
func (f NotificationFanout) DriverAssigned(
	c *consolidation.Consolidation,
	driverID kernel.UUID,
) ([]notification.Notification, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	driverNote, err := notification.NewNotification(
		driverID,
		"New Delivery Assigned",
		fmt.Sprintf("You have been assigned a new delivery for consolidation %s",
			c.ReferenceCode()),
		c.ID(),
		[]notification.Channel{
			notification.ChannelInApp, notification.ChannelPush, notification.ChannelEmail},
	)
	if err != nil {
		return nil, err
	}

	creatorNote, err := notification.NewNotification(
		c.CreatedBy(),
		"Driver Assigned",
		fmt.Sprintf("A driver has been assigned to consolidation %s", c.ReferenceCode()),
		c.ID(),
		[]notification.Channel{notification.ChannelInApp},
	)
	if err != nil {
		return nil, err
	}

	return []notification.Notification{driverNote, creatorNote}, nil
}

// DeliveryStarted notifies the consolidation creator that the driver is on
// the way.
func (f NotificationFanout) DeliveryStarted(c *consolidation.Consolidation) ([]notification.Notification, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	started, err := notification.NewNotification(
		c.CreatedBy(),
		"Delivery Started",
		fmt.Sprintf("Delivery for consolidation %s has started", c.ReferenceCode()),
		c.ID(),
		[]notification.Channel{notification.ChannelInApp, notification.ChannelEmail},
	)
	if err != nil {
		return nil, err
	}

	return []notification.Notification{started}, nil
}

// DeliveryCompleted notifies the consolidation creator that the parcels
// arrived.
func (f NotificationFanout) DeliveryCompleted(c *consolidation.Consolidation) ([]notification.Notification, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	completed, err := notification.NewNotification(
		c.CreatedBy(),
		"Delivery Completed",
		fmt.Sprintf("Delivery for consolidation %s has been completed", c.ReferenceCode()),
		c.ID(),
		[]notification.Channel{
			notification.ChannelInApp, notification.ChannelEmail, notification.ChannelSMS},
	)
	if err != nil {
		return nil, err
	}

	return []notification.Notification{completed}, nil
}

func (f NotificationFanout) notifiesDriver(status consolidation.Status) bool {
	return status == consolidation.StatusInTransit ||
		status == consolidation.StatusOutForDelivery
}
