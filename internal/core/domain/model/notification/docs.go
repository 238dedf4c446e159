// Package notification provides the Notification value object queued in the
// transactional outbox and relayed to the external notification service.
package notification
