package jobs

import (
	"context"
	"log/slog"

	"consolidation/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationRelayJob drains the notification outbox on a schedule. Each
// pass sends up to batchSize pending messages to the notification service.
type NotificationRelayJob struct {
	handler     commands.RelayNotificationsCommandHandler
	schedule    string
	batchSize   int
	maxAttempts int
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewNotificationRelayJob creates the outbox relay job. The schedule is a
// six-field cron expression with a seconds column.
func NewNotificationRelayJob(
	handler commands.RelayNotificationsCommandHandler,
	schedule string,
	batchSize int,
	maxAttempts int,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler:     handler,
		schedule:    schedule,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "notification_relay_job"),
	}
}

// Start begins the scheduled relay passes.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRelayNotificationsCommand(j.batchSize, j.maxAttempts)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification relay command rejected", "error", err)
			return
		}

		sent, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification relay pass failed", "error", err)
			return
		}

		if sent > 0 {
			j.logger.InfoContext(ctx, "Notification relay pass completed", "sent", sent)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started", "schedule", j.schedule)
	return nil
}

// Stop stops the relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
