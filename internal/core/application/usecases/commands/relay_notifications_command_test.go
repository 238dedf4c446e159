package commands_test

import (
	"errors"
	"testing"
	"time"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/notification"
	"consolidation/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingMessage(t *testing.T) ports.OutboxMessage {
	t.Helper()
	n, err := notification.NewNotification(
		kernel.NewUUID(), "Delivery Started", "Delivery for consolidation CON-001 has started",
		kernel.NewUUID(),
		[]notification.Channel{notification.ChannelInApp, notification.ChannelEmail})
	require.NoError(t, err)
	return ports.OutboxMessage{
		ID:           kernel.NewUUID(),
		Notification: n,
		Status:       notification.RelayPending,
		CreatedAt:    time.Now(),
	}
}

func TestNewRelayNotificationsCommand(t *testing.T) {
	_, err := commands.NewRelayNotificationsCommand(0, 5)
	require.Error(t, err)

	_, err = commands.NewRelayNotificationsCommand(50, 0)
	require.Error(t, err)
}

func TestRelayNotificationsCommandHandler_Handle_SendsPending(t *testing.T) {
	ctx := t.Context()
	first := pendingMessage(t)
	second := pendingMessage(t)
	cmd, err := commands.NewRelayNotificationsCommand(50, 5)
	require.NoError(t, err)

	outboxRepo := new(MockOutboxRepository)
	client := new(MockNotificationClient)
	uow := new(MockOutboxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("GetPending", mock.Anything, 50).
			Return([]ports.OutboxMessage{first, second}, nil).Once(),
		client.On("Send", mock.Anything, first.Notification).Return(nil).Once(),
		outboxRepo.On("MarkSent", mock.Anything, first.ID).Return(nil).Once(),
		client.On("Send", mock.Anything, second.Notification).Return(nil).Once(),
		outboxRepo.On("MarkSent", mock.Anything, second.ID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRelayNotificationsCommandHandler(factory, client)
	sent, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, sent)
	outboxRepo.AssertExpectations(t)
	client.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRelayNotificationsCommandHandler_Handle_SendFailureDoesNotAbortPass(t *testing.T) {
	ctx := t.Context()
	failing := pendingMessage(t)
	ok := pendingMessage(t)
	cmd, err := commands.NewRelayNotificationsCommand(50, 5)
	require.NoError(t, err)

	outboxRepo := new(MockOutboxRepository)
	client := new(MockNotificationClient)
	uow := new(MockOutboxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("GetPending", mock.Anything, 50).
			Return([]ports.OutboxMessage{failing, ok}, nil).Once(),
		client.On("Send", mock.Anything, failing.Notification).
			Return(errors.New("connection refused")).Once(),
		outboxRepo.On("MarkFailed", mock.Anything, failing.ID, "connection refused", 5).Return(nil).Once(),
		client.On("Send", mock.Anything, ok.Notification).Return(nil).Once(),
		outboxRepo.On("MarkSent", mock.Anything, ok.ID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRelayNotificationsCommandHandler(factory, client)
	sent, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, sent)
	outboxRepo.AssertExpectations(t)
	client.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRelayNotificationsCommandHandler_Handle_EmptyOutbox(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayNotificationsCommand(50, 5)
	require.NoError(t, err)

	outboxRepo := new(MockOutboxRepository)
	client := new(MockNotificationClient)
	uow := new(MockOutboxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("GetPending", mock.Anything, 50).Return([]ports.OutboxMessage{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRelayNotificationsCommandHandler(factory, client)
	sent, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 0, sent)
	uow.AssertExpectations(t)
}
