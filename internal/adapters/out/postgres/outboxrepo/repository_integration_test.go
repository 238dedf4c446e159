package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"consolidation/internal/adapters/out/postgres/outboxrepo"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/notification"
	"consolidation/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OutboxRepositoryIntegrationTestSuite verifies relay bookkeeping and the
// row locking that keeps overlapping relay passes from double-sending.
type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&outboxrepo.OutboxMessageDTO{}))
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notification_outbox").Error)
	suite.repository = outboxrepo.NewGormOutboxRepository(suite.db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) queueNotification(title string) notification.Notification {
	note, err := notification.NewNotification(
		kernel.NewUUID(),
		title,
		"Consolidation CON-001 has been updated",
		kernel.NewUUID(),
		[]notification.Channel{notification.ChannelInApp, notification.ChannelEmail},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(
		context.Background(), []notification.Notification{note}))

	return note
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAddAndGetPending_OldestFirst() {
	ctx := context.Background()

	first := suite.queueNotification("Consolidation Created")
	second := suite.queueNotification("Status Updated")

	messages, err := suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)

	suite.Equal(first.Title(), messages[0].Notification.Title())
	suite.Equal(second.Title(), messages[1].Notification.Title())
	suite.Equal(notification.RelayPending, messages[0].Status)
	suite.Equal(0, messages[0].Attempts)
	suite.True(messages[0].Notification.UserID().IsEqual(first.UserID()))
	suite.Equal(first.Channels(), messages[0].Notification.Channels())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetPending_RejectsNonPositiveLimit() {
	_, err := suite.repository.GetPending(context.Background(), 0)
	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetPending_SkipsRowsLockedByAnotherPass() {
	ctx := context.Background()
	suite.queueNotification("Consolidation Created")

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	locked, err := outboxrepo.NewGormOutboxRepository(tx).GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)

	// A second relay pass on its own connection skips the locked row.
	messages, err := suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(messages)

	suite.Require().NoError(tx.Rollback().Error)

	messages, err = suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Len(messages, 1)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkSent_RemovesFromPending() {
	ctx := context.Background()
	suite.queueNotification("Consolidation Created")

	messages, err := suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)

	suite.Require().NoError(suite.repository.MarkSent(ctx, messages[0].ID))

	messages, err = suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(messages)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkFailed_RetriesUntilMaxAttempts() {
	ctx := context.Background()
	suite.queueNotification("Consolidation Created")

	messages, err := suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	id := messages[0].ID

	suite.Require().NoError(suite.repository.MarkFailed(ctx, id, "connection refused", 2))

	// One failure out of two allowed attempts keeps the message pending.
	messages, err = suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal(1, messages[0].Attempts)
	suite.Equal("connection refused", messages[0].LastError)

	suite.Require().NoError(suite.repository.MarkFailed(ctx, id, "connection refused", 2))

	messages, err = suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(messages)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMark_UnknownMessage() {
	ctx := context.Background()

	err := suite.repository.MarkSent(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.MarkFailed(ctx, kernel.NewUUID(), "boom", 3)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
