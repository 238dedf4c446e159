package sequences_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"consolidation/internal/adapters/out/postgres/sequences"
	"consolidation/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SequenceRepositoryIntegrationTestSuite verifies that day-scoped counters
// are atomic and isolated per prefix and day.
type SequenceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *sequences.GormSequenceRepository
}

func (suite *SequenceRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&sequences.SequenceCounterDTO{}))
}

func (suite *SequenceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE sequence_counters").Error)
	suite.repository = sequences.NewGormSequenceRepository(suite.db)
}

func (suite *SequenceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_StartsAtOneAndIncrements() {
	ctx := context.Background()
	day := time.Date(2024, 3, 2, 15, 4, 5, 0, time.UTC)

	for expected := int64(1); expected <= 3; expected++ {
		value, err := suite.repository.Next(ctx, kernel.PrefixTracking, day)
		suite.Require().NoError(err)
		suite.Equal(expected, value)
	}
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_IsolatedPerPrefixAndDay() {
	ctx := context.Background()
	day := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	value, err := suite.repository.Next(ctx, kernel.PrefixTracking, day)
	suite.Require().NoError(err)
	suite.Equal(int64(1), value)

	// A different prefix on the same day starts its own counter.
	value, err = suite.repository.Next(ctx, kernel.PrefixReceipt, day)
	suite.Require().NoError(err)
	suite.Equal(int64(1), value)

	// The same prefix resets on the next day.
	value, err = suite.repository.Next(ctx, kernel.PrefixTracking, nextDay)
	suite.Require().NoError(err)
	suite.Equal(int64(1), value)

	value, err = suite.repository.Next(ctx, kernel.PrefixTracking, day)
	suite.Require().NoError(err)
	suite.Equal(int64(2), value)
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_LocalDayStraddlingUTCMidnightUsesOneCounter() {
	ctx := context.Background()
	zone := time.FixedZone("UTC+2", 2*60*60)

	// Both instants fall on the same local day but on opposite sides of UTC
	// midnight. They must draw one continuous sequence under one date label.
	beforeUTCMidnight := time.Date(2024, 1, 15, 0, 30, 0, 0, zone)
	afterUTCMidnight := time.Date(2024, 1, 15, 3, 0, 0, 0, zone)

	first, err := suite.repository.Next(ctx, kernel.PrefixTracking, beforeUTCMidnight)
	suite.Require().NoError(err)
	suite.Equal(int64(1), first)

	second, err := suite.repository.Next(ctx, kernel.PrefixTracking, afterUTCMidnight)
	suite.Require().NoError(err)
	suite.Equal(int64(2), second)

	suite.Equal(
		"MTN-20240115-0001",
		kernel.FormatBusinessNumber(kernel.PrefixTracking, beforeUTCMidnight, first),
	)
	suite.Equal(
		"MTN-20240115-0002",
		kernel.FormatBusinessNumber(kernel.PrefixTracking, afterUTCMidnight, second),
	)

	// The previous local day keeps its own counter.
	previousLocalDay := time.Date(2024, 1, 14, 23, 30, 0, 0, zone)
	value, err := suite.repository.Next(ctx, kernel.PrefixTracking, previousLocalDay)
	suite.Require().NoError(err)
	suite.Equal(int64(1), value)
	suite.Equal(
		"MTN-20240114-0001",
		kernel.FormatBusinessNumber(kernel.PrefixTracking, previousLocalDay, value),
	)
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_ConcurrentCallersGetDistinctValues() {
	ctx := context.Background()
	day := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	const callers = 20

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		values = make(map[int64]struct{}, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := suite.repository.Next(ctx, kernel.PrefixRequest, day)
			suite.Require().NoError(err)
			mu.Lock()
			values[value] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	suite.Len(values, callers)
	for value := range values {
		suite.GreaterOrEqual(value, int64(1))
		suite.LessOrEqual(value, int64(callers))
	}
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_RejectsUnknownPrefix() {
	ctx := context.Background()

	_, err := suite.repository.Next(ctx, kernel.NumberPrefix("XXX"), time.Now())
	suite.Require().Error(err)
}

func TestSequenceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceRepositoryIntegrationTestSuite))
}
