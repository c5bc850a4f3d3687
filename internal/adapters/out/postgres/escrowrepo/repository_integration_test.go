package escrowrepo_test

import (
	"context"
	"testing"
	"time"

	"settlement/internal/adapters/out/postgres/escrowrepo"
	"settlement/internal/core/domain/model/escrow"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// EscrowRepositoryIntegrationTestSuite verifies the persistence rules that
// keep funds movement exactly-once: the one-entry-per-order primary key and
// the compare-and-set against the Held status.
type EscrowRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *escrowrepo.GormEscrowRepository
	tracker    *MockAggregateTracker
}

func (suite *EscrowRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError turns the driver's duplicate-key error into
	// gorm.ErrDuplicatedKey, which Add depends on. Production opens the
	// connection the same way.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&escrowrepo.EntryDTO{}))
}

func (suite *EscrowRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE escrow_entries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = escrowrepo.NewGormEscrowRepository(suite.db, suite.tracker)
}

func (suite *EscrowRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EscrowRepositoryIntegrationTestSuite) createHeldEntry() *escrow.Entry {
	entry, err := escrow.NewEntry(kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustMoney(131_000), kernel.MustMoney(114_000))
	suite.Require().NoError(err)
	return entry
}

func (suite *EscrowRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	entry := suite.createHeldEntry()

	suite.Require().NoError(suite.repository.Add(ctx, entry))

	loaded, err := suite.repository.GetByOrderID(ctx, entry.OrderID())
	suite.Require().NoError(err)
	suite.Equal(escrow.Held, loaded.Status())
	suite.Equal(int64(131_000), loaded.HeldAmount().Amount())
	suite.Equal(int64(114_000), loaded.SellerAmount().Amount())
	suite.True(loaded.SellerID().IsEqual(entry.SellerID()))
}

func (suite *EscrowRepositoryIntegrationTestSuite) TestAdd_DuplicateOrder() {
	ctx := context.Background()
	entry := suite.createHeldEntry()
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	second, err := escrow.NewEntry(entry.OrderID(), kernel.NewUUID(),
		kernel.MustMoney(99_000), kernel.MustMoney(90_000))
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, escrow.ErrDuplicateEntry)
}

func (suite *EscrowRepositoryIntegrationTestSuite) TestUpdateFromHeld_ResolvesOnce() {
	ctx := context.Background()
	entry := suite.createHeldEntry()
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	// Two settlement paths load the Held entry concurrently.
	release, err := suite.repository.GetByOrderID(ctx, entry.OrderID())
	suite.Require().NoError(err)
	refund, err := suite.repository.GetByOrderID(ctx, entry.OrderID())
	suite.Require().NoError(err)

	_, err = release.Release()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.UpdateFromHeld(ctx, release))

	// The refund arrives second and must lose: its write matches no Held row.
	suite.Require().NoError(refund.Refund())
	err = suite.repository.UpdateFromHeld(ctx, refund)

	suite.Require().ErrorIs(err, escrow.ErrAlreadyResolved)

	loaded, err := suite.repository.GetByOrderID(ctx, entry.OrderID())
	suite.Require().NoError(err)
	suite.Equal(escrow.Released, loaded.Status())
}

func (suite *EscrowRepositoryIntegrationTestSuite) TestGetByOrderID_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByOrderID(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestEscrowRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EscrowRepositoryIntegrationTestSuite))
}
