package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/statuschangerepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection.
// Runs database migrations to prepare the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &statuschangerepo.StatusChangeDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, status_changes").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.StatusChangeRepository(), "First instance should provide status change repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.StatusChangeRepository(), "Second instance should provide status change repository")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_TransitionIsAtomic verifies the order update and its audit
// record land in the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransitionIsAtomic() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder, err := order.NewOrder(kernel.NewUUID(), 42, "1 Baker Street")
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	change, err := testOrder.ChangeStatus("confirmed")
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.StatusChangeRepository().Add(ctx, change)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Both sides of the transition are visible from a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().GetByNumber(ctx, 42)
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrievedOrder.Status())

	history, err := newUow.StatusChangeRepository().GetByOrderNumber(ctx, 42)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(order.Pending, history[0].From())
	suite.Equal(order.Confirmed, history[0].To())
}

// TestUnitOfWork_RollbackDiscardsTransition verifies a rolled-back transition
// leaves neither the status update nor the audit record behind.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsTransition() {
	ctx := context.Background()

	// Persist a pending order first
	setupUow := suite.factory.Create()
	testOrder, err := order.NewOrder(kernel.NewUUID(), 42, "1 Baker Street")
	suite.Require().NoError(err)

	err = setupUow.Begin(ctx)
	suite.Require().NoError(err)
	err = setupUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = setupUow.Commit(ctx)
	suite.Require().NoError(err)

	// Execute a transition but roll it back
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	change, err := testOrder.ChangeStatus("confirmed")
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.StatusChangeRepository().Add(ctx, change)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// The stored order is still pending and no history was written
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().GetByNumber(ctx, 42)
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrievedOrder.Status())

	history, err := newUow.StatusChangeRepository().GetByOrderNumber(ctx, 42)
	suite.Require().NoError(err)
	suite.Empty(history)
}

// TestUnitOfWork_ConcurrentTransitionsAreSerialized runs two overlapping
// unit of works against the same order. The first locks the row, moves the
// order to reached_delivery and commits; the second's load must wait on the
// lock and then validate its cancellation against the committed status, not
// the out_for_delivery it would have seen mid-flight.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentTransitionsAreSerialized() {
	ctx := context.Background()

	setupUow := suite.factory.Create()
	testOrder, err := order.RestoreOrder(kernel.NewUUID(), 42, "1 Baker Street", order.OutForDelivery)
	suite.Require().NoError(err)

	err = setupUow.Begin(ctx)
	suite.Require().NoError(err)
	err = setupUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = setupUow.Commit(ctx)
	suite.Require().NoError(err)

	// First transaction loads the order and holds the row lock
	firstUow := suite.factory.Create()
	err = firstUow.Begin(ctx)
	suite.Require().NoError(err)

	firstOrder, err := firstUow.OrderRepository().GetByNumber(ctx, 42)
	suite.Require().NoError(err)

	type cancelOutcome struct {
		loadErr    error
		seenStatus order.Status
		cancelErr  error
	}
	outcome := make(chan cancelOutcome, 1)

	go func() {
		secondUow := suite.factory.Create()
		if err := secondUow.Begin(ctx); err != nil {
			outcome <- cancelOutcome{loadErr: err}
			return
		}
		defer func() {
			_ = secondUow.Rollback(ctx)
		}()

		secondOrder, err := secondUow.OrderRepository().GetByNumber(ctx, 42)
		if err != nil {
			outcome <- cancelOutcome{loadErr: err}
			return
		}

		_, cancelErr := secondOrder.Cancel()
		outcome <- cancelOutcome{seenStatus: secondOrder.Status(), cancelErr: cancelErr}
	}()

	// Give the second transaction time to block on the locked row, then
	// commit the forward transition
	time.Sleep(500 * time.Millisecond)

	_, err = firstOrder.ChangeStatus("reached_delivery")
	suite.Require().NoError(err)
	err = firstUow.OrderRepository().Update(ctx, firstOrder)
	suite.Require().NoError(err)
	err = firstUow.Commit(ctx)
	suite.Require().NoError(err)

	result := <-outcome
	suite.Require().NoError(result.loadErr)
	suite.Equal(order.ReachedDelivery, result.seenStatus,
		"Second transaction should observe the committed status")
	suite.Require().Error(result.cancelErr)
	suite.ErrorIs(result.cancelErr, order.ErrIllegalTransition)

	// The stored order was never re-opened
	checkUow := suite.factory.Create()
	retrievedOrder, err := checkUow.OrderRepository().GetByNumber(ctx, 42)
	suite.Require().NoError(err)
	suite.Equal(order.ReachedDelivery, retrievedOrder.Status())
}

// TestUnitOfWork_StaleOrderQuery verifies the refund sweep's staleness query
// sees only orders whose last update predates the cutoff.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StaleOrderQuery() {
	ctx := context.Background()
	uow := suite.factory.Create()

	staleOrder, err := order.RestoreOrder(kernel.NewUUID(), 41, "1 Baker Street", order.Cancelled)
	suite.Require().NoError(err)
	freshOrder, err := order.RestoreOrder(kernel.NewUUID(), 42, "2 Baker Street", order.Cancelled)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, staleOrder)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, freshOrder)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Age one order past the cutoff
	err = suite.db.Exec("UPDATE orders SET updated_at = ? WHERE order_number = ?",
		time.Now().UTC().Add(-48*time.Hour), int64(41)).Error
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	cutoff := time.Now().UTC().Add(-24 * time.Hour)

	stale, err := newUow.OrderRepository().GetStaleInStatus(ctx, order.Cancelled, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(stale, 1)
	suite.Equal(int64(41), stale[0].OrderNumber())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
