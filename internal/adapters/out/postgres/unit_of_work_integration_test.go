package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "zinger/internal/adapters/out/postgres"
	"zinger/internal/adapters/out/postgres/pgtest"
	"zinger/internal/adapters/out/postgres/shoprepo"
	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/payment"
	"zinger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background(), postgres_adapter.Models()...)
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("orders", "order_items", "transactions", "shops"))
	suite.Require().NoError(suite.pg.DB.Create(&shoprepo.ShopDTO{ID: 7, Name: "Snack Bar"}).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

// TestUnitOfWorkFactory_Create verifies factory creates separate instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	var factory ports.UnitOfWorkFactory = suite.factory
	uow1 := factory.Create()
	uow2 := factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.OrderItemRepository())
	suite.NotNil(uow1.TransactionRepository())
	suite.NotNil(uow1.ShopRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Error(uow.Rollback(ctx), "Deferred rollback after commit must be harmless")
}

// TestUnitOfWork_AdmissionIsAtomic writes an order, its lines, a transaction
// and a shop rating in one transaction and checks all of them land together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AdmissionIsAtomic() {
	ctx := context.Background()
	o := createTestOrder(suite)

	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.OrderItemRepository().Add(ctx, createTestItem(suite, o.ID(), 3)))
	suite.Require().NoError(uow.OrderItemRepository().Add(ctx, createTestItem(suite, o.ID(), 4)))
	suite.Require().NoError(uow.TransactionRepository().Add(ctx, createTestTransaction(suite, o.ID())))
	suite.Require().NoError(uow.ShopRepository().AddRating(ctx, 7, 4))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]string{o.ID()}, uow.TrackedIDs())

	reader := suite.factory.Create()
	_, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	items, err := reader.OrderItemRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(items, 2)
	_, err = reader.TransactionRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	s, err := reader.ShopRepository().Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(1, s.RatingCount)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards the order and its lines.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	o := createTestOrder(suite)

	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.OrderItemRepository().Add(ctx, createTestItem(suite, o.ID(), 3)))

	_, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err, "Order should be visible inside its transaction")

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Empty(uow.TrackedIDs())

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, o.ID())
	suite.Error(err, "Order should not exist after rollback")
	items, err := reader.OrderItemRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Empty(items, "Order lines should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies uncommitted writes are invisible
// to other units of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := createTestOrder(suite)
	order2 := createTestOrder(suite)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, order1.ID())
	suite.NoError(err, "Order1 should persist after commit")
	_, err = reader.OrderRepository().Get(ctx, order2.ID())
	suite.Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_GetForUpdateSerializesWriters holds the row lock in one unit
// of work and checks that a second locker only proceeds after the first
// commits, and then sees its write.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetForUpdateSerializesWriters() {
	ctx := context.Background()
	o := createTestOrder(suite)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	locked, err := first.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)

	type result struct {
		status order.Status
		err    error
	}
	done := make(chan result, 1)
	go func() {
		second := suite.factory.Create()
		if err := second.Begin(ctx); err != nil {
			done <- result{err: err}
			return
		}
		defer second.Rollback(ctx)
		got, err := second.OrderRepository().GetForUpdate(ctx, o.ID())
		if err != nil {
			done <- result{err: err}
			return
		}
		done <- result{status: got.Status()}
	}()

	select {
	case <-done:
		suite.FailNow("second locker must wait for the first transaction")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(locked.ChangeStatus(order.Placed, ""))
	suite.Require().NoError(first.OrderRepository().UpdateStatus(ctx, locked))
	suite.Require().NoError(first.Commit(ctx))

	select {
	case r := <-done:
		suite.Require().NoError(r.err)
		suite.Equal(order.Placed, r.status)
	case <-time.After(10 * time.Second):
		suite.FailNow("second locker never acquired the row")
	}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

var _ ports.UnitOfWorkFactory = (*postgres_adapter.GormUnitOfWorkFactory)(nil)

func createTestOrder(suite *UnitOfWorkIntegrationTestSuite) *order.Order {
	o, err := order.NewOrder(order.Draft{
		ID:         uuid.NewString(),
		UserMobile: "9876543210",
		ShopID:     7,
		Price:      kernel.MustMoney("100"),
	}, time.Now())
	suite.Require().NoError(err)
	return o
}

func createTestItem(suite *UnitOfWorkIntegrationTestSuite, orderID string, itemID int64) order.Item {
	item, err := order.NewItem(orderID, itemID, 1, kernel.MustMoney("50"))
	suite.Require().NoError(err)
	return item
}

func createTestTransaction(suite *UnitOfWorkIntegrationTestSuite, orderID string) payment.Transaction {
	txn, err := payment.NewTransaction(payment.GatewayStatus{
		OrderID:       orderID,
		TransactionID: "TXN-" + orderID,
		Amount:        kernel.MustMoney("100"),
		ResponseCode:  payment.ResponseSuccess,
	})
	suite.Require().NoError(err)
	return txn
}
