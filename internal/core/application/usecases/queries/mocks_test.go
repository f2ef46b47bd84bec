package queries_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/application/usecases/queries"
	"zinger/internal/core/domain/model/audit"
	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/payment"
	"zinger/internal/core/domain/model/shop"
	"zinger/internal/core/domain/model/user"
	"zinger/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) Add(ctx context.Context, txn payment.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) Get(ctx context.Context, orderID string) (payment.Transaction, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(payment.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByMobile(
	ctx context.Context, mobile string, page ports.Page,
) ([]payment.Transaction, error) {
	args := m.Called(ctx, mobile, page)
	return args.Get(0).([]payment.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByShop(
	ctx context.Context, shopID int64, page ports.Page,
) ([]payment.Transaction, error) {
	args := m.Called(ctx, shopID, page)
	return args.Get(0).([]payment.Transaction), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateSecretKey(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) UpdateRating(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderItemRepository struct{ mock.Mock }

func (m *MockOrderItemRepository) Add(ctx context.Context, item order.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockOrderItemRepository) ListByOrder(ctx context.Context, orderID string) ([]order.Item, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]order.Item), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, mobile string) (user.User, error) {
	args := m.Called(ctx, mobile)
	return args.Get(0).(user.User), args.Error(1)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Get(ctx context.Context, id int64) (shop.Shop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(shop.Shop), args.Error(1)
}

func (m *MockShopRepository) AddRating(ctx context.Context, shopID int64, rating float64) error {
	return m.Called(ctx, shopID, rating).Error(0)
}

type MockIdentityVerifier struct{ mock.Mock }

func (m *MockIdentityVerifier) Verify(ctx context.Context, caller user.Caller) error {
	return m.Called(ctx, caller).Error(0)
}

type auditLog struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (a *auditLog) Record(_ context.Context, entry audit.Entry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return nil
}

func (a *auditLog) only(t *testing.T) audit.Entry {
	t.Helper()
	a.mu.Lock()
	defer a.mu.Unlock()
	require.Len(t, a.entries, 1)
	return a.entries[0]
}

var discard = slog.New(slog.DiscardHandler)

type readFixture struct {
	identity *MockIdentityVerifier
	txns     *MockTransactionRepository
	orders   *MockOrderRepository
	items    *MockOrderItemRepository
	users    *MockUserRepository
	shops    *MockShopRepository
	audit    *auditLog
	recorder *outcome.Recorder
}

func newReadFixture() *readFixture {
	log := &auditLog{}
	return &readFixture{
		identity: new(MockIdentityVerifier),
		txns:     new(MockTransactionRepository),
		orders:   new(MockOrderRepository),
		items:    new(MockOrderItemRepository),
		users:    new(MockUserRepository),
		shops:    new(MockShopRepository),
		audit:    log,
		recorder: outcome.NewRecorder(log, discard),
	}
}

func (f *readFixture) stores() queries.Stores {
	return queries.Stores{
		Transactions: f.txns,
		Orders:       f.orders,
		Items:        f.items,
		Users:        f.users,
		Shops:        f.shops,
	}
}

func (f *readFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.identity.AssertExpectations(t)
	f.txns.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.items.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.shops.AssertExpectations(t)
}

func customer() user.Caller {
	return user.Caller{Mobile: "9876543210", OAuthID: "oauth-1", Role: user.RoleCustomer}
}

func owner() user.Caller {
	return user.Caller{Mobile: "9000000001", OAuthID: "oauth-2", Role: user.RoleShopOwner}
}

func storedOrder(t *testing.T, id, mobile string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		Draft: order.Draft{
			ID:         id,
			UserMobile: mobile,
			ShopID:     7,
			Price:      kernel.MustMoney("100"),
		},
		Status:    order.Accepted,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}

func readyOrder(t *testing.T, id, mobile, key string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		Draft: order.Draft{
			ID:         id,
			UserMobile: mobile,
			ShopID:     7,
			Price:      kernel.MustMoney("100"),
		},
		Status:    order.Ready,
		SecretKey: &key,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}

func storedTransaction(t *testing.T, orderID string) payment.Transaction {
	t.Helper()
	txn, err := payment.NewTransaction(payment.GatewayStatus{
		OrderID:       orderID,
		TransactionID: "TXN-" + orderID,
		Amount:        kernel.MustMoney("100"),
		ResponseCode:  payment.ResponseSuccess,
	})
	require.NoError(t, err)
	return txn
}

func storedItems(t *testing.T, orderID string) []order.Item {
	t.Helper()
	item, err := order.NewItem(orderID, 3, 2, kernel.MustMoney("50"))
	require.NoError(t, err)
	return []order.Item{item}
}

func storedShop() shop.Shop {
	return shop.Shop{
		ID:     7,
		Name:   "Snack Bar",
		Mobile: "9000000001",
		Rating: 4.5,
		Place:  &shop.Place{ID: 2, Name: "Main Campus", Address: "North Gate"},
	}
}

func storedUser(mobile string) user.User {
	return user.User{Mobile: mobile, Name: "Asha", Role: user.RoleCustomer}
}
