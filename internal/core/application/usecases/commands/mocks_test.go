package commands_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/application/usecases/commands"
	"zinger/internal/core/domain/model/audit"
	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/payment"
	"zinger/internal/core/domain/model/shop"
	"zinger/internal/core/domain/model/user"
	"zinger/internal/core/domain/services"
	"zinger/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
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
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateRating(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderItemRepository struct{ mock.Mock }

func (m *MockOrderItemRepository) Add(ctx context.Context, item order.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) ListByOrder(ctx context.Context, orderID string) ([]order.Item, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Item), args.Error(1)
}

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

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Get(ctx context.Context, id int64) (shop.Shop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(shop.Shop), args.Error(1)
}

func (m *MockShopRepository) AddRating(ctx context.Context, shopID int64, rating float64) error {
	args := m.Called(ctx, shopID, rating)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrderItemRepository() ports.OrderItemRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderItemRepository)
}

func (m *MockUoW) TransactionRepository() ports.TransactionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransactionRepository)
}

func (m *MockUoW) ShopRepository() ports.ShopRepository {
	args := m.Called()
	return args.Get(0).(ports.ShopRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockIdentityVerifier struct{ mock.Mock }

func (m *MockIdentityVerifier) Verify(ctx context.Context, caller user.Caller) error {
	args := m.Called(ctx, caller)
	return args.Error(0)
}

type MockPricer struct{ mock.Mock }

func (m *MockPricer) Verify(ctx context.Context, req services.PricingRequest) (services.Verification, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(services.Verification), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Initiate(
	ctx context.Context, orderID, merchantID string, amount kernel.Money,
) (string, error) {
	args := m.Called(ctx, orderID, merchantID, amount)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) Status(ctx context.Context, orderID string) (payment.GatewayStatus, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(payment.GatewayStatus), args.Error(1)
}

type MockRefundLedger struct{ mock.Mock }

func (m *MockRefundLedger) Record(ctx context.Context, req ports.RefundRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// auditLog is an in-memory audit sink.
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

type fixedKeys string

func (k fixedKeys) Next() string { return string(k) }

var discard = slog.New(slog.DiscardHandler)

func newRecorder() (*outcome.Recorder, *auditLog) {
	log := &auditLog{}
	return outcome.NewRecorder(log, discard), log
}

func testCaller() user.Caller {
	return user.Caller{Mobile: "9876543210", OAuthID: "oauth-1", Role: user.RoleCustomer}
}

func testDraft() order.Draft {
	delivery := kernel.MustMoney("10.0")
	return order.Draft{
		ID:               "ORD-1",
		UserMobile:       "9876543210",
		ShopID:           7,
		Price:            kernel.MustMoney("110.0"),
		DeliveryPrice:    &delivery,
		DeliveryLocation: "Hostel B",
	}
}

func orderIn(t *testing.T, status order.Status, key *string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		Draft:     testDraft(),
		Status:    status,
		SecretKey: key,
		CreatedAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)
	return o
}

func keyPtr(k string) *string { return &k }

func settledStatus(amount string) payment.GatewayStatus {
	return payment.GatewayStatus{
		OrderID:       "ORD-1",
		TransactionID: "TXN-1",
		Amount:        kernel.MustMoney(amount),
		ResponseCode:  payment.ResponseSuccess,
	}
}
