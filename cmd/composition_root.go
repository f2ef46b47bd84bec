package cmd

import (
	"log/slog"
	"math/rand/v2"

	httpin "zinger/internal/adapters/in/http"
	"zinger/internal/adapters/out/paymentgw"
	"zinger/internal/adapters/out/postgres"
	"zinger/internal/adapters/out/postgres/auditrepo"
	"zinger/internal/adapters/out/postgres/catalogrepo"
	"zinger/internal/adapters/out/postgres/refundrepo"
	"zinger/internal/adapters/out/postgres/shoprepo"
	"zinger/internal/adapters/out/postgres/userrepo"
	"zinger/internal/core/application/outcome"
	"zinger/internal/core/application/usecases/commands"
	"zinger/internal/core/application/usecases/queries"
	"zinger/internal/core/domain/services"
	"zinger/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	users    *userrepo.GormUserRepository
	refunds  *refundrepo.GormRefundLedger
	gateway  *paymentgw.SimulatedGateway
	keys     *services.SecretKeyGenerator
	recorder *outcome.Recorder
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		users:      userrepo.NewGormUserRepository(gormDB),
		refunds:    refundrepo.NewGormRefundLedger(gormDB),
		gateway:    paymentgw.NewSimulatedGateway(),
		keys:       newSecretKeyGenerator(configs.SecretKeySeed),
		recorder:   outcome.NewRecorder(auditrepo.NewGormAuditSink(gormDB), logger),
	}
}

func newSecretKeyGenerator(seed *uint64) *services.SecretKeyGenerator {
	if seed != nil {
		return services.NewSeededSecretKeyGenerator(*seed, *seed)
	}
	return services.NewSecretKeyGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// Migrate creates or updates the schema of every store.
func (c *CompositionRoot) Migrate() error {
	return postgres.Migrate(c.gormDB)
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// stores reads outside any transaction.
func (c *CompositionRoot) stores() queries.Stores {
	uow := c.uowFactory.CreateGorm()
	return queries.Stores{
		Transactions: uow.TransactionRepository(),
		Orders:       uow.OrderRepository(),
		Items:        uow.OrderItemRepository(),
		Users:        c.users,
		Shops:        uow.ShopRepository(),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	pricer := services.NewPricingVerifier(
		shoprepo.NewGormConfigurationRepository(c.gormDB),
		catalogrepo.NewGormCatalogRepository(c.gormDB),
	)
	return commands.NewPlaceOrderCommandHandler(c.uow(), c.users, pricer, c.gateway, c.recorder, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(
		c.uow(), c.users, c.gateway, c.keys, c.configs.PaymentAmountCheckEnabled, c.recorder, c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uow(), c.users, c.keys, c.refunds, c.recorder, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderRatingCommandHandler() commands.UpdateOrderRatingCommandHandler {
	return commands.NewUpdateOrderRatingCommandHandler(c.uow(), c.users, c.recorder, c.logger)
}

func (c *CompositionRoot) CreateReconcilePendingOrdersCommandHandler() commands.ReconcilePendingOrdersCommandHandler {
	return commands.NewReconcilePendingOrdersCommandHandler(c.uow(), c.gateway, c.refunds, c.keys, c.logger)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.stores(), c.users, c.recorder, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersByMobileQueryHandler() queries.GetOrdersByMobileQueryHandler {
	return queries.NewGetOrdersByMobileQueryHandler(c.stores(), c.users, c.recorder, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersByShopQueryHandler() queries.GetOrdersByShopQueryHandler {
	return queries.NewGetOrdersByShopQueryHandler(c.stores(), c.users, c.recorder, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		AcceptOrder:       c.CreateAcceptOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		UpdateOrderRating: c.CreateUpdateOrderRatingCommandHandler(),
		OrderByID:         c.CreateGetOrderByIDQueryHandler(),
		OrdersByMobile:    c.CreateGetOrdersByMobileQueryHandler(),
		OrdersByShop:      c.CreateGetOrdersByShopQueryHandler(),
		Payments:          c.gateway,
		Audit:             c.recorder,
	})
}

// CreateJobs returns the scheduled jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobs() []jobs.Job {
	var scheduled []jobs.Job
	if c.configs.SweepEnabled() {
		scheduled = append(scheduled, jobs.NewPendingOrderSweepJob(
			c.CreateReconcilePendingOrdersCommandHandler(),
			c.configs.PendingSweepSchedule,
			c.configs.PendingOrderTimeout,
			c.logger,
		))
	}
	return scheduled
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
