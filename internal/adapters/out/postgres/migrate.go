package postgres

import (
	"zinger/internal/adapters/out/postgres/auditrepo"
	"zinger/internal/adapters/out/postgres/catalogrepo"
	"zinger/internal/adapters/out/postgres/orderrepo"
	"zinger/internal/adapters/out/postgres/refundrepo"
	"zinger/internal/adapters/out/postgres/shoprepo"
	"zinger/internal/adapters/out/postgres/transactionrepo"
	"zinger/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&shoprepo.PlaceDTO{},
		&shoprepo.ShopDTO{},
		&shoprepo.ConfigurationDTO{},
		&catalogrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&transactionrepo.TransactionDTO{},
		&refundrepo.RefundDTO{},
		&auditrepo.OrderLogDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
