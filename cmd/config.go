package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// DBDriver selects the database/sql driver behind gorm: "pgx" (default)
	// or "postgres" for lib/pq.
	DBDriver string

	PaymentAmountCheckEnabled bool
	// PendingSweepSchedule is a six-field cron spec. Empty disables the sweep.
	PendingSweepSchedule string
	PendingOrderTimeout  time.Duration
	// SecretKeySeed makes secret key generation deterministic when set.
	SecretKeySeed *uint64
}

// DSN is the libpq keyword/value connection string of the database.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// SweepEnabled reports whether the pending-order sweep should be scheduled.
func (c Config) SweepEnabled() bool {
	return c.PendingSweepSchedule != ""
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	switch c.DBDriver {
	case "", "pgx", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SweepEnabled() && c.PendingOrderTimeout <= 0 {
		return fmt.Errorf("PENDING_ORDER_TIMEOUT is required when PENDING_SWEEP_SCHEDULE is set")
	}
	return nil
}
