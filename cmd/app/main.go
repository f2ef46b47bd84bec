package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"zinger/cmd"
	httpin "zinger/internal/adapters/in/http"
	"zinger/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(dialector(configs), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err := app.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	jobManager := jobs.NewJobManager(logger, app.CreateJobs()...)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file loaded, using the process environment")
	}

	config := cmd.Config{
		HTTPPort:                  os.Getenv("HTTP_PORT"),
		DBHost:                    os.Getenv("DB_HOST"),
		DBPort:                    os.Getenv("DB_PORT"),
		DBUser:                    os.Getenv("DB_USER"),
		DBPassword:                os.Getenv("DB_PASSWORD"),
		DBName:                    os.Getenv("DB_NAME"),
		DBSslMode:                 os.Getenv("DB_SSLMODE"),
		DBDriver:                  os.Getenv("DB_DRIVER"),
		PaymentAmountCheckEnabled: boolVariable("PAYMENT_AMOUNT_CHECK_ENABLED"),
		PendingSweepSchedule:      os.Getenv("PENDING_SWEEP_SCHEDULE"),
		PendingOrderTimeout:       durationVariable("PENDING_ORDER_TIMEOUT"),
		SecretKeySeed:             seedVariable("SECRET_KEY_SEED"),
	}
	return config
}

func boolVariable(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return b
}

func durationVariable(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return d
}

func seedVariable(key string) *uint64 {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return &seed
}

// dialector opens PostgreSQL through pgx unless lib/pq is requested.
func dialector(configs cmd.Config) gorm.Dialector {
	if configs.DBDriver == "postgres" {
		return postgres.New(postgres.Config{DriverName: "postgres", DSN: configs.DSN()})
	}
	return postgres.Open(configs.DSN())
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := httpin.NewRouter(app.CreateHTTPServer())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
