package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"settlement/cmd"
	settlementhttp "settlement/internal/adapters/in/http"
	"settlement/internal/adapters/out/postgres/accountrepo"
	"settlement/internal/adapters/out/postgres/escrowrepo"
	"settlement/internal/adapters/out/postgres/orderrepo"
	"settlement/internal/adapters/out/postgres/payoutrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load(".env")

	configs, err := cmd.NewConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	createDbIfNotExists(configs)

	gormDB := mustGorm(configs)
	migrateDb(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := settlementhttp.NewServer(
		root.CreateOpenOrderCommandHandler(),
		root.CreateMarkReadyForPickupCommandHandler(),
		root.CreateAssignCourierCommandHandler(),
		root.CreateConfirmPickupCommandHandler(),
		root.CreateConfirmDropoffCommandHandler(),
		root.CreateConfirmReceiptCommandHandler(),
		root.CreateOpenDisputeCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateResolveDisputeCommandHandler(),
		root.CreateRequestPayoutCommandHandler(),
		root.CreateApprovePayoutCommandHandler(),
		root.CreateRejectPayoutCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetPendingPayoutsQueryHandler(),
		root.TrackingManager(),
	)
	server.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return e.Start("0.0.0.0:" + configs.HTTPPort)
	})
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server stopped: %v", err)
	}
}

// createDbIfNotExists connects to the maintenance database and creates the
// service database when it does not exist yet. Keeps local and CI
// environments bootstrap-free.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec("CREATE DATABASE " + configs.DBName); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	}
}

func mustGorm(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps driver duplicate key errors onto
	// gorm.ErrDuplicatedKey, which the escrow repository relies on.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func migrateDb(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&escrowrepo.EntryDTO{},
		&accountrepo.AccountDTO{},
		&payoutrepo.RequestDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}
