//go:build integration

package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"logistics/internal/pkg/config"
	"logistics/internal/pkg/postgres"
	"logistics/pkg/logger/zap_adapter"
	"logistics/pkg/querier"
	"logistics/pkg/tx"
)

const (
	postgresImage = "postgres:16-alpine"
	dbName        = "logistics"
	dbUser        = "logistics"
	dbPassword    = "logistics"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	txInstance      *tx.Manager
	setupOnce       sync.Once
)

// контейнер живет до конца процесса тестов, его убирает ryuk
func setup() {
	setupOnce.Do(func() {
		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("integration-test", "warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			_ = zapLogger.Sync()
		}()

		container, err := tcpostgres.Run(ctx, postgresImage,
			tcpostgres.WithDatabase(dbName),
			tcpostgres.WithUsername(dbUser),
			tcpostgres.WithPassword(dbPassword),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(time.Minute),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}

		host, err := container.Host(ctx)
		if err != nil {
			log.Fatalf("failed to get container host: %v", err)
		}
		port, err := container.MappedPort(ctx, "5432/tcp")
		if err != nil {
			log.Fatalf("failed to get container port: %v", err)
		}

		cfg := &config.Database{
			Host:     host,
			Port:     port.Port(),
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  "disable",
		}

		poolInstance, err = postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		if err := postgres.Migrate(ctx, zapLogger, poolInstance); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}

		querierInstance = querier.New(poolInstance, pgxv5.DefaultCtxGetter)
		txInstance = tx.New(poolInstance)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return txInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

// TeardownDB очищает заказы и их подчиненные записи; справочники из миграций остаются.
func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE orders, cargos, order_addresses RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
