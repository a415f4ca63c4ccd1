package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "logistics/internal/app"
	"logistics/internal/entities"
	"logistics/internal/handlers/rest/healthcheck_head"
	"logistics/internal/handlers/rest/order_get"
	"logistics/internal/handlers/rest/order_post"
	"logistics/internal/handlers/rest/orders_delete"
	"logistics/internal/handlers/rest/orders_get"
	"logistics/internal/handlers/rest/ping_get"
	"logistics/internal/handlers/rest/routing_post"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/dotenv"
	"logistics/internal/pkg/grpcserver"
	"logistics/internal/pkg/kafka"
	metrics_system "logistics/internal/pkg/metrics"
	"logistics/internal/pkg/middlewares/graceful_shutdown"
	"logistics/internal/pkg/middlewares/metrics"
	"logistics/internal/pkg/middlewares/rate_limiter"
	"logistics/internal/pkg/middlewares/request_id"
	"logistics/internal/pkg/middlewares/timeout"
	"logistics/internal/pkg/postgres"
	redisclient "logistics/internal/pkg/redis"
	"logistics/pkg/logger"
	"logistics/pkg/logger/zap_adapter"
	"logistics/pkg/token_bucket"
)

const (
	serviceName = "logistics-service"

	defaultWriteTimeout = 15 * time.Second
	// запас поверх таймаута решателя на сериализацию ответа
	solverResponseMargin = 5 * time.Second
)

func main() {
	// флаги и .env читаются до логгера: от них зависит LOG_LEVEL
	if err := dotenv.ApplyFlags(); err != nil {
		stdlog.Fatalf("failed to apply flags: %v", err)
	}
	envErr := dotenv.Load()

	cfg, cfgErr := config.Load()

	level := "info"
	if cfg != nil {
		level = cfg.Logger.Level
	}
	zapLogger, err := zap_adapter.NewZapAdapter(serviceName, level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting logistics application")

	switch {
	case errors.Is(envErr, dotenv.ErrNoFile):
		mainLog.Warn("No .env file found, using system environment variables")
	case envErr != nil:
		mainLog.Error("failed to load .env file", logger.NewField("error", envErr))
		return
	}

	if cfgErr != nil {
		mainLog.Error("load config", logger.NewField("error", cfgErr))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	redisClient, err := redisclient.NewClient(ctx, log, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer closeProducer(runLog, producer)

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	checks := []healthcheck_head.Check{
		{Name: "postgres", Ping: pool.Ping},
		{Name: "redis", Ping: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}},
	}

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg, checks),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      max(defaultWriteTimeout, cfg.Solver.Timeout+solverResponseMargin),
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// gRPC health сервер
	grpcServer := grpcserver.New(log)
	grpcServer.SetServing(true)

	grpcServerErr := make(chan error, 1)
	go func() {
		defer close(grpcServerErr)
		if err := grpcServer.ListenAndServe(cfg.GRPC.HealthPort); err != nil {
			grpcServerErr <- err
		}
	}()
	// gRPC health сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-grpcServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	grpcServer.SetServing(false)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	grpcServer.Shutdown(shutdownCtx)

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
	checks []healthcheck_head.Check,
) http.Handler {
	router := mux.NewRouter()

	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	// решатель живет дольше обычного таймаута запроса
	routing := router.PathPrefix("/routing").Subrouter()
	routing.Use(timeout.Middleware(cfg.Solver.Timeout + solverResponseMargin))
	routing.Handle("/vrp", routing_post.New(log, app.ServiceRouting)).Methods("POST")

	api := router.NewRoute().Subrouter()
	api.Use(timeout.Middleware(cfg.Server.RequestTimeout))

	api.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, checks...)).Methods("HEAD")
	api.Handle("/ping", ping_get.New(log)).Methods("GET")

	api.Handle("/orders", order_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders", orders_delete.New(log, app.ServiceOrder)).Methods("DELETE")
	// статические пути регистрируются раньше /orders/{id}
	api.Handle("/orders/can-tho", orders_get.NewForCity(log, app.ServiceOrder, entities.CityMatch)).Methods("GET")
	api.Handle("/orders/not-can-tho", orders_get.NewForCity(log, app.ServiceOrder, entities.CityExclude)).Methods("GET")
	api.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

func closeProducer(log logger.Logger, producer sarama.SyncProducer) {
	if err := producer.Close(); err != nil {
		log.Error("failed to close kafka producer", logger.NewField("error", err))
	}
}
