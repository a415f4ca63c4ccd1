//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/go-redis/redis/v8"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics/internal/gateway/kafka/order_events"
	"logistics/internal/gateway/solver/process"
	order_get "logistics/internal/handlers/rest/order_get"
	order_post "logistics/internal/handlers/rest/order_post"
	orders_delete "logistics/internal/handlers/rest/orders_delete"
	orders_get "logistics/internal/handlers/rest/orders_get"
	routing_post "logistics/internal/handlers/rest/routing_post"
	"logistics/internal/handlers/tasks/order_overdue"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/factory/delivery_deadline"

	cargoRepo "logistics/internal/repository/cargo"
	deliveryTypeRepo "logistics/internal/repository/delivery_type"
	orderRepo "logistics/internal/repository/order"
	orderAddressRepo "logistics/internal/repository/order_address"
	"logistics/internal/repository/order_cache"
	supervisorRepo "logistics/internal/repository/supervisor"
	orderService "logistics/internal/service/order"
	routingService "logistics/internal/service/routing"

	"logistics/pkg/background"
	"logistics/pkg/logger"
	"logistics/pkg/querier"
	"logistics/pkg/tx"
)

type (
	OverdueInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceRouting    ServiceRouting
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_get.Service
	orders_delete.Service
}

type ServiceRouting interface {
	routing_post.Service
}

var orderSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrderRepository,
	provideCargoRepository,
	provideOrderAddressRepository,
	provideDeliveryTypeRepository,
	provideSupervisorRepository,
	provideOrderCache,
	provideOrderEventsPublisher,
	delivery_deadline.New,

	provideServiceOrder,

	wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(orderService.CargoRepository), new(*cargoRepo.Repository)),
	wire.Bind(new(orderService.OrderAddressRepository), new(*orderAddressRepo.Repository)),
	wire.Bind(new(orderService.DeliveryTypeRepository), new(*deliveryTypeRepo.Repository)),
	wire.Bind(new(orderService.SupervisorRepository), new(*supervisorRepo.Repository)),
	wire.Bind(new(orderService.DeliveryTimeFactory), new(*delivery_deadline.DeliveryTimeFactory)),
	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	wire.Bind(new(orderService.Cache), new(*order_cache.Cache)),
	wire.Bind(new(orderService.EventPublisher), new(*order_events.Publisher)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		orderSet,
		provideOverdueInterval,

		provideRouteSolver,
		provideServiceRouting,

		provideOrderOverdueTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceRouting), new(*routingService.Service)),
		wire.Bind(new(routingService.RouteSolver), new(*process.Solver)),
		wire.Bind(new(order_overdue.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		orderSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCargoRepository(querier *querier.Querier) *cargoRepo.Repository {
	return cargoRepo.New(querier)
}

func provideOrderAddressRepository(querier *querier.Querier) *orderAddressRepo.Repository {
	return orderAddressRepo.New(querier)
}

func provideDeliveryTypeRepository(querier *querier.Querier) *deliveryTypeRepo.Repository {
	return deliveryTypeRepo.New(querier)
}

func provideSupervisorRepository(querier *querier.Querier) *supervisorRepo.Repository {
	return supervisorRepo.New(querier)
}

func provideOrderCache(log logger.Logger, client *redis.Client, cfg *config.Config) *order_cache.Cache {
	return order_cache.New(log, client, cfg.Redis.CacheTTL)
}

func provideOrderEventsPublisher(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *order_events.Publisher {
	return order_events.New(log, producer, cfg.Kafka.OrderEventsTopic)
}

func provideServiceOrder(
	repository orderService.Repository,
	cargoRepository orderService.CargoRepository,
	orderAddressRepository orderService.OrderAddressRepository,
	deliveryTypeRepository orderService.DeliveryTypeRepository,
	supervisorRepository orderService.SupervisorRepository,
	timeFactory orderService.DeliveryTimeFactory,
	txManager orderService.TxManager,
	cache orderService.Cache,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) *orderService.Service {
	return orderService.New(
		repository,
		cargoRepository,
		orderAddressRepository,
		deliveryTypeRepository,
		supervisorRepository,
		timeFactory,
		txManager,
		cache,
		publisher,
		orderService.Config{
			CityMatchText: cfg.Listing.CityMatchText,
			DefaultLimit:  cfg.Listing.DefaultLimit,
		},
	)
}

func provideRouteSolver(log logger.Logger, cfg *config.Config) *process.Solver {
	return process.New(log, process.Config{
		Command:        cfg.Solver.Command,
		Args:           cfg.Solver.Args,
		Timeout:        cfg.Solver.Timeout,
		MaxConcurrency: cfg.Solver.MaxConcurrency,
	})
}

func provideServiceRouting(solver routingService.RouteSolver) *routingService.Service {
	return routingService.New(solver)
}

func provideOverdueInterval(cfg *config.Config) OverdueInterval {
	return OverdueInterval(cfg.Tasks.OrderOverdueInterval)
}

func provideOrderOverdueTask(
	log logger.Logger,
	orderService order_overdue.Service,
	interval OverdueInterval,
) *order_overdue.OrderOverdue {
	return order_overdue.NewOrderOverdue(log, orderService, time.Duration(interval))
}

func provideTaskList(
	orderOverdueTask *order_overdue.OrderOverdue,
) []background.Task {
	return []background.Task{
		orderOverdueTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
