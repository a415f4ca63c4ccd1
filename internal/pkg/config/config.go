package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultCityMatchText     = "Thành phố Cần Thơ"
	defaultListingLimit      = 10
	defaultSolverTimeout     = 60 * time.Second
	defaultSolverConcurrency = 4
	defaultCacheTTL          = 5 * time.Minute
	defaultLogLevel          = "info"
)

type (
	Tasks struct {
		OrderOverdueInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // таймаут middleware
		RateLimiterQPS   int           // емкость rate limiter
		RateLimiterBurst int           // пополнение rate limiter
		PprofEnabled     bool
		PprofPort        string
	}

	GRPCServer struct {
		HealthPort string
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MigrateOnStart bool
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
		CacheTTL time.Duration
	}

	Listing struct {
		CityMatchText string
		DefaultLimit  int
	}

	Solver struct {
		Command        string
		Args           []string // идут перед JSON-аргументами задачи
		Timeout        time.Duration
		MaxConcurrency int
	}

	Logger struct {
		Level string
	}

	Kafka struct {
		PortHealthcheck  string
		Brokers          string
		Topic            string
		ConsumerGroup    string
		OrderEventsTopic string
		Sarama           Sarama
		Handlers         KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		GRPC     GRPCServer
		Database Database
		Redis    Redis
		Listing  Listing
		Solver   Solver
		Logger   Logger
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	overdueInterval, err := osGetEnvDuration("BACKGROUND_ORDERS_OVERDUE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrateOnStart, err := osGetBool("POSTGRES_MIGRATE_ON_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cacheTTL, err := osGetEnvDuration("REDIS_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	listingLimit, err := osGetInt("LISTING_DEFAULT_LIMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	solverTimeout, err := osGetEnvDuration("SOLVER_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	solverConcurrency, err := osGetInt("SOLVER_MAX_CONCURRENCY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OrderOverdueInterval: overdueInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		GRPC: GRPCServer{
			HealthPort: os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: Database{
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           os.Getenv("POSTGRES_PORT"),
			User:           os.Getenv("POSTGRES_USER"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         os.Getenv("POSTGRES_DB"),
			SSLMode:        os.Getenv("POSTGRES_SSLMODE"),
			MigrateOnStart: migrateOnStart,
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			CacheTTL: durationOrDefault(cacheTTL, defaultCacheTTL),
		},
		Listing: Listing{
			CityMatchText: stringOrDefault(os.Getenv("LISTING_CITY_MATCH_TEXT"), defaultCityMatchText),
			DefaultLimit:  intOrDefault(listingLimit, defaultListingLimit),
		},
		Solver: Solver{
			Command:        os.Getenv("SOLVER_COMMAND"),
			Args:           strings.Fields(os.Getenv("SOLVER_ARGS")),
			Timeout:        durationOrDefault(solverTimeout, defaultSolverTimeout),
			MaxConcurrency: intOrDefault(solverConcurrency, defaultSolverConcurrency),
		},
		Logger: Logger{
			Level: stringOrDefault(os.Getenv("LOG_LEVEL"), defaultLogLevel),
		},
		Kafka: Kafka{
			Brokers:          os.Getenv("KAFKA_BROKERS"),
			Topic:            os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:    os.Getenv("KAFKA_CONSUMER_GROUP"),
			OrderEventsTopic: os.Getenv("KAFKA_ORDER_EVENTS_TOPIC"),
			PortHealthcheck:  os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.GRPC.HealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Listing.DefaultLimit < 0 {
		return errors.New("LISTING_DEFAULT_LIMIT must not be negative")
	}

	if cfg.Solver.Command == "" {
		return errors.New("SOLVER_COMMAND is required")
	}
	if cfg.Solver.MaxConcurrency < 0 {
		return errors.New("SOLVER_MAX_CONCURRENCY must not be negative")
	}

	if cfg.Tasks.OrderOverdueInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDERS_OVERDUE_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.OrderEventsTopic == "" {
		return errors.New("KAFKA_ORDER_EVENTS_TOPIC is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func stringOrDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

func intOrDefault(val, def int) int {
	if val == 0 {
		return def
	}
	return val
}

func durationOrDefault(val, def time.Duration) time.Duration {
	if val == 0 {
		return def
	}
	return val
}
