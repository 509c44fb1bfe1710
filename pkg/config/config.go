package config

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"radar/pkg/client"
	"radar/pkg/kafka"
	"radar/pkg/locale"
	"radar/pkg/logger"
)

type Config struct {
	Port     string
	LogLevel string

	LeadsSource string
	LeadsFile   string
	LeadsSheet  string

	MongoURI          string
	MongoDatabaseName string
	MongoCollection   string
	MongoConnTimeout  time.Duration

	SectorRulesFile string
	PageSize        int
	DefaultMinScore int
	WhatsAppCountry string
	SessionTTL      time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Kafka             kafka.Config
	KafkaSessionTopic string

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := fromEnv()
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})
	cfg.Client = client.NewClient()

	err := cfg.Validate()
	if err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func fromEnv() *Config {
	return &Config{
		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		LeadsSource: strings.ToLower(getEnvStr(EnvLeadsSource, DefaultLeadsSource)),
		LeadsFile:   getEnvStr(EnvLeadsFile, DefaultLeadsFile),
		LeadsSheet:  getEnvStr(EnvLeadsSheet, ""),

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoCollection:   getEnvStr(EnvMongoCollection, DefaultMongoCollection),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		SectorRulesFile: getEnvStr(EnvSectorRulesFile, ""),
		PageSize:        getEnvNum(EnvPageSize, DefaultPageSize),
		DefaultMinScore: getEnvNum(EnvDefaultMinScore, DefaultDefaultMinScore),
		WhatsAppCountry: strings.ToUpper(getEnvStr(EnvWhatsAppCountry, DefaultWhatsAppCountry)),
		SessionTTL:      getEnvDuration(EnvSessionTTL, DefaultSessionTTL),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Kafka: kafka.Config{
			Brokers:      kafka.ParseBrokers(getEnvStr(EnvKafkaBrokers, "")),
			MaxAttempts:  kafka.DefaultMaxAttempts,
			BatchTimeout: kafka.DefaultBatchTimeout,
			RequireAcks:  getEnvNum(EnvKafkaRequireAcks, kafka.DefaultRequireAcks),
			Compression:  getEnvStr(EnvKafkaCompression, kafka.DefaultCompression),
		},
		KafkaSessionTopic: getEnvStr(EnvKafkaSessionTopic, DefaultKafkaSessionTopic),
	}
}

// ConnectMongo opens the MongoDB connection when leads are read from it.
func (cfg *Config) ConnectMongo(ctx context.Context) error {
	if cfg.LeadsSource != SourceMongo {
		return nil
	}
	return cfg.Client.ConnectMongo(ctx, cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	switch cfg.LeadsSource {
	case SourceFile:
		if cfg.LeadsFile == "" {
			errors = append(errors, "LeadsFile cannot be empty when LeadsSource is 'file'")
		}
	case SourceMongo:
		if cfg.MongoURI == "" {
			errors = append(errors, "MongoURI cannot be empty")
		} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
			errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
		}
		if cfg.MongoDatabaseName == "" {
			errors = append(errors, "MongoDatabaseName cannot be empty")
		}
		if cfg.MongoCollection == "" {
			errors = append(errors, "MongoCollection cannot be empty")
		}
		if cfg.MongoConnTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
		}
	default:
		errors = append(errors, fmt.Sprintf("LeadsSource must be 'file' or 'mongo', got: %s", cfg.LeadsSource))
	}

	if cfg.PageSize <= 0 {
		errors = append(errors, fmt.Sprintf("PageSize must be positive, got: %d", cfg.PageSize))
	}
	if cfg.DefaultMinScore < 0 || cfg.DefaultMinScore > 10 {
		errors = append(errors, fmt.Sprintf("DefaultMinScore must be between 0 and 10, got: %d", cfg.DefaultMinScore))
	}
	if _, ok := locale.Lookup(cfg.WhatsAppCountry); !ok {
		errors = append(errors, fmt.Sprintf("WhatsAppCountry is not a supported country code, got: %s", cfg.WhatsAppCountry))
	}
	if cfg.SessionTTL <= 0 {
		errors = append(errors, fmt.Sprintf("SessionTTL must be positive, got: %s", cfg.SessionTTL))
	}

	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.Kafka.Enabled() {
		if err := cfg.Kafka.Validate(); err != nil {
			errors = append(errors, err.Error())
		}
		if cfg.KafkaSessionTopic == "" {
			errors = append(errors, "KafkaSessionTopic cannot be empty when KafkaBrokers is set")
		}
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"leads_source", cfg.LeadsSource,
		"leads_file", cfg.LeadsFile,
		"leads_sheet", cfg.LeadsSheet,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_collection", cfg.MongoCollection,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"sector_rules_file", cfg.SectorRulesFile,
		"page_size", cfg.PageSize,
		"default_min_score", cfg.DefaultMinScore,
		"whatsapp_country", cfg.WhatsAppCountry,
		"session_ttl", cfg.SessionTTL,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"kafka_enabled", cfg.Kafka.Enabled(),
		"kafka_brokers", cfg.Kafka.Brokers,
		"kafka_session_topic", cfg.KafkaSessionTopic,
	)
}

func (cfg *Config) GracefulShutdown(ctx context.Context) {
	cfg.Client.GracefulShutdown(ctx, cfg.Log)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
