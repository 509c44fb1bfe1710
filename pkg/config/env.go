package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvLeadsSource = "LEADS_SOURCE"
	EnvLeadsFile   = "LEADS_FILE"
	EnvLeadsSheet  = "LEADS_SHEET"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoCollection   = "MONGO_COLLECTION"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvSectorRulesFile = "SECTOR_RULES_FILE"
	EnvPageSize        = "PAGE_SIZE"
	EnvDefaultMinScore = "DEFAULT_MIN_SCORE"
	EnvWhatsAppCountry = "WHATSAPP_COUNTRY"
	EnvSessionTTL      = "SESSION_TTL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvKafkaBrokers      = "KAFKA_BROKERS"
	EnvKafkaSessionTopic = "KAFKA_SESSION_TOPIC"
	EnvKafkaCompression  = "KAFKA_COMPRESSION"
	EnvKafkaRequireAcks  = "KAFKA_REQUIRE_ACKS"
)
