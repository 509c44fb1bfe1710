package config

import "time"

const (
	SourceFile  = "file"
	SourceMongo = "mongo"
)

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultLeadsSource = SourceFile
	DefaultLeadsFile   = "Leads_Almenara_GPS.xlsx"

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "radar"
	DefaultMongoCollection   = "leads"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPageSize        = 10
	DefaultDefaultMinScore = 3
	DefaultWhatsAppCountry = "BR"
	DefaultSessionTTL      = 12 * time.Hour

	DefaultRateLimitRequests = 120
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 10 * time.Minute
	DefaultMaxRequestSize = 64 * 1024 // 64KB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultKafkaSessionTopic = "lead-sessions"
)
