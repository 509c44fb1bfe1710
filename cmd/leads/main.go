package main

import (
	"context"
	"errors"

	"radar/internal/leads/classifier"
	"radar/internal/leads/contact"
	"radar/internal/leads/events"
	"radar/internal/leads/handler"
	"radar/internal/leads/repository"
	"radar/internal/leads/service"
	"radar/internal/leads/session"
	"radar/internal/leads/validator"
	"radar/pkg/app"
	"radar/pkg/config"
	"radar/pkg/contracts"
	"radar/pkg/kafka"
	"radar/pkg/locale"
)

const ServiceName = "leads"

func main() {
	cfg := config.Load(ServiceName)
	ctx := context.Background()

	if err := cfg.ConnectMongo(ctx); err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	cfg.Log.Info("Starting Leads service")

	store := session.NewInMemoryStore(cfg.SessionTTL)
	publisher := initPublisher(cfg)
	leadService := initServices(cfg, store, publisher)

	// A failed load is not fatal: the API reports the no-data state instead.
	if err := leadService.Load(ctx); err != nil {
		cfg.Log.Warn("Serving without lead data", "error", err)
	}

	serverApp := app.NewApplication(cfg)
	serverApp.OnShutdown(func(context.Context) { store.Stop() })
	serverApp.OnShutdown(func(context.Context) {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.OnShutdown(cfg.GracefulShutdown)

	serverApp.SetApp(
		handler.NewLeadHandler(leadService, cfg.Log),
		handler.NewHealthHandler(readinessChecks(cfg, leadService), cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, store session.Store, publisher events.Publisher) service.LeadService {
	rules := classifier.DefaultRules
	if cfg.SectorRulesFile != "" {
		loaded, err := classifier.LoadRules(cfg.SectorRulesFile)
		if err != nil {
			cfg.Log.Fatal("Failed to load sector rules", "path", cfg.SectorRulesFile, "error", err)
		}
		rules = loaded
		cfg.Log.Info("Sector rules loaded", "path", cfg.SectorRulesFile, "rules", len(rules))
	}

	views := service.NewViewBuilder(
		classifier.New(rules),
		contact.NewResolver(locale.MustLookup(cfg.WhatsAppCountry)),
	)

	leadService := service.NewLeadService(
		initSource(cfg),
		store,
		views,
		validator.NewCriteriaValidator(cfg.Log),
		publisher,
		cfg,
	)

	cfg.Log.Info("Leads service initialized", "source", cfg.LeadsSource)
	return leadService
}

func initSource(cfg *config.Config) repository.LeadSource {
	if cfg.LeadsSource == config.SourceMongo {
		return repository.NewMongoSource(cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.MongoCollection, cfg.MongoConnTimeout)
	}
	return repository.NewSpreadsheetSource(cfg.LeadsFile, cfg.LeadsSheet)
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.Kafka.Enabled() {
		cfg.Log.Info("Kafka brokers not configured, session events disabled")
		return events.NewNoopPublisher()
	}

	producer, err := kafka.NewProducer(&cfg.Kafka, cfg.KafkaSessionTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	cfg.Log.Info("Session events enabled", "topic", cfg.KafkaSessionTopic, "brokers", cfg.Kafka.Brokers)
	return events.NewAsyncPublisher(
		events.NewKafkaPublisher(producer, cfg.Log),
		events.DefaultQueueSize,
		events.DefaultPublishTimeout,
		cfg.Log,
	)
}

var errNoLeadData = errors.New("no lead data loaded")

func readinessChecks(cfg *config.Config, leadService service.LeadService) map[string]contracts.ReadinessCheck {
	checks := map[string]contracts.ReadinessCheck{
		"leads": func(context.Context) error {
			if !leadService.Ready() {
				return errNoLeadData
			}
			return nil
		},
	}

	if cfg.Client.Mongo != nil {
		checks["mongo"] = func(ctx context.Context) error {
			return cfg.Client.Mongo.Ping(ctx, nil)
		}
	}
	return checks
}
