package events

import (
	"context"
	"time"

	"radar/pkg/kafka"
	"radar/pkg/logger"
	"radar/pkg/middleware"
	"radar/pkg/model"
)

const (
	SessionStarted  = "session.started"
	FilterApplied   = "session.filter_applied"
	PageChanged     = "session.page_changed"
	SessionEnded    = "session.ended"
	schemaVersion   = "1"
	eventSourceName = "radar-leads"
)

// SessionEvent describes one change to a browsing session.
type SessionEvent struct {
	Type         string               `json:"type"`
	SessionID    string               `json:"session_id"`
	Criteria     model.FilterCriteria `json:"criteria"`
	PageIndex    int                  `json:"page_index"`
	TotalRecords int                  `json:"total_records"`
	OccurredAt   time.Time            `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event SessionEvent) error
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
}

// NewKafkaPublisher publishes events keyed by session id so one session's
// events stay ordered on a single partition.
func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) Publisher {
	producer.Use(kafka.LoggingMiddleware(log, producer.Topic()))
	return &kafkaPublisher{producer: producer}
}

// Publish tags the message with the request id found on ctx, if any, as its
// correlation id.
func (p *kafkaPublisher) Publish(ctx context.Context, event SessionEvent) error {
	mb := kafka.NewMessage().
		WithKey(event.SessionID).
		WithValue(event).
		WithEventType(event.Type).
		WithSchemaVersion(schemaVersion).
		WithSource(eventSourceName).
		WithTimestamp(event.OccurredAt)
	if requestID := middleware.RequestIDFrom(ctx); requestID != "" {
		mb.WithCorrelationID(requestID)
	}

	msg, err := mb.Build()
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, msg)
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when no brokers are configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, SessionEvent) error { return nil }

func (noopPublisher) Close() error { return nil }
