package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	segkafka "github.com/segmentio/kafka-go"

	"radar/pkg/kafka"
	"radar/pkg/logger"
	"radar/pkg/middleware"
	"radar/pkg/model"
)

type recordingWriter struct {
	messages []segkafka.Message
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...segkafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	pub := NewKafkaPublisher(kafka.NewProducerWithWriter(w, "lead-sessions"), logger.Discard())
	defer pub.Close()

	occurred := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	event := SessionEvent{
		Type:         PageChanged,
		SessionID:    "sess-1",
		Criteria:     model.FilterCriteria{MinScore: 5, City: "Almenara"},
		PageIndex:    2,
		TotalRecords: 31,
		OccurredAt:   occurred,
	}

	if err := pub.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if len(w.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.messages))
	}

	msg := w.messages[0]
	if string(msg.Key) != "sess-1" {
		t.Errorf("expected session id as key, got %q", msg.Key)
	}

	var decoded SessionEvent
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("value is not JSON: %v", err)
	}
	if decoded.PageIndex != 2 || decoded.Criteria.City != "Almenara" {
		t.Errorf("unexpected payload %+v", decoded)
	}

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	if headers[kafka.HeaderEventType] != PageChanged {
		t.Errorf("expected event type header, got %v", headers)
	}
	if headers[kafka.HeaderSource] != eventSourceName {
		t.Errorf("expected source header, got %v", headers)
	}
	if _, ok := headers[kafka.HeaderCorrelationID]; ok {
		t.Errorf("no request id on ctx, expected no correlation header, got %v", headers)
	}
}

func TestKafkaPublisher_CorrelatesWithRequest(t *testing.T) {
	w := &recordingWriter{}
	pub := NewKafkaPublisher(kafka.NewProducerWithWriter(w, "lead-sessions"), logger.Discard())
	defer pub.Close()

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	if err := pub.Publish(ctx, SessionEvent{Type: SessionStarted, SessionID: "sess-2"}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	for _, h := range w.messages[0].Headers {
		if h.Key == kafka.HeaderCorrelationID {
			if string(h.Value) != "req-42" {
				t.Errorf("expected correlation id req-42, got %q", h.Value)
			}
			return
		}
	}
	t.Error("correlation header missing")
}

func TestNoopPublisher(t *testing.T) {
	pub := NewNoopPublisher()
	if err := pub.Publish(context.Background(), SessionEvent{SessionID: "x"}); err != nil {
		t.Errorf("noop publish should never fail, got %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Errorf("noop close should never fail, got %v", err)
	}
}
