package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"radar/pkg/logger"
)

const (
	DefaultQueueSize      = 256
	DefaultPublishTimeout = 5 * time.Second
)

var (
	ErrQueueFull       = errors.New("session event queue is full")
	ErrPublisherClosed = errors.New("session event publisher is closed")
)

type queuedEvent struct {
	ctx   context.Context
	event SessionEvent
}

// AsyncPublisher hands events to a single background goroutine, so a slow or
// unreachable broker never holds a request. Events are dropped, with
// ErrQueueFull, once the buffer is full. Order is preserved.
type AsyncPublisher struct {
	next    Publisher
	log     *logger.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan queuedEvent
	done   chan struct{}

	closeOnce sync.Once
	closeErr  error
}

func NewAsyncPublisher(next Publisher, queueSize int, timeout time.Duration, log *logger.Logger) *AsyncPublisher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}

	p := &AsyncPublisher{
		next:    next,
		log:     log,
		timeout: timeout,
		queue:   make(chan queuedEvent, queueSize),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish enqueues event without waiting for the broker. The request context
// is detached from its cancellation but keeps its values.
func (p *AsyncPublisher) Publish(ctx context.Context, event SessionEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *AsyncPublisher) run() {
	defer close(p.done)

	for q := range p.queue {
		ctx, cancel := context.WithTimeout(q.ctx, p.timeout)
		if err := p.next.Publish(ctx, q.event); err != nil {
			p.log.Warn("Failed to publish session event",
				"session_id", q.event.SessionID,
				"event", q.event.Type,
				"error", err,
			)
		}
		cancel()
	}
}

// Close stops accepting events, drains the queue, then closes the wrapped
// publisher.
func (p *AsyncPublisher) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()

		<-p.done
		p.closeErr = p.next.Close()
	})
	return p.closeErr
}
