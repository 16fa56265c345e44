// Package publisher emits audit events to a sink with fail-open semantics:
// a sink outage is logged and counted but never fails the business operation
// that produced the event.
package publisher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	audit "billsplit/pkg/platform/audit"
	"billsplit/pkg/platform/circuit"
)

// ErrCircuitOpen is returned by Emit when the event was dropped by the breaker.
var ErrCircuitOpen = errors.New("audit circuit breaker open")

// Publisher forwards events to an audit.Store behind a circuit breaker.
type Publisher struct {
	sink    audit.Store
	breaker *circuit.Breaker
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithLogger sets a logger for delivery failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

// WithCircuitBreaker overrides the failure threshold and open cooldown.
func WithCircuitBreaker(threshold int, cooldown time.Duration) Option {
	return func(p *Publisher) {
		p.breaker = circuit.New("audit",
			circuit.WithFailureThreshold(threshold),
			circuit.WithCooldown(cooldown),
		)
	}
}

// WithBreaker replaces the breaker outright.
func WithBreaker(b *circuit.Breaker) Option {
	return func(p *Publisher) {
		if b != nil {
			p.breaker = b
		}
	}
}

// New creates a publisher over sink.
func New(sink audit.Store, opts ...Option) *Publisher {
	p := &Publisher{
		sink:    sink,
		breaker: circuit.New("audit"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit fills in category and timestamp, then delivers the event.
// The returned error is informational; callers may ignore it.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if !p.breaker.Allow() {
		p.metrics.incDropped()
		return ErrCircuitOpen
	}

	if err := p.sink.Append(ctx, event); err != nil {
		p.metrics.incPublishFailures()
		if _, change := p.breaker.RecordFailure(); change.Opened {
			p.metrics.setBreakerState(true)
			if p.logger != nil {
				p.logger.WarnContext(ctx, "audit circuit breaker opened", "error", err)
			}
		}
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "audit publish failed",
				"action", event.Action,
				"report_id", event.ReportID,
				"error", err,
			)
		}
		return err
	}

	if _, change := p.breaker.RecordSuccess(); change.Closed {
		p.metrics.setBreakerState(false)
	}
	p.metrics.incEmitted(string(event.Category))
	return nil
}
