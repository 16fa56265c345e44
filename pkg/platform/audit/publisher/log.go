package publisher

import (
	"context"
	"log/slog"

	audit "billsplit/pkg/platform/audit"
)

// LogSink writes audit events to a logger. Used when no broker is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Append(ctx context.Context, event audit.Event) error {
	if s.logger == nil {
		return nil
	}
	args := []any{
		"log_type", "audit_event",
		"category", string(event.Category),
		"action", event.Action,
		"report_id", event.ReportID,
		"subject", event.Subject,
		"actor", event.Actor,
		"decision", event.Decision,
		"request_id", event.RequestID,
	}
	for k, v := range event.Details {
		args = append(args, k, v)
	}
	s.logger.InfoContext(ctx, "audit event", args...)
	return nil
}
