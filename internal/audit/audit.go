// Package audit records accepted download requests.
package audit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

// Sink receives one record per accepted download request.
type Sink interface {
	Record(ctx context.Context, rec models.AuditRecord) error
}

// LogSink writes audit records to a structured logger.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink logs to log, or to the default logger when log is nil.
func NewLogSink(log *slog.Logger) *LogSink {
	if log == nil {
		log = slog.Default()
	}
	return &LogSink{log: log}
}

// Record logs rec at info level.
func (s *LogSink) Record(ctx context.Context, rec models.AuditRecord) error {
	s.log.InfoContext(ctx, "Download request",
		"request_id", rec.RequestID,
		"publication_id", rec.PublicationID,
		"name", rec.Name,
		"email", rec.Email,
		"institution", rec.Institution,
		"purpose", rec.Purpose,
		"timestamp", rec.Timestamp.UTC().Format(timeLayout),
		"ip", rec.IP,
	)
	return nil
}

// Multi fans a record out to several sinks. Every sink is tried and the
// errors are joined.
type Multi []Sink

// Record implements Sink.
func (m Multi) Record(ctx context.Context, rec models.AuditRecord) error {
	var errs []error
	for _, s := range m {
		if err := s.Record(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
