package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/templatemaker"
)

// Ensure LoggingTemplateService implements templatemaker.TemplateService.
var _ templatemaker.TemplateService = (*LoggingTemplateService)(nil)

// LoggingTemplateService wraps a TemplateService with debug logging.
type LoggingTemplateService struct {
	next   templatemaker.TemplateService
	logger *slog.Logger
}

// NewLoggingTemplateService creates a new LoggingTemplateService.
func NewLoggingTemplateService(next templatemaker.TemplateService, logger *slog.Logger) *LoggingTemplateService {
	return &LoggingTemplateService{next: next, logger: logger}
}

// CreateTemplate delegates to the wrapped service and logs the operation.
func (s *LoggingTemplateService) CreateTemplate(ctx context.Context, rec *templatemaker.TemplateRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create template",
			"name", rec.Name,
			"id", rec.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateTemplate(ctx, rec)
}

// FindTemplateByID delegates to the wrapped service and logs the operation.
func (s *LoggingTemplateService) FindTemplateByID(ctx context.Context, id string) (rec *templatemaker.TemplateRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find template",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTemplateByID(ctx, id)
}

// FindTemplates delegates to the wrapped service and logs the operation.
func (s *LoggingTemplateService) FindTemplates(ctx context.Context, filter templatemaker.TemplateFilter) (recs []*templatemaker.TemplateRecord, err error) {
	defer func(begin time.Time) {
		attrs := []any{"count", len(recs), "duration", time.Since(begin), "err", err}
		if filter.Name != nil {
			attrs = append([]any{"name", *filter.Name}, attrs...)
		}
		s.logger.Info("find templates", attrs...)
	}(time.Now())
	return s.next.FindTemplates(ctx, filter)
}

// UpdateTemplate delegates to the wrapped service and logs the operation.
func (s *LoggingTemplateService) UpdateTemplate(ctx context.Context, id string, upd templatemaker.TemplateUpdate) (rec *templatemaker.TemplateRecord, err error) {
	defer func(begin time.Time) {
		attrs := []any{"id", id}
		if upd.Version != nil {
			attrs = append(attrs, "version", *upd.Version)
		}
		if upd.Segments != nil {
			attrs = append(attrs, "holes", upd.Segments.HoleCount())
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("update template", attrs...)
	}(time.Now())
	return s.next.UpdateTemplate(ctx, id, upd)
}

// DeleteTemplate delegates to the wrapped service and logs the operation.
func (s *LoggingTemplateService) DeleteTemplate(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete template",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteTemplate(ctx, id)
}
