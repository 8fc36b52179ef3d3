package mock

import (
	"context"

	"github.com/fwojciec/templatemaker"
)

var _ templatemaker.TemplateService = (*TemplateService)(nil)

// TemplateService is a mock implementation of templatemaker.TemplateService.
type TemplateService struct {
	CreateTemplateFn   func(ctx context.Context, rec *templatemaker.TemplateRecord) error
	FindTemplateByIDFn func(ctx context.Context, id string) (*templatemaker.TemplateRecord, error)
	FindTemplatesFn    func(ctx context.Context, filter templatemaker.TemplateFilter) ([]*templatemaker.TemplateRecord, error)
	UpdateTemplateFn   func(ctx context.Context, id string, upd templatemaker.TemplateUpdate) (*templatemaker.TemplateRecord, error)
	DeleteTemplateFn   func(ctx context.Context, id string) error
}

func (s *TemplateService) CreateTemplate(ctx context.Context, rec *templatemaker.TemplateRecord) error {
	return s.CreateTemplateFn(ctx, rec)
}

func (s *TemplateService) FindTemplateByID(ctx context.Context, id string) (*templatemaker.TemplateRecord, error) {
	return s.FindTemplateByIDFn(ctx, id)
}

func (s *TemplateService) FindTemplates(ctx context.Context, filter templatemaker.TemplateFilter) ([]*templatemaker.TemplateRecord, error) {
	return s.FindTemplatesFn(ctx, filter)
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, id string, upd templatemaker.TemplateUpdate) (*templatemaker.TemplateRecord, error) {
	return s.UpdateTemplateFn(ctx, id, upd)
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	return s.DeleteTemplateFn(ctx, id)
}
