package mock

import (
	"context"

	"github.com/fwojciec/templatemaker"
)

var _ templatemaker.SampleService = (*SampleService)(nil)

// SampleService is a mock implementation of templatemaker.SampleService.
type SampleService struct {
	CreateSampleFn func(ctx context.Context, rec *templatemaker.SampleRecord) error
	FindSamplesFn  func(ctx context.Context, filter templatemaker.SampleFilter) ([]*templatemaker.SampleRecord, error)
}

func (s *SampleService) CreateSample(ctx context.Context, rec *templatemaker.SampleRecord) error {
	return s.CreateSampleFn(ctx, rec)
}

func (s *SampleService) FindSamples(ctx context.Context, filter templatemaker.SampleFilter) ([]*templatemaker.SampleRecord, error) {
	return s.FindSamplesFn(ctx, filter)
}

var _ templatemaker.SampleSource = (*SampleSource)(nil)

// SampleSource is a mock implementation of templatemaker.SampleSource.
type SampleSource struct {
	SamplesFn func(ctx context.Context, root string) ([]*templatemaker.Sample, error)
}

func (s *SampleSource) Samples(ctx context.Context, root string) ([]*templatemaker.Sample, error) {
	return s.SamplesFn(ctx, root)
}
