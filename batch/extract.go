package batch

import (
	"context"

	"github.com/fwojciec/templatemaker"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency is used when Extractor.Concurrency is not positive.
const defaultConcurrency = 10

// Extractor runs one compiled template over many samples in parallel.
type Extractor struct {
	// Cleaner prepares each sample. It must match the cleaner the template
	// was learned with. Nil means NewlineCleaner.
	Cleaner templatemaker.Cleaner
	// Concurrency bounds the number of samples processed at once.
	Concurrency int
}

// ExtractResult is the outcome of extracting a single sample.
type ExtractResult struct {
	Path      string
	Fragments []string
	Err       error
}

// ExtractAll extracts every sample with e and returns results in input order.
// A sample that fails to clean or match carries its error in the result; the
// returned error is only set when ctx is canceled.
func (x *Extractor) ExtractAll(ctx context.Context, e *templatemaker.Extractor, samples []*templatemaker.Sample) ([]ExtractResult, error) {
	cleaner := x.Cleaner
	if cleaner == nil {
		cleaner = templatemaker.NewlineCleaner
	}
	concurrency := x.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]ExtractResult, len(samples))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, sample := range samples {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = extractOne(cleaner, e, sample)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func extractOne(cleaner templatemaker.Cleaner, e *templatemaker.Extractor, sample *templatemaker.Sample) ExtractResult {
	result := ExtractResult{Path: sample.Path}
	cleaned, err := cleaner.Clean(sample.Content)
	if err != nil {
		result.Err = err
		return result
	}
	result.Fragments, result.Err = e.Extract(cleaned)
	return result
}
