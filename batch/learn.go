// Package batch drives the core template operations over collections of
// samples: learning a directory into a Store and extracting many files
// against one template.
package batch

import (
	"context"

	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/bloom"
)

// Dedup filter sizing.
const (
	// filterMinItems is the smallest number of hashes the filter is sized for.
	filterMinItems = 1024
	// filterFalsePositiveRate is the acceptable false positive rate before
	// the exact set is consulted.
	filterFalsePositiveRate = 0.01
)

// Learner learns batches of samples into a Store.
type Learner struct {
	// Cleaner prepares each sample. Nil means NewlineCleaner.
	Cleaner templatemaker.Cleaner
	// MaxCells rejects samples whose alignment would need more table cells.
	// Zero means unlimited.
	MaxCells int
	// Seen holds content hashes, as produced by ComputeHash, of samples
	// already learned into the store. Matching samples are skipped.
	Seen []string
}

// LearnResult holds the outcome of a LearnAll call.
type LearnResult struct {
	Learned  int
	Skipped  int
	Failed   int
	Samples  []LearnedSample
	Template templatemaker.Template
}

// LearnedSample describes one sample that was merged into the store.
type LearnedSample struct {
	Path        string
	ContentHash string
	Outcome     templatemaker.MergeOutcome
	HoleCount   int
}

// ProgressEvent reports progress during a batch operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Outcome   templatemaker.MergeOutcome
	HoleCount int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// LearnAll cleans and learns samples into store in order.
//
// Samples whose cleaned content was already seen, either earlier in the batch
// or in Seen, are skipped. Samples that fail to clean or exceed MaxCells are
// counted as failed and do not touch the store. Cancellation is checked
// between samples; on cancellation the partial result is returned together
// with the context error.
func (l *Learner) LearnAll(ctx context.Context, store *templatemaker.Store, samples []*templatemaker.Sample, progress ProgressFunc) (*LearnResult, error) {
	cleaner := l.Cleaner
	if cleaner == nil {
		cleaner = templatemaker.NewlineCleaner
	}

	filter := bloom.NewFilter(uint(max(filterMinItems, len(samples)+len(l.Seen))), filterFalsePositiveRate)
	seen := make(map[string]struct{}, len(l.Seen)+len(samples))
	for _, hash := range l.Seen {
		seen[hash] = struct{}{}
		if h, ok := parseHash(hash); ok {
			filter.Add(h)
		}
	}

	total := len(samples)
	emit := func(ev ProgressEvent) {
		if progress != nil {
			ev.Total = total
			progress(ev)
		}
	}

	result := &LearnResult{}
	emit(ProgressEvent{Type: ProgressStarted})

	for i, sample := range samples {
		if err := ctx.Err(); err != nil {
			result.Template = store.Segments()
			return result, err
		}

		cleaned, err := cleaner.Clean(sample.Content)
		if err != nil {
			result.Failed++
			emit(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Path: sample.Path, Error: err})
			continue
		}

		sum := xxhashOf(cleaned)
		hash := ComputeHash(cleaned)
		if filter.TestAndAdd(sum) {
			if _, ok := seen[hash]; ok {
				result.Skipped++
				emit(ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Path: sample.Path})
				continue
			}
		}

		if l.MaxCells > 0 {
			if cost := store.AlignCost(cleaned); cost > l.MaxCells {
				result.Failed++
				emit(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Path:      sample.Path,
					Error:     templatemaker.Errorf(templatemaker.EINVALID, "sample needs %d alignment cells, limit is %d", cost, l.MaxCells),
				})
				continue
			}
		}

		seen[hash] = struct{}{}
		outcome := store.Learn(cleaned)
		result.Learned++
		result.Samples = append(result.Samples, LearnedSample{
			Path:        sample.Path,
			ContentHash: hash,
			Outcome:     outcome,
			HoleCount:   store.HoleCount(),
		})
		emit(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: i + 1,
			Path:      sample.Path,
			Outcome:   outcome,
			HoleCount: store.HoleCount(),
		})
	}

	result.Template = store.Segments()
	emit(ProgressEvent{Type: ProgressFinished, Completed: total})
	return result, nil
}
