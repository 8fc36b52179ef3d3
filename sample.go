package templatemaker

import "context"

// Sample is a raw text read from a source, before cleaning.
type Sample struct {
	Path    string
	Content string
}

// SampleSource lists samples under a root location.
type SampleSource interface {
	// Samples returns every sample under root in a stable order.
	Samples(ctx context.Context, root string) ([]*Sample, error)
}
