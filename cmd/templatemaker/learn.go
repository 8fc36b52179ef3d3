package main

import (
	"fmt"

	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/batch"
)

// Run executes the learn command.
func (c *LearnCmd) Run(deps *Dependencies) error {
	if err := validateCleanMode(c.Clean); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	samples, err := deps.Source.Samples(deps.Ctx, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}
	if len(samples) == 0 {
		fmt.Fprintf(deps.Stdout, "No samples found in %s\n", c.Dir)
		return nil
	}

	rec, err := c.findOrCreate(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	cleaner, err := newCleaner(rec.Cleaner, deps.Logger)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	history, err := deps.Samples.FindSamples(deps.Ctx, templatemaker.SampleFilter{TemplateID: &rec.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}
	seen := make([]string, len(history))
	for i, s := range history {
		seen[i] = s.ContentHash
	}

	learner := &batch.Learner{
		Cleaner:  cleaner,
		MaxCells: c.MaxCells,
		Seen:     seen,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d samples\n", event.Total)
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  %s: %s (%d holes)\n", batch.TruncatePath(event.Path, 60), event.Outcome, event.HoleCount)
		case batch.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  %s: already learned\n", batch.TruncatePath(event.Path, 60))
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Path, errorText(event.Error))
		}
	}

	store := rec.Store()
	result, learnErr := learner.LearnAll(deps.Ctx, store, samples, progress)
	if result == nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", learnErr)
		return learnErr
	}

	// Persist whatever was learned, even when interrupted
	if err := c.save(deps, rec, store, result); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}
	if learnErr != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", learnErr)
		return learnErr
	}

	fmt.Fprintf(deps.Stdout, "Learned %d samples into %q (%d skipped, %d failed); version %d, %d holes\n",
		result.Learned, c.Name, result.Skipped, result.Failed, store.Version(), store.HoleCount())
	if store.Learned() {
		fmt.Fprintln(deps.Stdout, store.Render(templatemaker.DefaultMarker))
	}
	return nil
}

func (c *LearnCmd) findOrCreate(deps *Dependencies) (*templatemaker.TemplateRecord, error) {
	rec, err := findTemplate(deps, c.Name)
	if err == nil {
		if c.Tolerance != rec.Tolerance {
			fmt.Fprintf(deps.Stderr, "  note: keeping tolerance %d of existing template %q\n", rec.Tolerance, c.Name)
		}
		if c.Clean != "" && c.Clean != cleanMode(rec.Cleaner) {
			fmt.Fprintf(deps.Stderr, "  note: keeping clean mode %s of existing template %q\n", cleanMode(rec.Cleaner), c.Name)
		}
		return rec, nil
	}
	if templatemaker.ErrorCode(err) != templatemaker.ENOTFOUND {
		return nil, err
	}

	rec = &templatemaker.TemplateRecord{
		Name:      c.Name,
		Tolerance: c.Tolerance,
		Cleaner:   cleanMode(c.Clean),
	}
	if err := deps.Templates.CreateTemplate(deps.Ctx, rec); err != nil {
		return nil, err
	}
	fmt.Fprintf(deps.Stdout, "Created template %q (%s)\n", c.Name, rec.ID)
	return rec, nil
}

func (c *LearnCmd) save(deps *Dependencies, rec *templatemaker.TemplateRecord, store *templatemaker.Store, result *batch.LearnResult) error {
	if result.Learned == 0 {
		return nil
	}

	for _, s := range result.Samples {
		if err := deps.Samples.CreateSample(deps.Ctx, &templatemaker.SampleRecord{
			TemplateID:  rec.ID,
			SourcePath:  s.Path,
			ContentHash: s.ContentHash,
			Outcome:     s.Outcome.String(),
		}); err != nil {
			return fmt.Errorf("recording sample %s: %w", s.Path, err)
		}
	}

	segments := store.Segments()
	version := store.Version()
	count := rec.SampleCount + result.Learned
	_, err := deps.Templates.UpdateTemplate(deps.Ctx, rec.ID, templatemaker.TemplateUpdate{
		Segments:    &segments,
		Version:     &version,
		SampleCount: &count,
	})
	return err
}
