package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/batch"
	"github.com/fwojciec/templatemaker/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	rec, err := findTemplate(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'templatemaker list' to see available templates.\n", templatemaker.ErrorMessage(err))
		return err
	}

	extractor, err := templatemaker.Compile(rec.Segments)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: template %q: %s\n", c.Name, templatemaker.ErrorMessage(err))
		return err
	}

	if err := validateCleanMode(c.Clean); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}
	mode := c.Clean
	if mode == "" {
		mode = rec.Cleaner
	}
	cleaner, err := newCleaner(mode, deps.Logger)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	samples, err := fs.ReadSamples(c.Files...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	x := &batch.Extractor{Cleaner: cleaner, Concurrency: c.Concurrency}
	results, err := x.ExtractAll(deps.Ctx, extractor, samples)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var out *fs.RecordStore
	if c.Out != "" {
		out = fs.NewRecordStore(filepath.Dir(c.Out), filepath.Base(c.Out))
	}

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  no match %s: %s\n", r.Path, errorText(r.Err))
			continue
		}

		record := &fs.Record{Source: r.Path, Template: c.Name, Fragments: r.Fragments}
		if len(c.Field) > 0 {
			record.Fields = templatemaker.Fields(r.Fragments, c.Field)
		}

		if out != nil {
			if err := out.Save(deps.Ctx, record); err != nil {
				_ = out.Abort()
				fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", r.Path, err)
				return err
			}
			continue
		}
		if err := c.print(deps, record); err != nil {
			return err
		}
	}

	if out != nil {
		if err := out.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", len(results)-failed, c.Out)
	}

	if failed > 0 {
		return templatemaker.Errorf(templatemaker.ENOMATCH, "%d of %d files did not match template %q", failed, len(results), c.Name)
	}
	return nil
}

// print writes a record to stdout: a JSON object of named fields when
// fields were given, otherwise the path followed by one quoted fragment
// per line.
func (c *ExtractCmd) print(deps *Dependencies, record *fs.Record) error {
	if record.Fields != nil {
		data, err := json.Marshal(struct {
			Source string            `json:"source"`
			Fields map[string]string `json:"fields"`
		}{record.Source, record.Fields})
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s\n", record.Source)
	for i, f := range record.Fragments {
		fmt.Fprintf(deps.Stdout, "  %d: %q\n", i+1, f)
	}
	return nil
}
