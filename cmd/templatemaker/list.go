package main

import (
	"fmt"

	"github.com/fwojciec/templatemaker"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	recs, err := deps.Templates.FindTemplates(deps.Ctx, templatemaker.TemplateFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No templates found. Use 'templatemaker learn' to create one.")
		return nil
	}

	for _, r := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  v%d  %d holes  %d samples  tolerance %d\n",
			r.ID, r.Name, r.Version, r.Segments.HoleCount(), r.SampleCount, r.Tolerance)
	}

	return nil
}
