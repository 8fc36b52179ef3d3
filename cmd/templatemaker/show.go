package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/etree"
)

// TemplateExport is the JSON form written by "show --format json" and read
// by "import".
type TemplateExport struct {
	Name      string                `json:"name"`
	Tolerance int                   `json:"tolerance"`
	Cleaner   string                `json:"cleaner,omitempty"`
	Version   int                   `json:"version"`
	Segments  templatemaker.Template `json:"segments"`
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := findTemplate(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'templatemaker list' to see available templates.\n", templatemaker.ErrorMessage(err))
		return err
	}

	if len(rec.Segments) == 0 {
		fmt.Fprintf(deps.Stderr, "error: template %q has no learned samples\n", c.Name)
		return templatemaker.Errorf(templatemaker.EINVALID, "template %q has no learned samples", c.Name)
	}

	switch c.Format {
	case "json":
		data, err := json.MarshalIndent(TemplateExport{
			Name:      rec.Name,
			Tolerance: rec.Tolerance,
			Cleaner:   rec.Cleaner,
			Version:   rec.Version,
			Segments:  rec.Segments,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
	case "xml":
		data, err := etree.Encode(rec.Segments)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
	default:
		fmt.Fprintln(deps.Stdout, rec.Segments.Render(c.Marker))
	}
	return nil
}
