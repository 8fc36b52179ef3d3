package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/etree"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	if err := validateCleanMode(c.Clean); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	export, err := decodeExport(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	rec := &templatemaker.TemplateRecord{
		Name:      c.Name,
		Tolerance: export.Tolerance,
		Cleaner:   cleanMode(export.Cleaner),
		Version:   export.Version,
		Segments:  export.Segments,
	}
	if c.Tolerance >= 0 {
		rec.Tolerance = c.Tolerance
	}
	if c.Clean != "" {
		rec.Cleaner = c.Clean
	}
	if rec.Version == 0 && len(rec.Segments) > 0 {
		rec.Version = 1
	}

	if err := deps.Templates.CreateTemplate(deps.Ctx, rec); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported template %q (%s), %d holes\n", rec.Name, rec.ID, rec.Segments.HoleCount())
	return nil
}

// decodeExport reads an XML document, a JSON TemplateExport or a bare JSON
// segment array.
func decodeExport(data []byte) (*TemplateExport, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, templatemaker.Errorf(templatemaker.EINVALID, "template export is empty")
	}

	var export TemplateExport
	switch trimmed[0] {
	case '<':
		segs, err := etree.Decode(trimmed)
		if err != nil {
			return nil, err
		}
		export.Segments = segs
		return &export, nil
	case '[':
		if err := json.Unmarshal(trimmed, &export.Segments); err != nil {
			return nil, invalidJSON(err)
		}
	default:
		if err := json.Unmarshal(trimmed, &export); err != nil {
			return nil, invalidJSON(err)
		}
	}

	if err := export.Segments.Validate(); err != nil {
		return nil, err
	}
	if export.Tolerance < 0 {
		return nil, templatemaker.Errorf(templatemaker.EINVALID, "template tolerance must not be negative")
	}
	if err := validateCleanMode(export.Cleaner); err != nil {
		return nil, err
	}
	return &export, nil
}

func invalidJSON(err error) error {
	if templatemaker.ErrorCode(err) == templatemaker.EINVALID {
		return err
	}
	return templatemaker.Errorf(templatemaker.EINVALID, "parsing template JSON: %v", err)
}
