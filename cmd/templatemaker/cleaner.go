package main

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/bluemonday"
	"github.com/fwojciec/templatemaker/goquery"
	"github.com/fwojciec/templatemaker/htmltomarkdown"
	tmslog "github.com/fwojciec/templatemaker/slog"
)

// cleanModes lists the accepted --clean values. An empty mode means raw.
var cleanModes = []string{"raw", "html", "markdown", "text"}

// validateCleanMode returns EINVALID unless mode is empty or one of cleanModes.
func validateCleanMode(mode string) error {
	if mode == "" || slices.Contains(cleanModes, mode) {
		return nil
	}
	return templatemaker.Errorf(templatemaker.EINVALID, "clean mode must be one of %s, got %q", strings.Join(cleanModes, ", "), mode)
}

// cleanMode returns mode, or raw when it is empty.
func cleanMode(mode string) string {
	if mode == "" {
		return "raw"
	}
	return mode
}

// newCleaner returns the cleaner for a --clean mode. Every mode normalizes
// line endings first. When logger is set the cleaner logs each call.
func newCleaner(mode string, logger *slog.Logger) (templatemaker.Cleaner, error) {
	mode = cleanMode(mode)
	var c templatemaker.Cleaner
	switch mode {
	case "raw":
		c = templatemaker.NewlineCleaner
	case "html":
		c = goquery.NewHTMLCleaner()
	case "markdown":
		c = templatemaker.NewChain(goquery.NewHTMLCleaner(), htmltomarkdown.NewCleaner())
	case "text":
		c = templatemaker.NewChain(goquery.NewHTMLCleaner(), bluemonday.NewTextCleaner())
	default:
		return nil, templatemaker.Errorf(templatemaker.EINVALID, "unknown clean mode %q", mode)
	}
	if logger != nil {
		c = tmslog.NewLoggingCleaner(c, mode, logger)
	}
	return c, nil
}

// findTemplate looks up a template by name.
// Returns ENOTFOUND if no template has that name.
func findTemplate(deps *Dependencies, name string) (*templatemaker.TemplateRecord, error) {
	recs, err := deps.Templates.FindTemplates(deps.Ctx, templatemaker.TemplateFilter{Name: &name, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, templatemaker.Errorf(templatemaker.ENOTFOUND, "template %q not found", name)
	}
	return recs[0], nil
}

// errorText returns the message of application errors and the full text of
// anything else.
func errorText(err error) string {
	if templatemaker.ErrorCode(err) == templatemaker.EINTERNAL {
		return err.Error()
	}
	return templatemaker.ErrorMessage(err)
}
