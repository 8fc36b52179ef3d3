// Package htmltomarkdown provides a Cleaner that converts HTML to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/templatemaker"
)

// Ensure Cleaner implements templatemaker.Cleaner at compile time.
var _ templatemaker.Cleaner = (*Cleaner)(nil)

// Cleaner wraps html-to-markdown so templates are learned over the Markdown
// rendering of a page instead of its markup.
type Cleaner struct {
	conv *converter.Converter
}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Cleaner{conv: conv}
}

// Clean transforms HTML content into Markdown with LF line endings.
// Whitespace-only input yields an empty string.
func (c *Cleaner) Clean(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(templatemaker.NormalizeNewlines(html))
	if err != nil {
		return "", templatemaker.Errorf(templatemaker.EINVALID, "failed to convert HTML: %v", err)
	}

	return result, nil
}
