// Package bluemonday provides a Cleaner that strips all markup using the
// bluemonday sanitizer.
package bluemonday

import (
	"html"
	"strings"

	"github.com/fwojciec/templatemaker"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure TextCleaner implements templatemaker.Cleaner at compile time.
var _ templatemaker.Cleaner = (*TextCleaner)(nil)

// TextCleaner reduces HTML to its text. Tags are removed, the content of
// script and style elements is dropped and entities are decoded.
type TextCleaner struct {
	policy *bluemonday.Policy
}

// NewTextCleaner creates a new TextCleaner.
func NewTextCleaner() *TextCleaner {
	return &TextCleaner{policy: bluemonday.StrictPolicy()}
}

// Clean returns the text content of html with LF line endings.
func (c *TextCleaner) Clean(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	sanitized := c.policy.Sanitize(templatemaker.NormalizeNewlines(text))
	return html.UnescapeString(sanitized), nil
}
