// Package goquery provides HTML cleaning built on goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/templatemaker"
)

// Ensure HTMLCleaner implements templatemaker.Cleaner at compile time.
var _ templatemaker.Cleaner = (*HTMLCleaner)(nil)

// DefaultRemoveSelectors are the elements HTMLCleaner drops by default.
// Their content changes between otherwise identical pages and rarely carries
// data worth extracting.
var DefaultRemoveSelectors = []string{"script", "style", "noscript"}

// HTMLCleaner removes unwanted elements, including everything inside them,
// and re-renders the remaining document.
type HTMLCleaner struct {
	selector string
}

// NewHTMLCleaner creates an HTMLCleaner that removes elements matching any of
// the given CSS selectors, or DefaultRemoveSelectors when none are given.
func NewHTMLCleaner(selectors ...string) *HTMLCleaner {
	if len(selectors) == 0 {
		selectors = DefaultRemoveSelectors
	}
	return &HTMLCleaner{selector: strings.Join(selectors, ", ")}
}

// Clean parses html, removes the configured elements and returns the
// rendered document with LF line endings. Empty input stays empty.
func (c *HTMLCleaner) Clean(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(templatemaker.NormalizeNewlines(html)))
	if err != nil {
		return "", templatemaker.Errorf(templatemaker.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(c.selector).Remove()

	out, err := doc.Html()
	if err != nil {
		return "", err
	}
	return out, nil
}
