package templatemaker

import (
	"regexp"
	"strings"
)

// Extractor matches texts against a finalized template and returns the
// contents of its holes. An Extractor is immutable and safe for concurrent
// use.
type Extractor struct {
	template Template
	re       *regexp.Regexp
}

// Compile builds an Extractor for t. Literals must match exactly and each
// hole matches the shortest run of characters that lets the whole text match
// from start to end.
func Compile(t Template) (*Extractor, error) {
	if len(t) == 0 {
		return nil, Errorf(EINVALID, "template has no learned samples")
	}

	var b strings.Builder
	b.WriteString(`(?s)^`)
	for _, seg := range t {
		if seg.IsHole() {
			b.WriteString(`(.*?)`)
		} else {
			b.WriteString(regexp.QuoteMeta(seg.Text))
		}
	}
	b.WriteString(`$`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, Errorf(EINVALID, "compile template: %v", err)
	}
	return &Extractor{template: t.Clone(), re: re}, nil
}

// Template returns a copy of the template the Extractor was compiled from.
func (e *Extractor) Template() Template {
	return e.template.Clone()
}

// HoleCount returns the number of fragments a successful Extract returns.
func (e *Extractor) HoleCount() int {
	return e.re.NumSubexp()
}

// Extract returns the content of each hole in template order.
// Invalid UTF-8 in text is replaced as ValidText does before matching.
// Returns ENOMATCH if text cannot be decomposed according to the template.
func (e *Extractor) Extract(text string) ([]string, error) {
	m := e.re.FindStringSubmatch(ValidText(text))
	if m == nil {
		return nil, Errorf(ENOMATCH, "text does not match template")
	}
	return m[1:], nil
}

// ExtractMap extracts text and pairs the fragments with names as Fields does.
func (e *Extractor) ExtractMap(text string, names []string) (map[string]string, error) {
	fragments, err := e.Extract(text)
	if err != nil {
		return nil, err
	}
	return Fields(fragments, names), nil
}

// Fields pairs fragments with names in order. Fragments whose name is empty
// are skipped, and pairing stops at the end of the shorter sequence.
// Duplicate names keep the last fragment.
func Fields(fragments, names []string) map[string]string {
	out := make(map[string]string, len(names))
	for i, name := range names {
		if i >= len(fragments) {
			break
		}
		if name == "" {
			continue
		}
		out[name] = fragments[i]
	}
	return out
}

// Extract compiles t and extracts text in one step.
func Extract(t Template, text string) ([]string, error) {
	e, err := Compile(t)
	if err != nil {
		return nil, err
	}
	return e.Extract(text)
}
