package templatemaker

import "strings"

// Cleaner prepares raw text before it is learned or extracted.
// Implementations must be deterministic so that a sample cleaned at learn
// time and again at extract time produces the same text.
type Cleaner interface {
	// Clean transforms the input into the text the template works on.
	Clean(text string) (string, error)
}

// CleanerFunc adapts an ordinary function to the Cleaner interface.
type CleanerFunc func(text string) (string, error)

// Clean calls f(text).
func (f CleanerFunc) Clean(text string) (string, error) {
	return f(text)
}

// NormalizeNewlines converts CRLF line endings to LF.
func NormalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// NewlineCleaner is the minimal Cleaner: it only normalizes line endings.
var NewlineCleaner Cleaner = CleanerFunc(func(text string) (string, error) {
	return NormalizeNewlines(text), nil
})

// Chain runs cleaners in order, feeding each one's output to the next.
type Chain []Cleaner

// NewChain returns a Chain of the non-nil cleaners.
func NewChain(cleaners ...Cleaner) Chain {
	c := make(Chain, 0, len(cleaners))
	for _, cl := range cleaners {
		if cl != nil {
			c = append(c, cl)
		}
	}
	return c
}

// Clean applies every cleaner in the chain.
func (c Chain) Clean(text string) (string, error) {
	var err error
	for _, cl := range c {
		if text, err = cl.Clean(text); err != nil {
			return "", err
		}
	}
	return text, nil
}
