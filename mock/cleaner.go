package mock

import "github.com/fwojciec/templatemaker"

var _ templatemaker.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of templatemaker.Cleaner.
type Cleaner struct {
	CleanFn func(text string) (string, error)
}

func (c *Cleaner) Clean(text string) (string, error) {
	return c.CleanFn(text)
}
