package mock_test

import (
	"testing"

	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where a Cleaner is expected
	var _ templatemaker.Cleaner = &mock.Cleaner{}
}

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CleanFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		c := &mock.Cleaner{
			CleanFn: func(text string) (string, error) {
				calledWith = text
				return "cleaned", nil
			},
		}

		out, err := templatemaker.NewChain(c).Clean("raw")

		require.NoError(t, err)
		assert.Equal(t, "raw", calledWith)
		assert.Equal(t, "cleaned", out)
	})
}
