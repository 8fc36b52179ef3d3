package templatemaker_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/templatemaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns hole contents in order", func(t *testing.T) {
		t.Parallel()

		ext, err := templatemaker.Compile(templatemaker.ParseTemplate("<b>! and !</b>", "!"))
		require.NoError(t, err)

		got, err := ext.Extract("<b>alex and sue</b>")

		require.NoError(t, err)
		assert.Equal(t, []string{"alex", "sue"}, got)
	})

	t.Run("returns ENOMATCH for structural mismatch", func(t *testing.T) {
		t.Parallel()

		ext, err := templatemaker.Compile(templatemaker.ParseTemplate("<b>! and !</b>", "!"))
		require.NoError(t, err)

		_, err = ext.Extract("<b>mismatched</b>")

		require.Error(t, err)
		assert.Equal(t, templatemaker.ENOMATCH, templatemaker.ErrorCode(err))
	})

	t.Run("anchors at both ends", func(t *testing.T) {
		t.Parallel()

		ext, err := templatemaker.Compile(templatemaker.ParseTemplate("<b>!</b>", "!"))
		require.NoError(t, err)

		_, err = ext.Extract("prefix <b>x</b>")
		assert.Equal(t, templatemaker.ENOMATCH, templatemaker.ErrorCode(err))

		_, err = ext.Extract("<b>x</b> suffix")
		assert.Equal(t, templatemaker.ENOMATCH, templatemaker.ErrorCode(err))
	})

	t.Run("holes are shortest first", func(t *testing.T) {
		t.Parallel()

		ext, err := templatemaker.Compile(templatemaker.ParseTemplate("!,!", "!"))
		require.NoError(t, err)

		got, err := ext.Extract("a,b,c")

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b,c"}, got)
	})

	t.Run("holes match newlines", func(t *testing.T) {
		t.Parallel()

		ext, err := templatemaker.Compile(templatemaker.ParseTemplate("<p>!</p>", "!"))
		require.NoError(t, err)

		got, err := ext.Extract("<p>line one\nline two</p>")

		require.NoError(t, err)
		assert.Equal(t, []string{"line one\nline two"}, got)
	})

	t.Run("holes match empty text", func(t *testing.T) {
		t.Parallel()

		ext, err := templatemaker.Compile(templatemaker.ParseTemplate("<p>!</p>", "!"))
		require.NoError(t, err)

		got, err := ext.Extract("<p></p>")

		require.NoError(t, err)
		assert.Equal(t, []string{""}, got)
	})

	t.Run("literals are matched verbatim", func(t *testing.T) {
		t.Parallel()

		ext, err := templatemaker.Compile(templatemaker.ParseTemplate("a.b(!)*", "!"))
		require.NoError(t, err)

		got, err := ext.Extract("a.b(xyz)*")
		require.NoError(t, err)
		assert.Equal(t, []string{"xyz"}, got)

		_, err = ext.Extract("aXb(xyz)*")
		assert.Equal(t, templatemaker.ENOMATCH, templatemaker.ErrorCode(err))
	})

	t.Run("template without holes returns no fragments", func(t *testing.T) {
		t.Parallel()

		ext, err := templatemaker.Compile(templatemaker.ParseTemplate("fixed", "!"))
		require.NoError(t, err)

		got, err := ext.Extract("fixed")

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, 0, ext.HoleCount())
	})
}

func TestCompile_EmptyTemplate(t *testing.T) {
	t.Parallel()

	_, err := templatemaker.Compile(nil)

	require.Error(t, err)
	assert.Equal(t, templatemaker.EINVALID, templatemaker.ErrorCode(err))
}

func TestExtractor_ExtractMap(t *testing.T) {
	t.Parallel()

	ext, err := templatemaker.Compile(templatemaker.ParseTemplate("<b>! and !</b>", "!"))
	require.NoError(t, err)

	t.Run("zips names with fragments", func(t *testing.T) {
		t.Parallel()

		got, err := ext.ExtractMap("<b>alex and sue</b>", []string{"first", "second"})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"first": "alex", "second": "sue"}, got)
	})

	t.Run("skips empty names", func(t *testing.T) {
		t.Parallel()

		got, err := ext.ExtractMap("<b>alex and sue</b>", []string{"", "second"})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"second": "sue"}, got)
	})

	t.Run("stops at the shorter sequence", func(t *testing.T) {
		t.Parallel()

		got, err := ext.ExtractMap("<b>alex and sue</b>", []string{"first", "second", "third"})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = ext.ExtractMap("<b>alex and sue</b>", []string{"first"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"first": "alex"}, got)
	})

	t.Run("propagates ENOMATCH", func(t *testing.T) {
		t.Parallel()

		_, err := ext.ExtractMap("nope", []string{"first"})

		assert.Equal(t, templatemaker.ENOMATCH, templatemaker.ErrorCode(err))
	})
}

func TestExtract_ConcurrentUse(t *testing.T) {
	t.Parallel()

	ext, err := templatemaker.Compile(templatemaker.ParseTemplate("<li>!: !</li>", "!"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 32)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ext.Extract("<li>key: value</li>")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	got, err := templatemaker.Extract(templatemaker.ParseTemplate("<b>! and !</b>", "!"), "<b>alex and sue</b>")

	require.NoError(t, err)
	assert.Equal(t, []string{"alex", "sue"}, got)
}

func TestFields(t *testing.T) {
	t.Parallel()

	t.Run("keeps the last fragment for duplicate names", func(t *testing.T) {
		t.Parallel()

		got := templatemaker.Fields([]string{"a", "b"}, []string{"x", "x"})

		assert.Equal(t, map[string]string{"x": "b"}, got)
	})

	t.Run("returns empty map without names", func(t *testing.T) {
		t.Parallel()

		got := templatemaker.Fields([]string{"a"}, nil)

		assert.Empty(t, got)
	})
}
