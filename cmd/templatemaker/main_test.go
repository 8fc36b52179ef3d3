package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/templatemaker"
	main "github.com/fwojciec/templatemaker/cmd/templatemaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Learn, Inspect and Extract
// A user learns a template from a directory of pages, then reuses it

func runMain(t *testing.T, dbPath string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	m := main.NewMain()
	m.DBPath = dbPath
	var out, errOut bytes.Buffer
	err = m.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestMain_Run_LearnShowExtract(t *testing.T) {
	t.Parallel()

	// Given a directory of samples and an empty database
	dir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "tm.db")
	writeSample(t, dir, "1.html", "<html><script>x()</script><p>Price: 10</p></html>")
	writeSample(t, dir, "2.html", "<html><script>y()</script><p>Price: 25</p></html>")

	// When I learn them with HTML cleaning
	stdout, _, err := runMain(t, dbPath, "learn", "prices", dir, "--clean", "html")

	// Then the template is created and printed
	require.NoError(t, err)
	assert.Contains(t, stdout, `Created template "prices"`)
	assert.Contains(t, stdout, "Learned 2 samples")
	assert.NotContains(t, stdout, "<script>")

	// And show renders it with a custom marker
	stdout, _, err = runMain(t, dbPath, "show", "prices", "--marker", "@@")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Price: @@")

	// And extraction cleans a new page the way the template was learned
	page := writeSample(t, t.TempDir(), "new.html", "<html><script>z()</script><p>Price: 99</p></html>")
	stdout, _, err = runMain(t, dbPath, "extract", "prices", page, "--field", "price")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"price":"99"`)

	// And overriding the cleaning leaves the page unmatched
	_, _, err = runMain(t, dbPath, "extract", "prices", page, "--clean", "raw")
	assert.Equal(t, templatemaker.ENOMATCH, templatemaker.ErrorCode(err))

	// And relearning the same directory skips every sample
	stdout, _, err = runMain(t, dbPath, "learn", "prices", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Learned 0 samples")
	assert.Contains(t, stdout, "2 skipped")
}

func TestMain_Run_ExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	// Given a learned template
	dir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "tm.db")
	writeSample(t, dir, "a.txt", "<b>this and that</b>")
	writeSample(t, dir, "b.txt", "<b>alex and sue</b>")
	_, _, err := runMain(t, dbPath, "learn", "pairs", dir)
	require.NoError(t, err)

	for _, format := range []string{"json", "xml"} {
		// When I export it and import it under a new name
		stdout, _, err := runMain(t, dbPath, "show", "pairs", "--format", format)
		require.NoError(t, err)
		export := writeSample(t, t.TempDir(), "export."+format, stdout)
		_, _, err = runMain(t, dbPath, "import", "pairs-"+format, export)
		require.NoError(t, err)

		// Then the copy renders identically
		stdout, _, err = runMain(t, dbPath, "show", "pairs-"+format, "--marker", "!")
		require.NoError(t, err)
		assert.Equal(t, "<b>! and !</b>\n", stdout, format)
	}

	// And list shows all three templates
	stdout, _, err := runMain(t, dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pairs ")
	assert.Contains(t, stdout, "pairs-json")
	assert.Contains(t, stdout, "pairs-xml")
}

func TestMain_Run_DeleteRemovesTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "tm.db")
	writeSample(t, dir, "a.txt", "only sample")
	_, _, err := runMain(t, dbPath, "learn", "solo", dir)
	require.NoError(t, err)

	_, _, err = runMain(t, dbPath, "delete", "solo", "--force")
	require.NoError(t, err)

	_, _, err = runMain(t, dbPath, "show", "solo")
	assert.Equal(t, templatemaker.ENOTFOUND, templatemaker.ErrorCode(err))
}

func TestMain_Run_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "tm.db")
	writeSample(t, dir, "a.txt", "hello")

	_, stderr, err := runMain(t, dbPath, "--verbose", "learn", "greeting", dir)

	require.NoError(t, err)
	assert.Contains(t, stderr, `msg="create template"`)
	assert.Contains(t, stderr, "msg=clean")
}

func TestMain_Run_ReportsMissingDirectory(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "tm.db")
	missing := filepath.Join(t.TempDir(), "nope")

	_, stderr, err := runMain(t, dbPath, "learn", "x", missing)

	assert.Equal(t, templatemaker.ENOTFOUND, templatemaker.ErrorCode(err))
	assert.Contains(t, stderr, "not found")
	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr))
}
