package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkSampleLedger simulates a learn run: one template update per
// recorded sample.
func BenchmarkSampleLedger(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	templates := sqlite.NewTemplateService(db)
	samples := sqlite.NewSampleService(db)

	rec := &templatemaker.TemplateRecord{Name: "bench"}
	require.NoError(b, templates.CreateTemplate(ctx, rec))
	segs := templatemaker.ParseTemplate("<title>!</title><p>!</p>", "!")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		require.NoError(b, samples.CreateSample(ctx, &templatemaker.SampleRecord{
			TemplateID:  rec.ID,
			SourcePath:  fmt.Sprintf("page-%d.html", i),
			ContentHash: fmt.Sprintf("%016x", i),
		}))
		version := i + 1
		_, err := templates.UpdateTemplate(ctx, rec.ID, templatemaker.TemplateUpdate{
			Segments: &segs,
			Version:  &version,
		})
		require.NoError(b, err)
	}
}
