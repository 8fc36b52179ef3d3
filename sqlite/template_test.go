package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_CreateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("creates template with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		rec := &templatemaker.TemplateRecord{Name: "news", Tolerance: 2}

		err := svc.CreateTemplate(ctx, rec)
		require.NoError(t, err)

		assert.NotEmpty(t, rec.ID, "ID should be generated")
		assert.False(t, rec.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, rec.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})

	t.Run("returns error for invalid template", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		err := svc.CreateTemplate(ctx, &templatemaker.TemplateRecord{})
		require.Error(t, err)
		assert.Equal(t, templatemaker.EINVALID, templatemaker.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateTemplate(ctx, &templatemaker.TemplateRecord{Name: "news"}))

		err := svc.CreateTemplate(ctx, &templatemaker.TemplateRecord{Name: "news"})
		require.Error(t, err)
		assert.Equal(t, templatemaker.ECONFLICT, templatemaker.ErrorCode(err))
	})
}

func TestTemplateService_FindTemplateByID(t *testing.T) {
	t.Parallel()

	t.Run("returns template with segments when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		rec := &templatemaker.TemplateRecord{
			Name:        "news",
			Tolerance:   1,
			Cleaner:     "html",
			Version:     3,
			Segments:    templatemaker.ParseTemplate("<b>! and !</b>", "!"),
			SampleCount: 3,
		}
		require.NoError(t, svc.CreateTemplate(ctx, rec))

		found, err := svc.FindTemplateByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, found.ID)
		assert.Equal(t, "news", found.Name)
		assert.Equal(t, 1, found.Tolerance)
		assert.Equal(t, "html", found.Cleaner)
		assert.Equal(t, 3, found.Version)
		assert.Equal(t, 3, found.SampleCount)
		assert.Equal(t, rec.Segments, found.Segments)
	})

	t.Run("returns nil segments for unlearned template", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		rec := &templatemaker.TemplateRecord{Name: "empty"}
		require.NoError(t, svc.CreateTemplate(ctx, rec))

		found, err := svc.FindTemplateByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Nil(t, found.Segments)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		_, err := svc.FindTemplateByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, templatemaker.ENOTFOUND, templatemaker.ErrorCode(err))
	})
}

func TestTemplateService_FindTemplates(t *testing.T) {
	t.Parallel()

	t.Run("returns all templates ordered by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		for _, name := range []string{"gamma", "alpha", "beta"} {
			require.NoError(t, svc.CreateTemplate(ctx, &templatemaker.TemplateRecord{Name: name}))
		}

		recs, err := svc.FindTemplates(ctx, templatemaker.TemplateFilter{})
		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Equal(t, "alpha", recs[0].Name)
		assert.Equal(t, "beta", recs[1].Name)
		assert.Equal(t, "gamma", recs[2].Name)
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateTemplate(ctx, &templatemaker.TemplateRecord{Name: "alpha"}))
		require.NoError(t, svc.CreateTemplate(ctx, &templatemaker.TemplateRecord{Name: "beta"}))

		name := "beta"
		recs, err := svc.FindTemplates(ctx, templatemaker.TemplateFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "beta", recs[0].Name)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		for _, name := range []string{"a", "b", "c", "d"} {
			require.NoError(t, svc.CreateTemplate(ctx, &templatemaker.TemplateRecord{Name: name}))
		}

		recs, err := svc.FindTemplates(ctx, templatemaker.TemplateFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "b", recs[0].Name)
		assert.Equal(t, "c", recs[1].Name)

		recs, err = svc.FindTemplates(ctx, templatemaker.TemplateFilter{Offset: 3})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "d", recs[0].Name)
	})
}

func TestTemplateService_UpdateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("updates segments, version and sample count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		rec := &templatemaker.TemplateRecord{Name: "news"}
		require.NoError(t, svc.CreateTemplate(ctx, rec))

		segs := templatemaker.ParseTemplate("<title>!</title>", "!")
		version, count := 2, 2
		updated, err := svc.UpdateTemplate(ctx, rec.ID, templatemaker.TemplateUpdate{
			Segments:    &segs,
			Version:     &version,
			SampleCount: &count,
		})
		require.NoError(t, err)
		assert.Equal(t, segs, updated.Segments)

		found, err := svc.FindTemplateByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, segs, found.Segments)
		assert.Equal(t, 2, found.Version)
		assert.Equal(t, 2, found.SampleCount)
	})

	t.Run("rejects malformed segments", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		rec := &templatemaker.TemplateRecord{Name: "news"}
		require.NoError(t, svc.CreateTemplate(ctx, rec))

		bad := templatemaker.Template{templatemaker.Hole(), templatemaker.Hole()}
		_, err := svc.UpdateTemplate(ctx, rec.ID, templatemaker.TemplateUpdate{Segments: &bad})
		require.Error(t, err)
		assert.Equal(t, templatemaker.EINVALID, templatemaker.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		ctx := context.Background()

		_, err := svc.UpdateTemplate(ctx, "nonexistent-id", templatemaker.TemplateUpdate{})
		require.Error(t, err)
		assert.Equal(t, templatemaker.ENOTFOUND, templatemaker.ErrorCode(err))
	})
}

func TestTemplateService_DeleteTemplate(t *testing.T) {
	t.Parallel()

	t.Run("deletes template and its samples", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)
		samples := sqlite.NewSampleService(db)
		ctx := context.Background()

		rec := &templatemaker.TemplateRecord{Name: "news"}
		require.NoError(t, svc.CreateTemplate(ctx, rec))
		require.NoError(t, samples.CreateSample(ctx, &templatemaker.SampleRecord{
			TemplateID:  rec.ID,
			ContentHash: "abc",
		}))

		require.NoError(t, svc.DeleteTemplate(ctx, rec.ID))

		_, err := svc.FindTemplateByID(ctx, rec.ID)
		assert.Equal(t, templatemaker.ENOTFOUND, templatemaker.ErrorCode(err))

		remaining, err := samples.FindSamples(ctx, templatemaker.SampleFilter{TemplateID: &rec.ID})
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTemplateService(db)

		err := svc.DeleteTemplate(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, templatemaker.ENOTFOUND, templatemaker.ErrorCode(err))
	})
}
