package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/templatemaker"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ templatemaker.SampleService = (*SampleService)(nil)

// SampleService implements templatemaker.SampleService using SQLite.
type SampleService struct {
	db *DB
}

// NewSampleService creates a new SampleService.
func NewSampleService(db *DB) *SampleService {
	return &SampleService{db: db}
}

// CreateSample records a learned sample.
func (s *SampleService) CreateSample(ctx context.Context, rec *templatemaker.SampleRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.LearnedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO samples (id, template_id, source_path, content_hash, outcome, learned_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.TemplateID, rec.SourcePath, rec.ContentHash, rec.Outcome,
		rec.LearnedAt.Format(time.RFC3339))

	return err
}

// FindSamples retrieves sample records matching the filter in insertion order.
func (s *SampleService) FindSamples(ctx context.Context, filter templatemaker.SampleFilter) ([]*templatemaker.SampleRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, template_id, source_path, content_hash, outcome, learned_at FROM samples WHERE 1=1")

	if filter.TemplateID != nil {
		query.WriteString(" AND template_id = ?")
		args = append(args, *filter.TemplateID)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*templatemaker.SampleRecord
	for rows.Next() {
		var rec templatemaker.SampleRecord
		var learnedAt string

		if err := rows.Scan(&rec.ID, &rec.TemplateID, &rec.SourcePath, &rec.ContentHash,
			&rec.Outcome, &learnedAt); err != nil {
			return nil, err
		}

		if rec.LearnedAt, err = parseRFC3339(learnedAt, "learned_at"); err != nil {
			return nil, err
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}
