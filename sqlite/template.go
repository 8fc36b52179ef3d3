package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/templatemaker"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ templatemaker.TemplateService = (*TemplateService)(nil)

// TemplateService implements templatemaker.TemplateService using SQLite.
type TemplateService struct {
	db *DB
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(db *DB) *TemplateService {
	return &TemplateService{db: db}
}

const templateColumns = "id, name, tolerance, cleaner, version, segments, sample_count, created_at, updated_at"

// CreateTemplate creates a new template record.
func (s *TemplateService) CreateTemplate(ctx context.Context, rec *templatemaker.TemplateRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	existing, err := s.FindTemplates(ctx, templatemaker.TemplateFilter{Name: &rec.Name, Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return templatemaker.Errorf(templatemaker.ECONFLICT, "template %q already exists", rec.Name)
	}

	segments, err := encodeSegments(rec.Segments)
	if err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO templates (`+templateColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Name, rec.Tolerance, rec.Cleaner, rec.Version, segments, rec.SampleCount,
		rec.CreatedAt.Format(time.RFC3339), rec.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindTemplateByID retrieves a template by ID.
func (s *TemplateService) FindTemplateByID(ctx context.Context, id string) (*templatemaker.TemplateRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+templateColumns+`
		FROM templates
		WHERE id = ?
	`, id)

	rec, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, templatemaker.Errorf(templatemaker.ENOTFOUND, "template not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindTemplates retrieves templates matching the filter, ordered by name.
func (s *TemplateService) FindTemplates(ctx context.Context, filter templatemaker.TemplateFilter) ([]*templatemaker.TemplateRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + templateColumns + " FROM templates WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*templatemaker.TemplateRecord
	for rows.Next() {
		rec, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// UpdateTemplate updates an existing template.
func (s *TemplateService) UpdateTemplate(ctx context.Context, id string, upd templatemaker.TemplateUpdate) (*templatemaker.TemplateRecord, error) {
	rec, err := s.FindTemplateByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Segments != nil {
		rec.Segments = upd.Segments.Clone()
	}
	if upd.Version != nil {
		rec.Version = *upd.Version
	}
	if upd.SampleCount != nil {
		rec.SampleCount = *upd.SampleCount
	}

	// Validate before persisting
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	segments, err := encodeSegments(rec.Segments)
	if err != nil {
		return nil, err
	}

	rec.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE templates
		SET segments = ?, version = ?, sample_count = ?, updated_at = ?
		WHERE id = ?
	`, segments, rec.Version, rec.SampleCount, rec.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// DeleteTemplate permanently removes a template and its samples.
func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return templatemaker.Errorf(templatemaker.ENOTFOUND, "template not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner) (*templatemaker.TemplateRecord, error) {
	var rec templatemaker.TemplateRecord
	var segments, createdAt, updatedAt string

	if err := row.Scan(&rec.ID, &rec.Name, &rec.Tolerance, &rec.Cleaner, &rec.Version, &segments,
		&rec.SampleCount, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if rec.Segments, err = decodeSegments(segments); err != nil {
		return nil, err
	}
	if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if rec.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &rec, nil
}
