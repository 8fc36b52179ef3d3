package templatemaker

import (
	"context"
	"time"
)

// TemplateRecord is a named, persisted template together with the settings
// needed to keep learning into it.
type TemplateRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Tolerance   int       `json:"tolerance"`
	// Cleaner names the cleaning applied to samples before learning.
	// Extraction has to clean candidate texts the same way.
	Cleaner     string    `json:"cleaner"`
	Version     int       `json:"version"`
	Segments    Template  `json:"segments"`
	SampleCount int       `json:"sampleCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *TemplateRecord) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "template name required")
	}
	if r.Tolerance < 0 {
		return Errorf(EINVALID, "template tolerance must not be negative")
	}
	return r.Segments.Validate()
}

// Store returns a Store that resumes learning from the record.
func (r *TemplateRecord) Store() *Store {
	return NewStoreFromTemplate(r.Segments, r.Tolerance, r.Version)
}

// TemplateService represents a service for managing persisted templates.
type TemplateService interface {
	// CreateTemplate creates a new template record.
	// Returns ECONFLICT if a template with the same name exists.
	CreateTemplate(ctx context.Context, rec *TemplateRecord) error

	// FindTemplateByID retrieves a template by ID.
	// Returns ENOTFOUND if template does not exist.
	FindTemplateByID(ctx context.Context, id string) (*TemplateRecord, error)

	// FindTemplates retrieves templates matching the filter.
	FindTemplates(ctx context.Context, filter TemplateFilter) ([]*TemplateRecord, error)

	// UpdateTemplate updates an existing template.
	// Returns ENOTFOUND if template does not exist.
	UpdateTemplate(ctx context.Context, id string, upd TemplateUpdate) (*TemplateRecord, error)

	// DeleteTemplate permanently removes a template and its sample ledger.
	// Returns ENOTFOUND if template does not exist.
	DeleteTemplate(ctx context.Context, id string) error
}

// TemplateFilter represents a filter for FindTemplates.
type TemplateFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// TemplateUpdate represents fields that can be updated on a template.
type TemplateUpdate struct {
	Segments    *Template `json:"segments"`
	Version     *int      `json:"version"`
	SampleCount *int      `json:"sampleCount"`
}

// SampleRecord records that a sample was learned into a template.
type SampleRecord struct {
	ID          string    `json:"id"`
	TemplateID  string    `json:"templateId"`
	SourcePath  string    `json:"sourcePath"`
	ContentHash string    `json:"contentHash"`
	Outcome     string    `json:"outcome"`
	LearnedAt   time.Time `json:"learnedAt"`
}

// Validate returns an error if the sample record contains invalid fields.
func (r *SampleRecord) Validate() error {
	if r.TemplateID == "" {
		return Errorf(EINVALID, "sample template ID required")
	}
	if r.ContentHash == "" {
		return Errorf(EINVALID, "sample content hash required")
	}
	return nil
}

// SampleService represents a service for the ledger of learned samples.
type SampleService interface {
	// CreateSample records a learned sample.
	CreateSample(ctx context.Context, rec *SampleRecord) error

	// FindSamples retrieves sample records matching the filter, oldest first.
	FindSamples(ctx context.Context, filter SampleFilter) ([]*SampleRecord, error)
}

// SampleFilter represents a filter for FindSamples.
type SampleFilter struct {
	TemplateID  *string `json:"templateId"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
