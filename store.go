package templatemaker

// MergeOutcome reports what a call to Store.Learn did to the template.
type MergeOutcome int

// MergeOutcome constants.
const (
	// FirstSample means the sample became the initial template.
	FirstSample MergeOutcome = iota
	// HolesIncreased means the sample opened at least one new hole.
	HolesIncreased
	// HolesUnchanged means the hole count did not increase. Coalescing or
	// tolerance merging can still lower it.
	HolesUnchanged
)

// String returns the outcome as a lowercase label.
func (o MergeOutcome) String() string {
	switch o {
	case FirstSample:
		return "first"
	case HolesIncreased:
		return "increased"
	case HolesUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Store accumulates a template from cleaned sample texts.
//
// A Store is not safe for concurrent use. Templates handed out by Segments
// are copies, so extraction against them may run in parallel with further
// learning.
type Store struct {
	template  Template
	tolerance int
	version   int
}

// NewStore returns an empty Store. Negative tolerances are treated as zero.
func NewStore(tolerance int) *Store {
	if tolerance < 0 {
		tolerance = 0
	}
	return &Store{tolerance: tolerance}
}

// NewStoreFromTemplate returns a Store that continues learning from t, a
// template previously learned over version samples.
func NewStoreFromTemplate(t Template, tolerance, version int) *Store {
	s := NewStore(tolerance)
	if len(t) > 0 {
		s.template = t.Clone()
		s.version = version
	}
	return s
}

// Learn merges sample into the template.
//
// The first sample becomes the template verbatim. Every later sample is
// aligned against the current template and the result is passed through the
// tolerance merger. Marker characters are stripped from sample first and
// invalid UTF-8 is replaced as ValidText does.
func (s *Store) Learn(sample string) MergeOutcome {
	sample = ValidText(StripMarker(sample))
	s.version++

	if len(s.template) == 0 {
		s.template = Template{Literal(sample)}
		return FirstSample
	}

	prev := s.template
	before := prev.HoleCount()
	s.template = MergeTolerance(Align(prev, sample), s.tolerance)

	if s.template.HoleCount() > before {
		return HolesIncreased
	}
	return HolesUnchanged
}

// Learned reports whether at least one sample has been learned.
func (s *Store) Learned() bool {
	return len(s.template) > 0
}

// Segments returns a copy of the current template.
func (s *Store) Segments() Template {
	return s.template.Clone()
}

// Render returns the template as text with marker substituted for each hole.
func (s *Store) Render(marker string) string {
	return s.template.Render(marker)
}

// HoleCount returns the number of holes in the template.
func (s *Store) HoleCount() int {
	return s.template.HoleCount()
}

// Version returns the number of Learn calls made on this Store.
func (s *Store) Version() int {
	return s.version
}

// Tolerance returns the configured tolerance.
func (s *Store) Tolerance() int {
	return s.tolerance
}

// AlignCost returns the alignment table size learning sample would need.
// It is zero before the first sample since that sample is stored directly.
func (s *Store) AlignCost(sample string) int {
	if len(s.template) == 0 {
		return 0
	}
	return AlignCost(s.template, ValidText(StripMarker(sample)))
}

// Extractor compiles the current template into an Extractor.
func (s *Store) Extractor() (*Extractor, error) {
	return Compile(s.template)
}
