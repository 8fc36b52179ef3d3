package templatemaker

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Marker is the reserved character callers must keep out of sample and
// candidate text. Learning strips it from samples, which makes it a safe hole
// marker for the plain-text template form.
const Marker = '\x1f'

// MarkerString is Marker as a string.
const MarkerString = string(Marker)

// DefaultMarker is the text Render substitutes for holes when the caller has
// no preference.
const DefaultMarker = "{{ HOLE }}"

// StripMarker removes every occurrence of Marker from text.
func StripMarker(text string) string {
	if !strings.ContainsRune(text, Marker) {
		return text
	}
	return strings.ReplaceAll(text, MarkerString, "")
}

// ValidText replaces each run of invalid UTF-8 bytes in text with U+FFFD.
// Learning and extraction both see text through it, so a sample always
// matches the template it helped build.
func ValidText(text string) string {
	if utf8.ValidString(text) {
		return text
	}
	return strings.ToValidUTF8(text, string(utf8.RuneError))
}

// SegmentKind identifies the variant of a Segment.
type SegmentKind string

// SegmentKind constants.
const (
	SegmentLiteral SegmentKind = "literal"
	SegmentHole    SegmentKind = "hole"
)

// Segment is one element of a Template: either literal text that must match
// exactly or a hole that matches any run of characters, including none.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text,omitempty"`
}

// Literal returns a literal segment with the given content.
func Literal(text string) Segment {
	return Segment{Kind: SegmentLiteral, Text: text}
}

// Hole returns a hole segment.
func Hole() Segment {
	return Segment{Kind: SegmentHole}
}

// IsHole reports whether the segment is a hole.
func (s Segment) IsHole() bool {
	return s.Kind == SegmentHole
}

// UnmarshalJSON decodes a segment and rejects unknown kinds.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind SegmentKind `json:"kind"`
		Text string      `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case SegmentLiteral:
		*s = Literal(raw.Text)
	case SegmentHole:
		*s = Hole()
	default:
		return Errorf(EINVALID, "unknown segment kind %q", raw.Kind)
	}
	return nil
}

// Template is an ordered sequence of segments describing a family of texts.
//
// A template never holds two adjacent holes or an empty literal, except for
// the degenerate single empty literal learned from empty text. A template
// consisting of one hole means no stable structure was found. An empty
// template means nothing has been learned yet.
type Template []Segment

// HoleCount returns the number of holes in the template.
func (t Template) HoleCount() int {
	n := 0
	for _, seg := range t {
		if seg.IsHole() {
			n++
		}
	}
	return n
}

// LiteralLen returns the number of characters held in literal segments.
func (t Template) LiteralLen() int {
	n := 0
	for _, seg := range t {
		if !seg.IsHole() {
			n += utf8.RuneCountInString(seg.Text)
		}
	}
	return n
}

// Literals returns the content of each literal segment in order.
func (t Template) Literals() []string {
	var lits []string
	for _, seg := range t {
		if !seg.IsHole() {
			lits = append(lits, seg.Text)
		}
	}
	return lits
}

// Render returns the template as text with marker substituted for each hole.
func (t Template) Render(marker string) string {
	var b strings.Builder
	for _, seg := range t {
		if seg.IsHole() {
			b.WriteString(marker)
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// String renders the template using DefaultMarker.
func (t Template) String() string {
	return t.Render(DefaultMarker)
}

// Clone returns a copy that shares no storage with t.
func (t Template) Clone() Template {
	if t == nil {
		return nil
	}
	out := make(Template, len(t))
	copy(out, t)
	return out
}

// Validate returns an error if the template breaks the segment invariants.
func (t Template) Validate() error {
	for i, seg := range t {
		switch seg.Kind {
		case SegmentHole:
			if i > 0 && t[i-1].IsHole() {
				return Errorf(EINVALID, "adjacent holes at segment %d", i)
			}
		case SegmentLiteral:
			if !utf8.ValidString(seg.Text) {
				return Errorf(EINVALID, "invalid UTF-8 in literal at segment %d", i)
			}
			if seg.Text == "" && len(t) > 1 {
				return Errorf(EINVALID, "empty literal at segment %d", i)
			}
			if i > 0 && !t[i-1].IsHole() {
				return Errorf(EINVALID, "adjacent literals at segment %d", i)
			}
		default:
			return Errorf(EINVALID, "unknown segment kind %q", seg.Kind)
		}
	}
	return nil
}

// ParseTemplate rebuilds a template from a rendering produced with marker.
// The hole positions survive the round trip as long as marker does not occur
// inside any literal.
func ParseTemplate(rendered, marker string) Template {
	if marker == "" {
		return Template{Literal(rendered)}
	}
	var segs []Segment
	for i, part := range strings.Split(rendered, marker) {
		if i > 0 {
			segs = append(segs, Hole())
		}
		if part != "" {
			segs = append(segs, Literal(part))
		}
	}
	return normalize(segs)
}

// normalize coalesces adjacent holes and adjacent literals and drops empty
// literals. An empty result becomes the degenerate single empty literal.
func normalize(segs []Segment) Template {
	out := make(Template, 0, len(segs))
	for _, seg := range segs {
		if !seg.IsHole() && seg.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].IsHole() == seg.IsHole() {
			if !seg.IsHole() {
				out[n-1].Text += seg.Text
			}
			continue
		}
		out = append(out, seg)
	}
	if len(out) == 0 {
		return Template{Literal("")}
	}
	return out
}
