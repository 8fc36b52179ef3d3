package templatemaker

import "unicode/utf8"

// MergeTolerance absorbs short literals into neighbouring holes.
//
// A literal of at most tolerance characters is removed when each of its
// neighbours is a hole or the edge of the template and at least one neighbour
// is a hole; the holes around it then become one. This repeats until nothing
// more can be absorbed. A tolerance of zero leaves t unchanged.
func MergeTolerance(t Template, tolerance int) Template {
	if tolerance <= 0 {
		return t
	}
	for {
		merged, changed := mergeOnce(t, tolerance)
		if !changed {
			return merged
		}
		t = merged
	}
}

func mergeOnce(t Template, tolerance int) (Template, bool) {
	out := make(Template, 0, len(t))
	changed := false
	for i, seg := range t {
		if !seg.IsHole() && absorbable(t, i, tolerance) {
			changed = true
			// The hole on the left, if any, is already in out. Make sure one
			// exists so the right neighbour coalesces into it.
			if len(out) == 0 || !out[len(out)-1].IsHole() {
				out = append(out, Hole())
			}
			continue
		}
		if seg.IsHole() && len(out) > 0 && out[len(out)-1].IsHole() {
			continue
		}
		out = append(out, seg)
	}
	return out, changed
}

func absorbable(t Template, i, tolerance int) bool {
	if n := utf8.RuneCountInString(t[i].Text); n == 0 || n > tolerance {
		return false
	}
	leftHole := i > 0 && t[i-1].IsHole()
	rightHole := i < len(t)-1 && t[i+1].IsHole()
	leftOK := i == 0 || leftHole
	rightOK := i == len(t)-1 || rightHole
	return leftOK && rightOK && (leftHole || rightHole)
}
