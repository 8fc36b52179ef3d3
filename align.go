package templatemaker

import "strings"

// cell is one alignment slot of a flattened template. A hole occupies a
// single slot no matter how much text it will eventually match.
type cell struct {
	r    rune
	hole bool
}

// flatten expands a template into alignment slots.
func flatten(t Template) []cell {
	cells := make([]cell, 0, len(t))
	for _, seg := range t {
		if seg.IsHole() {
			cells = append(cells, cell{hole: true})
			continue
		}
		for _, r := range seg.Text {
			cells = append(cells, cell{r: r})
		}
	}
	return cells
}

// AlignCost returns the number of dynamic-programming cells Align allocates
// for the given template and sample. Memory use is eight bytes per cell.
func AlignCost(t Template, sample string) int {
	cols := 1
	for range sample {
		cols++
	}
	rows := 1
	for _, seg := range t {
		if seg.IsHole() {
			rows++
			continue
		}
		for range seg.Text {
			rows++
		}
	}
	return rows * cols
}

// gapTable holds, for every suffix pair, the fewest gaps an alignment with
// the maximal match count needs. Entries are packed as 2*inGap+opening, where
// inGap is the count when a gap is already open and opening is 1 when starting
// outside a gap costs one more.
type gapTable []int32

func (g gapTable) open(k int) int32 { return g[k] >> 1 }

func (g gapTable) closed(k int) int32 { return g[k]>>1 + g[k]&1 }

// Align merges sample into t using a longest common subsequence between the
// flattened template and the sample's characters.
//
// Matched characters survive as literals, copied from t. Every unmatched
// template slot, every existing hole and every unmatched run of the sample
// becomes part of a hole; consecutive unmatched positions share one hole.
// Among alignments with the most matched characters, the one opening the
// fewest holes wins, and remaining ties match template characters as early as
// possible. The result never holds literal content that t did not, and a
// sample that already fits t leaves it unchanged.
func Align(t Template, sample string) Template {
	a := flatten(t)
	b := []rune(sample)
	n, m := len(a), len(b)
	w := m + 1

	// lcs[k] is the LCS length of a[i:] and b[j:] for k = i*w+j.
	lcs := make([]int32, (n+1)*w)
	gaps := make(gapTable, (n+1)*w)
	for j := 0; j < m; j++ {
		gaps[n*w+j] = 1
	}
	for i := 0; i < n; i++ {
		gaps[i*w+m] = 1
	}
	const none = int32(1 << 30)
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			k := i*w + j
			down, right, diag := k+w, k+1, k+w+1
			match := !a[i].hole && a[i].r == b[j]

			best := max(lcs[down], lcs[right])
			if match {
				best = max(best, lcs[diag]+1)
			}
			lcs[k] = best

			viaMatch, viaDown, viaRight := none, none, none
			if match && lcs[diag]+1 == best {
				viaMatch = gaps.closed(diag)
			}
			if lcs[down] == best {
				viaDown = gaps.open(down)
			}
			if lcs[right] == best {
				viaRight = gaps.open(right)
			}
			inGap := min(viaMatch, viaDown, viaRight)
			outside := min(viaMatch, min(viaDown, viaRight)+1)
			gaps[k] = 2*inGap + (outside - inGap)
		}
	}

	var (
		out []Segment
		lit strings.Builder
		gap bool
	)
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, Literal(lit.String()))
			lit.Reset()
		}
	}

	i, j := 0, 0
	for i < n && j < m {
		k := i*w + j
		want, opening := gaps.closed(k), int32(1)
		if gap {
			want, opening = gaps.open(k), 0
		}
		if !a[i].hole && a[i].r == b[j] && lcs[k+w+1]+1 == lcs[k] && gaps.closed(k+w+1) == want {
			if gap {
				flush()
				out = append(out, Hole())
				gap = false
			}
			lit.WriteRune(a[i].r)
			i++
			j++
			continue
		}
		gap = true
		// Dropping the sample character keeps a[i] available for a match,
		// so prefer it whenever it costs nothing.
		if lcs[k+1] == lcs[k] && gaps.open(k+1)+opening == want {
			j++
		} else {
			i++
		}
	}
	if i < n || j < m {
		gap = true
	}
	flush()
	if gap {
		out = append(out, Hole())
	}
	return normalize(out)
}
