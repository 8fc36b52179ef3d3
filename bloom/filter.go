// Package bloom provides sample deduplication using Bloom filters.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter remembers sample content hashes so repeated samples can be skipped
// cheaply. A positive answer may be a false positive and should be confirmed
// against an exact record before a sample is discarded.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected samples
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a content hash.
func (f *Filter) Add(hash uint64) {
	f.f.Add(key(hash))
}

// Test returns true if the hash might have been added.
// False positives are possible; false negatives are not.
func (f *Filter) Test(hash uint64) bool {
	return f.f.Test(key(hash))
}

// TestAndAdd reports whether the hash might have been added already and
// records it either way.
func (f *Filter) TestAndAdd(hash uint64) bool {
	return f.f.TestAndAdd(key(hash))
}

// EstimatedCount returns the approximate number of hashes in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

func key(hash uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], hash)
	return b[:]
}
