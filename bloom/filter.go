// Package bloom provides fast negative membership checks over cached
// document slugs using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by document slug. A negative answer
// is definitive; a positive answer requires confirmation against the
// backing store.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected slugs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a slug to the filter.
func (f *Filter) Add(slug string) {
	f.f.AddString(slug)
}

// Test returns true if the slug might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(slug string) bool {
	return f.f.TestString(slug)
}

// Reset clears the filter. Call after bulk deletions, which a Bloom
// filter cannot express incrementally.
func (f *Filter) Reset() {
	f.f.ClearAll()
}

// EstimatedCount returns the approximate number of slugs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
