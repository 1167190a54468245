package polytree

import (
	"cmp"
	"fmt"
)

// Build creates a tree of minimal height from pairs of keys and values. keys must
// be sorted in ascending order and must not contain duplicates; values[i] is
// the value for keys[i]. This is faster than repeatedly calling Insert, and
// the resulting tree has height ceil(log2(n+1)).
//
// Build returns ErrIllegalArguments if the slices differ in length or keys are
// not strictly ascending.
//
// Time: O(n).
func Build[K cmp.Ordered, V any](keys []K, values []V) (Tree[K, V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys for %d values", ErrIllegalArguments, len(keys), len(values))
	}
	for i := 1; i < len(keys); i++ {
		if !cmp.Less(keys[i-1], keys[i]) {
			return nil, fmt.Errorf("%w: keys not strictly ascending at index %d", ErrIllegalArguments, i)
		}
	}
	tracer().Debugf("build tree from %d sorted entries", len(keys))
	return build(keys, values), nil
}

func build[K cmp.Ordered, V any](keys []K, values []V) Tree[K, V] {
	assert(len(keys) == len(values), "build: keys and values differ in length")
	if len(keys) == 0 {
		return Empty[K, V]{}
	}
	mid := len(keys) >> 1
	return &NonEmpty[K, V]{
		key:   keys[mid],
		value: values[mid],
		left:  build(keys[:mid], values[:mid]),
		right: build(keys[mid+1:], values[mid+1:]),
	}
}
