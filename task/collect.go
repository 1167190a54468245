package task

import (
	"cmp"

	"github.com/npillmayer/polytree"
)

// KeysValues places keys and values of visited entries into two separate slices,
// in visiting order.
type KeysValues[K cmp.Ordered, V any] struct {
	keys   []K
	values []V
}

var _ polytree.TraversalTask[int, string] = (*KeysValues[int, string])(nil)

// PerformTask appends key and value.
func (kv *KeysValues[K, V]) PerformTask(key K, value V) {
	kv.keys = append(kv.keys, key)
	kv.values = append(kv.values, value)
}

// Keys returns the keys collected so far.
func (kv *KeysValues[K, V]) Keys() []K {
	return kv.keys
}

// Values returns the values collected so far.
func (kv *KeysValues[K, V]) Values() []V {
	return kv.values
}

// Reset drops all collected entries.
func (kv *KeysValues[K, V]) Reset() {
	kv.keys = kv.keys[:0]
	kv.values = kv.values[:0]
}

// Counter counts visited entries.
type Counter[K cmp.Ordered, V any] struct {
	N int
}

// PerformTask increments the counter.
func (c *Counter[K, V]) PerformTask(K, V) {
	c.N++
}

// Filter forwards entries to Next if Accept returns true for them.
// A nil Accept accepts every entry, a nil Next drops every entry.
type Filter[K cmp.Ordered, V any] struct {
	Accept func(K, V) bool
	Next   polytree.TraversalTask[K, V]
}

// PerformTask calls Next for accepted entries.
func (f Filter[K, V]) PerformTask(key K, value V) {
	if f.Next == nil {
		return
	}
	if f.Accept == nil || f.Accept(key, value) {
		f.Next.PerformTask(key, value)
	}
}
