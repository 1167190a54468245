package polytree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// Map is an ordered map on top of a polymorphic search tree. It holds the root
// of a tree and replaces it with the result of every modifying operation, so
// clients do not have to track the identity of the root themselves.
//
// A map created by
//
//	Map[K,V]{}
//
// is a valid object and behaves like an empty map.
//
//	Operation     |   average       |  worst case
//	--------------+-----------------+------------
//	Get           |   O(log n)      |   O(n)
//	Put           |   O(log n)      |   O(n)
//	Remove        |   O(log n)      |   O(n)
//	Min, Max      |   O(log n)      |   O(n)
//	SubMap        |   O(n)          |   O(n)
//	Size, Height  |   O(n)          |   O(n)
//
// Map is not safe for concurrent use.
type Map[K cmp.Ordered, V any] struct {
	root Tree[K, V]
}

// NewMap creates an empty map.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{root: Empty[K, V]{}}
}

// Root returns the root of the map's tree. Modifying the returned tree
// directly will leave the map in an undefined state.
func (m *Map[K, V]) Root() Tree[K, V] {
	if m.root == nil {
		m.root = Empty[K, V]{}
	}
	return m.root
}

// Put maps key to value, replacing a previous mapping of key.
func (m *Map[K, V]) Put(key K, value V) {
	m.root = m.Root().Insert(key, value)
}

// Get returns the value mapped to key. The second return value is false if key is
// not present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.Root().Search(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Root().Search(key)
	return ok
}

// Remove deletes the mapping for key, if present.
func (m *Map[K, V]) Remove(key K) {
	m.root = m.Root().Delete(key)
	if m.root.IsEmpty() {
		tracer().Debugf("map: last entry removed")
	}
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.root = Empty[K, V]{}
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return m.Root().Size()
}

// IsEmpty reports whether m has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Root().IsEmpty()
}

// Height returns the height of the map's tree.
func (m *Map[K, V]) Height() int {
	return m.Root().Height()
}

// Min returns the smallest key, or ErrTreeIsEmpty for an empty map.
func (m *Map[K, V]) Min() (K, error) {
	k, ok := m.Root().Min()
	if !ok {
		return k, ErrTreeIsEmpty
	}
	return k, nil
}

// Max returns the largest key, or ErrTreeIsEmpty for an empty map.
func (m *Map[K, V]) Max() (K, error) {
	k, ok := m.Root().Max()
	if !ok {
		return k, ErrTreeIsEmpty
	}
	return k, nil
}

// KeySet returns all keys in ascending order.
func (m *Map[K, V]) KeySet() []K {
	keys := make(KeyList[K], 0, 16)
	m.Root().AddKeysToCollection(&keys)
	return keys
}

// SubMap returns a new map holding the entries with keys in [fromKey, toKey].
// The new map does not share nodes with m.
func (m *Map[K, V]) SubMap(fromKey, toKey K) (*Map[K, V], error) {
	if cmp.Less(toKey, fromKey) {
		tracer().Errorf("map: sub-map bounds out of order: [%v, %v]", fromKey, toKey)
		return nil, fmt.Errorf("%w: sub-map from %v > to %v", ErrIllegalArguments, fromKey, toKey)
	}
	return &Map[K, V]{root: m.Root().SubTree(fromKey, toKey)}, nil
}

// InorderTraversal calls task for every entry in ascending key order.
func (m *Map[K, V]) InorderTraversal(task TraversalTask[K, V]) {
	m.Root().InorderTraversal(task)
}

// RightRootLeftTraversal calls task for every entry in descending key order.
func (m *Map[K, V]) RightRootLeftTraversal(task TraversalTask[K, V]) {
	m.Root().RightRootLeftTraversal(task)
}

// All returns an iterator over all entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Root().ascend(yield)
	}
}

// Backward returns an iterator over all entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Root().descend(yield)
	}
}

// Check validates the structural invariants of the map's tree.
func (m *Map[K, V]) Check() error {
	return Check(m.Root())
}

// String lists the entries of m in ascending key order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}
