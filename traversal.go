package polytree

import (
	"cmp"
)

// TraversalTask is called once per entry during a traversal, in the order the
// traversal defines. A task must not modify the tree it is traversing.
type TraversalTask[K cmp.Ordered, V any] interface {
	PerformTask(key K, value V)
}

// TaskFunc is an adapter to allow the use of ordinary functions as traversal tasks.
type TaskFunc[K cmp.Ordered, V any] func(key K, value V)

// PerformTask calls f(key, value).
func (f TaskFunc[K, V]) PerformTask(key K, value V) {
	f(key, value)
}

// Collection receives keys from AddKeysToCollection. Trees only ever append to
// a collection; they never read from it or remove from it.
type Collection[K any] interface {
	Add(key K)
}

// KeyList is a slice-backed Collection.
type KeyList[K any] []K

// Add appends key.
func (l *KeyList[K]) Add(key K) {
	*l = append(*l, key)
}

// Order selects the visiting order of EachNode.
type Order int8

const (
	// InOrder visits left subtree, node, right subtree (ascending keys).
	InOrder Order = iota
	// RightRootLeft visits right subtree, node, left subtree (descending keys).
	RightRootLeft
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case RightRootLeft:
		return "right-root-left"
	}
	return "<unknown order>"
}

// EachNode visits every entry of t in the given order. The callback receives the
// entry and the depth of its node, where the root is at depth 0.
// Iteration stops at the first callback error and returns that error to the caller.
func EachNode[K cmp.Ordered, V any](t Tree[K, V], order Order, f func(key K, value V, depth int) error) error {
	if t == nil || f == nil {
		return nil
	}
	return t.walk(order, 0, f)
}
