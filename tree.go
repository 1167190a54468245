package polytree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Tree is a binary search tree mapping keys of type K to values of type V.
//
// A tree is either of variant Empty or of variant *NonEmpty. No other
// implementations exist. Operations on Tree are defined for both variants, with
// the empty variant acting as the base case of every recursion.
//
// For every non-empty node, all keys in its left subtree are less than the node's
// key, and all keys in its right subtree are greater. No two nodes of a tree
// carry the same key.
//
// Insert and Delete may change the variant of the tree they are called on.
// Clients must always continue with the tree returned:
//
//	t = t.Insert(k, v)
type Tree[K cmp.Ordered, V any] interface {
	// Search returns the value mapped to key. The second return value is false
	// if key is not in the tree; this is not considered an error.
	Search(key K) (V, bool)
	// Insert maps key to value and returns the resulting tree, which always is
	// non-empty. If key is already present, its value is overwritten.
	Insert(key K, value V) Tree[K, V]
	// Delete removes key from the tree and returns the resulting tree.
	// Deleting a key not present is a no-op.
	Delete(key K) Tree[K, V]
	// Min returns the smallest key of the tree. The second return value is false
	// if the tree is empty.
	Min() (K, bool)
	// Max returns the largest key of the tree. The second return value is false
	// if the tree is empty.
	Max() (K, bool)
	// Size returns the number of entries.
	Size() int
	// Height returns the number of nodes on the longest path from the root down
	// to a leaf. An empty tree has height 0, a single node has height 1.
	Height() int
	// SubTree returns a new tree containing all the entries with keys in the
	// closed interval [fromKey, toKey].
	SubTree(fromKey, toKey K) Tree[K, V]
	// InorderTraversal calls task for every entry, in ascending key order.
	InorderTraversal(task TraversalTask[K, V])
	// RightRootLeftTraversal calls task for every entry, in descending key order.
	RightRootLeftTraversal(task TraversalTask[K, V])
	// AddKeysToCollection adds all keys to c, in ascending order.
	AddKeysToCollection(c Collection[K])
	// IsEmpty reports whether the tree is of variant Empty.
	IsEmpty() bool
	String() string

	removeMin() (Tree[K, V], K, V, bool)
	removeMax() (Tree[K, V], K, V, bool)
	walk(order Order, depth int, f func(K, V, int) error) error
	ascend(yield func(K, V) bool) bool
	descend(yield func(K, V) bool) bool
}

// Assert that the variants implement Tree.
var _ Tree[int, int] = Empty[int, int]{}
var _ Tree[int, int] = (*NonEmpty[int, int])(nil)

// --- Empty -----------------------------------------------------------------

// Empty is the tree variant without any entries.
//
// Empty carries no state, therefore all instances of Empty[K,V] are
// interchangeable. Empty{} is ready to use.
type Empty[K cmp.Ordered, V any] struct{}

// Search on an empty tree never finds a key.
func (e Empty[K, V]) Search(key K) (V, bool) {
	var zero V
	return zero, false
}

// Insert creates a new non-empty node with empty children.
func (e Empty[K, V]) Insert(key K, value V) Tree[K, V] {
	return &NonEmpty[K, V]{key: key, value: value, left: e, right: e}
}

// Delete returns the empty tree.
func (e Empty[K, V]) Delete(key K) Tree[K, V] {
	return e
}

// Min signals that there is no minimum key.
func (e Empty[K, V]) Min() (K, bool) {
	var zero K
	return zero, false
}

// Max signals that there is no maximum key.
func (e Empty[K, V]) Max() (K, bool) {
	var zero K
	return zero, false
}

// Size is 0.
func (e Empty[K, V]) Size() int {
	return 0
}

// Height is 0.
func (e Empty[K, V]) Height() int {
	return 0
}

// SubTree of an empty tree is empty.
func (e Empty[K, V]) SubTree(fromKey, toKey K) Tree[K, V] {
	return e
}

// InorderTraversal does nothing.
func (e Empty[K, V]) InorderTraversal(task TraversalTask[K, V]) {}

// RightRootLeftTraversal does nothing.
func (e Empty[K, V]) RightRootLeftTraversal(task TraversalTask[K, V]) {}

// AddKeysToCollection does nothing.
func (e Empty[K, V]) AddKeysToCollection(c Collection[K]) {}

// IsEmpty returns true.
func (e Empty[K, V]) IsEmpty() bool {
	return true
}

func (e Empty[K, V]) String() string {
	return "Empty Tree\n"
}

func (e Empty[K, V]) removeMin() (Tree[K, V], K, V, bool) {
	var k K
	var v V
	return e, k, v, false
}

func (e Empty[K, V]) removeMax() (Tree[K, V], K, V, bool) {
	var k K
	var v V
	return e, k, v, false
}

func (e Empty[K, V]) walk(Order, int, func(K, V, int) error) error {
	return nil
}

func (e Empty[K, V]) ascend(func(K, V) bool) bool {
	return true
}

func (e Empty[K, V]) descend(func(K, V) bool) bool {
	return true
}

// --- NonEmpty --------------------------------------------------------------

// NonEmpty is the tree variant holding a key, a value, and two subtrees.
// A node exclusively owns its subtrees.
type NonEmpty[K cmp.Ordered, V any] struct {
	key         K
	value       V
	left, right Tree[K, V]
}

// NewNonEmpty creates a node from a key/value pair and two subtrees. A nil
// subtree is taken as Empty.
//
// The caller is responsible for key ordering: all keys in left have to be less
// than key, all keys in right have to be greater than key. Use Check on the
// resulting tree if in doubt.
func NewNonEmpty[K cmp.Ordered, V any](key K, value V, left, right Tree[K, V]) *NonEmpty[K, V] {
	if left == nil {
		left = Empty[K, V]{}
	}
	if right == nil {
		right = Empty[K, V]{}
	}
	return &NonEmpty[K, V]{key: key, value: value, left: left, right: right}
}

// Key returns the key of this node.
func (n *NonEmpty[K, V]) Key() K {
	return n.key
}

// Value returns the value of this node.
func (n *NonEmpty[K, V]) Value() V {
	return n.value
}

// Left returns the left subtree.
func (n *NonEmpty[K, V]) Left() Tree[K, V] {
	return n.left
}

// Right returns the right subtree.
func (n *NonEmpty[K, V]) Right() Tree[K, V] {
	return n.right
}

// Search descends by key comparison.
func (n *NonEmpty[K, V]) Search(key K) (V, bool) {
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		return n.left.Search(key)
	case c > 0:
		return n.right.Search(key)
	}
	return n.value, true
}

// Insert finds the proper place for key. If key equals the key of this node,
// the value is overwritten in place. Insert always returns n.
func (n *NonEmpty[K, V]) Insert(key K, value V) Tree[K, V] {
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left = n.left.Insert(key, value)
	case c > 0:
		n.right = n.right.Insert(key, value)
	default:
		n.value = value
	}
	return n
}

// Delete removes key from the subtree rooted at n.
//
// If n itself holds key, it takes over the key and value of its successor, i.e.
// the minimum of its right subtree, which then is removed from the right subtree.
// Without a right subtree, n takes over its predecessor from the left subtree.
// A node without children collapses to Empty.
func (n *NonEmpty[K, V]) Delete(key K) Tree[K, V] {
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left = n.left.Delete(key)
	case c > 0:
		n.right = n.right.Delete(key)
	default:
		return n.deleteSelf()
	}
	return n
}

// deleteSelf removes the entry of n from the subtree rooted at n.
func (n *NonEmpty[K, V]) deleteSelf() Tree[K, V] {
	if right, k, v, ok := n.right.removeMin(); ok {
		n.key, n.value, n.right = k, v, right
		return n
	}
	if left, k, v, ok := n.left.removeMax(); ok {
		n.key, n.value, n.left = k, v, left
		return n
	}
	return Empty[K, V]{}
}

// removeMin removes the minimum entry from the subtree rooted at n and returns
// the remaining subtree together with the removed entry. The node holding the
// minimum is deleted by the same rule as in Delete.
func (n *NonEmpty[K, V]) removeMin() (Tree[K, V], K, V, bool) {
	if left, k, v, ok := n.left.removeMin(); ok {
		n.left = left
		return n, k, v, true
	}
	k, v := n.key, n.value
	return n.deleteSelf(), k, v, true
}

func (n *NonEmpty[K, V]) removeMax() (Tree[K, V], K, V, bool) {
	if right, k, v, ok := n.right.removeMax(); ok {
		n.right = right
		return n, k, v, true
	}
	k, v := n.key, n.value
	return n.deleteSelf(), k, v, true
}

// Min recurses to the left. If the left subtree is empty, n holds the minimum.
func (n *NonEmpty[K, V]) Min() (K, bool) {
	if k, ok := n.left.Min(); ok {
		return k, true
	}
	return n.key, true
}

// Max recurses to the right. If the right subtree is empty, n holds the maximum.
func (n *NonEmpty[K, V]) Max() (K, bool) {
	if k, ok := n.right.Max(); ok {
		return k, true
	}
	return n.key, true
}

// Size counts this node and the entries of both subtrees.
func (n *NonEmpty[K, V]) Size() int {
	return 1 + n.left.Size() + n.right.Size()
}

// Height is 1 plus the larger height of the subtrees.
func (n *NonEmpty[K, V]) Height() int {
	return 1 + max(n.left.Height(), n.right.Height())
}

// SubTree restricts the subtree rooted at n to keys in [fromKey, toKey].
//
// If n's key is within range, a new node is created for it, with both subtrees
// restricted recursively. Otherwise n is dropped and the restriction of the
// only subtree which may hold keys within range is returned directly.
// All non-empty nodes of the result are new; the result shares no mutable
// structure with n.
func (n *NonEmpty[K, V]) SubTree(fromKey, toKey K) Tree[K, V] {
	if cmp.Less(n.key, fromKey) {
		return n.right.SubTree(fromKey, toKey)
	}
	if cmp.Less(toKey, n.key) {
		return n.left.SubTree(fromKey, toKey)
	}
	return &NonEmpty[K, V]{
		key:   n.key,
		value: n.value,
		left:  n.left.SubTree(fromKey, toKey),
		right: n.right.SubTree(fromKey, toKey),
	}
}

// InorderTraversal visits left, n, right.
func (n *NonEmpty[K, V]) InorderTraversal(task TraversalTask[K, V]) {
	n.left.InorderTraversal(task)
	task.PerformTask(n.key, n.value)
	n.right.InorderTraversal(task)
}

// RightRootLeftTraversal visits right, n, left.
func (n *NonEmpty[K, V]) RightRootLeftTraversal(task TraversalTask[K, V]) {
	n.right.RightRootLeftTraversal(task)
	task.PerformTask(n.key, n.value)
	n.left.RightRootLeftTraversal(task)
}

// AddKeysToCollection adds the keys of the subtree rooted at n to c, ascending.
func (n *NonEmpty[K, V]) AddKeysToCollection(c Collection[K]) {
	n.left.AddKeysToCollection(c)
	c.Add(n.key)
	n.right.AddKeysToCollection(c)
}

// IsEmpty returns false.
func (n *NonEmpty[K, V]) IsEmpty() bool {
	return false
}

func (n *NonEmpty[K, V]) String() string {
	return fmt.Sprintf("Key: %v\nValue: %v", n.key, n.value)
}

func (n *NonEmpty[K, V]) walk(order Order, depth int, f func(K, V, int) error) error {
	first, second := n.left, n.right
	if order == RightRootLeft {
		first, second = n.right, n.left
	}
	if err := first.walk(order, depth+1, f); err != nil {
		return err
	}
	if err := f(n.key, n.value, depth); err != nil {
		return err
	}
	return second.walk(order, depth+1, f)
}

func (n *NonEmpty[K, V]) ascend(yield func(K, V) bool) bool {
	return n.left.ascend(yield) && yield(n.key, n.value) && n.right.ascend(yield)
}

func (n *NonEmpty[K, V]) descend(yield func(K, V) bool) bool {
	return n.right.descend(yield) && yield(n.key, n.value) && n.left.descend(yield)
}
