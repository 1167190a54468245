package polytree

import (
	"cmp"
	"fmt"
)

// Check validates structural tree invariants:
//
//   - no subtree is nil,
//   - for every node, keys in its left subtree are less and keys in its right
//     subtree are greater than its own key.
//
// Uniqueness of keys follows from strict ordering. Check is meant to be used in
// tests and after building trees manually with NewNonEmpty.
func Check[K cmp.Ordered, V any](t Tree[K, V]) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolated)
	}
	_, err := checkNode(t, nil, nil)
	if err != nil {
		tracer().Errorf("tree check: %s", err.Error())
	}
	return err
}

// checkNode checks the subtree t, whose keys have to be within the open interval
// (lower, upper). A nil bound is unlimited.
func checkNode[K cmp.Ordered, V any](t Tree[K, V], lower, upper *K) (int, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil subtree", ErrInvariantViolated)
	}
	if t.IsEmpty() {
		return 0, nil
	}
	n, ok := t.(*NonEmpty[K, V])
	if !ok || n == nil {
		return 0, fmt.Errorf("%w: unknown tree variant %T", ErrInvariantViolated, t)
	}
	if lower != nil && !cmp.Less(*lower, n.key) {
		return 0, fmt.Errorf("%w: key %v not greater than %v", ErrInvariantViolated, n.key, *lower)
	}
	if upper != nil && !cmp.Less(n.key, *upper) {
		return 0, fmt.Errorf("%w: key %v not less than %v", ErrInvariantViolated, n.key, *upper)
	}
	l, err := checkNode(n.left, lower, &n.key)
	if err != nil {
		return 0, err
	}
	r, err := checkNode(n.right, &n.key, upper)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}
