package polytree

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// sampleTree creates the tree
//
//	10
//	├── 5
//	└── 20
//	    ├── 15
//	    │   └── 18
//	    │       └── 16 (left)
//	    └── 25
func sampleTree() Tree[int, string] {
	var t Tree[int, string] = Empty[int, string]{}
	t = t.Insert(10, "Ten")
	t = t.Insert(5, "Five")
	t = t.Insert(20, "Twenty")
	t = t.Insert(25, "Twenty-five")
	t = t.Insert(15, "Fifteen")
	t = t.Insert(18, "Eighteen")
	t = t.Insert(16, "Sixteen")
	return t
}

type keysValues struct {
	keys   []int
	values []string
}

func (kv *keysValues) PerformTask(k int, v string) {
	kv.keys = append(kv.keys, k)
	kv.values = append(kv.values, v)
}

func inorderKeys(t Tree[int, string]) []int {
	kv := &keysValues{}
	t.InorderTraversal(kv)
	return kv.keys
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polytree")
	defer teardown()
	//
	var tree Tree[int, string] = Empty[int, string]{}
	if tree.Size() != 0 || tree.Height() != 0 {
		t.Errorf("expected empty tree to have size=0 and height=0, has %d/%d", tree.Size(), tree.Height())
	}
	if _, ok := tree.Search(10); ok {
		t.Errorf("expected search in empty tree to fail")
	}
	if _, ok := tree.Min(); ok {
		t.Errorf("expected empty tree to have no minimum")
	}
	if _, ok := tree.Max(); ok {
		t.Errorf("expected empty tree to have no maximum")
	}
	tree = tree.Delete(10)
	if !tree.IsEmpty() {
		t.Errorf("expected delete on empty tree to yield an empty tree")
	}
	sub := tree.SubTree(10, 20)
	if !sub.IsEmpty() || sub.Size() != 0 || sub.Height() != 0 {
		t.Errorf("expected sub-tree of empty tree to be empty")
	}
	tree.InorderTraversal(TaskFunc[int, string](func(int, string) {
		t.Errorf("traversal of empty tree must not call task")
	}))
	if tree.String() != "Empty Tree\n" {
		t.Errorf("unexpected string for empty tree: %q", tree.String())
	}
}

func TestInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polytree")
	defer teardown()
	//
	tree := sampleTree()
	if tree.Size() != 7 {
		t.Errorf("expected size 7, is %d", tree.Size())
	}
	if tree.Height() != 5 {
		t.Errorf("expected height 5, is %d", tree.Height())
	}
	root := tree
	tree = tree.Insert(10, "New ten")
	if tree != root {
		t.Errorf("expected overwrite to keep root node")
	}
	if tree.Size() != 7 {
		t.Errorf("expected repeated key not to change size, size is %d", tree.Size())
	}
	if v, ok := tree.Search(10); !ok || v != "New ten" {
		t.Errorf("expected 'New ten' for key 10, got %q", v)
	}
	if _, ok := tree.Search(100); ok {
		t.Errorf("expected key 100 not to be found")
	}
	if err := Check(tree); err != nil {
		t.Error(err)
	}
}

func TestInsertIntoEmptyYieldsNonEmpty(t *testing.T) {
	var tree Tree[string, int] = Empty[string, int]{}
	tree = tree.Insert("a", 1)
	n, ok := tree.(*NonEmpty[string, int])
	if !ok {
		t.Fatalf("expected non-empty variant, got %T", tree)
	}
	if n.Key() != "a" || n.Value() != 1 || !n.Left().IsEmpty() || !n.Right().IsEmpty() {
		t.Errorf("unexpected node %v", n)
	}
	if tree.Height() != 1 {
		t.Errorf("expected single node to have height 1, is %d", tree.Height())
	}
}

func TestInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polytree")
	defer teardown()
	//
	kv := &keysValues{}
	sampleTree().InorderTraversal(kv)
	if !slices.Equal(kv.keys, []int{5, 10, 15, 16, 18, 20, 25}) {
		t.Errorf("unexpected in-order keys %v", kv.keys)
	}
	if !slices.Equal(kv.values, []string{"Five", "Ten", "Fifteen", "Sixteen", "Eighteen",
		"Twenty", "Twenty-five"}) {
		t.Errorf("unexpected in-order values %v", kv.values)
	}
}

func TestRightRootLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polytree")
	defer teardown()
	//
	kv := &keysValues{}
	sampleTree().RightRootLeftTraversal(kv)
	if !slices.Equal(kv.keys, []int{25, 20, 18, 16, 15, 10, 5}) {
		t.Errorf("unexpected right-root-left keys %v", kv.keys)
	}
	if !slices.Equal(kv.values, []string{"Twenty-five", "Twenty", "Eighteen", "Sixteen",
		"Fifteen", "Ten", "Five"}) {
		t.Errorf("unexpected right-root-left values %v", kv.values)
	}
}

func TestAddKeysToCollection(t *testing.T) {
	var keys KeyList[int]
	sampleTree().AddKeysToCollection(&keys)
	if !slices.Equal([]int(keys), []int{5, 10, 15, 16, 18, 20, 25}) {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestMinMax(t *testing.T) {
	tree := sampleTree()
	if k, ok := tree.Min(); !ok || k != 5 {
		t.Errorf("expected min 5, got %d", k)
	}
	if k, ok := tree.Max(); !ok || k != 25 {
		t.Errorf("expected max 25, got %d", k)
	}
}

func TestDeleteLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polytree")
	defer teardown()
	//
	tree := sampleTree().Delete(16)
	if tree.Size() != 6 {
		t.Errorf("expected size 6, is %d", tree.Size())
	}
	if tree.Height() != 4 {
		t.Errorf("expected height 4, is %d", tree.Height())
	}
	kv := &keysValues{}
	tree.InorderTraversal(kv)
	if !slices.Equal(kv.keys, []int{5, 10, 15, 18, 20, 25}) {
		t.Errorf("unexpected keys %v", kv.keys)
	}
	if !slices.Equal(kv.values, []string{"Five", "Ten", "Fifteen", "Eighteen", "Twenty", "Twenty-five"}) {
		t.Errorf("unexpected values %v", kv.values)
	}
}

func TestDeleteRoot1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polytree")
	defer teardown()
	//
	tree := sampleTree().Delete(10)
	if tree.Size() != 6 {
		t.Errorf("expected size 6, is %d", tree.Size())
	}
	if tree.Height() != 4 {
		t.Errorf("expected height 4, is %d", tree.Height())
	}
	kv := &keysValues{}
	tree.InorderTraversal(kv)
	if !slices.Equal(kv.keys, []int{5, 15, 16, 18, 20, 25}) {
		t.Errorf("unexpected keys %v", kv.keys)
	}
	if !slices.Equal(kv.values, []string{"Five", "Fifteen", "Sixteen", "Eighteen", "Twenty", "Twenty-five"}) {
		t.Errorf("unexpected values %v", kv.values)
	}
	root := tree.(*NonEmpty[int, string])
	if root.Key() != 15 || root.Value() != "Fifteen" {
		t.Errorf("expected successor 15 to replace root, root is %v", root)
	}
	t.Logf("root after delete:\n%s", root)
}

func TestDeleteRoot2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polytree")
	defer teardown()
	//
	var tree Tree[int, string] = Empty[int, string]{}
	tree = tree.Insert(20, "Twenty")
	tree = tree.Insert(10, "Ten")
	tree = tree.Insert(5, "Five")
	tree = tree.Insert(12, "Twelve")
	tree = tree.Delete(20)
	if tree.Size() != 3 {
		t.Errorf("expected size 3, is %d", tree.Size())
	}
	if tree.Height() != 3 {
		t.Errorf("expected height 3, is %d", tree.Height())
	}
	root := tree.(*NonEmpty[int, string])
	if root.Key() != 12 {
		t.Errorf("expected predecessor 12 to replace root, root is %v", root)
	}
}

func TestDeleteLastEntry(t *testing.T) {
	var tree Tree[int, string] = Empty[int, string]{}
	tree = tree.Insert(1, "One").Delete(1)
	if !tree.IsEmpty() {
		t.Errorf("expected tree to collapse to empty, is %T", tree)
	}
}

func TestDeleteAbsentKey(t *testing.T) {
	tree := sampleTree().Delete(11)
	if tree.Size() != 7 {
		t.Errorf("expected size to stay at 7, is %d", tree.Size())
	}
}

func TestDeletePrefersSuccessor(t *testing.T) {
	var tree Tree[int, int] = Empty[int, int]{}
	tree = tree.Insert(10, 10).Insert(5, 5).Insert(20, 20)
	tree = tree.Delete(10)
	if k := tree.(*NonEmpty[int, int]).Key(); k != 20 {
		t.Errorf("expected root to be replaced by successor 20, is %d", k)
	}
	if err := Check(tree); err != nil {
		t.Error(err)
	}
}

func TestGetSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "polytree")
	defer teardown()
	//
	sub := sampleTree().SubTree(10, 20)
	if sub.Size() != 5 || sub.Height() != 5 {
		t.Errorf("expected size=5, height=5, have %d/%d", sub.Size(), sub.Height())
	}
	kv := &keysValues{}
	sub.InorderTraversal(kv)
	if !slices.Equal(kv.keys, []int{10, 15, 16, 18, 20}) {
		t.Errorf("unexpected keys %v", kv.keys)
	}
	if !slices.Equal(kv.values, []string{"Ten", "Fifteen", "Sixteen", "Eighteen", "Twenty"}) {
		t.Errorf("unexpected values %v", kv.values)
	}
}

func TestGetSubtree2(t *testing.T) {
	sub := sampleTree().SubTree(10, 17)
	if sub.Size() != 3 || sub.Height() != 3 {
		t.Errorf("expected size=3, height=3, have %d/%d", sub.Size(), sub.Height())
	}
	if keys := inorderKeys(sub); !slices.Equal(keys, []int{10, 15, 16}) {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestGetSubtree3(t *testing.T) {
	sub := sampleTree().SubTree(11, 22)
	if sub.Size() != 4 || sub.Height() != 4 {
		t.Errorf("expected size=4, height=4, have %d/%d", sub.Size(), sub.Height())
	}
	if keys := inorderKeys(sub); !slices.Equal(keys, []int{15, 16, 18, 20}) {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestSubtreeDoesNotShareNodes(t *testing.T) {
	tree := sampleTree()
	sub := tree.SubTree(10, 20)
	sub = sub.Insert(15, "changed")
	sub = sub.Delete(18)
	if v, _ := tree.Search(15); v != "Fifteen" {
		t.Errorf("modifying sub-tree changed original: 15 => %q", v)
	}
	if _, ok := tree.Search(18); !ok {
		t.Errorf("deleting from sub-tree changed original")
	}
}

func TestNewNonEmptyNilChildren(t *testing.T) {
	n := NewNonEmpty[int, string](1, "One", nil, nil)
	if n.Size() != 1 || n.Height() != 1 {
		t.Errorf("expected single node, have size=%d height=%d", n.Size(), n.Height())
	}
	if err := Check[int, string](n); err != nil {
		t.Error(err)
	}
}

func TestEachNodeDepth(t *testing.T) {
	var depths []int
	err := EachNode(sampleTree(), InOrder, func(k int, v string, d int) error {
		depths = append(depths, d)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// keys 5, 10, 15, 16, 18, 20, 25
	if !slices.Equal(depths, []int{1, 0, 2, 4, 3, 1, 2}) {
		t.Errorf("unexpected depths %v", depths)
	}
	var keys []int
	_ = EachNode(sampleTree(), RightRootLeft, func(k int, v string, d int) error {
		keys = append(keys, k)
		return nil
	})
	if !slices.Equal(keys, []int{25, 20, 18, 16, 15, 10, 5}) {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestEachNodeStopsOnError(t *testing.T) {
	cnt := 0
	err := EachNode(sampleTree(), InOrder, func(k int, v string, d int) error {
		cnt++
		if k == 15 {
			return ErrIllegalArguments
		}
		return nil
	})
	if err != ErrIllegalArguments {
		t.Errorf("expected callback error to be returned, got %v", err)
	}
	if cnt != 3 {
		t.Errorf("expected 3 visits, got %d", cnt)
	}
}
