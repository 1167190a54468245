package polytree

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const bSize = 1 << 14

func BenchmarkTree_Insert(b *testing.B) {
	perm := rand.Perm(bSize)
	var t Tree[int, int]
	for range b.N {
		t = Empty[int, int]{}
		for _, k := range perm {
			t = t.Insert(k, k)
		}
	}
	b.Log(t.Height())
}

func BenchmarkTree_Delete(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		b.StopTimer()
		var t Tree[int, int] = Empty[int, int]{}
		for _, k := range perm {
			t = t.Insert(k, k)
		}
		b.StartTimer()
		for k := range bSize {
			t = t.Delete(k)
		}
	}
}

func BenchmarkTree_Search(b *testing.B) {
	perm := rand.Perm(bSize)
	var t Tree[int, int] = Empty[int, int]{}
	for _, k := range perm {
		t = t.Insert(k, k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range perm {
			t.Search(k)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		t := btree.NewOrderedG[int](8)
		for _, k := range perm {
			t.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		t := llrb.New()
		for _, k := range perm {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}
