package datastructure

import (
	"fmt"
)

type Index uint32

/*
WeightedQuickUnion. weighted quick-union with path compression (Algorithms 4th ed., Sedgewick & Wayne, section 1.5).

every element starts in its own set. Union always hangs the root of the smaller tree under the root of the larger one,
so tree height stays O(log n), and Find halves the path it walks (every visited node points to its grandparent).
together the amortized cost of Find/Union is O(α(n)).

sets only merge, they never split.
*/
type WeightedQuickUnion struct {
	parent []Index
	size   []Index // size[i] = number of elements in the tree rooted at i. only meaningful for roots
	count  int
}

func NewWeightedQuickUnion(n int) *WeightedQuickUnion {
	if n < 0 {
		panic(fmt.Sprintf("union-find size must be non-negative, got %d", n))
	}
	parent := make([]Index, n)
	size := make([]Index, n)
	for i := 0; i < n; i++ {
		parent[i] = Index(i)
		size[i] = 1
	}
	return &WeightedQuickUnion{
		parent: parent,
		size:   size,
		count:  n,
	}
}

// Find. returns the root (canonical element) of the set containing p.
func (uf *WeightedQuickUnion) Find(p Index) Index {
	uf.validate(p)
	for p != uf.parent[p] {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}
	return p
}

func (uf *WeightedQuickUnion) Connected(p, q Index) bool {
	return uf.Find(p) == uf.Find(q)
}

// Union. merges the set containing p with the set containing q.
func (uf *WeightedQuickUnion) Union(p, q Index) {
	rootP := uf.Find(p)
	rootQ := uf.Find(q)
	if rootP == rootQ {
		return
	}

	if uf.size[rootP] < uf.size[rootQ] {
		uf.parent[rootP] = rootQ
		uf.size[rootQ] += uf.size[rootP]
	} else {
		uf.parent[rootQ] = rootP
		uf.size[rootP] += uf.size[rootQ]
	}
	uf.count--
}

// Count. number of disjoint sets.
func (uf *WeightedQuickUnion) Count() int {
	return uf.count
}

// Size. number of elements.
func (uf *WeightedQuickUnion) Size() int {
	return len(uf.parent)
}

// SetSize. number of elements in the set containing p.
func (uf *WeightedQuickUnion) SetSize(p Index) int {
	return int(uf.size[uf.Find(p)])
}

func (uf *WeightedQuickUnion) validate(p Index) {
	if int(p) >= len(uf.parent) {
		panic(fmt.Sprintf("index %d is not between 0 and %d", p, len(uf.parent)-1))
	}
}
