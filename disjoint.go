package main

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidSize = errors.New("invalid universe size")
	ErrOutOfRange  = errors.New("element out of range")
)

// DisjointSets partitions the elements of [0, n) into mergeable sets. Each
// set is a tree stored through parents; sizes is only meaningful for roots.
// Find does not compress paths, union by size keeps trees logarithmic.
// Not safe for concurrent use.
type DisjointSets struct {
	parents []int
	sizes   []int
	count   int
}

func NewDisjointSets(n int) (*DisjointSets, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	d := &DisjointSets{
		parents: make([]int, n),
		sizes:   make([]int, n),
		count:   n,
	}
	for i := range d.parents {
		d.parents[i] = i
		d.sizes[i] = 1
	}
	return d, nil
}

func (d *DisjointSets) checkElement(x int) error {
	if x < 0 || x >= len(d.parents) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, x, len(d.parents))
	}
	return nil
}

func (d *DisjointSets) findRoot(x int) int {
	for x != d.parents[x] {
		x = d.parents[x]
	}
	return x
}

// Find returns the root of the set containing x. The result is stable until
// the next merge involving the set of x.
func (d *DisjointSets) Find(x int) (int, error) {
	if err := d.checkElement(x); err != nil {
		return 0, err
	}
	return d.findRoot(x), nil
}

// UnionRoots merges the sets rooted at rootA and rootB and returns which
// root was kept and which was removed. The larger set keeps its root, the
// first argument wins ties. Arguments that are not roots are resolved to
// their roots first. Merging a root with itself is a no-op returning the
// root twice.
func (d *DisjointSets) UnionRoots(rootA, rootB int) (int, int, error) {
	if err := d.checkElement(rootA); err != nil {
		return 0, 0, err
	}
	if err := d.checkElement(rootB); err != nil {
		return 0, 0, err
	}
	rootA = d.findRoot(rootA)
	rootB = d.findRoot(rootB)
	if rootA == rootB {
		return rootA, rootA, nil
	}
	if d.sizes[rootA] < d.sizes[rootB] {
		rootA, rootB = rootB, rootA
	}
	d.parents[rootB] = rootA
	d.sizes[rootA] += d.sizes[rootB]
	d.count--
	return rootA, rootB, nil
}

// Union resolves the roots of x and y and merges their sets like UnionRoots.
func (d *DisjointSets) Union(x, y int) (int, int, error) {
	rootX, err := d.Find(x)
	if err != nil {
		return 0, 0, err
	}
	rootY, err := d.Find(y)
	if err != nil {
		return 0, 0, err
	}
	return d.UnionRoots(rootX, rootY)
}

// Len returns the number of distinct sets.
func (d *DisjointSets) Len() int {
	return d.count
}

// Group is one set of the partition: its root and its members in ascending
// element order.
type Group struct {
	Root    int
	Members []int
}

// Items rebuilds the current partition into fresh groups, ordered by
// ascending root id.
func (d *DisjointSets) Items() []Group {
	members := map[int][]int{}
	roots := []int{}
	for i := range d.parents {
		root := d.findRoot(i)
		if _, ok := members[root]; !ok {
			roots = append(roots, root)
		}
		members[root] = append(members[root], i)
	}
	sort.Ints(roots)
	groups := make([]Group, 0, len(roots))
	for _, root := range roots {
		groups = append(groups, Group{Root: root, Members: members[root]})
	}
	return groups
}
