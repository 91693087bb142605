package main

import (
	"fmt"
	"sort"
)

// NaiveDisjointSets is the list-merging baseline the benchmark compares
// against. Each set is a plain slice of elements, merging appends the
// smaller set to the larger one and drops it from the set list.
type NaiveDisjointSets struct {
	sets  [][]int
	moved int
}

func NewNaiveDisjointSets(n int) (*NaiveDisjointSets, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	sets := make([][]int, n)
	for i := range sets {
		sets[i] = []int{i}
	}
	return &NaiveDisjointSets{sets: sets}, nil
}

// UnionByIndex merges the sets at positions i1 and i2 of the current set
// list. Positions past the removed set shift down by one, like deleting
// from a slice.
func (d *NaiveDisjointSets) UnionByIndex(i1, i2 int) {
	if i1 == i2 {
		return
	}
	set1 := d.sets[i1]
	set2 := d.sets[i2]
	if len(set1) > len(set2) {
		d.sets[i1] = append(set1, set2...)
		d.moved += len(set2)
		d.sets = append(d.sets[:i2], d.sets[i2+1:]...)
	} else {
		d.sets[i2] = append(set2, set1...)
		d.moved += len(set1)
		d.sets = append(d.sets[:i1], d.sets[i1+1:]...)
	}
}

// Len returns the number of sets.
func (d *NaiveDisjointSets) Len() int {
	return len(d.sets)
}

// At returns the set at position i of the current set list.
func (d *NaiveDisjointSets) At(i int) []int {
	return d.sets[i]
}

// Sets returns the current set list.
func (d *NaiveDisjointSets) Sets() [][]int {
	return d.sets
}

// Moved returns how many elements were copied between sets so far.
func (d *NaiveDisjointSets) Moved() int {
	return d.moved
}

// canonicalSets copies sets into a normal form for comparisons: elements
// sorted within each set, sets sorted by their smallest element.
func canonicalSets(sets [][]int) [][]int {
	canon := make([][]int, 0, len(sets))
	for _, set := range sets {
		s := append([]int{}, set...)
		sort.Ints(s)
		canon = append(canon, s)
	}
	sort.Slice(canon, func(i, j int) bool {
		return canon[i][0] < canon[j][0]
	})
	return canon
}
