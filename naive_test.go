package main

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNaiveUnionByIndex(t *testing.T) {
	if _, err := NewNaiveDisjointSets(-1); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("unexpected error for negative size: %v", err)
	}
	d, err := NewNaiveDisjointSets(4)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 4 {
		t.Fatalf("unexpected set count: %d", d.Len())
	}

	// Equal sizes, the first set is merged into the second one.
	d.UnionByIndex(0, 1)
	if d.Len() != 3 {
		t.Fatalf("unexpected set count: %d", d.Len())
	}
	if !reflect.DeepEqual(d.At(0), []int{1, 0}) {
		t.Fatalf("unexpected set: %v", d.At(0))
	}
	if d.Moved() != 1 {
		t.Fatalf("unexpected moved count: %d", d.Moved())
	}

	// Positions shifted down: {2} is now at 1 and {3} at 2.
	if !reflect.DeepEqual(d.At(1), []int{2}) {
		t.Fatalf("unexpected set: %v", d.At(1))
	}

	// The larger set absorbs the smaller one and keeps its position.
	d.UnionByIndex(0, 2)
	if !reflect.DeepEqual(d.At(0), []int{1, 0, 3}) {
		t.Fatalf("unexpected set: %v", d.At(0))
	}
	if d.Moved() != 2 {
		t.Fatalf("unexpected moved count: %d", d.Moved())
	}

	// Merging a set with itself changes nothing.
	d.UnionByIndex(1, 1)
	if d.Len() != 2 {
		t.Fatalf("unexpected set count: %d", d.Len())
	}
	if d.Moved() != 2 {
		t.Fatalf("unexpected moved count: %d", d.Moved())
	}
}

func TestCanonicalSets(t *testing.T) {
	sets := [][]int{{4, 2}, {3}, {1, 0}}
	canon := canonicalSets(sets)
	require.Equal(t, [][]int{{0, 1}, {2, 4}, {3}}, canon)
	// The input is left untouched.
	require.Equal(t, [][]int{{4, 2}, {3}, {1, 0}}, sets)
}
