package main

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResultsDb(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.db")
	db, err := OpenResultsDb(path)
	require.NoError(t, err)

	missing, err := db.Get(32)
	require.NoError(t, err)
	require.Nil(t, missing)

	samples := []*BenchSample{
		{Size: 1024, Naive: 7 * time.Millisecond, Find: time.Millisecond,
			Merge: 500 * time.Microsecond},
		{Size: 32, Naive: 120 * time.Microsecond, Find: 30 * time.Microsecond,
			Merge: 10 * time.Microsecond},
	}
	for _, s := range samples {
		require.NoError(t, db.Put(s))
	}

	got, err := db.Get(32)
	require.NoError(t, err)
	require.Equal(t, samples[1], got)

	// Re-putting a size overwrites the stored sample.
	samples[1].Naive = 140 * time.Microsecond
	require.NoError(t, db.Put(samples[1]))
	require.NoError(t, db.Close())

	// Samples survive reopening and list in ascending size order.
	db, err = OpenResultsDb(path)
	require.NoError(t, err)
	defer db.Close()
	listed, err := db.List()
	require.NoError(t, err)
	require.Equal(t, []*BenchSample{samples[1], samples[0]}, listed)
}

func TestBenchOne(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	sample, err := benchOne(64, rng)
	require.NoError(t, err)
	require.Equal(t, 64, sample.Size)
	require.GreaterOrEqual(t, sample.Naive, time.Duration(0))
	require.GreaterOrEqual(t, sample.Find, time.Duration(0))
	require.GreaterOrEqual(t, sample.Merge, time.Duration(0))
}
