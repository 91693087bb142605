package main

import (
	"fmt"
	"math/rand"
	"os"
	"reflect"
	"time"

	"github.com/alecthomas/kingpin"
)

var (
	app = kingpin.New("dsets", "disjoint sets manipulation and benchmarking tool")
)

var (
	exampleCmd = app.Command("example", "walk through a small merge sequence")
)

func printGroups(d *DisjointSets) {
	for _, g := range d.Items() {
		fmt.Printf("%d: %v\n", g.Root, g.Members)
	}
}

func exampleFn() error {
	d, err := NewDisjointSets(5)
	if err != nil {
		return err
	}
	fmt.Println("initial sets:")
	printGroups(d)

	fmt.Println("\nafter merging the sets of 0 and 1:")
	if _, _, err := d.Union(0, 1); err != nil {
		return err
	}
	printGroups(d)

	root3, err := d.Find(3)
	if err != nil {
		return err
	}
	root4, err := d.Find(4)
	if err != nil {
		return err
	}
	kept, removed, err := d.UnionRoots(root4, root3)
	if err != nil {
		return err
	}
	fmt.Printf("\nmerging the roots %d and %d, kept %d, removed %d:\n",
		root4, root3, kept, removed)
	printGroups(d)

	fmt.Println("\nafter merging the sets of 1 and 4:")
	if _, _, err := d.Union(1, 4); err != nil {
		return err
	}
	printGroups(d)

	fmt.Println("\nafter merging the sets of 2 and 3:")
	if _, _, err := d.Union(2, 3); err != nil {
		return err
	}
	printGroups(d)
	return nil
}

// pickValues draws one value from each of two randomly chosen sets of the
// naive list and returns the set positions and values.
func pickValues(naive *NaiveDisjointSets, rng *rand.Rand) (int, int, int, int) {
	i1 := rng.Intn(naive.Len())
	i2 := rng.Intn(naive.Len())
	set1 := naive.At(i1)
	set2 := naive.At(i2)
	v1 := set1[rng.Intn(len(set1))]
	v2 := set2[rng.Intn(len(set2))]
	return i1, i2, v1, v2
}

func smartSets(d *DisjointSets) [][]int {
	sets := [][]int{}
	for _, g := range d.Items() {
		sets = append(sets, g.Members)
	}
	return sets
}

var (
	checkCmd   = app.Command("check", "cross-check merges against the naive baseline")
	checkSizes = checkCmd.Flag("sizes", "check universe sizes up to this bound").
			Default("100").Int()
	checkSeed = checkCmd.Flag("seed", "random seed").Default("0").Int64()
)

func checkFn() error {
	rng := rand.New(rand.NewSource(*checkSeed))
	for n := 0; n < *checkSizes; n++ {
		smart, err := NewDisjointSets(n)
		if err != nil {
			return err
		}
		naive, err := NewNaiveDisjointSets(n)
		if err != nil {
			return err
		}
		for naive.Len() > 1 {
			i1, i2, v1, v2 := pickValues(naive, rng)
			naive.UnionByIndex(i1, i2)
			if _, _, err := smart.Union(v1, v2); err != nil {
				return err
			}
			got := canonicalSets(smartSets(smart))
			wanted := canonicalSets(naive.Sets())
			if !reflect.DeepEqual(got, wanted) {
				return fmt.Errorf("partitions diverged at size %d: %v != %v",
					n, got, wanted)
			}
		}
	}
	fmt.Println("check passed")
	return nil
}

var (
	benchCmd  = app.Command("bench", "benchmark merges against the naive baseline")
	benchDb   = benchCmd.Arg("db", "samples db path").String()
	benchMin  = benchCmd.Flag("minexp", "smallest size exponent").Default("5").Int()
	benchMax  = benchCmd.Flag("maxexp", "largest size exponent").Default("19").Int()
	benchSeed = benchCmd.Flag("seed", "random seed").Default("0").Int64()
)

// benchOne merges n singletons down to a single set, timing the naive list
// merge, the two root lookups and the root merge of every step separately.
func benchOne(n int, rng *rand.Rand) (*BenchSample, error) {
	smart, err := NewDisjointSets(n)
	if err != nil {
		return nil, err
	}
	naive, err := NewNaiveDisjointSets(n)
	if err != nil {
		return nil, err
	}
	sample := &BenchSample{
		Size: n,
	}
	for naive.Len() > 1 {
		i1, i2, v1, v2 := pickValues(naive, rng)

		start := time.Now()
		naive.UnionByIndex(i1, i2)
		merged := time.Now()
		root1, err := smart.Find(v1)
		if err != nil {
			return nil, err
		}
		root2, err := smart.Find(v2)
		if err != nil {
			return nil, err
		}
		found := time.Now()
		if _, _, err := smart.UnionRoots(root1, root2); err != nil {
			return nil, err
		}
		end := time.Now()

		sample.Naive += merged.Sub(start)
		sample.Find += found.Sub(merged)
		sample.Merge += end.Sub(found)
	}
	return sample, nil
}

func benchFn() error {
	var db *ResultsDb
	if *benchDb != "" {
		var err error
		db, err = OpenResultsDb(*benchDb)
		if err != nil {
			return err
		}
		defer db.Close()
	}
	if *benchMin < 0 || *benchMax < *benchMin {
		return fmt.Errorf("invalid exponent range: [%d, %d]", *benchMin, *benchMax)
	}
	rng := rand.New(rand.NewSource(*benchSeed))
	for e := *benchMin; e <= *benchMax; e++ {
		n := 1 << uint(e)
		fmt.Println("benchmarking size", n)
		sample, err := benchOne(n, rng)
		if err != nil {
			return err
		}
		printSample(sample)
		if db != nil {
			if err := db.Put(sample); err != nil {
				return err
			}
		}
	}
	return nil
}

func printSample(s *BenchSample) {
	fmt.Printf("size %8d naive %12s find %12s merge %12s\n",
		s.Size, s.Naive, s.Find, s.Merge)
}

var (
	reportCmd = app.Command("report", "print stored benchmark samples")
	reportDb  = reportCmd.Arg("db", "samples db path").Required().String()
)

func reportFn() error {
	db, err := OpenResultsDb(*reportDb)
	if err != nil {
		return err
	}
	defer db.Close()
	samples, err := db.List()
	if err != nil {
		return err
	}
	for _, s := range samples {
		printSample(s)
	}
	fmt.Println("samples:", len(samples))
	return nil
}

func dispatch() error {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	switch cmd {
	case exampleCmd.FullCommand():
		return exampleFn()
	case checkCmd.FullCommand():
		return checkFn()
	case benchCmd.FullCommand():
		return benchFn()
	case reportCmd.FullCommand():
		return reportFn()
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

func main() {
	err := dispatch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
