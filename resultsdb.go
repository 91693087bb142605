package main

import (
	"encoding/binary"
	"encoding/json"
	"sort"
	"time"

	"github.com/boltdb/bolt"
)

var (
	samplesBucket = []byte("samples")
)

// BenchSample aggregates the time spent in each phase while merging a
// universe of Size elements down to a single set.
type BenchSample struct {
	Size  int           `json:"size"`
	Naive time.Duration `json:"naive"`
	Find  time.Duration `json:"find"`
	Merge time.Duration `json:"merge"`
}

type ResultsDb struct {
	db *bolt.DB
}

func OpenResultsDb(path string) (*ResultsDb, error) {
	db, err := bolt.Open(path, 0666, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if db != nil {
			db.Close()
		}
	}()
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(samplesBucket)
		return err
	})
	if err != nil {
		return nil, err
	}
	resultsDb := &ResultsDb{
		db: db,
	}
	db = nil
	return resultsDb, nil
}

func (db *ResultsDb) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

func makeByteKey(id int64) []byte {
	buf := make([]byte, 9)
	n := binary.PutVarint(buf, id)
	return buf[:n]
}

func (db *ResultsDb) Put(s *BenchSample) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	key := makeByteKey(int64(s.Size))
	return db.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(samplesBucket).Put(key, data)
	})
}

func (db *ResultsDb) Get(size int) (*BenchSample, error) {
	s := &BenchSample{}
	found := false
	err := db.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(samplesBucket).Get(makeByteKey(int64(size)))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, s)
	})
	if !found {
		s = nil
	}
	return s, err
}

// List returns all stored samples in ascending size order. Varint keys do
// not sort byte-wise, so the order is restored after reading.
func (db *ResultsDb) List() ([]*BenchSample, error) {
	samples := []*BenchSample{}
	err := db.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(samplesBucket).ForEach(func(k, v []byte) error {
			s := &BenchSample{}
			if err := json.Unmarshal(v, s); err != nil {
				return err
			}
			samples = append(samples, s)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Size < samples[j].Size
	})
	return samples, nil
}
