//go:build stress

package test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/gostonefire/hashmap"
	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/hashfunc"
	"github.com/stretchr/testify/assert"
)

type testRecord struct {
	key   string
	value int64
}

func createTestdata(rnd *rand.Rand, amount int) []testRecord {
	data := make([]testRecord, amount)
	for i := range data {
		data[i] = testRecord{key: fmt.Sprintf("%016x%016x", rnd.Uint64(), rnd.Uint64()), value: rnd.Int63()}
	}
	return data
}

func setTestdata(data []testRecord, hm *hashmap.HashMap[string, int64], oracle map[string]int64) error {
	for _, r := range data {
		if err := hm.Set(r.key, r.value); err != nil {
			return err
		}
		oracle[r.key] = r.value
	}
	return nil
}

func popTestdata(data []testRecord, hm *hashmap.HashMap[string, int64], oracle map[string]int64) error {
	for _, r := range data {
		value, err := hm.Pop(r.key)
		if err != nil {
			return err
		}
		if value != r.value {
			return fmt.Errorf("popped wrong value for key %s", r.key)
		}
		delete(oracle, r.key)
	}
	return nil
}

func getTestdata(data []testRecord, hm *hashmap.HashMap[string, int64], shouldNotExist bool) error {
	for _, r := range data {
		value, err := hm.Get(r.key)
		if shouldNotExist {
			if err == nil {
				return fmt.Errorf("get should not get data for key %s", r.key)
			} else if !errors.Is(err, crt.NoRecordFound{}) {
				return err
			}
		} else {
			if err != nil {
				return err
			}
			if value != r.value {
				return fmt.Errorf("got wrong value for key %s", r.key)
			}
		}
	}
	return nil
}

type TestCaseStressTest struct {
	crtName   string
	crt       int
	hashFunc  hashfunc.HashFunc[string]
	nTestdata int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all CRTs", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{crtName: "SeparateChaining", crt: crt.SeparateChaining, nTestdata: 200000},
			{crtName: "LinearProbing", crt: crt.LinearProbing, nTestdata: 200000},
			{crtName: "LinearProbingCRC32", crt: crt.LinearProbing, hashFunc: hashfunc.CRC32[string](), nTestdata: 50000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of stress and resizes for %s", test.crtName), func(t *testing.T) {
				// Prepare test data
				rnd := rand.New(rand.NewSource(123))
				testdata1 := createTestdata(rnd, test.nTestdata)
				testdata2 := createTestdata(rnd, test.nTestdata)
				testdata3 := createTestdata(rnd, test.nTestdata)
				oracle := make(map[string]int64)

				// Prepare hash map
				hm, _, err := hashmap.NewHashMap[string, int64](test.crt, 0, test.hashFunc)
				assert.NoError(t, err, "create hash map")

				// Set first two sets of test data
				err = setTestdata(testdata1, hm, oracle)
				assert.NoError(t, err, "set test set 1")
				err = setTestdata(testdata2, hm, oracle)
				assert.NoError(t, err, "set test set 2")

				// Remove first set, leaving tombstones behind for linear probing
				err = popTestdata(testdata1, hm, oracle)
				assert.NoError(t, err, "pop test set 1")

				// Set third set of test data
				err = setTestdata(testdata3, hm, oracle)
				assert.NoError(t, err, "set test set 3")

				// Check all three test sets
				err = getTestdata(testdata1, hm, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(testdata2, hm, false)
				assert.NoError(t, err, "get test set 2")
				err = getTestdata(testdata3, hm, false)
				assert.NoError(t, err, "get test set 3")
				assert.Equal(t, int64(len(oracle)), hm.Len(), "same number of records as reference map")

				// Remove second set
				err = popTestdata(testdata2, hm, oracle)
				assert.NoError(t, err, "pop test set 2")

				// Check all three test sets
				err = getTestdata(testdata1, hm, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(testdata2, hm, true)
				assert.NoError(t, err, "get test set 2, should not exist")
				err = getTestdata(testdata3, hm, false)
				assert.NoError(t, err, "get test set 3")

				// Get stats
				stat, err := hm.Stat(true)
				assert.NoError(t, err, "get stat")
				assert.Equal(t, int64(test.nTestdata), stat.Records, "correct number of records")
				assert.Equal(t, hm.LoadFactor(), stat.LoadFactor, "load factor")
				var sum int64
				for _, n := range stat.BucketDistribution {
					sum += n
				}
				assert.Equal(t, stat.Records, sum, "distribution sums up to records")

				// Every record is visited exactly once by the iterator
				seen := make(map[string]int64)
				iter := hm.Records()
				for iter.HasNext() {
					k, v, err := iter.Next()
					assert.NoError(t, err, "next record")
					seen[k] = v
				}
				assert.Equal(t, oracle, seen, "iterator matches reference map")

				// Reset
				err = hm.Reset()
				assert.NoError(t, err, "reset")
				err = getTestdata(testdata3, hm, true)
				assert.NoError(t, err, "get test set 3 after reset, should not exist")
			})
		}
	})
}
