package hash

import (
	"github.com/gostonefire/hashmap/hashfunc"
)

// LinearProbingHashAlgorithm - Binds a hashfunc.HashFunc to a table size. The home bucket of a key is
// hash(key) mod tableSize and the probe sequence visits the following buckets one by one, wrapping at
// the end of the table. The table size is used as is, no rounding to a power of 2 takes place.
type LinearProbingHashAlgorithm[K comparable] struct {
	tableSize int64
	hashFunc  hashfunc.HashFunc[K]
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
//   - tableSize is the number of buckets to address
//   - hashFunc is the hash strategy, if nil hashfunc.Default is used
func NewLinearProbingHashAlgorithm[K comparable](tableSize int64, hashFunc hashfunc.HashFunc[K]) *LinearProbingHashAlgorithm[K] {
	if hashFunc == nil {
		hashFunc = hashfunc.Default[K]()
	}
	ha := &LinearProbingHashAlgorithm[K]{hashFunc: hashFunc}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// It is called when the table is resized, after which all home buckets change.
func (L *LinearProbingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	L.tableSize = tableSize
}

// GetTableSize - Returns the table size the hash algorithm is currently addressing
func (L *LinearProbingHashAlgorithm[K]) GetTableSize() int64 {
	return L.tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return int64(L.hashFunc(key) % uint64(L.tableSize))
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm[K]) ProbeIteration(hf1Value, iteration int64) int64 {
	probe := hf1Value + iteration%L.tableSize
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}
