package hash

import (
	"github.com/gostonefire/hashmap/hashfunc"
)

// SeparateChainingHashAlgorithm - Binds a hashfunc.HashFunc to a number of buckets, the bucket of a key
// is hash(key) mod tableSize.
type SeparateChainingHashAlgorithm[K comparable] struct {
	tableSize int64
	hashFunc  hashfunc.HashFunc[K]
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
//   - tableSize is the number of buckets to address
//   - hashFunc is the hash strategy, if nil hashfunc.Default is used
func NewSeparateChainingHashAlgorithm[K comparable](tableSize int64, hashFunc hashfunc.HashFunc[K]) *SeparateChainingHashAlgorithm[K] {
	if hashFunc == nil {
		hashFunc = hashfunc.Default[K]()
	}
	ha := &SeparateChainingHashAlgorithm[K]{hashFunc: hashFunc}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (O *SeparateChainingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	O.tableSize = tableSize
}

// GetTableSize - Returns the table size the hash algorithm is currently addressing
func (O *SeparateChainingHashAlgorithm[K]) GetTableSize() int64 {
	return O.tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (O *SeparateChainingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return int64(O.hashFunc(key) % uint64(O.tableSize))
}
