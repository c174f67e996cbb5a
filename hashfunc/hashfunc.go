package hashfunc

import (
	"hash/crc32"
	"hash/maphash"

	"github.com/vmihailenco/msgpack/v5"
)

// HashFunc - Hash strategy that a HashMap holds by value and uses to select the home bucket of a key.
// Any value is accepted, the map reduces it modulo its current table size. The function must return
// the same value for equal keys during the lifetime of the map.
type HashFunc[K comparable] func(key K) uint64

// Default - Returns a HashFunc based on the runtime's built-in hash for comparable types.
// The seed is chosen once per returned function, so two maps using separately created
// Default functions will in general distribute keys differently.
func Default[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// CRC32 - Returns a HashFunc that msgpack encodes the key and then applies crc32.ChecksumIEEE over the
// resulting bytes. It is stable across processes, which the Default function is not.
// Keys that can't be encoded all hash to 0, which is correct but degrades the map to one long probe chain.
func CRC32[K comparable]() HashFunc[K] {
	return func(key K) uint64 {
		b, err := msgpack.Marshal(key)
		if err != nil {
			return 0
		}
		return uint64(crc32.ChecksumIEEE(b))
	}
}

// Identity - Returns a HashFunc that uses an integer key as its own hash value. It makes probe sequences
// fully predictable which is handy when demonstrating or testing collision handling.
func Identity[K ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64]() HashFunc[K] {
	return func(key K) uint64 {
		return uint64(key)
	}
}
