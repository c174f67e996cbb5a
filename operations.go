package hashmap

import (
	"fmt"

	"github.com/gostonefire/hashmap/internal/model"
)

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type NoRecordFound is also returned.
//   - err is of type NoRecordFound if the key is not in the hash map
func (H *HashMap[K, V]) Get(key K) (value V, err error) {
	record, err := H.tableManagement.Find(key)
	if err != nil {
		return
	}

	value = record.Value

	return
}

// Contains - Returns true if the key is in the hash map
func (H *HashMap[K, V]) Contains(key K) bool {
	_, err := H.tableManagement.Find(key)
	return err == nil
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
//   - key is the identifier of a record
//   - value is the value to store along with the key
//
// It returns:
//   - err is a standard error, if something went wrong
func (H *HashMap[K, V]) Set(key K, value V) (err error) {
	_, err = H.Insert(key, value)

	return
}

// Insert - Same as Set but also tells whether a new record was added.
// With crt.LinearProbing inserted is always true, with crt.SeparateChaining it is false when an existing record was updated.
//
// It returns:
//   - inserted tells whether a new record was added, see above
//   - err is a standard error, if something went wrong. The record is stored even if a triggered resize failed.
func (H *HashMap[K, V]) Insert(key K, value V) (inserted bool, err error) {
	inserted, err = H.tableManagement.Insert(key, value)
	if err != nil {
		err = fmt.Errorf("error while updating or adding record: %w", err)
	}

	return
}

// Pop - Returns the value corresponding to key and removes it from the hash map.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type NoRecordFound is also returned.
//   - err is of type NoRecordFound if the key is not in the hash map
func (H *HashMap[K, V]) Pop(key K) (value V, err error) {
	record, err := H.tableManagement.Find(key)
	if err != nil {
		return
	}

	err = H.tableManagement.DeleteRecord(record)
	if err != nil {
		return
	}

	value = record.Value

	return
}

// Delete - Removes the record with matching key, returns false if there was none
func (H *HashMap[K, V]) Delete(key K) bool {
	return H.tableManagement.Delete(key)
}

// Reset - Removes all records keeping the current number of buckets
//
// It returns:
//   - err is of type AllocationFailure (wrapped) if a new table couldn't be allocated, the hash map is then unchanged
func (H *HashMap[K, V]) Reset() (err error) {
	return H.tableManagement.Reset()
}

// Resize - Doubles the number of buckets right away instead of waiting for the load factor threshold
func (H *HashMap[K, V]) Resize() (err error) {
	return H.tableManagement.Resize()
}

// LoadFactor - Returns the number of records divided by the number of buckets
func (H *HashMap[K, V]) LoadFactor() float64 {
	return H.tableManagement.LoadFactor()
}

// Len - Returns the number of records
func (H *HashMap[K, V]) Len() int64 {
	return H.tableManagement.Len()
}

// Capacity - Returns the current number of buckets
func (H *HashMap[K, V]) Capacity() int64 {
	return H.tableManagement.Capacity()
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
// The HashMapStat.BucketDistribution slice has one entry per bucket so it can be memory heavy for big maps.
//   - includeDistribution set to true will include a slice of length Buckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	var hms HashMapStat

	sp := H.tableManagement.GetStorageParameters()
	hms.Buckets = sp.NumberOfBucketsAvailable
	hms.DeletedRecords = sp.NumberOfDeletedRecords
	hms.LoadFactor = H.tableManagement.LoadFactor()

	if includeDistribution {
		hms.BucketDistribution = make([]int64, hms.Buckets)
	}

	// Iterate over every available bucket
	for i := int64(0); i < hms.Buckets; i++ {
		bucket, err := H.tableManagement.GetBucket(i)
		if err != nil {
			return nil, err
		}

		var n int64
		for _, record := range bucket.Records {
			if record.State == model.RecordOccupied {
				n++
			}
		}

		hms.Records += n
		if n > hms.LongestBucket {
			hms.LongestBucket = n
		}
		if includeDistribution {
			hms.BucketDistribution[i] = n
		}
	}

	hashMapStat = &hms
	return
}

// Records - Returns an iterator over all records currently in the hash map.
// The hash map must not be modified while iterating.
func (H *HashMap[K, V]) Records() *Records[K, V] {
	return newRecords[K, V](H.tableManagement)
}
