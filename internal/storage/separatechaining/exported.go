package separatechaining

import (
	"fmt"

	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/hashfunc"
	"github.com/gostonefire/hashmap/internal/conf"
	"github.com/gostonefire/hashmap/internal/hash"
	"github.com/gostonefire/hashmap/internal/model"
	"github.com/gostonefire/hashmap/internal/storage"
	"github.com/gostonefire/hashmap/linkedlist"
	"go.uber.org/zap"
)

// SCTable - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// Each bucket is a linked list of records, records colliding on a bucket are simply appended to its list.
// When records divided by buckets exceeds the load factor threshold the number of buckets is doubled.
//
// An SCTable is not safe for concurrent use, callers must synchronize access themselves.
type SCTable[K comparable, V any] struct {
	buckets                  []*linkedlist.LinkedList[K, V]
	numberOfBucketsNeeded    int64
	numberOfBucketsAvailable int64
	loadFactorThreshold      float64
	hashFunc                 hashfunc.HashFunc[K]
	hashAlgorithm            *hash.SeparateChainingHashAlgorithm[K]
	internalAlgorithm        bool
	logger                   *zap.Logger
	nRecords                 int64
}

// NewSCTable - Returns a pointer to a new instance of a Separate Chaining table.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable[K comparable, V any](crtConf model.CRTConf[K]) (scTable *SCTable[K, V], err error) {
	if crtConf.NumberOfBucketsNeeded < 0 {
		err = fmt.Errorf("number of buckets must be a positive value")
		return
	}
	if crtConf.NumberOfBucketsNeeded == 0 {
		crtConf.NumberOfBucketsNeeded = conf.DefaultNumberOfBuckets
	}
	if crtConf.LoadFactorThreshold == 0 {
		crtConf.LoadFactorThreshold = conf.ChainingLoadFactorThreshold
	}
	if crtConf.LoadFactorThreshold < 0 {
		err = fmt.Errorf("load factor threshold must be a positive value, got %v", crtConf.LoadFactorThreshold)
		return
	}

	// If no HashFunc was given then use the default internal
	var internalAlg bool
	if crtConf.HashFunc == nil {
		crtConf.HashFunc = hashfunc.Default[K]()
		internalAlg = true
	}
	if crtConf.Logger == nil {
		crtConf.Logger = zap.NewNop()
	}

	buckets, err := newBuckets[K, V](crtConf.NumberOfBucketsNeeded)
	if err != nil {
		err = fmt.Errorf("error while allocating buckets: %w", err)
		return
	}

	scTable = &SCTable[K, V]{
		buckets:                  buckets,
		numberOfBucketsNeeded:    crtConf.NumberOfBucketsNeeded,
		numberOfBucketsAvailable: crtConf.NumberOfBucketsNeeded,
		loadFactorThreshold:      crtConf.LoadFactorThreshold,
		hashFunc:                 crtConf.HashFunc,
		hashAlgorithm:            hash.NewSeparateChainingHashAlgorithm(crtConf.NumberOfBucketsNeeded, crtConf.HashFunc),
		internalAlgorithm:        internalAlg,
		logger:                   crtConf.Logger,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		NumberOfBucketsNeeded:        S.numberOfBucketsNeeded,
		NumberOfBucketsAvailable:     S.numberOfBucketsAvailable,
		NumberOfRecords:              S.nRecords,
		LoadFactorThreshold:          S.loadFactorThreshold,
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// Len - Returns the number of records
func (S *SCTable[K, V]) Len() int64 {
	return S.nRecords
}

// Capacity - Returns the current number of buckets
func (S *SCTable[K, V]) Capacity() int64 {
	return S.numberOfBucketsAvailable
}

// LoadFactor - Returns records divided by the number of buckets
func (S *SCTable[K, V]) LoadFactor() float64 {
	return float64(S.nRecords) / float64(S.numberOfBucketsAvailable)
}

// GetBucket - Returns a bucket with all its records given the bucket number
//   - bucketNo is the identifier of a bucket, between 0 and Capacity() - 1
func (S *SCTable[K, V]) GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBucketsAvailable {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	bucket.BucketAddress = bucketNo
	S.buckets[bucketNo].Range(func(key K, value V) bool {
		bucket.Records = append(bucket.Records, model.Record[K, V]{
			State:         model.RecordOccupied,
			RecordAddress: bucketNo,
			Key:           key,
			Value:         value,
		})
		return true
	})

	return
}

// Find - Gets record that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - record is the matching record if found, RecordAddress holds the bucket number
//   - err is of type crt.NoRecordFound if the key is not in the table
func (S *SCTable[K, V]) Find(key K) (record model.Record[K, V], err error) {
	bucketNo := S.hashAlgorithm.HashFunc1(key)
	node, found := S.buckets[bucketNo].Find(key)
	if !found {
		err = crt.NoRecordFound{}
		return
	}

	record = model.Record[K, V]{
		State:         model.RecordOccupied,
		RecordAddress: bucketNo,
		Key:           node.Key,
		Value:         node.Value,
	}

	return
}

// Insert - Updates an existing record with new data or adds it if no existing is found with same key.
//   - key is the identifier of the record
//   - value is the value to store along with the key
//
// It returns:
//   - inserted is true if a new record was added and false if an existing record was updated
//   - err is a standard error if a triggered resize failed, the record is stored regardless
func (S *SCTable[K, V]) Insert(key K, value V) (inserted bool, err error) {
	bucketNo := S.hashAlgorithm.HashFunc1(key)
	inserted = S.buckets[bucketNo].Insert(key, value)
	if !inserted {
		return
	}

	S.nRecords++
	if S.LoadFactor() > S.loadFactorThreshold {
		err = S.Resize()
	}

	return
}

// Delete - Deletes the record matching key
//
// It returns:
//   - deleted is true if a record was found and deleted, false if there was no such record
func (S *SCTable[K, V]) Delete(key K) (deleted bool) {
	bucketNo := S.hashAlgorithm.HashFunc1(key)
	deleted = S.buckets[bucketNo].DeleteKey(key)
	if deleted {
		S.nRecords--
	}

	return
}

// DeleteRecord - Deletes a record as returned from Find
//
// It returns:
//   - err is of type crt.NoRecordFound if the record is no longer in the table
func (S *SCTable[K, V]) DeleteRecord(record model.Record[K, V]) (err error) {
	if !S.Delete(record.Key) {
		err = crt.NoRecordFound{}
	}

	return
}

// Resize - Doubles the number of buckets and redistributes all records.
// The table is left untouched if the new buckets can't be allocated.
func (S *SCTable[K, V]) Resize() (err error) {
	numberOfBuckets := S.numberOfBucketsAvailable * conf.GrowthFactor

	buckets, err := newBuckets[K, V](numberOfBuckets)
	if err != nil {
		err = fmt.Errorf("error while allocating buckets for resize: %w", err)
		return
	}
	hashAlgorithm := hash.NewSeparateChainingHashAlgorithm(numberOfBuckets, S.hashFunc)

	for _, bucket := range S.buckets {
		bucket.Range(func(key K, value V) bool {
			buckets[hashAlgorithm.HashFunc1(key)].Insert(key, value)
			return true
		})
	}

	S.logger.Debug("resized separate chaining table",
		zap.Int64("fromBuckets", S.numberOfBucketsAvailable),
		zap.Int64("toBuckets", numberOfBuckets),
		zap.Int64("records", S.nRecords),
	)

	S.buckets = buckets
	S.hashAlgorithm = hashAlgorithm
	S.numberOfBucketsAvailable = numberOfBuckets

	return
}

// Reset - Replaces all buckets with empty ones, keeping the number of buckets
//
// It returns:
//   - err is of type crt.AllocationFailure (wrapped) if the new buckets couldn't be allocated, the old ones are then kept
func (S *SCTable[K, V]) Reset() (err error) {
	buckets, err := newBuckets[K, V](S.numberOfBucketsAvailable)
	if err != nil {
		err = fmt.Errorf("error while allocating buckets on reset: %w", err)
		return
	}

	S.buckets = buckets
	S.nRecords = 0

	S.logger.Debug("reset separate chaining table", zap.Int64("buckets", S.numberOfBucketsAvailable))

	return
}

// newBuckets - Allocates n empty linked lists
func newBuckets[K comparable, V any](n int64) (buckets []*linkedlist.LinkedList[K, V], err error) {
	buckets, err = storage.Allocate[*linkedlist.LinkedList[K, V]](n)
	if err != nil {
		return
	}

	for i := range buckets {
		buckets[i] = linkedlist.New[K, V]()
	}

	return
}
