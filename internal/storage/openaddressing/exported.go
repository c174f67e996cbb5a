package openaddressing

import (
	"fmt"

	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/hashfunc"
	"github.com/gostonefire/hashmap/internal/conf"
	"github.com/gostonefire/hashmap/internal/hash"
	"github.com/gostonefire/hashmap/internal/model"
	"github.com/gostonefire/hashmap/internal/storage"
	"go.uber.org/zap"
)

// OATable - Represents an in memory implementation of the Open Addressing Collision Resolution Technique using
// Linear Probing. Each bucket holds exactly one record. In case of a collision it probes the following buckets,
// wrapping at the end of the table, looking for the key or a free slot.
// Deleted records are left as tombstones so that probe sequences running through them stay intact.
// When the share of occupied buckets exceeds the load factor threshold the table doubles in size.
//
// An OATable is not safe for concurrent use, callers must synchronize access themselves.
type OATable[K comparable, V any] struct {
	records                  []model.Record[K, V]
	numberOfBucketsNeeded    int64
	numberOfBucketsAvailable int64
	loadFactorThreshold      float64
	hashFunc                 hashfunc.HashFunc[K]
	hashAlgorithm            *hash.LinearProbingHashAlgorithm[K]
	internalAlgorithm        bool
	logger                   *zap.Logger
	nEmpty                   int64
	nOccupied                int64
	nDeleted                 int64
}

// NewOATable - Returns a pointer to a new instance of an Open Addressing table.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable[K comparable, V any](crtConf model.CRTConf[K]) (oaTable *OATable[K, V], err error) {
	if crtConf.NumberOfBucketsNeeded < 0 {
		err = fmt.Errorf("number of buckets must be a positive value")
		return
	}
	if crtConf.NumberOfBucketsNeeded == 0 {
		crtConf.NumberOfBucketsNeeded = conf.DefaultNumberOfBuckets
	}
	if crtConf.LoadFactorThreshold == 0 {
		crtConf.LoadFactorThreshold = conf.ProbingLoadFactorThreshold
	}
	if crtConf.LoadFactorThreshold < 0 || crtConf.LoadFactorThreshold >= 1 {
		err = fmt.Errorf("load factor threshold must be between 0 and 1 (exclusive), got %v", crtConf.LoadFactorThreshold)
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

	records, err := storage.Allocate[model.Record[K, V]](crtConf.NumberOfBucketsNeeded)
	if err != nil {
		err = fmt.Errorf("error while allocating table: %w", err)
		return
	}

	oaTable = &OATable[K, V]{
		records:                  records,
		numberOfBucketsNeeded:    crtConf.NumberOfBucketsNeeded,
		numberOfBucketsAvailable: crtConf.NumberOfBucketsNeeded,
		loadFactorThreshold:      crtConf.LoadFactorThreshold,
		hashFunc:                 crtConf.HashFunc,
		hashAlgorithm:            hash.NewLinearProbingHashAlgorithm(crtConf.NumberOfBucketsNeeded, crtConf.HashFunc),
		internalAlgorithm:        internalAlg,
		logger:                   crtConf.Logger,
		nEmpty:                   crtConf.NumberOfBucketsNeeded,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		NumberOfBucketsNeeded:        Q.numberOfBucketsNeeded,
		NumberOfBucketsAvailable:     Q.numberOfBucketsAvailable,
		NumberOfRecords:              Q.nOccupied,
		NumberOfDeletedRecords:       Q.nDeleted,
		LoadFactorThreshold:          Q.loadFactorThreshold,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// Len - Returns the number of occupied records
func (Q *OATable[K, V]) Len() int64 {
	return Q.nOccupied
}

// Capacity - Returns the current number of buckets
func (Q *OATable[K, V]) Capacity() int64 {
	return Q.numberOfBucketsAvailable
}

// LoadFactor - Returns occupied records divided by the number of buckets
func (Q *OATable[K, V]) LoadFactor() float64 {
	return float64(Q.nOccupied) / float64(Q.numberOfBucketsAvailable)
}

// GetBucket - Returns a bucket with its record given the bucket number
//   - bucketNo is the identifier of a bucket, between 0 and Capacity() - 1
//
// It returns:
//   - bucket is a model.Bucket struct containing the one record of the bucket
//   - err is standard error
func (Q *OATable[K, V]) GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error) {
	if bucketNo < 0 || bucketNo >= Q.numberOfBucketsAvailable {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	bucket = model.Bucket[K, V]{
		Records:       []model.Record[K, V]{Q.records[bucketNo]},
		BucketAddress: bucketNo,
	}

	return
}

// Find - Gets record that corresponds to the given key.
// The model.Record that is returned contains also the address (bucket number) it came from, this is to speed
// up higher levels functions such as Pop where the same record is also supposed to be deleted in a call to DeleteRecord
//   - key is the identifier of a record
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is of type crt.NoRecordFound if the key is not in the table
func (Q *OATable[K, V]) Find(key K) (record model.Record[K, V], err error) {
	record, err = Q.probingForGet(key)

	return
}

// Insert - Updates an existing record with new data or adds it if no existing is found with same key.
// A new record may make the table exceed its load factor threshold which results in a resize before returning.
//   - key is the identifier of the record
//   - value is the value to store along with the key
//
// It returns:
//   - inserted is always true when the record was stored, also when an existing record was updated
//   - err is a standard error, if something went wrong. A failed resize is reported here even though the record was stored.
func (Q *OATable[K, V]) Insert(key K, value V) (inserted bool, err error) {
	selectedRecord, err := Q.probingForSet(key)
	if err != nil {
		return
	}

	fromState := selectedRecord.State
	selectedRecord.State = model.RecordOccupied
	selectedRecord.Key = key
	selectedRecord.Value = value

	Q.setBucketRecord(selectedRecord)
	Q.updateUtilizationInfo(fromState, selectedRecord.State)
	inserted = true

	if fromState == model.RecordOccupied {
		return
	}

	if Q.LoadFactor() > Q.loadFactorThreshold {
		err = Q.Resize()
	} else if Q.nEmpty == 0 {
		// Only tombstones left to end probe sequences on, rebuild in place
		err = Q.rehash(Q.numberOfBucketsAvailable)
	}

	return
}

// Delete - Deletes the record matching key by turning it into a tombstone
//   - key is the identifier of the record
//
// It returns:
//   - deleted is true if a record was found and deleted, false if there was no such record
func (Q *OATable[K, V]) Delete(key K) (deleted bool) {
	record, err := Q.probingForGet(key)
	if err != nil {
		return
	}

	err = Q.DeleteRecord(record)
	deleted = err == nil

	return
}

// DeleteRecord - Deletes a record by setting state to RecordDeleted
//   - record is the model.Record to mark as deleted, and it must contain RecordAddress as returned from Find
//
// It returns:
//   - err is of type crt.NoRecordFound if the addressed bucket doesn't hold the record
func (Q *OATable[K, V]) DeleteRecord(record model.Record[K, V]) (err error) {
	if record.RecordAddress < 0 || record.RecordAddress >= Q.numberOfBucketsAvailable {
		err = crt.NoRecordFound{}
		return
	}
	current := Q.records[record.RecordAddress]
	if current.State != model.RecordOccupied || current.Key != record.Key {
		err = crt.NoRecordFound{}
		return
	}

	tombstone := model.Record[K, V]{
		State:         model.RecordDeleted,
		RecordAddress: record.RecordAddress,
	}
	Q.setBucketRecord(tombstone)
	Q.updateUtilizationInfo(current.State, tombstone.State)

	return
}

// Resize - Doubles the number of buckets and rehashes all occupied records into the new table.
// Tombstones are dropped in the process. The table is left untouched if the new table can't be allocated.
//
// It returns:
//   - err is of type crt.AllocationFailure (wrapped) if the new table couldn't be allocated
func (Q *OATable[K, V]) Resize() (err error) {
	return Q.rehash(Q.numberOfBucketsAvailable * conf.GrowthFactor)
}

// Reset - Replaces the table with an empty one of the same size
//
// It returns:
//   - err is of type crt.AllocationFailure (wrapped) if the new table couldn't be allocated, the old table is then kept
func (Q *OATable[K, V]) Reset() (err error) {
	records, err := storage.Allocate[model.Record[K, V]](Q.numberOfBucketsAvailable)
	if err != nil {
		err = fmt.Errorf("error while allocating table on reset: %w", err)
		return
	}

	Q.records = records
	Q.nEmpty = Q.numberOfBucketsAvailable
	Q.nOccupied = 0
	Q.nDeleted = 0

	Q.logger.Debug("reset open addressing table", zap.Int64("buckets", Q.numberOfBucketsAvailable))

	return
}
