package model

import (
	"github.com/gostonefire/hashmap/hashfunc"
	"go.uber.org/zap"
)

// RecordEmpty - State indicating a record that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a record that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a record that has been in use but was deleted
const RecordDeleted uint8 = 2

// Bucket - Represents all records in a bucket (both assigned and still not in use)
type Bucket[K comparable, V any] struct {
	Records       []Record[K, V]
	BucketAddress int64
}

// Record - Represents one record (slot) in a table
type Record[K comparable, V any] struct {
	State         uint8
	RecordAddress int64
	Key           K
	Value         V
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	NumberOfBucketsNeeded        int64
	NumberOfBucketsAvailable     int64
	NumberOfRecords              int64
	NumberOfDeletedRecords       int64
	LoadFactorThreshold          float64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table creation and processing.
//   - NumberOfBucketsNeeded is the initial number of buckets, zero gives conf.DefaultNumberOfBuckets
//   - LoadFactorThreshold is the load factor that, when exceeded, makes the table double, zero gives the technique's default
//   - HashFunc is the hash function to use, nil gives hashfunc.Default
//   - Logger receives debug output on resize and reset, nil gives a no-op logger
type CRTConf[K comparable] struct {
	NumberOfBucketsNeeded int64
	LoadFactorThreshold   float64
	HashFunc              hashfunc.HashFunc[K]
	Logger                *zap.Logger
}
