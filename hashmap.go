package hashmap

import (
	"fmt"

	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/hashfunc"
	"github.com/gostonefire/hashmap/internal/model"
	"github.com/gostonefire/hashmap/internal/storage/openaddressing"
	"github.com/gostonefire/hashmap/internal/storage/separatechaining"
	"go.uber.org/zap"
)

// TableManagement - Interface for any table implementation
type TableManagement[K comparable, V any] interface {
	Find(key K) (record model.Record[K, V], err error)
	Insert(key K, value V) (inserted bool, err error)
	Delete(key K) (deleted bool)
	DeleteRecord(record model.Record[K, V]) (err error)
	Resize() (err error)
	Reset() (err error)
	LoadFactor() float64
	Len() int64
	Capacity() int64
	GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error)
	GetStorageParameters() (params model.StorageParameters)
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - CollisionResolutionTechnique is the technique used, one of crt.SeparateChaining or crt.LinearProbing
//   - NumberOfBuckets is the number of buckets the table started out with
//   - LoadFactorThreshold is the load factor above which the table doubles
//   - InternalAlgorithm is true if the default hash function is used
type HashMapInfo struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	LoadFactorThreshold          float64
	InternalAlgorithm            bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - Buckets is the current number of buckets
//   - DeletedRecords is the number of tombstones (always zero for separate chaining)
//   - LoadFactor is Records divided by Buckets
//   - LongestBucket is the highest number of records found in a single bucket
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	Buckets            int64
	DeletedRecords     int64
	LoadFactor         float64
	LongestBucket      int64
	BucketDistribution []int64
}

// Option - Optional setting given to NewHashMap
type Option func(o *options)

type options struct {
	loadFactorThreshold float64
	logger              *zap.Logger
}

// WithLoadFactorThreshold - Sets the load factor above which the table doubles, the default is 0.5 for
// linear probing and 0.75 for separate chaining
func WithLoadFactorThreshold(threshold float64) Option {
	return func(o *options) {
		o.loadFactorThreshold = threshold
	}
}

// WithLogger - Sets a logger that receives debug output on resize and reset
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// HashMap - The main implementation struct. It is not safe for concurrent use.
type HashMap[K comparable, V any] struct {
	tableManagement              TableManagement[K, V]
	collisionResolutionTechnique int
}

// NewHashMap - Returns a new in memory hash map using the chosen collision resolution technique.
//   - collisionResolutionTechnique is one of crt.SeparateChaining or crt.LinearProbing
//   - initialCapacity is the number of buckets to start with, zero gives the default of 100
//   - hashFunc is an optional custom hash function, nil gives hashfunc.Default
//   - opts are optional settings such as WithLoadFactorThreshold and WithLogger
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashMap[K comparable, V any](
	collisionResolutionTechnique int,
	initialCapacity int64,
	hashFunc hashfunc.HashFunc[K],
	opts ...Option,
) (
	hashMap *HashMap[K, V],
	hashMapInfo HashMapInfo,
	err error,
) {
	// Check if initialCapacity is valid
	if initialCapacity < 0 {
		err = fmt.Errorf("initialCapacity must be zero (for default) or a positive value")
		return
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	crtConf := model.CRTConf[K]{
		NumberOfBucketsNeeded: initialCapacity,
		LoadFactorThreshold:   o.loadFactorThreshold,
		HashFunc:              hashFunc,
		Logger:                o.logger,
	}

	var tm TableManagement[K, V]
	switch collisionResolutionTechnique {
	case crt.SeparateChaining:
		tm, err = separatechaining.NewSCTable[K, V](crtConf)
	case crt.LinearProbing:
		tm, err = openaddressing.NewOATable[K, V](crtConf)
	default:
		err = fmt.Errorf("unsupported collision resolution technique %d", collisionResolutionTechnique)
	}
	if err != nil {
		return
	}

	// Prepare return data
	hashMap = &HashMap[K, V]{
		tableManagement:              tm,
		collisionResolutionTechnique: collisionResolutionTechnique,
	}

	sp := tm.GetStorageParameters()

	hashMapInfo = HashMapInfo{
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		NumberOfBuckets:              sp.NumberOfBucketsAvailable,
		LoadFactorThreshold:          sp.LoadFactorThreshold,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	return
}
