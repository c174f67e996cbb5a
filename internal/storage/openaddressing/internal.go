package openaddressing

import (
	"fmt"

	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/internal/hash"
	"github.com/gostonefire/hashmap/internal/model"
	"github.com/gostonefire/hashmap/internal/storage"
	"go.uber.org/zap"
)

// setBucketRecord - Sets a bucket record in the table
func (Q *OATable[K, V]) setBucketRecord(record model.Record[K, V]) {
	Q.records[record.RecordAddress] = record
}

// updateUtilizationInfo - Updates the empty/occupied/deleted counters given a state transition
func (Q *OATable[K, V]) updateUtilizationInfo(fromState, toState uint8) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.RecordEmpty:
		Q.nEmpty--
	case model.RecordOccupied:
		Q.nOccupied--
	case model.RecordDeleted:
		Q.nDeleted--
	}

	switch toState {
	case model.RecordEmpty:
		Q.nEmpty++
	case model.RecordOccupied:
		Q.nOccupied++
	case model.RecordDeleted:
		Q.nDeleted++
	}
}

// probingForGet - Is the Linear Probing Collision Resolution Technique algorithm for getting a record.
// Tombstones don't end the search since a matching record may have been placed beyond them.
func (Q *OATable[K, V]) probingForGet(key K) (record model.Record[K, V], err error) {
	var probe int64

	hf1Value := Q.hashAlgorithm.HashFunc1(key)

	// Every bucket is visited at most once, which also ends the search in a table without empty buckets
	for i := int64(0); i < Q.numberOfBucketsAvailable; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, i)

		switch Q.records[probe].State {
		case model.RecordEmpty:
			record = model.Record[K, V]{}
			err = crt.NoRecordFound{}
			return

		case model.RecordOccupied:
			if Q.records[probe].Key == key {
				record = Q.records[probe]
				record.RecordAddress = probe
				return
			}
		}
	}

	record = model.Record[K, V]{}
	err = crt.NoRecordFound{}
	return
}

// probingForSet - Is the Linear Probing Collision Resolution Technique algorithm for getting a record for set.
// It returns the occupied record with matching key if there is one, otherwise the first tombstone passed
// or, if none, the empty record that ended the probe sequence.
func (Q *OATable[K, V]) probingForSet(key K) (record model.Record[K, V], err error) {
	var deletedRecord model.Record[K, V]
	var hasCached bool
	var probe int64

	hf1Value := Q.hashAlgorithm.HashFunc1(key)

	for i := int64(0); i < Q.numberOfBucketsAvailable; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, i)

		switch Q.records[probe].State {
		case model.RecordEmpty:
			if hasCached {
				record = deletedRecord
			} else {
				record = Q.records[probe]
				record.RecordAddress = probe
			}
			return

		case model.RecordOccupied:
			if Q.records[probe].Key == key {
				record = Q.records[probe]
				record.RecordAddress = probe
				return
			}

		case model.RecordDeleted:
			if !hasCached {
				deletedRecord = Q.records[probe]
				deletedRecord.RecordAddress = probe
				hasCached = true
			}
		}
	}

	// Whole table traversed without finding an empty bucket
	if hasCached {
		record = deletedRecord
		return
	}

	err = crt.MapFull{}
	return
}

// rehash - Builds a new table with the given number of buckets holding all occupied records and swaps it in.
// Nothing is changed if the allocation fails.
func (Q *OATable[K, V]) rehash(numberOfBuckets int64) (err error) {
	if numberOfBuckets < Q.nOccupied {
		err = fmt.Errorf("can't rehash %d records into %d buckets", Q.nOccupied, numberOfBuckets)
		return
	}

	records, err := storage.Allocate[model.Record[K, V]](numberOfBuckets)
	if err != nil {
		err = fmt.Errorf("error while allocating table for rehash: %w", err)
		return
	}
	hashAlgorithm := hash.NewLinearProbingHashAlgorithm(numberOfBuckets, Q.hashFunc)

	for _, r := range Q.records {
		if r.State == model.RecordOccupied {
			placeRecord(records, hashAlgorithm, r)
		}
	}

	fromBuckets := Q.numberOfBucketsAvailable
	droppedTombstones := Q.nDeleted

	Q.records = records
	Q.hashAlgorithm = hashAlgorithm
	Q.numberOfBucketsAvailable = numberOfBuckets
	Q.nEmpty = numberOfBuckets - Q.nOccupied
	Q.nDeleted = 0

	Q.logger.Debug("rehashed open addressing table",
		zap.Int64("fromBuckets", fromBuckets),
		zap.Int64("toBuckets", numberOfBuckets),
		zap.Int64("records", Q.nOccupied),
		zap.Int64("droppedTombstones", droppedTombstones),
	)

	return
}

// placeRecord - Places a record in the first empty bucket of its probe sequence in a table known to
// contain neither tombstones nor the key already.
func placeRecord[K comparable, V any](records []model.Record[K, V], hashAlgorithm *hash.LinearProbingHashAlgorithm[K], record model.Record[K, V]) {
	hf1Value := hashAlgorithm.HashFunc1(record.Key)
	tableSize := hashAlgorithm.GetTableSize()

	for i := int64(0); i < tableSize; i++ {
		probe := hashAlgorithm.ProbeIteration(hf1Value, i)
		if records[probe].State == model.RecordEmpty {
			record.RecordAddress = probe
			records[probe] = record
			return
		}
	}
}
