//go:build unit

package openaddressing

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashmap/crt"
	"github.com/gostonefire/hashmap/hashfunc"
	"github.com/gostonefire/hashmap/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"strconv"
	"testing"
)

func newIdentityTable(t *testing.T, buckets int64, threshold float64) *OATable[int, string] {
	oaTable, err := NewOATable[int, string](model.CRTConf[int]{
		NumberOfBucketsNeeded: buckets,
		LoadFactorThreshold:   threshold,
		HashFunc:              hashfunc.Identity[int](),
	})
	assert.NoError(t, err, "create new OATable instance")
	return oaTable
}

func TestNewOATable(t *testing.T) {
	t.Run("creates an OATable with defaults", func(t *testing.T) {
		// Execute
		oaTable, err := NewOATable[int, string](model.CRTConf[int]{})

		// Check
		assert.NoError(t, err, "create new OATable instance")
		assert.Equal(t, int64(100), oaTable.Capacity(), "default number of buckets")
		assert.Equal(t, 0.5, oaTable.loadFactorThreshold, "default load factor threshold")
		assert.Equal(t, int64(100), oaTable.nEmpty, "all buckets empty")
		assert.Len(t, oaTable.records, 100, "records allocated")
		assert.NotNil(t, oaTable.hashAlgorithm, "hash algorithm is assigned")
		assert.True(t, oaTable.internalAlgorithm, "uses internal hash function")
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		// Prepare
		tests := []model.CRTConf[int]{
			{NumberOfBucketsNeeded: -1},
			{LoadFactorThreshold: 1},
			{LoadFactorThreshold: -0.5},
		}

		for i, test := range tests {
			// Execute
			_, err := NewOATable[int, string](test)

			// Check
			assert.Errorf(t, err, "invalid configuration #%d rejected", i)
		}
	})
}

func TestOATable_GetStorageParameters(t *testing.T) {
	t.Run("gets storage parameters", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 10, 0.5)
		_, err := oaTable.Insert(1, "one")
		assert.NoError(t, err, "insert")
		_, err = oaTable.Insert(2, "two")
		assert.NoError(t, err, "insert")
		oaTable.Delete(2)

		// Execute
		sp := oaTable.GetStorageParameters()

		// Check
		assert.Equal(t, crt.LinearProbing, sp.CollisionResolutionTechnique, "correct crt")
		assert.Equal(t, int64(10), sp.NumberOfBucketsNeeded, "buckets needed preserved")
		assert.Equal(t, int64(10), sp.NumberOfBucketsAvailable, "buckets available")
		assert.Equal(t, int64(1), sp.NumberOfRecords, "one record")
		assert.Equal(t, int64(1), sp.NumberOfDeletedRecords, "one tombstone")
		assert.False(t, sp.InternalAlgorithm, "indicates using external hash function")
	})
}

func TestOATable_InsertAndFind(t *testing.T) {
	t.Run("finds inserted records", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable[int, string](model.CRTConf[int]{})
		assert.NoError(t, err, "create new OATable instance")

		// Execute
		for k, v := range map[int]string{1: "one", 2: "two", 3: "three"} {
			inserted, err := oaTable.Insert(k, v)
			assert.NoError(t, err, "insert record")
			assert.True(t, inserted, "insert reports true")
		}

		// Check
		for k, v := range map[int]string{1: "one", 2: "two", 3: "three"} {
			record, err := oaTable.Find(k)
			assert.NoErrorf(t, err, "find key %d", k)
			assert.Equalf(t, v, record.Value, "correct value for key %d", k)
			assert.Equalf(t, model.RecordOccupied, record.State, "occupied record for key %d", k)
		}
		_, err = oaTable.Find(4)
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "key 4 not found")
		assert.Equal(t, int64(3), oaTable.Len(), "three records")
	})

	t.Run("updates an existing key in place", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 100, 0.5)
		_, err := oaTable.Insert(1, "one")
		assert.NoError(t, err, "insert record")

		// Execute
		inserted, err := oaTable.Insert(1, "first")

		// Check
		assert.NoError(t, err, "update record")
		assert.True(t, inserted, "insert reports true")
		record, err := oaTable.Find(1)
		assert.NoError(t, err, "find key")
		assert.Equal(t, "first", record.Value, "value updated")
		assert.Equal(t, int64(1), oaTable.Len(), "count unchanged")
	})

	t.Run("probes past collisions", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 10, 0.5)

		// Execute
		for _, k := range []int{9, 19, 29} {
			_, err := oaTable.Insert(k, strconv.Itoa(k))
			assert.NoError(t, err, "insert record")
		}

		// Check
		for i, k := range []int{9, 19, 29} {
			record, err := oaTable.Find(k)
			assert.NoErrorf(t, err, "find key %d", k)
			assert.Equalf(t, int64((9+i)%10), record.RecordAddress, "key %d in expected bucket", k)
		}
	})
}

func TestOATable_Delete(t *testing.T) {
	t.Run("deletes existing and ignores missing keys", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable[int, string](model.CRTConf[int]{})
		assert.NoError(t, err, "create new OATable instance")
		for k, v := range map[int]string{1: "one", 2: "two", 3: "three"} {
			_, err = oaTable.Insert(k, v)
			assert.NoError(t, err, "insert record")
		}

		// Execute
		deleted := oaTable.Delete(2)

		// Check
		assert.True(t, deleted, "delete key 2")
		_, err = oaTable.Find(2)
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "key 2 not found")
		assert.False(t, oaTable.Delete(4), "delete key 4")
		assert.Equal(t, int64(2), oaTable.Len(), "two records left")
	})

	t.Run("keeps records beyond a tombstone reachable", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 10, 0.5)
		for _, k := range []int{1, 11, 21} {
			_, err := oaTable.Insert(k, strconv.Itoa(k))
			assert.NoError(t, err, "insert record")
		}

		// Execute
		deleted := oaTable.Delete(11)

		// Check
		assert.True(t, deleted, "delete key 11")
		assert.Equal(t, model.RecordDeleted, oaTable.records[2].State, "bucket 2 is a tombstone")
		record, err := oaTable.Find(21)
		assert.NoError(t, err, "find key 21 beyond tombstone")
		assert.Equal(t, "21", record.Value, "correct value")
		assert.Equal(t, int64(3), record.RecordAddress, "key 21 still in bucket 3")
	})

	t.Run("reuses tombstones without duplicating keys", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 10, 0.5)
		for _, k := range []int{1, 11, 21} {
			_, err := oaTable.Insert(k, strconv.Itoa(k))
			assert.NoError(t, err, "insert record")
		}
		oaTable.Delete(11)

		// Execute
		_, err := oaTable.Insert(21, "twenty-one")
		assert.NoError(t, err, "update key 21")
		_, err = oaTable.Insert(31, "31")
		assert.NoError(t, err, "insert key 31")

		// Check
		record, err := oaTable.Find(21)
		assert.NoError(t, err, "find key 21")
		assert.Equal(t, "twenty-one", record.Value, "updated in place")
		assert.Equal(t, int64(3), record.RecordAddress, "not moved into the tombstone")
		record, err = oaTable.Find(31)
		assert.NoError(t, err, "find key 31")
		assert.Equal(t, int64(2), record.RecordAddress, "placed in the tombstone")
		assert.Equal(t, int64(3), oaTable.Len(), "three records")
		assert.Zero(t, oaTable.nDeleted, "tombstone consumed")
	})

	t.Run("deletes a record given from Find", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 10, 0.5)
		_, err := oaTable.Insert(5, "five")
		assert.NoError(t, err, "insert record")
		record, err := oaTable.Find(5)
		assert.NoError(t, err, "find key 5")

		// Execute
		err = oaTable.DeleteRecord(record)

		// Check
		assert.NoError(t, err, "delete record")
		err = oaTable.DeleteRecord(record)
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "stale record not deleted twice")
		err = oaTable.DeleteRecord(model.Record[int, string]{RecordAddress: 42})
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "address out of range")
	})
}

func TestOATable_Resize(t *testing.T) {
	t.Run("doubles when load factor exceeds threshold", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable[int, string](model.CRTConf[int]{})
		assert.NoError(t, err, "create new OATable instance")

		// Execute
		for i := 1; i <= 51; i++ {
			_, err = oaTable.Insert(i, strconv.Itoa(i))
			assert.NoError(t, err, "insert record")
			if i == 50 {
				assert.Equal(t, int64(100), oaTable.Capacity(), "no resize at exactly the threshold")
			}
		}

		// Check
		assert.Equal(t, int64(200), oaTable.Capacity(), "size doubled")
		assert.Equal(t, int64(51), oaTable.Len(), "all records kept")
		for _, k := range []int{49, 34} {
			record, err := oaTable.Find(k)
			assert.NoErrorf(t, err, "find key %d", k)
			assert.Equalf(t, strconv.Itoa(k), record.Value, "value for key %d survived rehash", k)
		}
		assert.InDelta(t, 0.255, oaTable.LoadFactor(), 1e-9, "new load factor")
	})

	t.Run("drops tombstones", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 20, 0.5)
		for i := 1; i <= 10; i++ {
			_, err := oaTable.Insert(i, strconv.Itoa(i))
			assert.NoError(t, err, "insert record")
		}
		for i := 1; i <= 5; i++ {
			assert.True(t, oaTable.Delete(i), "delete record")
		}

		// Execute
		err := oaTable.Resize()

		// Check
		assert.NoError(t, err, "resize")
		assert.Equal(t, int64(40), oaTable.Capacity(), "size doubled")
		assert.Zero(t, oaTable.nDeleted, "no tombstones")
		assert.Equal(t, int64(35), oaTable.nEmpty, "empty buckets")
		for i := 6; i <= 10; i++ {
			record, err := oaTable.Find(i)
			assert.NoErrorf(t, err, "find key %d", i)
			assert.Equalf(t, int64(i), record.RecordAddress, "key %d in its home bucket", i)
		}
	})

	t.Run("logs resize at debug level", func(t *testing.T) {
		// Prepare
		core, logs := observer.New(zapcore.DebugLevel)
		oaTable, err := NewOATable[int, string](model.CRTConf[int]{NumberOfBucketsNeeded: 4, Logger: zap.New(core)})
		assert.NoError(t, err, "create new OATable instance")

		// Execute
		for i := 0; i < 3; i++ {
			_, err = oaTable.Insert(i, fmt.Sprint(i))
			assert.NoError(t, err, "insert record")
		}

		// Check
		entries := logs.FilterMessage("rehashed open addressing table").All()
		assert.Len(t, entries, 1, "one resize logged")
		assert.Equal(t, int64(8), entries[0].ContextMap()["toBuckets"], "logged new size")
	})
}

func TestOATable_Reset(t *testing.T) {
	t.Run("clears all records", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable[int, string](model.CRTConf[int]{})
		assert.NoError(t, err, "create new OATable instance")
		for k, v := range map[int]string{1: "one", 2: "two", 3: "three"} {
			_, err = oaTable.Insert(k, v)
			assert.NoError(t, err, "insert record")
		}
		oaTable.Delete(3)

		// Execute
		err = oaTable.Reset()

		// Check
		assert.NoError(t, err, "reset")
		for _, k := range []int{1, 2, 3} {
			_, err = oaTable.Find(k)
			assert.Truef(t, errors.Is(err, crt.NoRecordFound{}), "key %d not found", k)
		}
		assert.Zero(t, oaTable.Len(), "no records")
		assert.Zero(t, oaTable.nDeleted, "no tombstones")
		assert.Equal(t, int64(100), oaTable.Capacity(), "same size")
	})
}

func TestOATable_Tombstones(t *testing.T) {
	t.Run("rebuilds in place when only tombstones are left", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 4, 0.75)
		for i := 0; i < 3; i++ {
			_, err := oaTable.Insert(i, strconv.Itoa(i))
			assert.NoError(t, err, "insert record")
		}
		for i := 0; i < 3; i++ {
			assert.True(t, oaTable.Delete(i), "delete record")
		}

		// Execute
		_, err := oaTable.Insert(3, "3")

		// Check
		assert.NoError(t, err, "insert into last empty bucket")
		assert.Equal(t, int64(4), oaTable.Capacity(), "same size")
		assert.Zero(t, oaTable.nDeleted, "tombstones purged")
		assert.Equal(t, int64(3), oaTable.nEmpty, "empty buckets restored")
		record, err := oaTable.Find(3)
		assert.NoError(t, err, "find key 3")
		assert.Equal(t, "3", record.Value, "correct value")
	})

	t.Run("terminates search in a table without empty buckets", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 4, 0.5)
		for i := range oaTable.records {
			oaTable.records[i].State = model.RecordDeleted
		}

		// Execute
		_, err := oaTable.Find(1)

		// Check
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "not found after visiting all buckets")
	})

	t.Run("reports a full table", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 4, 0.5)
		for i := range oaTable.records {
			oaTable.records[i] = model.Record[int, string]{State: model.RecordOccupied, Key: i, RecordAddress: int64(i)}
		}

		// Execute
		_, err := oaTable.probingForSet(9)

		// Check
		assert.True(t, errors.Is(err, crt.MapFull{}), "map full")
	})
}

func TestOATable_GetBucket(t *testing.T) {
	t.Run("returns the record of a bucket", func(t *testing.T) {
		// Prepare
		oaTable := newIdentityTable(t, 10, 0.5)
		_, err := oaTable.Insert(7, "seven")
		assert.NoError(t, err, "insert record")

		// Execute
		bucket, err := oaTable.GetBucket(7)

		// Check
		assert.NoError(t, err, "get bucket")
		assert.Len(t, bucket.Records, 1, "one record per bucket")
		assert.Equal(t, "seven", bucket.Records[0].Value, "correct value")
		_, err = oaTable.GetBucket(10)
		assert.Error(t, err, "bucket out of range")
	})
}
