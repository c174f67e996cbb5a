package hashmap

import (
	"github.com/gostonefire/hashmap/internal/model"
)

// Records - Is used to iterate over the records of a hash map one by one.
type Records[K comparable, V any] struct {
	tableManagement TableManagement[K, V]
	bucketNo        int64
	pending         []model.Record[K, V]
}

// newRecords - Returns a pointer to a new Records struct
func newRecords[K comparable, V any](tableManagement TableManagement[K, V]) *Records[K, V] {

	return &Records[K, V]{
		tableManagement: tableManagement,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records[K, V]) HasNext() bool {
	R.fill()
	return len(R.pending) > 0
}

// Next - Returns the next key and value.
// It returns:
//   - key and value of the next record.
//   - err is of type NoRecordFound if there are no more records when calling this function.
func (R *Records[K, V]) Next() (key K, value V, err error) {
	R.fill()
	if len(R.pending) == 0 {
		err = NoRecordFound{}
		return
	}

	key = R.pending[0].Key
	value = R.pending[0].Value
	R.pending = R.pending[1:]

	return
}

// fill - Reads buckets until there is at least one pending record or all buckets have been read
func (R *Records[K, V]) fill() {
	for len(R.pending) == 0 && R.bucketNo < R.tableManagement.Capacity() {
		bucket, err := R.tableManagement.GetBucket(R.bucketNo)
		R.bucketNo++
		if err != nil {
			continue
		}

		for _, record := range bucket.Records {
			if record.State == model.RecordOccupied {
				R.pending = append(R.pending, record)
			}
		}
	}
}
