package hashmap

import "github.com/gostonefire/hashmap/crt"

// NoRecordFound - Returned when a key is not in the hash map, same as crt.NoRecordFound
type NoRecordFound = crt.NoRecordFound

// AllocationFailure - Returned when a table couldn't be allocated on reset or resize, same as crt.AllocationFailure
type AllocationFailure = crt.AllocationFailure
