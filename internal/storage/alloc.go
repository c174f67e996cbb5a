package storage

import (
	"fmt"

	"github.com/gostonefire/hashmap/crt"
)

// Allocate - Returns a new zeroed slice of length n. A request that the runtime refuses (negative or
// too large length) is reported as crt.AllocationFailure instead of panicking.
// Note that a true out of memory condition is fatal in Go and can't be recovered here.
func Allocate[T any](n int64) (s []T, err error) {
	if n <= 0 {
		err = crt.AllocationFailure{}
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%w: %v", crt.AllocationFailure{}, r)
		}
	}()

	s = make([]T, n)

	return
}
