package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// MapFull - Custom error to inform that the table is full and can't take more records
type MapFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E MapFull) Error() string {
	if E.msg == "" {
		return "map full"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm gave up
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// AllocationFailure - Custom error to inform that a new table could not be allocated
type AllocationFailure struct {
	msg string
}

// Error - Used to notify that a table allocation failed
func (A AllocationFailure) Error() string {
	if A.msg == "" {
		return "table allocation failed"
	}
	return A.msg
}
