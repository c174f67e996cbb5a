package conf

// DefaultNumberOfBuckets - Number of buckets a table starts out with unless told otherwise
const DefaultNumberOfBuckets int64 = 100

// ProbingLoadFactorThreshold - Load factor above which an open addressing table doubles
const ProbingLoadFactorThreshold float64 = 0.5

// ChainingLoadFactorThreshold - Load factor above which a separate chaining table doubles
const ChainingLoadFactorThreshold float64 = 0.75

// GrowthFactor - Factor by which the number of buckets is multiplied on resize
const GrowthFactor int64 = 2
