package hash

import (
	"hash/maphash"
)

// Algorithm - The internally used bucket selection algorithm is implemented using hash/maphash
// over the comparable key with a per-instance random seed, and then applying
// bucket = hash % tableSize to get the bucket number.
// Two Algorithm instances hash the same key differently since each carries its own seed, so
// bucket numbers are only meaningful within the store that owns the instance.
type Algorithm[K comparable] struct {
	seed maphash.Seed
}

// NewAlgorithm - Returns a pointer to a new Algorithm instance with a fresh random seed
func NewAlgorithm[K comparable]() *Algorithm[K] {
	return &Algorithm[K]{seed: maphash.MakeSeed()}
}

// Sum - Given key it generates a 64 bit hash value.
// The value is deterministic for the lifetime of the Algorithm instance.
func (A *Algorithm[K]) Sum(key K) uint64 {
	return maphash.Comparable(A.seed, key)
}

// BucketIndex - Given key it generates an index (bucket) between 0 and tableSize - 1.
// Must never be called with tableSize 0, doing so results in a division by zero panic.
func (A *Algorithm[K]) BucketIndex(key K, tableSize int) int {
	return int(A.Sum(key) % uint64(tableSize))
}
