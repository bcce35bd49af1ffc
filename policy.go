package chainmap

import (
	"fmt"
	"math"
)

// LoadFactor - Returns the current load factor, i.e. the average number of entries per bucket
func (M *Map[K, V]) LoadFactor() float64 {
	return float64(M.store.Len()) / float64(M.store.BucketCount())
}

// MaxLoadFactor - Returns the load factor above which an insertion triggers a rehash
func (M *Map[K, V]) MaxLoadFactor() float64 {
	return M.maxLoadFactor
}

// SetMaxLoadFactor - Updates the growth threshold and immediately rehashes to double the
// current bucket count if the new threshold is already exceeded.
//   - maxLoadFactor must be positive
//
// It returns an error of type InvalidConfig if maxLoadFactor is not valid, in which case
// the threshold is left unchanged.
func (M *Map[K, V]) SetMaxLoadFactor(maxLoadFactor float64) (err error) {
	if maxLoadFactor <= 0 {
		err = InvalidConfig{msg: fmt.Sprintf("max load factor must be positive, got %v", maxLoadFactor)}
		return
	}

	M.maxLoadFactor = maxLoadFactor
	M.grow()

	return
}

// Rehash - Rebuilds the bucket array and redistributes every entry by its bucket number
// under the new bucket count. The new count is the requested one, silently raised to
// ceil(entry count / max load factor) whenever the request would violate the load factor
// floor, and never lower than 1. A result equal to the current bucket count makes the
// call a no-op, so shrink requests are silently ignored whenever the floor forbids them.
//
// A rehash invalidates all outstanding iterators into the map. Pointers to entry values
// stay valid since entries are relocated, never recreated.
func (M *Map[K, V]) Rehash(bucketCount int) {
	M.rehash(bucketCount)
}

// grow - Doubles the bucket count whenever the load factor exceeds the maximum.
// Called after every operation that has added an entry.
func (M *Map[K, V]) grow() {
	if M.LoadFactor() > M.maxLoadFactor {
		M.rehash(2 * M.store.BucketCount())
	}
}

// rehash - Applies the load factor floor and the minimum capacity of one bucket to the
// requested count, then resizes the store unless the result equals the current count
func (M *Map[K, V]) rehash(bucketCount int) {
	minRequired := int(math.Ceil(float64(M.store.Len()) / M.maxLoadFactor))
	if bucketCount < minRequired {
		bucketCount = minRequired
	}
	if bucketCount < 1 {
		bucketCount = 1
	}
	if bucketCount == M.store.BucketCount() {
		return
	}

	M.store.Resize(bucketCount)
}
