// Package chainmap implements a generic in-memory hash map using open hashing with
// separate chaining. Keys are hashed into a fixed set of buckets, each bucket holding an
// ordered sequence of owned entries, and the bucket array doubles automatically when the
// load factor exceeds a configurable maximum.
//
// The map is not safe for concurrent use. Erasing an entry moves the bucket's last entry
// into the vacated slot, so the order of entries within a bucket is not guaranteed and
// must not be relied upon.
package chainmap

import (
	"fmt"
	"github.com/gostonefire/chainmap/internal/store"
)

const (
	// DefaultCapacity - The number of buckets a map created by New starts out with
	DefaultCapacity = 32
	// DefaultMaxLoadFactor - The growth threshold used unless one is given in NewWithConfig
	// or set through SetMaxLoadFactor
	DefaultMaxLoadFactor = 0.75
)

// Entry - A key together with its value, exclusively owned by the map holding it.
// Pointers to an entry's value stay valid across a rehash since entries are relocated,
// never recreated. They are invalidated by erasure of that entry and by Clear or Move.
type Entry[K comparable, V any] = store.Entry[K, V]

// Map - The main implementation struct. It owns a sequence of buckets, each holding the
// entries whose keys hash to that bucket number, and grows the bucket array whenever an
// insertion pushes the load factor above the maximum.
type Map[K comparable, V any] struct {
	store         *store.Store[K, V]
	maxLoadFactor float64
}

// New - Returns a map with the default capacity of 32 buckets and default max load
// factor of 0.75
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		store:         store.NewStore[K, V](DefaultCapacity),
		maxLoadFactor: DefaultMaxLoadFactor,
	}
}

// NewWithCapacity - Returns a map with the given initial number of buckets and the
// default max load factor of 0.75.
//   - capacity is the initial number of buckets, it must be a positive value higher than 0 (zero)
//
// It returns:
//   - m is a pointer to a Map struct
//   - err is an error of type InvalidConfig if capacity is not valid
func NewWithCapacity[K comparable, V any](capacity int) (m *Map[K, V], err error) {
	return NewWithConfig[K, V](capacity, DefaultMaxLoadFactor)
}

// NewWithConfig - Returns a map with the given initial number of buckets and max load factor.
//   - capacity is the initial number of buckets, it must be a positive value higher than 0 (zero)
//   - maxLoadFactor is the load factor above which an insertion triggers a rehash, it must be positive
//
// It returns:
//   - m is a pointer to a Map struct
//   - err is an error of type InvalidConfig if either argument is not valid
func NewWithConfig[K comparable, V any](capacity int, maxLoadFactor float64) (m *Map[K, V], err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = InvalidConfig{msg: fmt.Sprintf("capacity must be a positive value higher than 0 (zero), got %d", capacity)}
		return
	}

	// Check if maxLoadFactor is valid
	if maxLoadFactor <= 0 {
		err = InvalidConfig{msg: fmt.Sprintf("max load factor must be positive, got %v", maxLoadFactor)}
		return
	}

	m = &Map[K, V]{
		store:         store.NewStore[K, V](capacity),
		maxLoadFactor: maxLoadFactor,
	}

	return
}

// Len - Returns the number of entries in the map
func (M *Map[K, V]) Len() int {
	return M.store.Len()
}

// Empty - Returns true if the map holds no entries
func (M *Map[K, V]) Empty() bool {
	return M.store.Len() == 0
}

// Clear - Destroys every entry in every bucket and resets the entry count to 0 (zero).
// The bucket count is unchanged. All outstanding iterators and value pointers into the
// map are invalidated.
func (M *Map[K, V]) Clear() {
	M.store.Clear()
}

// Clone - Returns a deep copy of the map. Every entry is duplicated with independent
// lifetime, so mutations of the clone never affect the original and vice versa. The max
// load factor carries over to the clone.
func (M *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		store:         M.store.Clone(),
		maxLoadFactor: M.maxLoadFactor,
	}
}

// Move - Transfers the bucket storage and counters to the returned map, leaving the
// receiver as an empty map with a single bucket and its max load factor retained.
// The receiver stays fully usable, though it starts over with the minimal capacity and a
// fresh hash seed. All outstanding iterators and value pointers into the receiver keep
// referring to the moved entries and must be considered invalid for the receiver.
func (M *Map[K, V]) Move() *Map[K, V] {
	moved := &Map[K, V]{
		store:         M.store,
		maxLoadFactor: M.maxLoadFactor,
	}
	M.store = store.NewStore[K, V](1)

	return moved
}

// BucketCount - Returns the current number of buckets
func (M *Map[K, V]) BucketCount() int {
	return M.store.BucketCount()
}

// Bucket - Returns the bucket number where an entry with the given key is or would be stored
func (M *Map[K, V]) Bucket(key K) int {
	return M.store.Index(key)
}

// BucketSize - Returns the number of entries currently in bucket bucketNo.
//   - bucketNo must be less than the current bucket count
//
// It returns:
//   - size is the number of entries in the bucket
//   - err is an error of type IndexOutOfRange if bucketNo is not within range
func (M *Map[K, V]) BucketSize(bucketNo int) (size int, err error) {
	if bucketNo < 0 || bucketNo >= M.store.BucketCount() {
		err = IndexOutOfRange{msg: fmt.Sprintf("bucket index %d out of range, bucket count is %d", bucketNo, M.store.BucketCount())}
		return
	}

	size = M.store.BucketLen(bucketNo)

	return
}
