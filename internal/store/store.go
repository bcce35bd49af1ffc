package store

import (
	"github.com/gostonefire/chainmap/internal/hash"
)

// Entry - A key together with its value.
// Every Entry is individually heap allocated and exclusively owned by one bucket slot in
// one Store. A resize relocates the pointer into a new bucket, it never recreates the
// entry, hence pointers to an entry (or its value) stay valid across a resize.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Store - Bucket storage for the Separate Chaining Collision Resolution Technique.
// It holds an ordered sequence of buckets where each bucket is an ordered sequence of
// owned entries. The store has no growth policy of its own, it places entries where the
// bucket selection algorithm points and leaves deciding when to resize to the caller.
type Store[K comparable, V any] struct {
	buckets    [][]*Entry[K, V]
	entryCount int
	algorithm  *hash.Algorithm[K]
}

// NewStore - Returns a pointer to a new Store instance with the given number of buckets.
//   - bucketCount is the number of buckets to allocate, it must be higher than 0 (zero)
func NewStore[K comparable, V any](bucketCount int) *Store[K, V] {
	return &Store[K, V]{
		buckets:   make([][]*Entry[K, V], bucketCount),
		algorithm: hash.NewAlgorithm[K](),
	}
}

// Len - Returns the total number of entries over all buckets
func (S *Store[K, V]) Len() int {
	return S.entryCount
}

// BucketCount - Returns the number of buckets
func (S *Store[K, V]) BucketCount() int {
	return len(S.buckets)
}

// BucketLen - Returns the number of entries in bucket bucketNo.
// The caller is responsible for bucketNo being within range.
func (S *Store[K, V]) BucketLen(bucketNo int) int {
	return len(S.buckets[bucketNo])
}

// Index - Returns the bucket number the given key belongs to under the current bucket count
func (S *Store[K, V]) Index(key K) int {
	return S.algorithm.BucketIndex(key, len(S.buckets))
}

// Get - Returns a pointer to the entry holding the given key, or nil if the key is not present
func (S *Store[K, V]) Get(key K) *Entry[K, V] {
	for _, e := range S.buckets[S.Index(key)] {
		if e.Key == key {
			return e
		}
	}

	return nil
}

// Find - Returns the position of the entry holding the given key.
// It returns:
//   - bucketNo is the bucket the entry resides in
//   - pos is the position within that bucket
//   - ok is false if the key is not present, in which case bucketNo and pos are zero
func (S *Store[K, V]) Find(key K) (bucketNo int, pos int, ok bool) {
	n := S.Index(key)
	for i, e := range S.buckets[n] {
		if e.Key == key {
			bucketNo = n
			pos = i
			ok = true
			return
		}
	}

	return
}

// EntryAt - Returns a pointer to the entry at the given position, or nil if the
// position is out of range
func (S *Store[K, V]) EntryAt(bucketNo, pos int) *Entry[K, V] {
	if bucketNo < 0 || bucketNo >= len(S.buckets) {
		return nil
	}
	if pos < 0 || pos >= len(S.buckets[bucketNo]) {
		return nil
	}

	return S.buckets[bucketNo][pos]
}

// Append - Allocates a new owned entry for the given key and value and appends it to the
// bucket the key hashes to. It does not check whether the key is already present, that is
// the caller's responsibility (a duplicate append would break the uniqueness invariant).
func (S *Store[K, V]) Append(key K, value V) *Entry[K, V] {
	n := S.Index(key)
	e := &Entry[K, V]{Key: key, Value: value}
	S.buckets[n] = append(S.buckets[n], e)
	S.entryCount++

	return e
}

// Remove - Destroys the entry at the given position using swap-with-back: the bucket's
// last entry is moved into the vacated slot and the bucket shrinks by one. This reorders
// the bucket whenever the removed entry was not the last one.
// The caller is responsible for the position being within range.
func (S *Store[K, V]) Remove(bucketNo, pos int) {
	b := S.buckets[bucketNo]
	last := len(b) - 1
	if pos != last {
		b[pos] = b[last]
	}
	b[last] = nil
	S.buckets[bucketNo] = b[:last]
	S.entryCount--
}

// RemoveKey - Removes the entry holding the given key, using the same swap-with-back
// mechanism as Remove.
// It returns 1 if an entry was removed, 0 if the key was not present.
func (S *Store[K, V]) RemoveKey(key K) int {
	if bucketNo, pos, ok := S.Find(key); ok {
		S.Remove(bucketNo, pos)
		return 1
	}

	return 0
}

// Clear - Destroys every entry in every bucket. The bucket count is unchanged.
func (S *Store[K, V]) Clear() {
	for i := range S.buckets {
		S.buckets[i] = nil
	}
	S.entryCount = 0
}

// Resize - Rebuilds the bucket array to the given size and redistributes every entry by
// recomputing its bucket number against the new bucket count. Entries are relocated by
// pointer, never recreated.
//   - bucketCount is the new number of buckets, it must be higher than 0 (zero)
func (S *Store[K, V]) Resize(bucketCount int) {
	oldBuckets := S.buckets
	S.buckets = make([][]*Entry[K, V], bucketCount)

	for _, b := range oldBuckets {
		for _, e := range b {
			n := S.Index(e.Key)
			S.buckets[n] = append(S.buckets[n], e)
		}
	}
}

// Clone - Returns a pointer to a deep copy of the store. Every entry is duplicated with
// independent ownership. The clone shares the bucket selection seed with the original so
// both place the same keys in the same bucket numbers, which lets the clone reproduce the
// original's bucket layout position by position.
func (S *Store[K, V]) Clone() *Store[K, V] {
	clone := &Store[K, V]{
		buckets:    make([][]*Entry[K, V], len(S.buckets)),
		entryCount: S.entryCount,
		algorithm:  S.algorithm,
	}

	for i, b := range S.buckets {
		if len(b) == 0 {
			continue
		}
		nb := make([]*Entry[K, V], len(b))
		for j, e := range b {
			nb[j] = &Entry[K, V]{Key: e.Key, Value: e.Value}
		}
		clone.buckets[i] = nb
	}

	return clone
}
