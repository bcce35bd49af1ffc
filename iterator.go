package chainmap

import (
	"fmt"
)

// Iterator - A cursor referencing a (bucket, position) pair within one map. It produces
// entries in bucket order, independent of insertion order.
//
// An iterator is only valid as long as the map's bucket topology is unchanged: any
// rehash (including one triggered by an insertion), Clear or Move invalidates every
// outstanding iterator, as does a swap-with-back removal within the bucket the iterator
// points into. Iterators are plain values and can be compared with ==.
type Iterator[K comparable, V any] struct {
	m        *Map[K, V]
	bucketNo int
	pos      int
}

// Bucket - Returns the bucket number the iterator currently references
func (I Iterator[K, V]) Bucket() int {
	return I.bucketNo
}

// Position - Returns the position within the bucket the iterator currently references
func (I Iterator[K, V]) Position() int {
	return I.pos
}

// Entry - Returns a pointer to the entry the iterator points at.
// It returns an error of type InvalidIterator if the iterator has no map or if its
// position no longer references an entry, which catches use after erase and use after
// rehash rather than handing out undefined data.
func (I Iterator[K, V]) Entry() (entry *Entry[K, V], err error) {
	if I.m == nil {
		err = InvalidIterator{msg: "iterator is not associated with a map"}
		return
	}

	entry = I.m.store.EntryAt(I.bucketNo, I.pos)
	if entry == nil {
		err = InvalidIterator{msg: fmt.Sprintf("iterator position (bucket %d, entry %d) is out of range", I.bucketNo, I.pos)}
		return
	}

	return
}

// Next - Returns an iterator advanced to the next entry: the next position within the
// current bucket if one exists, otherwise the first entry of the next non-empty bucket.
// Advancing the end iterator, or one whose bucket number is out of range, returns the
// iterator unchanged.
func (I Iterator[K, V]) Next() Iterator[K, V] {
	if I.m == nil || I.bucketNo < 0 || I.bucketNo >= I.m.store.BucketCount() {
		return I
	}

	next := Iterator[K, V]{m: I.m, bucketNo: I.bucketNo, pos: I.pos + 1}

	// Still in the same bucket
	if next.pos < I.m.store.BucketLen(next.bucketNo) {
		return next
	}

	// Otherwise move on, skipping empty buckets
	next.bucketNo++
	for next.bucketNo < I.m.store.BucketCount() && I.m.store.BucketLen(next.bucketNo) == 0 {
		next.bucketNo++
	}
	next.pos = 0

	return next
}

// Const - Returns the read-only view of the iterator. The view references the same
// (map, bucket, position), so it compares equal to any ConstIterator obtained from an
// iterator at the same position.
func (I Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{cur: I}
}

// ConstIterator - The read-only variant of Iterator. It traverses the same way but hands
// out copies of key and value instead of a pointer into the map.
type ConstIterator[K comparable, V any] struct {
	cur Iterator[K, V]
}

// Bucket - Returns the bucket number the iterator currently references
func (C ConstIterator[K, V]) Bucket() int {
	return C.cur.bucketNo
}

// Position - Returns the position within the bucket the iterator currently references
func (C ConstIterator[K, V]) Position() int {
	return C.cur.pos
}

// Entry - Returns copies of the key and value of the entry the iterator points at.
// It returns an error of type InvalidIterator under the same conditions as Iterator.Entry.
func (C ConstIterator[K, V]) Entry() (key K, value V, err error) {
	e, err := C.cur.Entry()
	if err != nil {
		return
	}

	key = e.Key
	value = e.Value

	return
}

// Next - Returns an iterator advanced to the next entry, with the same semantics as
// Iterator.Next
func (C ConstIterator[K, V]) Next() ConstIterator[K, V] {
	return ConstIterator[K, V]{cur: C.cur.Next()}
}

// Begin - Returns an iterator positioned on the first entry of the first non-empty
// bucket, or the end iterator if the map is empty
func (M *Map[K, V]) Begin() Iterator[K, V] {
	for n := 0; n < M.store.BucketCount(); n++ {
		if M.store.BucketLen(n) > 0 {
			return Iterator[K, V]{m: M, bucketNo: n}
		}
	}

	return M.End()
}

// End - Returns the sentinel iterator one past the last entry, with bucket number equal
// to the current bucket count
func (M *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: M, bucketNo: M.store.BucketCount()}
}

// ConstBegin - Returns the read-only counterpart of Begin
func (M *Map[K, V]) ConstBegin() ConstIterator[K, V] {
	return M.Begin().Const()
}

// ConstEnd - Returns the read-only counterpart of End
func (M *Map[K, V]) ConstEnd() ConstIterator[K, V] {
	return M.End().Const()
}

// BeginBucket - Returns an iterator positioned on the first entry of bucket bucketNo,
// restricting iteration to that one bucket when stepped against EndBucket. An empty
// bucket yields the map's end iterator.
//   - bucketNo must be less than the current bucket count
//
// It returns:
//   - it is the iterator
//   - err is an error of type IndexOutOfRange if bucketNo is not within range
func (M *Map[K, V]) BeginBucket(bucketNo int) (it Iterator[K, V], err error) {
	if bucketNo < 0 || bucketNo >= M.store.BucketCount() {
		err = IndexOutOfRange{msg: fmt.Sprintf("bucket index %d out of range, bucket count is %d", bucketNo, M.store.BucketCount())}
		return
	}

	if M.store.BucketLen(bucketNo) == 0 {
		it = M.End()
		return
	}

	it = Iterator[K, V]{m: M, bucketNo: bucketNo}

	return
}

// EndBucket - Returns the sentinel iterator one past the last entry of bucket bucketNo.
//   - bucketNo must be less than the current bucket count
//
// It returns:
//   - it is the iterator
//   - err is an error of type IndexOutOfRange if bucketNo is not within range
func (M *Map[K, V]) EndBucket(bucketNo int) (it Iterator[K, V], err error) {
	if bucketNo < 0 || bucketNo >= M.store.BucketCount() {
		err = IndexOutOfRange{msg: fmt.Sprintf("bucket index %d out of range, bucket count is %d", bucketNo, M.store.BucketCount())}
		return
	}

	it = Iterator[K, V]{m: M, bucketNo: bucketNo, pos: M.store.BucketLen(bucketNo)}

	return
}
