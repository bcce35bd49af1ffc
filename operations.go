package chainmap

// Insert - Updates an existing entry with a new value or adds a new entry if no existing
// is found with the same key. Adding a new entry may trigger a rehash, which doubles the
// bucket count and invalidates all outstanding iterators. Updating never does.
func (M *Map[K, V]) Insert(key K, value V) {
	if e := M.store.Get(key); e != nil {
		e.Value = value
		return
	}

	M.store.Append(key, value)
	M.grow()
}

// At - Returns a pointer to the value held under the given key. The pointer stays valid
// across a rehash but not across erasure of the entry or Clear/Move of the map.
//
// It returns:
//   - value is a pointer to the value of the matching entry
//   - err is an error of type KeyNotFound if the key is not present
func (M *Map[K, V]) At(key K) (value *V, err error) {
	e := M.store.Get(key)
	if e == nil {
		err = KeyNotFound{}
		return
	}

	value = &e.Value

	return
}

// Ref - Returns a pointer to the value held under the given key, inserting a new entry
// with the zero value first if the key is not present. The insertion may trigger a
// rehash as a side effect of the lookup; the returned pointer is valid either way.
func (M *Map[K, V]) Ref(key K) *V {
	e := M.store.Get(key)
	if e == nil {
		var zero V
		e = M.store.Append(key, zero)
		M.grow()
	}

	return &e.Value
}

// Find - Returns an iterator positioned on the entry holding the given key, or the end
// iterator if the key is not present
func (M *Map[K, V]) Find(key K) Iterator[K, V] {
	if bucketNo, pos, ok := M.store.Find(key); ok {
		return Iterator[K, V]{m: M, bucketNo: bucketNo, pos: pos}
	}

	return M.End()
}

// Contains - Returns true if the map holds an entry with the given key
func (M *Map[K, V]) Contains(key K) bool {
	return M.store.Get(key) != nil
}

// Count - Returns the number of entries with the given key, which due to key uniqueness
// is always 1 or 0 (zero)
func (M *Map[K, V]) Count(key K) int {
	if M.store.Get(key) != nil {
		return 1
	}

	return 0
}

// Erase - Removes the entry with the given key. The removal is done by moving the
// bucket's last entry into the vacated slot, so remaining entries within that bucket may
// be reordered.
// It returns 1 if an entry was removed, 0 if the key was not present.
func (M *Map[K, V]) Erase(key K) int {
	return M.store.RemoveKey(key)
}

// EraseAt - Removes the entry the given iterator points at, using the same
// swap-with-back mechanism as Erase.
//
// It returns an iterator to the entry following the removed one, defined as: if another
// entry was swapped into the vacated slot the returned iterator points at that slot
// (i.e. at the relocated former-last entry of the bucket), otherwise it points at the
// first entry of the next non-empty bucket, or is the end iterator when no entries
// remain. A loop erasing while iterating therefore neither skips nor revisits any entry
// other than the relocated one.
//
// If pos belongs to another map or no longer points at an entry, nothing is removed and
// the end iterator is returned.
func (M *Map[K, V]) EraseAt(pos Iterator[K, V]) Iterator[K, V] {
	// Validate iterator
	if pos.m != M {
		return M.End()
	}
	if M.store.EntryAt(pos.bucketNo, pos.pos) == nil {
		return M.End()
	}

	M.store.Remove(pos.bucketNo, pos.pos)

	// Next entry in the same bucket (the relocated one, when a swap happened)
	if pos.pos < M.store.BucketLen(pos.bucketNo) {
		return Iterator[K, V]{m: M, bucketNo: pos.bucketNo, pos: pos.pos}
	}

	// Otherwise the first entry of the next non-empty bucket
	for n := pos.bucketNo + 1; n < M.store.BucketCount(); n++ {
		if M.store.BucketLen(n) > 0 {
			return Iterator[K, V]{m: M, bucketNo: n}
		}
	}

	return M.End()
}
