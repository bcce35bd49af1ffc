package chainmap

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMap_BeginEnd(t *testing.T) {
	t.Run("begin equals end on an empty map", func(t *testing.T) {
		// Prepare
		m := New[int, string]()

		// Check
		assert.Equal(t, m.End(), m.Begin(), "begin is end")
		assert.Equal(t, m.BucketCount(), m.End().Bucket(), "end sits one past the last bucket")
		assert.Equal(t, 0, m.End().Position(), "end position is zero")
	})

	t.Run("begin points at the first occupied slot", func(t *testing.T) {
		// Prepare
		m := New[int, string]()
		m.Insert(1, "a")

		// Execute
		it := m.Begin()

		// Check
		assert.NotEqual(t, m.End(), it, "begin is not end")
		assert.Equal(t, 0, it.Position(), "first slot of its bucket")
		e, err := it.Entry()
		assert.NoError(t, err, "begin dereferences")
		assert.Equal(t, 1, e.Key, "correct entry")
	})
}

func TestIterator_Traversal(t *testing.T) {
	t.Run("visits every entry exactly once", func(t *testing.T) {
		// Prepare
		m := New[int, string]()
		for i := 0; i < 50; i++ {
			m.Insert(i, fmt.Sprintf("value-%d", i))
		}

		// Execute
		visited := make(map[int]int)
		steps := 0
		for it := m.Begin(); it != m.End(); it = it.Next() {
			e, err := it.Entry()
			assert.NoError(t, err, "iterator dereferences")
			visited[e.Key]++
			steps++
		}

		// Check
		assert.Equal(t, m.Len(), steps, "as many steps as entries")
		assert.Equal(t, 50, len(visited), "all keys seen")
		for i := 0; i < 50; i++ {
			assert.Equal(t, 1, visited[i], fmt.Sprintf("key %d visited exactly once", i))
		}
	})

	t.Run("advancing the end iterator is a no-op", func(t *testing.T) {
		// Prepare
		m := New[int, string]()
		m.Insert(1, "a")

		// Execute
		it := m.End().Next()

		// Check
		assert.Equal(t, m.End(), it, "end stays end")
	})
}

func TestIterator_Entry(t *testing.T) {
	t.Run("throws correct error on the zero-value iterator", func(t *testing.T) {
		// Prepare
		var it Iterator[int, string]

		// Execute
		e, err := it.Entry()

		// Check
		assert.Nil(t, e, "no entry")
		var target InvalidIterator
		assert.ErrorAs(t, err, &target, "correct error type")
	})

	t.Run("throws correct error on the end iterator", func(t *testing.T) {
		// Prepare
		m := New[int, string]()
		m.Insert(1, "a")

		// Execute
		e, err := m.End().Entry()

		// Check
		assert.Nil(t, e, "no entry")
		var target InvalidIterator
		assert.ErrorAs(t, err, &target, "correct error type")
	})

	t.Run("throws correct error when the data moved out from under the iterator", func(t *testing.T) {
		// Prepare
		m := New[int, string]()
		m.Insert(1, "a")
		it := m.Begin()

		// Execute
		m.Clear()
		e, err := it.Entry()

		// Check
		assert.Nil(t, e, "no entry")
		var target InvalidIterator
		assert.ErrorAs(t, err, &target, "correct error type")
	})
}

func TestConstIterator(t *testing.T) {
	t.Run("compares equal to the mutable iterator at the same position", func(t *testing.T) {
		// Prepare
		m := New[int, string]()
		m.Insert(1, "a")

		// Check
		assert.Equal(t, m.ConstBegin(), m.Begin().Const(), "begin variants equal")
		assert.Equal(t, m.ConstEnd(), m.End().Const(), "end variants equal")
		assert.True(t, m.Find(1).Const() == m.ConstBegin(), "find and begin reference the same slot")
	})

	t.Run("traverses the same sequence as the mutable iterator", func(t *testing.T) {
		// Prepare
		m := New[int, string]()
		for i := 0; i < 20; i++ {
			m.Insert(i, fmt.Sprintf("value-%d", i))
		}

		// Execute
		visited := make(map[int]string)
		for it := m.ConstBegin(); it != m.ConstEnd(); it = it.Next() {
			key, value, err := it.Entry()
			assert.NoError(t, err, "iterator dereferences")
			visited[key] = value
		}

		// Check
		assert.Equal(t, m.Len(), len(visited), "all entries seen")
		for i := 0; i < 20; i++ {
			assert.Equal(t, fmt.Sprintf("value-%d", i), visited[i], fmt.Sprintf("correct value for key %d", i))
		}
	})

	t.Run("throws correct error on dereferencing the end iterator", func(t *testing.T) {
		// Prepare
		m := New[int, string]()

		// Execute
		_, _, err := m.ConstEnd().Entry()

		// Check
		var target InvalidIterator
		assert.ErrorAs(t, err, &target, "correct error type")
	})
}

func TestMap_BucketScopedIterators(t *testing.T) {
	t.Run("iterates one bucket only", func(t *testing.T) {
		// Prepare - a single bucket holds every entry
		m, err := NewWithConfig[int, string](1, 100)
		assert.NoError(t, err, "creates map")
		m.Insert(1, "a")
		m.Insert(2, "b")
		m.Insert(3, "c")

		// Execute
		begin, err := m.BeginBucket(0)
		assert.NoError(t, err, "begin within range")
		end, err := m.EndBucket(0)
		assert.NoError(t, err, "end within range")

		// Check
		assert.Equal(t, 0, begin.Bucket(), "begin in the bucket")
		assert.Equal(t, 0, begin.Position(), "begin at first slot")
		assert.Equal(t, 0, end.Bucket(), "end in the bucket")
		assert.Equal(t, 3, end.Position(), "end one past the last slot")

		count := 0
		for it := begin; it != end && it.Bucket() == 0; it = it.Next() {
			_, err := it.Entry()
			assert.NoError(t, err, "iterator dereferences")
			count++
		}
		assert.Equal(t, 3, count, "visits the bucket's entries")
	})

	t.Run("returns the map end iterator for an empty bucket", func(t *testing.T) {
		// Prepare
		m := New[int, string]()

		// Execute
		it, err := m.BeginBucket(0)

		// Check
		assert.NoError(t, err, "index within range")
		assert.Equal(t, m.End(), it, "end iterator for empty bucket")
	})

	t.Run("throws correct error when the bucket index is out of range", func(t *testing.T) {
		// Prepare
		m := New[int, string]()

		// Execute
		_, beginErr := m.BeginBucket(m.BucketCount())
		_, endErr := m.EndBucket(m.BucketCount())

		// Check
		var target IndexOutOfRange
		assert.ErrorAs(t, beginErr, &target, "correct error type from BeginBucket")
		assert.ErrorAs(t, endErr, &target, "correct error type from EndBucket")
	})
}
