package minheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltano/evrange/minheap"
)

func TestExtractMin_EmptyHeap(t *testing.T) {
	h := minheap.New()
	_, _, err := h.ExtractMin()
	assert.ErrorIs(t, err, minheap.ErrEmptyHeap)
}

func TestInsertExtract_Ordering(t *testing.T) {
	h := minheap.New()
	h.Insert(10, 30)
	h.Insert(20, 10)
	h.Insert(30, 20)

	assert.Equal(t, 3, h.Len())

	node, prio, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, int64(20), node)
	assert.Equal(t, int64(10), prio)

	node, prio, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, int64(30), node)
	assert.Equal(t, int64(20), prio)

	node, prio, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, int64(10), node)
	assert.Equal(t, int64(30), prio)

	assert.True(t, h.IsEmpty())
}

func TestInsert_UpsertNoDuplicates(t *testing.T) {
	h := minheap.New()
	h.Insert(1, 50)
	h.Insert(1, 20) // same node: must decrease, not duplicate
	assert.Equal(t, 1, h.Len())

	p, err := h.Priority(1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), p)

	h.Insert(1, 80) // non-decreasing: no-op
	p, err = h.Priority(1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), p)
	assert.Equal(t, 1, h.Len())
}

func TestDecreaseKey(t *testing.T) {
	h := minheap.New()
	h.Insert(1, 10)
	h.Insert(2, 20)
	h.Insert(3, 30)

	// Lower node 3 below everything; it must surface first.
	require.NoError(t, h.DecreaseKey(3, 5))
	node, prio, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, int64(3), node)
	assert.Equal(t, int64(5), prio)

	// Non-decreasing update is a silent no-op.
	require.NoError(t, h.DecreaseKey(2, 20))
	require.NoError(t, h.DecreaseKey(2, 25))
	p, err := h.Priority(2)
	require.NoError(t, err)
	assert.Equal(t, int64(20), p)

	// Absent node fails.
	assert.ErrorIs(t, h.DecreaseKey(42, 1), minheap.ErrNodeNotFound)
}

func TestContains_LifecycleAfterExtract(t *testing.T) {
	h := minheap.New()
	h.Insert(7, 1)
	assert.True(t, h.Contains(7))

	_, _, err := h.ExtractMin()
	require.NoError(t, err)
	assert.False(t, h.Contains(7))

	_, err = h.Priority(7)
	assert.ErrorIs(t, err, minheap.ErrNodeNotFound)
}

func TestClear(t *testing.T) {
	h := minheap.New()
	h.Insert(1, 1)
	h.Insert(2, 2)

	h.Clear()

	assert.True(t, h.IsEmpty())
	assert.False(t, h.Contains(1))
	h.Insert(1, 9) // usable after Clear
	assert.Equal(t, 1, h.Len())
}

// TestRandomizedContract drives the heap through a seeded random workload of
// inserts and decreases, then verifies ExtractMin drains entries in exactly
// sorted order with priorities matching a shadow map.
func TestRandomizedContract(t *testing.T) {
	const nodes = 500

	r := rand.New(rand.NewSource(1))
	h := minheap.New()
	shadow := make(map[int64]int64)

	for i := 0; i < 5000; i++ {
		node := int64(r.Intn(nodes))
		prio := int64(r.Intn(10000))

		h.Insert(node, prio)
		cur, seen := shadow[node]
		if !seen || prio < cur {
			shadow[node] = prio
		}
	}

	require.Equal(t, len(shadow), h.Len())

	// Expected drain order: priorities ascending.
	want := make([]int64, 0, len(shadow))
	for _, p := range shadow {
		want = append(want, p)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	for i, wp := range want {
		node, prio, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, wp, prio, "extraction %d out of order", i)
		require.Equal(t, shadow[node], prio, "node %d drained with stale priority", node)
		require.False(t, h.Contains(node))
	}
	assert.True(t, h.IsEmpty())
}
