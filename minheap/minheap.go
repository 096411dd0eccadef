// Package minheap implements an indexed binary min-heap keyed by node
// identity, the priority structure behind Dijkstra-style relaxation.
//
// Unlike container/heap's lazy approach of pushing duplicate entries and
// skipping stale ones on pop, this heap supports a true in-place
// DecreaseKey: a node→slot index map is maintained alongside the dense
// entry array, so lowering a queued node's priority is O(log n) with no
// duplicate entries and Contains/Priority lookups are O(1).
//
// The index map and the entry array must stay consistent after every public
// operation; every slot swap updates the map entries for both affected
// nodes. Percolation is iterative, so heap depth never consumes call stack.
//
// A MinHeap is not safe for concurrent use. Each solver run owns its own
// instance, which is the intended usage.
//
// Errors:
//
//	ErrEmptyHeap    - ExtractMin called on an empty heap.
//	ErrNodeNotFound - DecreaseKey/Priority referenced an absent node.
package minheap

import "errors"

// Sentinel errors for heap misuse. A correct caller (the solver operating on
// a well-formed graph) never triggers these; seeing one surface is a
// programming fault, not a data condition.
var (
	// ErrEmptyHeap indicates ExtractMin was called with no entries present.
	ErrEmptyHeap = errors.New("minheap: extract from empty heap")

	// ErrNodeNotFound indicates the referenced node is not in the heap.
	ErrNodeNotFound = errors.New("minheap: node not found")
)

// entry is one (node, priority) pair stored in the dense heap array.
type entry struct {
	node     int64
	priority int64
}

// MinHeap is an indexed binary min-heap of (node, priority) pairs.
// The zero value is not usable; construct instances with New.
type MinHeap struct {
	entries []entry
	index   map[int64]int // node → slot in entries
}

// New returns an empty MinHeap.
func New() *MinHeap {
	return &MinHeap{index: make(map[int64]int)}
}

// Insert queues the node with the given priority.
// If the node is already present, Insert degrades to DecreaseKey: the stored
// priority is lowered if the new one is strictly smaller, and no duplicate
// entry is ever created. Insert always succeeds.
//
// Complexity: O(log n)
func (h *MinHeap) Insert(node, priority int64) {
	if i, ok := h.index[node]; ok {
		h.decreaseAt(i, priority)

		return
	}

	h.entries = append(h.entries, entry{node: node, priority: priority})
	last := len(h.entries) - 1
	h.index[node] = last
	h.siftUp(last)
}

// ExtractMin removes and returns the entry with the smallest priority.
// Ties are broken arbitrarily. Returns ErrEmptyHeap if no entries remain.
//
// Complexity: O(log n)
func (h *MinHeap) ExtractMin() (node, priority int64, err error) {
	if len(h.entries) == 0 {
		return 0, 0, ErrEmptyHeap
	}

	root := h.entries[0]
	delete(h.index, root.node)

	last := len(h.entries) - 1
	if last == 0 {
		h.entries = h.entries[:0]

		return root.node, root.priority, nil
	}

	// Move the last entry into the vacated root slot and restore order.
	h.entries[0] = h.entries[last]
	h.entries = h.entries[:last]
	h.index[h.entries[0].node] = 0
	h.siftDown(0)

	return root.node, root.priority, nil
}

// DecreaseKey lowers the priority of a queued node in place.
// If newPriority is not strictly smaller than the stored priority, the call
// is a no-op: once queued, a node's priority never increases.
// Returns ErrNodeNotFound if the node is not present.
//
// Complexity: O(log n)
func (h *MinHeap) DecreaseKey(node, newPriority int64) error {
	i, ok := h.index[node]
	if !ok {
		return ErrNodeNotFound
	}

	h.decreaseAt(i, newPriority)

	return nil
}

// decreaseAt applies the monotone priority update to the entry at slot i.
func (h *MinHeap) decreaseAt(i int, newPriority int64) {
	if newPriority >= h.entries[i].priority {
		return
	}

	h.entries[i].priority = newPriority
	h.siftUp(i)
}

// Contains reports whether the node is currently queued.
//
// Complexity: O(1)
func (h *MinHeap) Contains(node int64) bool {
	_, ok := h.index[node]

	return ok
}

// Priority returns the current priority of a queued node.
// Returns ErrNodeNotFound if the node is not present.
//
// Complexity: O(1)
func (h *MinHeap) Priority(node int64) (int64, error) {
	i, ok := h.index[node]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return h.entries[i].priority, nil
}

// Len returns the number of queued entries.
func (h *MinHeap) Len() int { return len(h.entries) }

// IsEmpty reports whether the heap has no entries.
func (h *MinHeap) IsEmpty() bool { return len(h.entries) == 0 }

// Clear removes all entries, retaining allocated capacity.
func (h *MinHeap) Clear() {
	h.entries = h.entries[:0]
	h.index = make(map[int64]int)
}

// siftUp percolates the entry at slot i toward the root until its parent is
// no longer larger. Iterative on purpose: recursion depth would otherwise
// grow with heap height.
func (h *MinHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[i].priority >= h.entries[parent].priority {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown percolates the entry at slot i toward the leaves until neither
// child is smaller.
func (h *MinHeap) siftDown(i int) {
	n := len(h.entries)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i

		if left < n && h.entries[left].priority < h.entries[smallest].priority {
			smallest = left
		}
		if right < n && h.entries[right].priority < h.entries[smallest].priority {
			smallest = right
		}
		if smallest == i {
			return
		}

		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and updates the index map for both nodes.
// The dual bookkeeping here is the whole point of an indexed heap; skipping
// either side would desynchronize DecreaseKey.
func (h *MinHeap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[h.entries[i].node] = i
	h.index[h.entries[j].node] = j
}
