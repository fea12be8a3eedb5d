package astar

import "container/heap"

// frontierItem is one open cell: its arena index, the F it is ordered by
// and the insertion sequence used to break F ties.
type frontierItem struct {
	idx int
	f   int
	seq uint64
}

// frontier is an indexed min-heap of open cells ordered by (f, seq).
// slot[idx] holds the heap position of arena cell idx, or -1 when the cell
// is not open, which gives O(1) membership and O(log n) decrease-key.
//
// Ties on f go to the earlier insertion. A re-prioritized cell takes a fresh
// sequence number, as if it had been removed and pushed again.
type frontier struct {
	items []frontierItem
	slot  []int
	seq   uint64
}

func newFrontier(cells int) *frontier {
	slot := make([]int, cells)
	for i := range slot {
		slot[i] = -1
	}
	q := &frontier{slot: slot}
	heap.Init(q)

	return q
}

// Len returns the number of open cells.
func (q *frontier) Len() int { return len(q.items) }

// Less orders by f, then by insertion sequence.
func (q *frontier) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// Swap swaps two heap entries and keeps slot in sync.
func (q *frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.slot[q.items[i].idx] = i
	q.slot[q.items[j].idx] = j
}

// Push is called by heap.Push; x must be a frontierItem.
func (q *frontier) Push(x interface{}) {
	it := x.(frontierItem)
	q.slot[it.idx] = len(q.items)
	q.items = append(q.items, it)
}

// Pop is called by heap.Pop and returns the last frontierItem.
func (q *frontier) Pop() interface{} {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	q.slot[it.idx] = -1

	return it
}

func (q *frontier) nextSeq() uint64 {
	q.seq++
	return q.seq
}

// push opens cell idx with priority f. idx must not already be open.
func (q *frontier) push(idx, f int) {
	heap.Push(q, frontierItem{idx: idx, f: f, seq: q.nextSeq()})
}

// popMin removes and returns the open cell with the smallest (f, seq).
func (q *frontier) popMin() int {
	return heap.Pop(q).(frontierItem).idx
}

// contains reports whether cell idx is open.
func (q *frontier) contains(idx int) bool {
	return q.slot[idx] >= 0
}

// update re-prioritizes open cell idx to f by removing and re-inserting it,
// so it also takes a fresh sequence number.
func (q *frontier) update(idx, f int) {
	q.remove(idx)
	q.push(idx, f)
}

// remove drops cell idx from the frontier if it is open.
func (q *frontier) remove(idx int) {
	if i := q.slot[idx]; i >= 0 {
		heap.Remove(q, i)
	}
}
