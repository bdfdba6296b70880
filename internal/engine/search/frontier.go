package search

// entry is a frontier item. Entries are never updated in place; a better
// route pushes a new entry and the old one is skipped when popped.
type entry struct {
	id  int32
	g   float64
	h   float64
	f   float64
	seq uint64
}

// frontier is a binary min-heap of entries for container/heap.
type frontier struct {
	items       []entry
	tieBreaking bool
}

func (q *frontier) Len() int { return len(q.items) }

func (q *frontier) Less(i, j int) bool {
	a, b := &q.items[i], &q.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if q.tieBreaking && a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (q *frontier) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *frontier) Push(x any) { q.items = append(q.items, x.(entry)) }

func (q *frontier) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

func (q *frontier) reset() { q.items = q.items[:0] }
