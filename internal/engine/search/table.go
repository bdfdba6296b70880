package search

import (
	"math"

	"go.trai.ch/pathforge/internal/core/ports"
)

const noParent int32 = -1

// record is the per-node search state.
type record struct {
	g      float64
	parent int32
	stamp  uint32
	closed bool
}

// nodeTable maps nodes to dense ids and holds their records.
// Pointers returned by at stay valid until the next acquire.
type nodeTable[N comparable] interface {
	// lookup returns the id of n if n was reached since the last reset.
	lookup(n N) (int32, bool)
	// acquire returns the id of n, creating a fresh record with g = +Inf if needed.
	// It reports false for nodes the table cannot address.
	acquire(n N) (int32, bool)
	at(id int32) *record
	node(id int32) N
	reset()
	// size bounds the number of records, used to guard parent walks.
	size() int
}

// tableFor returns a table suited to g, reusing prev when it still fits.
func tableFor[N comparable](g ports.Graph[N], prev nodeTable[N]) nodeTable[N] {
	if ix, ok := g.(ports.Indexer[N]); ok && ix.NodeCount() <= math.MaxInt32 {
		if d, ok := prev.(*denseTable[N]); ok && d.count == ix.NodeCount() {
			d.index = ix
			return d
		}
		return newDenseTable(ix)
	}
	if m, ok := prev.(*mapTable[N]); ok {
		return m
	}
	return newMapTable[N]()
}

const (
	pageBits = 8
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

// denseTable keeps records in lazily allocated pages indexed by ports.Indexer.
// reset is O(1): records from older generations read as unreached.
type denseTable[N comparable] struct {
	index ports.Indexer[N]
	count int
	pages [][]record
	gen   uint32
}

func newDenseTable[N comparable](ix ports.Indexer[N]) *denseTable[N] {
	count := ix.NodeCount()
	return &denseTable[N]{
		index: ix,
		count: count,
		pages: make([][]record, (count+pageSize-1)/pageSize),
		gen:   1,
	}
}

func (t *denseTable[N]) lookup(n N) (int32, bool) {
	i := t.index.NodeIndex(n)
	if i < 0 || i >= t.count {
		return noParent, false
	}
	p := t.pages[i>>pageBits]
	if p == nil || p[i&pageMask].stamp != t.gen {
		return noParent, false
	}
	return int32(i), true
}

func (t *denseTable[N]) acquire(n N) (int32, bool) {
	i := t.index.NodeIndex(n)
	if i < 0 || i >= t.count {
		return noParent, false
	}
	p := t.pages[i>>pageBits]
	if p == nil {
		p = make([]record, pageSize)
		t.pages[i>>pageBits] = p
	}
	rec := &p[i&pageMask]
	if rec.stamp != t.gen {
		*rec = record{g: math.Inf(1), parent: noParent, stamp: t.gen}
	}
	return int32(i), true
}

func (t *denseTable[N]) at(id int32) *record {
	return &t.pages[id>>pageBits][id&pageMask]
}

func (t *denseTable[N]) node(id int32) N {
	return t.index.NodeAt(int(id))
}

func (t *denseTable[N]) reset() {
	t.gen++
	if t.gen == 0 {
		for i := range t.pages {
			t.pages[i] = nil
		}
		t.gen = 1
	}
}

func (t *denseTable[N]) size() int { return t.count }

// mapTable assigns ids in discovery order for worlds without dense indexing.
type mapTable[N comparable] struct {
	ids   map[N]int32
	nodes []N
	recs  []record
}

func newMapTable[N comparable]() *mapTable[N] {
	return &mapTable[N]{ids: make(map[N]int32)}
}

func (t *mapTable[N]) lookup(n N) (int32, bool) {
	id, ok := t.ids[n]
	return id, ok
}

func (t *mapTable[N]) acquire(n N) (int32, bool) {
	if id, ok := t.ids[n]; ok {
		return id, true
	}
	if len(t.recs) >= math.MaxInt32 {
		return noParent, false
	}
	id := int32(len(t.recs))
	t.ids[n] = id
	t.nodes = append(t.nodes, n)
	t.recs = append(t.recs, record{g: math.Inf(1), parent: noParent})
	return id, true
}

func (t *mapTable[N]) at(id int32) *record { return &t.recs[id] }

func (t *mapTable[N]) node(id int32) N { return t.nodes[id] }

func (t *mapTable[N]) reset() {
	clear(t.ids)
	t.nodes = t.nodes[:0]
	t.recs = t.recs[:0]
}

func (t *mapTable[N]) size() int { return len(t.recs) }
