package index

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/recid"
)

// Match is one distinct value found by a query together with the IDs that
// matched it, one per matching registration, in registration order.
type Match[T any] struct {
	Value T
	IDs   []recid.ID
}

var bitmapPool = sync.Pool{
	New: func() any { return roaring.New() },
}

func getBitmap() *roaring.Bitmap {
	b := bitmapPool.Get().(*roaring.Bitmap)
	b.Clear()
	return b
}

func putBitmap(b *roaring.Bitmap) {
	b.Clear()
	bitmapPool.Put(b)
}

type group[T any] struct {
	value T
	hits  *roaring.Bitmap
}

// grouper collects matched positions per distinct value. Positions are sets,
// so a registration found through several fields or substrings counts once.
type grouper[T any] struct {
	t      *table[T]
	byKey  map[any]int
	groups []group[T]
}

func newGrouper[T any](t *table[T]) *grouper[T] {
	return &grouper[T]{t: t, byKey: make(map[any]int)}
}

func (g *grouper[T]) add(pos uint32) {
	v := g.t.entries[pos].Value
	k := g.t.groupKey(v)
	i, ok := g.byKey[k]
	if !ok {
		i = len(g.groups)
		g.byKey[k] = i
		g.groups = append(g.groups, group[T]{value: v, hits: getBitmap()})
	}
	g.groups[i].hits.Add(pos)
}

// matches returns the groups in discovery order and releases the bitmaps.
func (g *grouper[T]) matches() []Match[T] {
	if len(g.groups) == 0 {
		return nil
	}
	out := make([]Match[T], len(g.groups))
	for i, grp := range g.groups {
		ids := make([]recid.ID, 0, grp.hits.GetCardinality())
		it := grp.hits.Iterator()
		for it.HasNext() {
			ids = append(ids, g.t.entries[it.Next()].ID)
		}
		out[i] = Match[T]{Value: grp.value, IDs: ids}
		putBitmap(grp.hits)
	}
	g.groups = nil
	return out
}

// collect gathers every hit of a query into one set and returns the entries
// in registration order.
func (t *table[T]) collect(query func(hit func(uint32))) []Entry[T] {
	hits := getBitmap()
	defer putBitmap(hits)

	query(func(pos uint32) { hits.Add(pos) })

	out := make([]Entry[T], 0, hits.GetCardinality())
	it := hits.Iterator()
	for it.HasNext() {
		out = append(out, t.entries[it.Next()])
	}
	return out
}
