package index

import (
	"context"
	"io"
	"iter"
	"slices"
	"time"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/formkey"
)

// Builder accumulates registrations. It is not safe for concurrent use.
// Freeze turns it into an Index for concurrent readers.
type Builder[T any] struct {
	t      *table[T]
	sorted bool
	frozen bool
}

// NewBuilder returns a Builder that groups query results by value equality.
func NewBuilder[T comparable](opts ...Option) *Builder[T] {
	return NewBuilderFunc(func(v T) any { return v }, opts...)
}

// NewBuilderFunc returns a Builder that groups query results by key(v). Values
// with equal keys form one result; the first value discovered is reported.
// key must return comparable values.
func NewBuilderFunc[T any](key func(T) any, opts ...Option) *Builder[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder[T]{t: newTable(key, o), sorted: true}
}

// Add registers id with value v. FormID and Invalid IDs are rejected with an
// *UnsupportedIdentifierError; the builder is unchanged and the caller may
// continue with the next entry.
func (b *Builder[T]) Add(id recid.ID, v T) error {
	if b.frozen {
		return ErrFrozen
	}
	err := b.t.add(id, v)
	if err == nil && id.IsWildcard() {
		b.sorted = false
	}
	b.t.opts.metrics.RecordAdd(id.Kind(), err)
	b.t.opts.logger.LogAdd(context.Background(), id, err)
	return err
}

// Sort sorts the wildcard buckets. It is a no-op if nothing changed since the
// last sort.
func (b *Builder[T]) Sort() {
	if b.sorted {
		return
	}
	start := time.Now()
	n := b.t.sort()
	b.sorted = true

	d := time.Since(start)
	b.t.opts.metrics.RecordSort(n, d)
	b.t.opts.logger.LogSort(context.Background(), n, d)
}

// Sorted reports whether the builder is ready for FindString.
func (b *Builder[T]) Sorted() bool { return b.sorted }

// Len returns the number of registrations.
func (b *Builder[T]) Len() int { return len(b.t.entries) }

// HasExact reports whether any exact name was registered.
func (b *Builder[T]) HasExact() bool { return b.t.hasExact() }

// HasWildcard reports whether any wildcard name was registered.
func (b *Builder[T]) HasWildcard() bool { return b.t.hasWildcard() }

// HasKey reports whether any FormKey or ModKey was registered.
func (b *Builder[T]) HasKey() bool { return b.t.hasKey() }

// HasString reports whether any name was registered.
func (b *Builder[T]) HasString() bool { return b.t.hasExact() || b.t.hasWildcard() }

// FindAll returns every distinct value with an ID matching rec on the fields
// in mask, sorting first if needed. See Index.FindAll.
func (b *Builder[T]) FindAll(rec recid.Record, mask recid.FieldMask, resolver recid.KeywordResolver) iter.Seq[Match[T]] {
	b.Sort()
	return b.t.findAllSeq(rec, mask, resolver)
}

// FindString returns the registrations matching s on field. It does not sort
// and panics with ErrNotSorted if the builder is unsorted.
func (b *Builder[T]) FindString(s string, field recid.Field) iter.Seq[Entry[T]] {
	b.mustBeSorted()
	return slices.Values(b.t.findString(s, field))
}

// FindStringGrouped is FindString grouped by value. It panics with
// ErrNotSorted if the builder is unsorted.
func (b *Builder[T]) FindStringGrouped(s string, field recid.Field) []Match[T] {
	b.mustBeSorted()
	return b.t.findStringGrouped(s, field)
}

// FindFormKey returns the registrations matching fk on field.
func (b *Builder[T]) FindFormKey(fk formkey.FormKey, field recid.Field) iter.Seq[Entry[T]] {
	return slices.Values(b.t.findFormKey(fk, field))
}

// FindModKey returns the registrations matching mk on field.
func (b *Builder[T]) FindModKey(mk formkey.ModKey, field recid.Field) iter.Seq[Entry[T]] {
	return slices.Values(b.t.findModKey(mk, field))
}

// Stats returns population statistics.
func (b *Builder[T]) Stats() Stats { return b.t.stats() }

// WriteStats writes the statistics table to w.
func (b *Builder[T]) WriteStats(w io.Writer) error {
	_, err := b.t.stats().WriteTo(w)
	return err
}

func (b *Builder[T]) mustBeSorted() {
	if !b.sorted {
		panic(ErrNotSorted)
	}
}

// Freeze sorts the builder and returns a read-only Index over its
// registrations. Later calls to Add fail with ErrFrozen; later calls to
// Freeze return an Index over the same data.
func (b *Builder[T]) Freeze() *Index[T] {
	b.Sort()
	if !b.frozen {
		b.frozen = true
		s := b.t.stats()
		b.t.opts.logger.LogFreeze(context.Background(), s.Entries, s.Exact, s.Keys, s.Wildcards)
	}
	return &Index[T]{t: b.t}
}
