package index

import (
	"io"
	"iter"
	"slices"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/formkey"
)

// Index is a frozen, sorted Builder. It is immutable and safe for concurrent
// use. Resolvers passed to FindAll are called from the querying goroutine.
type Index[T any] struct {
	t *table[T]
}

// Len returns the number of registrations.
func (x *Index[T]) Len() int { return len(x.t.entries) }

// HasExact reports whether any exact name was registered.
func (x *Index[T]) HasExact() bool { return x.t.hasExact() }

// HasWildcard reports whether any wildcard name was registered.
func (x *Index[T]) HasWildcard() bool { return x.t.hasWildcard() }

// HasKey reports whether any FormKey or ModKey was registered.
func (x *Index[T]) HasKey() bool { return x.t.hasKey() }

// HasString reports whether any name was registered.
func (x *Index[T]) HasString() bool { return x.t.hasExact() || x.t.hasWildcard() }

// FindAll returns every distinct value with an ID matching rec on the fields
// in mask:
//
//   - the record's FormKey and ModKey against FormKey and ModKey IDs
//   - its EditorID and display name against exact and wildcard names
//   - its keywords, resolved through resolver, by FormKey, ModKey and EditorID
//
// Each ID only matches on fields its limit allows. Keyword references the
// resolver does not know are skipped. With a nil resolver keyword references
// are compared with FormKey IDs directly.
//
// Every Match holds one ID per matching registration, so an ID registered
// twice for the same value appears twice. Matches are reported in discovery
// order; the sequence is computed when iterated.
func (x *Index[T]) FindAll(rec recid.Record, mask recid.FieldMask, resolver recid.KeywordResolver) iter.Seq[Match[T]] {
	return x.t.findAllSeq(rec, mask, resolver)
}

// FindString returns the exact and wildcard registrations matching s on field.
func (x *Index[T]) FindString(s string, field recid.Field) iter.Seq[Entry[T]] {
	return slices.Values(x.t.findString(s, field))
}

// FindStringGrouped is FindString grouped by value.
func (x *Index[T]) FindStringGrouped(s string, field recid.Field) []Match[T] {
	return x.t.findStringGrouped(s, field)
}

// FindFormKey returns the FormKey registrations equal to fk allowed on field.
func (x *Index[T]) FindFormKey(fk formkey.FormKey, field recid.Field) iter.Seq[Entry[T]] {
	return slices.Values(x.t.findFormKey(fk, field))
}

// FindModKey returns the ModKey registrations equal to mk allowed on field.
func (x *Index[T]) FindModKey(mk formkey.ModKey, field recid.Field) iter.Seq[Entry[T]] {
	return slices.Values(x.t.findModKey(mk, field))
}

// Entries returns every registration in registration order.
func (x *Index[T]) Entries() iter.Seq[Entry[T]] {
	return slices.Values(x.t.entries)
}

// Stats returns population statistics.
func (x *Index[T]) Stats() Stats { return x.t.stats() }

// WriteStats writes the statistics table to w.
func (x *Index[T]) WriteStats(w io.Writer) error {
	_, err := x.t.stats().WriteTo(w)
	return err
}
