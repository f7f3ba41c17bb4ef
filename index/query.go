package index

import (
	"context"
	"iter"
	"time"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/formkey"
)

// findAll tests rec against every lookup structure on the fields in mask and
// groups the matched registrations by value.
func (t *table[T]) findAll(rec recid.Record, mask recid.FieldMask, resolver recid.KeywordResolver) []Match[T] {
	if rec == nil || len(t.entries) == 0 || mask == recid.MaskNone {
		return nil
	}
	start := time.Now()

	g := newGrouper(t)

	// Keywords are resolved once and reused by the key and string lookups.
	var (
		refs     []formkey.FormKey
		keywords []recid.Record
	)
	if kr, ok := rec.(recid.KeywordedRecord); ok && mask.Has(recid.FieldKeywords) {
		refs = kr.Keywords()
		if resolver != nil {
			for _, ref := range refs {
				if kw, ok := resolver.ResolveKeyword(ref); ok && kw != nil {
					keywords = append(keywords, kw)
				}
			}
		}
	}

	if t.hasKey() {
		fk := rec.FormKey()
		if mask.Has(recid.FieldFormKey) {
			t.lookupKey(formKeyKey(fk), recid.FieldFormKey, g.add)
		}
		if mask.Has(recid.FieldModKey) {
			t.lookupKey(modKeyKey(fk.ModKey), recid.FieldModKey, g.add)
		}
		if resolver == nil {
			for _, ref := range refs {
				t.lookupKey(formKeyKey(ref), recid.FieldKeywords, g.add)
			}
		}
		for _, kw := range keywords {
			t.lookupKey(formKeyKey(kw.FormKey()), recid.FieldKeywords, g.add)
			t.lookupKey(modKeyKey(kw.FormKey().ModKey), recid.FieldKeywords, g.add)
		}
	}

	if t.hasExact() || t.hasWildcard() {
		if mask.Has(recid.FieldEditorID) {
			t.lookupString(rec.EditorID(), recid.FieldEditorID, g.add)
		}
		if named, ok := rec.(recid.NamedRecord); ok && mask.Has(recid.FieldName) {
			t.lookupString(named.Name(), recid.FieldName, g.add)
		}
		for _, kw := range keywords {
			t.lookupString(kw.EditorID(), recid.FieldKeywords, g.add)
		}
	}

	out := g.matches()

	d := time.Since(start)
	t.opts.metrics.RecordQuery(len(out), d)
	t.opts.logger.LogQuery(context.Background(), rec, len(out), d)

	return out
}

func (t *table[T]) findAllSeq(rec recid.Record, mask recid.FieldMask, resolver recid.KeywordResolver) iter.Seq[Match[T]] {
	return func(yield func(Match[T]) bool) {
		for _, m := range t.findAll(rec, mask, resolver) {
			if !yield(m) {
				return
			}
		}
	}
}

func (t *table[T]) findString(s string, field recid.Field) []Entry[T] {
	return t.collect(func(hit func(uint32)) { t.lookupString(s, field, hit) })
}

func (t *table[T]) findFormKey(fk formkey.FormKey, field recid.Field) []Entry[T] {
	return t.collect(func(hit func(uint32)) { t.lookupKey(formKeyKey(fk), field, hit) })
}

func (t *table[T]) findModKey(mk formkey.ModKey, field recid.Field) []Entry[T] {
	return t.collect(func(hit func(uint32)) { t.lookupKey(modKeyKey(mk), field, hit) })
}

func (t *table[T]) findStringGrouped(s string, field recid.Field) []Match[T] {
	g := newGrouper(t)
	t.lookupString(s, field, g.add)
	return g.matches()
}
