package index

import (
	"math"
	"slices"
	"strings"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/formkey"
	"github.com/hupe1980/recid/internal/fold"
)

// numBuckets is one bucket per ASCII letter plus a shared bucket for
// everything else.
const numBuckets = 27

// Entry is a single registration.
type Entry[T any] struct {
	ID    recid.ID
	Value T
}

// wildcard is a bucket element: the folded wildcard text and the position of
// its registration in the arena.
type wildcard struct {
	text string
	pos  uint32
}

// tableKey is the key table key. ModKeys use kind KindModKey and a zero id.
type tableKey struct {
	kind recid.Kind
	mod  formkey.ModKey
	id   uint32
}

func formKeyKey(fk formkey.FormKey) tableKey {
	return tableKey{kind: recid.KindFormKey, mod: fk.ModKey.Fold(), id: fk.ID}
}

func modKeyKey(mk formkey.ModKey) tableKey {
	return tableKey{kind: recid.KindModKey, mod: mk.Fold()}
}

// table is the arena of registrations and the lookup structures that point
// into it by position. It is shared by a Builder and the Index it freezes
// into; only the Builder writes to it.
type table[T any] struct {
	entries []Entry[T]
	exact   map[string][]uint32
	keys    map[tableKey][]uint32
	buckets [numBuckets][]wildcard
	minLen  [numBuckets]int
	absMin  int

	groupKey func(T) any
	opts     options
}

func newTable[T any](groupKey func(T) any, opts options) *table[T] {
	t := &table[T]{
		entries:  make([]Entry[T], 0, opts.capacity),
		exact:    make(map[string][]uint32),
		keys:     make(map[tableKey][]uint32),
		absMin:   math.MaxInt,
		groupKey: groupKey,
		opts:     opts,
	}
	for i := range t.minLen {
		t.minLen[i] = math.MaxInt
	}
	return t
}

// bucketOf maps the first byte of a folded string to its bucket.
func bucketOf(c byte) int {
	if c >= 'a' && c <= 'z' {
		return int(c-'a') + 1
	}
	return 0
}

func (t *table[T]) add(id recid.ID, v T) error {
	if !id.Kind().Indexable() {
		return &UnsupportedIdentifierError{ID: id}
	}
	if len(t.entries) == math.MaxUint32 {
		return errTooManyEntries
	}

	pos := uint32(len(t.entries))
	t.entries = append(t.entries, Entry[T]{ID: id, Value: v})

	switch id.Kind() {
	case recid.KindName:
		text := fold.String(id.Name())
		if !id.IsWildcard() {
			t.exact[text] = append(t.exact[text], pos)
			return nil
		}
		b := bucketOf(text[0])
		t.buckets[b] = append(t.buckets[b], wildcard{text: text, pos: pos})
		t.minLen[b] = min(t.minLen[b], len(text))
		t.absMin = min(t.absMin, len(text))
	case recid.KindFormKey:
		k := formKeyKey(id.FormKey())
		t.keys[k] = append(t.keys[k], pos)
	case recid.KindModKey:
		k := modKeyKey(id.ModKey())
		t.keys[k] = append(t.keys[k], pos)
	}
	return nil
}

// sort orders every bucket by folded text. Registrations with equal text
// keep registration order.
func (t *table[T]) sort() int {
	n := 0
	for i := range t.buckets {
		slices.SortStableFunc(t.buckets[i], func(a, b wildcard) int {
			return strings.Compare(a.text, b.text)
		})
		n += len(t.buckets[i])
	}
	return n
}

func (t *table[T]) hasExact() bool    { return len(t.exact) > 0 }
func (t *table[T]) hasKey() bool      { return len(t.keys) > 0 }
func (t *table[T]) hasWildcard() bool { return t.absMin != math.MaxInt }

// lookupKey reports every registration under k whose limit allows field.
func (t *table[T]) lookupKey(k tableKey, field recid.Field, hit func(uint32)) {
	for _, pos := range t.keys[k] {
		if t.entries[pos].ID.LimitTo().Has(field) {
			hit(pos)
		}
	}
}

// lookupString reports every exact or wildcard registration matching s on
// field. A wildcard matching several substrings of s is reported each time.
func (t *table[T]) lookupString(s string, field recid.Field, hit func(uint32)) {
	if s == "" {
		return
	}
	name := fold.String(s)

	if t.hasExact() {
		for _, pos := range t.exact[name] {
			if t.entries[pos].ID.LimitTo().Has(field) {
				hit(pos)
			}
		}
	}

	if t.hasWildcard() {
		t.searchWildcards(name, field, hit)
	}
}

// searchWildcards finds the wildcards contained in the folded string name.
//
// A wildcard w is contained in name if it is a prefix of some suffix of name,
// so the search visits each suffix in turn, dropping one leading rune at a
// time, while it is at least as long as the shortest wildcard. Every wildcard
// that is a prefix of the current suffix sorts between suffix[:minLen] and
// the suffix itself, where minLen is the shortest wildcard in its bucket.
func (t *table[T]) searchWildcards(name string, field recid.Field, hit func(uint32)) {
	check := func(w wildcard) {
		if t.entries[w.pos].ID.LimitTo().Has(field) && strings.HasPrefix(name, w.text) {
			hit(w.pos)
		}
	}

	for len(name) >= t.absMin {
		b := bucketOf(name[0])
		minLen := t.minLen[b]
		if len(name) >= minLen {
			bucket := t.buckets[b]
			prefix := name[:minLen]

			i, found := slices.BinarySearchFunc(bucket, prefix, func(w wildcard, s string) int {
				return strings.Compare(w.text, s)
			})
			if found {
				// Equal texts are not unique, walk back over them.
				for j := i - 1; j >= 0 && bucket[j].text >= prefix; j-- {
					check(bucket[j])
				}
			}
			for j := i; j < len(bucket) && bucket[j].text <= name; j++ {
				check(bucket[j])
			}
		}
		name = fold.TrimFirst(name)
	}
}
