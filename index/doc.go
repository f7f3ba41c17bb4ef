// Package index maps many record identifiers to caller data and finds every
// value whose identifiers match a record.
//
// An index is built in two phases. A Builder accepts registrations through
// Add. Freeze sorts it and returns an Index, which is immutable and safe for
// concurrent readers:
//
//	b := index.NewBuilder[string]()
//	_ = b.Add(recid.Name("IronSword"), "iron")
//	_ = b.Add(recid.Wildcard("Sword"), "swords")
//	_ = b.Add(recid.OfModKey(dawnguard), "dlc")
//	idx := b.Freeze()
//
//	for m := range idx.FindAll(rec, recid.MaskAll, resolver) {
//		fmt.Println(m.Value, m.IDs)
//	}
//
// Exact names and FormKey/ModKey identifiers are looked up in hash tables.
// Wildcard names are kept in 27 buckets keyed by their case-folded first
// letter ('a' to 'z', everything else shares bucket 0), each sorted so that a
// query only scans entries that can be a prefix of some suffix of the
// queried string.
//
// # Sorting contract
//
// Builder.FindAll sorts on demand. The low-level Builder.FindString and
// Builder.FindStringGrouped do not: calling them on an unsorted Builder
// panics with ErrNotSorted. Call Sort after the last Add. An Index is always
// sorted.
package index
