package index

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// BucketStats describes one wildcard bucket. MinLen is 0 for an empty bucket.
type BucketStats struct {
	Count  int
	MinLen int
}

// Stats describes the population of an index.
type Stats struct {
	// Entries is the number of registrations.
	Entries int
	// Exact is the number of distinct exact names.
	Exact int
	// Keys is the number of distinct FormKeys and ModKeys.
	Keys int
	// Wildcards is the number of wildcard registrations.
	Wildcards int
	// MinWildcardLen is the length of the shortest folded wildcard, or 0.
	MinWildcardLen int
	// Buckets is indexed by bucket: 0 for non-letters, then 'a' to 'z'.
	Buckets [numBuckets]BucketStats
}

func (t *table[T]) stats() Stats {
	s := Stats{
		Entries: len(t.entries),
		Exact:   len(t.exact),
		Keys:    len(t.keys),
	}
	if t.absMin != math.MaxInt {
		s.MinWildcardLen = t.absMin
	}
	for i, b := range t.buckets {
		s.Buckets[i].Count = len(b)
		s.Wildcards += len(b)
		if t.minLen[i] != math.MaxInt {
			s.Buckets[i].MinLen = t.minLen[i]
		}
	}
	return s
}

const bucketLabels = "#ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// WriteTo renders s as a text table. It implements io.WriterTo.
func (s Stats) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Entries: %d\n", s.Entries)
	fmt.Fprintf(&buf, "Key Indexed: %d\n", s.Keys)
	fmt.Fprintf(&buf, "Exact String Indexed: %d\n", s.Exact)
	if s.Wildcards == 0 {
		buf.WriteString("Contains String Indexes: empty\n")
	} else {
		buf.WriteString("Contains String Indexes:\n")
		fmt.Fprintf(&buf, "Absolute Min: %d\n", s.MinWildcardLen)
		buf.WriteString("Index | Count | Min\n")
		for i, b := range s.Buckets {
			minLen := "-"
			if b.Count > 0 {
				minLen = fmt.Sprint(b.MinLen)
			}
			fmt.Fprintf(&buf, "%c | %d | %s\n", bucketLabels[i], b.Count, minLen)
		}
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
