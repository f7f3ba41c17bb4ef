package recid

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hupe1980/recid/formkey"
)

type cachedKeyword struct {
	rec Record
	ok  bool
}

// CachingResolver memoizes lookups of an underlying KeywordResolver in a
// fixed-size LRU cache. Misses are cached as well. It is safe for concurrent
// use if the underlying resolver is.
type CachingResolver struct {
	next  KeywordResolver
	cache *lru.Cache[formkey.FormKey, cachedKeyword]
}

// NewCachingResolver wraps next with a cache holding up to size references.
func NewCachingResolver(next KeywordResolver, size int) (*CachingResolver, error) {
	c, err := lru.New[formkey.FormKey, cachedKeyword](size)
	if err != nil {
		return nil, err
	}
	return &CachingResolver{next: next, cache: c}, nil
}

// ResolveKeyword implements KeywordResolver.
func (r *CachingResolver) ResolveKeyword(ref formkey.FormKey) (Record, bool) {
	key := ref.Fold()
	if e, ok := r.cache.Get(key); ok {
		return e.rec, e.ok
	}
	rec, ok := r.next.ResolveKeyword(ref)
	r.cache.Add(key, cachedKeyword{rec: rec, ok: ok})
	return rec, ok
}

// Len returns the number of cached references.
func (r *CachingResolver) Len() int { return r.cache.Len() }

// Purge drops every cached reference.
func (r *CachingResolver) Purge() { r.cache.Purge() }
