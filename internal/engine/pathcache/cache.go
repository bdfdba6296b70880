// Package pathcache memoizes search results per (start, goal, heuristic,
// configuration) with a time-to-live and least-recently-used eviction.
package pathcache

import (
	"container/list"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/pathforge/internal/engine/search"
)

// Searcher computes a result on a cache miss. search.Search satisfies it.
type Searcher[N comparable] func(
	g ports.Graph[N],
	start, goal N,
	h ports.Heuristic[N],
	opts ...search.Option,
) (domain.PathResult[N], error)

// Keyer is implemented by heuristics that name their own cache identity.
// Heuristics reporting the same key share entries.
type Keyer interface {
	CacheKey() string
}

type keyed[N comparable] struct {
	ports.Heuristic[N]
	key string
}

func (k keyed[N]) CacheKey() string { return k.key }

// Keyed gives h the cache identity key. Use it for function heuristics,
// which are otherwise not cached.
func Keyed[N comparable](key string, h ports.Heuristic[N]) ports.Heuristic[N] {
	return keyed[N]{Heuristic: h, key: key}
}

type key[N comparable] struct {
	start  N
	goal   N
	params uint64
}

type entry[N comparable] struct {
	key     key[N]
	result  domain.PathResult[N]
	created time.Time
}

// Cache is a bounded, expiring memo of search results.
//
// The mutex guards bookkeeping only. Concurrent misses on the same key each
// run their own search and the last one stored wins.
type Cache[N comparable] struct {
	capacity int
	ttl      time.Duration
	clock    clockwork.Clock
	searcher Searcher[N]

	mu      sync.Mutex
	entries map[key[N]]*list.Element
	order   *list.List
	stats   domain.CacheStats
}

// New creates a cache holding at most capacity results, each valid for ttl.
// A capacity below 1 is treated as 1; a non-positive ttl never expires.
func New[N comparable](capacity int, ttl time.Duration) *Cache[N] {
	return &Cache[N]{
		capacity: max(capacity, 1),
		ttl:      ttl,
		clock:    clockwork.NewRealClock(),
		searcher: search.Search[N],
		entries:  make(map[key[N]]*list.Element),
		order:    list.New(),
	}
}

// WithClock sets the clock used for entry ages.
func (c *Cache[N]) WithClock(clock clockwork.Clock) *Cache[N] {
	c.clock = clock
	return c
}

// WithSearcher replaces the search run on a miss.
func (c *Cache[N]) WithSearcher(s Searcher[N]) *Cache[N] {
	c.searcher = s
	return c
}

// Search returns the cached result for the query or computes and stores it.
// Results with a missing path are cached too; errors are not. Function
// heuristics without a Keyer bypass the cache and leave the statistics alone.
func (c *Cache[N]) Search(
	g ports.Graph[N],
	start, goal N,
	h ports.Heuristic[N],
	opts ...search.Option,
) (domain.PathResult[N], error) {
	cfg := search.NewConfig(opts...)
	params, ok := digest(h, cfg)
	if !ok {
		return c.searcher(g, start, goal, h, search.WithConfig(cfg))
	}
	k := key[N]{start: start, goal: goal, params: params}
	if r, ok := c.lookup(k); ok {
		return r, nil
	}

	r, err := c.searcher(g, start, goal, h, search.WithConfig(cfg))
	if err != nil {
		return domain.PathResult[N]{}, err
	}
	c.store(k, r)
	return r, nil
}

// Get returns the live cached result for the query, if any.
func (c *Cache[N]) Get(start, goal N, h ports.Heuristic[N], opts ...search.Option) (domain.PathResult[N], bool) {
	params, ok := digest(h, search.NewConfig(opts...))
	if !ok {
		return domain.PathResult[N]{}, false
	}
	return c.lookup(key[N]{start: start, goal: goal, params: params})
}

// Put stores r as the result of the query, replacing any previous entry.
// Results for uncacheable heuristics are dropped.
func (c *Cache[N]) Put(start, goal N, h ports.Heuristic[N], r domain.PathResult[N], opts ...search.Option) {
	if params, ok := digest(h, search.NewConfig(opts...)); ok {
		c.store(key[N]{start: start, goal: goal, params: params}, r)
	}
}

// InvalidateRegion drops every entry whose start, goal or path touches a node
// matching inside, and returns how many were dropped.
func (c *Cache[N]) InvalidateRegion(inside func(N) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		e := el.Value.(*entry[N])
		if touches(e, inside) {
			c.remove(el)
			dropped++
		}
		el = next
	}
	return dropped
}

// Clear drops every entry. Statistics are kept.
func (c *Cache[N]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.order.Init()
}

// Len returns the number of stored entries, including expired ones not yet observed.
func (c *Cache[N]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns cumulative counters.
func (c *Cache[N]) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Cache[N]) lookup(k key[N]) (domain.PathResult[N], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[k]
	if !ok {
		c.stats.Misses++
		return domain.PathResult[N]{}, false
	}
	e := el.Value.(*entry[N])
	if c.expired(e) {
		c.remove(el)
		c.stats.Expirations++
		c.stats.Misses++
		return domain.PathResult[N]{}, false
	}
	c.order.MoveToFront(el)
	c.stats.Hits++
	return e.result.Clone(), true
}

func (c *Cache[N]) store(k key[N], r domain.PathResult[N]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if el, ok := c.entries[k]; ok {
		e := el.Value.(*entry[N])
		e.result, e.created = r.Clone(), now
		c.order.MoveToFront(el)
		return
	}
	c.entries[k] = c.order.PushFront(&entry[N]{key: k, result: r.Clone(), created: now})
	for c.order.Len() > c.capacity {
		c.remove(c.order.Back())
		c.stats.Evictions++
	}
}

func (c *Cache[N]) remove(el *list.Element) {
	delete(c.entries, el.Value.(*entry[N]).key)
	c.order.Remove(el)
}

func (c *Cache[N]) expired(e *entry[N]) bool {
	return c.ttl > 0 && c.clock.Since(e.created) >= c.ttl
}

func touches[N comparable](e *entry[N], inside func(N) bool) bool {
	if inside(e.key.start) || inside(e.key.goal) {
		return true
	}
	for _, n := range e.result.Path {
		if inside(n) {
			return true
		}
	}
	return false
}

// digest identifies a heuristic and search configuration. Heuristics are
// told apart by their Keyer key, or else by dynamic type and value, so
// parameterized heuristics with different parameters get different keys.
// Function values print only their code address, which closures over
// different parameters share, so they report false unless keyed.
func digest[N comparable](h ports.Heuristic[N], cfg search.Config) (uint64, bool) {
	hasher := xxhash.New()
	switch k := h.(type) {
	case Keyer:
		_, _ = fmt.Fprintf(hasher, "key|%s", k.CacheKey())
	default:
		if t := reflect.TypeOf(h); t != nil && t.Kind() == reflect.Func {
			return 0, false
		}
		_, _ = fmt.Fprintf(hasher, "%T|%+v", h, h)
	}
	_, _ = hasher.Write([]byte{0})
	_, _ = fmt.Fprintf(hasher, "%g|%t|%d", cfg.HeuristicWeight, cfg.TieBreaking, cfg.MaxExpansions)
	return hasher.Sum64(), true
}
