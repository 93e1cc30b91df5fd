// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import lru "github.com/hashicorp/golang-lru/v2"

// cacheKey packs an opcode with up to two operand ids into a single
// comparable value, suitable as a map/lru key. A unary operation leaves
// arg2 at Empty's id, which is never itself a meaningful second operand
// since every binary operation in this engine treats Empty specially long
// before consulting the cache.
type cacheKey struct {
	op   opcode
	arg1 int32
	arg2 int32
}

// OperationCache memoizes the result of an algebraic operation. It is
// explicitly approximate: entries may be evicted at any time under capacity
// pressure, and callers must treat a cache as an accelerator, never as a
// source of truth. The default implementation is a bounded LRU over
// github.com/hashicorp/golang-lru/v2.
type OperationCache interface {
	get(key cacheKey) (Node, bool)
	put(key cacheKey, result Node)
	clear()
}

// cacheGet consults the operation cache on e's behalf, keeping the engine's
// hit/miss counters and metrics in step with every lookup.
func (e *Engine) cacheGet(key cacheKey) (Node, bool) {
	if r, ok := e.cache.get(key); ok {
		e.cacheHitCount++
		e.metrics.incCacheHit()
		return r, true
	}
	e.cacheMissCount++
	e.metrics.incCacheMiss()
	return Empty, false
}

type lruCache struct {
	inner *lru.Cache[cacheKey, Node]
}

func newLRUCache(size int) *lruCache {
	if size <= 0 {
		size = _DEFAULTCACHESIZE
	}
	c, err := lru.New[cacheKey, Node](size)
	if err != nil {
		// size is always a positive int by this point; New only errors on
		// size <= 0.
		panic(err)
	}
	return &lruCache{inner: c}
}

func (c *lruCache) get(key cacheKey) (Node, bool) {
	return c.inner.Get(key)
}

func (c *lruCache) put(key cacheKey, result Node) {
	c.inner.Add(key, result)
}

func (c *lruCache) clear() {
	c.inner.Purge()
}
