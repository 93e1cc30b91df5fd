// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Engine owns the arena, unique table, operation cache, and bookkeeping for a
// family of ZBDDs built from a fixed universe of variables. It is not safe
// for concurrent use; see Atomic in threadsafe.go.
type Engine struct {
	arena     *arena
	advisor   CapacityAdvisor
	cache     OperationCache
	callbacks CallbackBus
	vars      *varRegistry
	logger    *zap.Logger
	metrics   metricsSink
	protected protect
	countMemo map[int32]*big.Int

	gcCount               int64
	uniqueHit, uniqueMiss int64
	uniqueChain           int64
	cacheHitCount         int64
	cacheMissCount        int64
}

type engineConfig struct {
	capacity   int
	cacheSize  int
	advisor    CapacityAdvisor
	cache      OperationCache
	logger     *zap.Logger
	metricsReg *prometheus.Registry
	resolver   LiteralResolver
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

// WithCapacity sets the arena's initial capacity.
func WithCapacity(n int) Option {
	return func(c *engineConfig) { c.capacity = n }
}

// WithCacheSize sets the operation cache's capacity, in entries.
func WithCacheSize(n int) Option {
	return func(c *engineConfig) { c.cacheSize = n }
}

// WithAdvisor overrides the default capacity advisor.
func WithAdvisor(a CapacityAdvisor) Option {
	return func(c *engineConfig) { c.advisor = a }
}

// WithCache overrides the default bounded LRU operation cache with any
// implementation of OperationCache, e.g. a null cache for testing cache-miss
// paths deterministically.
func WithCache(cache OperationCache) Option {
	return func(c *engineConfig) { c.cache = cache }
}

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *engineConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics registers the engine's counters against reg; without this
// option, metrics are collected into a no-op sink.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(c *engineConfig) { c.metricsReg = reg }
}

// WithResolver attaches a LiteralResolver used to name variables in reports.
func WithResolver(r LiteralResolver) Option {
	return func(c *engineConfig) { c.resolver = r }
}

// New constructs an Engine with varnum initial variables (ids 1..varnum
// already allocated) and applies opts in order.
func New(varnum int32, opts ...Option) (*Engine, error) {
	if varnum < 0 {
		return nil, newError(InvalidVar, "negative initial variable count %d", varnum)
	}
	cfg := &engineConfig{
		cacheSize: _DEFAULTCACHESIZE,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.advisor == nil {
		da := newDefaultAdvisor()
		if cfg.capacity > 0 {
			da.initialCapacity = cfg.capacity
		}
		cfg.advisor = da
	}
	capacity := cfg.capacity
	if capacity <= 0 {
		capacity = cfg.advisor.InitialCapacity()
	}
	if varnum > _MAXVAR {
		return nil, newError(InvalidVar, "initial variable count %d exceeds the variable space", varnum)
	}

	logger := cfg.logger
	if logger == nil {
		logger = defaultLogger()
	}
	var sink metricsSink = noopMetrics{}
	if cfg.metricsReg != nil {
		sink = newPromMetrics(cfg.metricsReg)
	}

	cache := cfg.cache
	if cache == nil {
		cache = newLRUCache(cfg.cacheSize)
	}
	e := &Engine{
		arena:     newArena(capacity),
		advisor:   cfg.advisor,
		cache:     cache,
		vars:      newVarRegistry(varnum, cfg.resolver),
		logger:    logger,
		metrics:   sink,
		countMemo: make(map[int32]*big.Int),
	}
	e.metrics.setCapacity(e.arena.capacity())
	return e, nil
}

// CreateVar allocates a fresh variable id.
func (e *Engine) CreateVar() (int32, error) {
	return e.vars.CreateVar()
}

// Varnum reports how many variables the engine currently knows about.
func (e *Engine) Varnum() int32 {
	return e.vars.Varnum()
}

// IsValidVar reports whether v names a variable created via CreateVar (or
// passed to New as part of the initial count).
func (e *Engine) IsValidVar(v int32) bool {
	return e.vars.isValid(v)
}

// IsValidZbdd reports whether id currently designates a live structure: one
// of the two sentinels, or an occupied arena slot within range.
func (e *Engine) IsValidZbdd(id Node) bool {
	if id == Empty || id == Base {
		return true
	}
	if id < 0 || int(id) >= e.arena.capacity() {
		return false
	}
	return e.arena.get(id).occupied()
}

// Callbacks exposes the engine's CallbackBus so observers can register
// before/after hooks around Clear and garbage collection.
func (e *Engine) Callbacks() *CallbackBus {
	return &e.callbacks
}

// Clear discards every node except the two sentinels, resets the variable
// counter, and purges the operation cache, keeping the arena's current
// capacity. The arena's allocations are retained, never returned to the Go
// runtime, so a cleared engine rebuilds without re-growing.
func (e *Engine) Clear() {
	e.callbacks.fireClear(e.callbacks.beforeClear)
	capacity := e.arena.capacity()
	a := e.arena
	a.freeHead, a.freeCount, a.deadCount, a.produced = 0, 0, 0, 0
	a.initFreeList(2, capacity)
	a.nodes[Empty] = node{vr: _VARNONE, p0: int32(Empty), p1: int32(Empty), refcount: -1}
	a.nodes[Base] = node{vr: _VARNONE, p0: int32(Base), p1: int32(Base), refcount: -1}
	e.cache.clear()
	e.protected.reset()
	e.vars.reset()
	e.countMemo = make(map[int32]*big.Int)
	e.uniqueHit, e.uniqueMiss, e.uniqueChain = 0, 0, 0
	e.callbacks.fireClear(e.callbacks.afterClear)
}

// StatsStruct returns a snapshot of the engine's internal counters.
func (e *Engine) StatsStruct() Stats {
	return Stats{
		Capacity:    e.arena.capacity(),
		Produced:    e.arena.produced,
		Free:        int(e.arena.freeCount),
		Dead:        int(e.arena.deadCount),
		LastVar:     e.vars.Varnum(),
		GCCount:     e.gcCount,
		UniqueHit:   e.uniqueHit,
		UniqueMiss:  e.uniqueMiss,
		UniqueChain: e.uniqueChain,
		CacheHit:    e.cacheHitCount,
		CacheMiss:   e.cacheMissCount,
	}
}

// Stats renders the engine's counters as a tab-aligned report.
func (e *Engine) Stats() string {
	return e.StatsStruct().String()
}

// ensureCapacity is the sole choke point for reacting to an exhausted free
// list: it consults the advisor for whether a collection is warranted, runs
// one if so, and grows the arena if free room is still below the advisor's
// threshold afterward.
func (e *Engine) ensureCapacity() {
	s := e.StatsStruct()
	if e.advisor.GCRequired(s) {
		e.runGC()
		s = e.StatsStruct()
	}
	if e.arena.freeCount < int32(e.advisor.MinFreeAfterGC(s)) {
		inc := e.advisor.GrowthIncrement(s)
		if inc <= 0 {
			inc = _MINFREENODES
		}
		oldCap := e.arena.capacity()
		e.arena.grow(inc)
		e.metrics.setCapacity(e.arena.capacity())
		e.logger.Info("zbdd: arena grown",
			zap.Int("old_capacity", oldCap),
			zap.Int("new_capacity", e.arena.capacity()),
			zap.Int("increment", inc),
		)
	}
}

// runGC performs a single mark-and-sweep collection, firing the registered
// before/after hooks around it.
func (e *Engine) runGC() {
	before := e.StatsStruct()
	e.callbacks.fireGC(e.callbacks.beforeGC, before)
	freed := e.arena.gc(e.protected.stack)
	e.gcCount++
	// Ids below the free-list high-water mark can be reassigned to an
	// unrelated node after a collection, so anything keyed by id must be
	// invalidated along with it: the operation cache and the count memo.
	e.cache.clear()
	e.countMemo = make(map[int32]*big.Int)
	e.metrics.incGC(freed)
	after := e.StatsStruct()
	e.logger.Debug("zbdd: gc complete",
		zap.Int("freed", freed),
		zap.Int("free", after.Free),
		zap.Int("dead", after.Dead),
	)
	e.callbacks.fireGC(e.callbacks.afterGC, after)
}

// Collect forces a garbage collection regardless of the advisor's opinion.
func (e *Engine) Collect() {
	e.runGC()
}

// GetVar returns the top variable of id, or 0 for the two terminals (0 is
// never a valid variable id).
func (e *Engine) GetVar(id Node) (int32, error) {
	if !e.IsValidZbdd(id) {
		return 0, newError(InvalidZbdd, "getVar: %d is not a valid zbdd", id)
	}
	return e.topVar(id), nil
}

// GetP0 returns the 0-edge of id. The terminals point to themselves.
func (e *Engine) GetP0(id Node) (Node, error) {
	if !e.IsValidZbdd(id) {
		return Empty, newError(InvalidZbdd, "getP0: %d is not a valid zbdd", id)
	}
	if id == Empty || id == Base {
		return id, nil
	}
	return Node(e.arena.get(id).p0), nil
}

// GetP1 returns the 1-edge of id. The terminals point to themselves.
func (e *Engine) GetP1(id Node) (Node, error) {
	if !e.IsValidZbdd(id) {
		return Empty, newError(InvalidZbdd, "getP1: %d is not a valid zbdd", id)
	}
	if id == Empty || id == Base {
		return id, nil
	}
	return Node(e.arena.get(id).p1), nil
}

// Ref increments id's reference count, marking it live.
func (e *Engine) Ref(id Node) {
	e.arena.incRef(id)
}

// Deref decrements id's reference count, marking it dead once it reaches
// zero. A dead node is not reclaimed until the next garbage collection, and
// not reclaimed even then if it remains reachable from a live node.
func (e *Engine) Deref(id Node) {
	e.arena.decRef(id)
}
