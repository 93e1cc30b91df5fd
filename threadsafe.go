// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import (
	"math/big"
	"sync"
)

// Atomic wraps an Engine with a mutex so it can be shared across goroutines.
// Every exported method takes the lock for the duration of a single engine
// call; RunAtomic additionally lets a caller run a whole sequence of calls
// under one critical section, which matters whenever an intermediate Node id
// returned by one call must stay valid until it is consumed by the next
// (concurrent Ref/Deref/Collect activity could otherwise reclaim it in
// between).
type Atomic struct {
	mu     sync.Mutex
	engine *Engine
}

// NewAtomic wraps an existing Engine for concurrent use.
func NewAtomic(e *Engine) *Atomic {
	return &Atomic{engine: e}
}

// RunAtomic runs fn with the engine locked, passing the underlying Engine so
// fn can freely chain multiple operations without any other goroutine
// observing an intermediate state.
func (a *Atomic) RunAtomic(fn func(e *Engine) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn(a.engine)
}

func (a *Atomic) CreateVar() (v int32, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.CreateVar()
}

func (a *Atomic) Varnum() int32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Varnum()
}

func (a *Atomic) IsValidVar(v int32) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.IsValidVar(v)
}

func (a *Atomic) IsValidZbdd(id Node) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.IsValidZbdd(id)
}

func (a *Atomic) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.engine.Clear()
}

func (a *Atomic) Collect() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.engine.Collect()
}

func (a *Atomic) Ref(id Node) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.engine.Ref(id)
}

func (a *Atomic) Deref(id Node) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.engine.Deref(id)
}

func (a *Atomic) Stats() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Stats()
}

func (a *Atomic) StatsStruct() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.StatsStruct()
}

func (a *Atomic) Subset0(id Node, v int32) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Subset0(id, v)
}

func (a *Atomic) Subset1(id Node, v int32) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Subset1(id, v)
}

func (a *Atomic) Change(id Node, v int32) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Change(id, v)
}

func (a *Atomic) Cube(vars []int32) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Cube(vars)
}

func (a *Atomic) Union(f, g Node) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Union(f, g)
}

func (a *Atomic) Intersect(f, g Node) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Intersect(f, g)
}

func (a *Atomic) Difference(f, g Node) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Difference(f, g)
}

func (a *Atomic) Multiply(f, g Node) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Multiply(f, g)
}

func (a *Atomic) Divide(f, g Node) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Divide(f, g)
}

func (a *Atomic) Modulo(f, g Node) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Modulo(f, g)
}

func (a *Atomic) Atomize(f Node) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Atomize(f)
}

func (a *Atomic) RemoveBase(f Node) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.RemoveBase(f)
}

func (a *Atomic) Contains(f, g Node) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Contains(f, g)
}

func (a *Atomic) ContainsCombination(f Node, vars []int32) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.ContainsCombination(f, vars)
}

func (a *Atomic) Count(f Node) (*big.Int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Count(f)
}

func (a *Atomic) GetVar(id Node) (int32, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.GetVar(id)
}

func (a *Atomic) GetP0(id Node) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.GetP0(id)
}

func (a *Atomic) GetP1(id Node) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.GetP1(id)
}

// VisitCubes holds the lock for the whole enumeration: the visitor must not
// call back into this Atomic, or it will deadlock. Use RunAtomic for visitors
// that need further engine calls per cube.
func (a *Atomic) VisitCubes(f Node, visit func(cube []int32) bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.VisitCubes(f, visit)
}

// VisitCubeZbdds holds the lock for the whole enumeration, like VisitCubes.
func (a *Atomic) VisitCubeZbdds(f Node, visit func(cube Node) bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.VisitCubeZbdds(f, visit)
}

func (a *Atomic) CalculateNodeDependency() []Node {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.CalculateNodeDependency()
}

func (a *Atomic) SetVarPayload(v int32, payload interface{}) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.SetVarPayload(v, payload)
}

func (a *Atomic) VarPayload(v int32) (interface{}, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.VarPayload(v)
}

func (a *Atomic) VarName(v int32) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.VarName(v)
}

func (a *Atomic) CubeString(vars []int32) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.CubeString(vars)
}
