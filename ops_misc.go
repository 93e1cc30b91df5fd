// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import (
	"math/big"
	"sort"
)

// Atomize returns the family of singleton combinations {v}, one for every
// variable v that appears in any combination of f.
func (e *Engine) Atomize(f Node) (Node, error) {
	if !e.IsValidZbdd(f) {
		return Empty, newError(InvalidZbdd, "atomize: %d is not a valid zbdd", f)
	}
	e.protected.push(f)
	r, err := e.atomize(f)
	e.protected.pop(1)
	return r, err
}

func (e *Engine) atomize(id Node) (Node, error) {
	if id == Empty || id == Base {
		return Empty, nil
	}

	key := cacheKey{op: opAtomize, arg1: int32(id)}
	if r, ok := e.cacheGet(key); ok {
		return r, nil
	}

	n := e.arena.get(id)
	v := n.variable()

	lo, err := e.atomize(Node(n.p0))
	if err != nil {
		return Empty, err
	}
	e.protected.push(lo)
	hi, err := e.atomize(Node(e.arena.get(id).p1))
	if err != nil {
		e.protected.pop(1)
		return Empty, err
	}
	e.protected.push(hi)
	u, err := e.union(lo, hi)
	if err != nil {
		e.protected.pop(2)
		return Empty, err
	}
	e.protected.push(u)
	// v is id's top variable, so it is strictly larger than anything in u and
	// the union below reduces to grafting {v} onto u's 0-spine.
	singleton, err := e.getNode(v, Empty, Base)
	if err != nil {
		e.protected.pop(3)
		return Empty, err
	}
	e.protected.push(singleton)
	result, err := e.union(u, singleton)
	e.protected.pop(4)
	if err != nil {
		return Empty, err
	}
	e.cache.put(key, result)
	return result, nil
}

// RemoveBase returns f with the empty combination removed, if present. The
// empty combination lives at the end of the 0-spine, so only the chain of
// 0-edges down to the terminal is rebuilt; every 1-branch is shared as-is.
func (e *Engine) RemoveBase(f Node) (Node, error) {
	if !e.IsValidZbdd(f) {
		return Empty, newError(InvalidZbdd, "removeBase: %d is not a valid zbdd", f)
	}
	e.protected.push(f)
	r, err := e.removeBase(f)
	e.protected.pop(1)
	return r, err
}

func (e *Engine) removeBase(id Node) (Node, error) {
	if id == Empty || id == Base {
		return Empty, nil
	}

	key := cacheKey{op: opRemoveBase, arg1: int32(id)}
	if r, ok := e.cacheGet(key); ok {
		return r, nil
	}

	n := e.arena.get(id)
	top := n.variable()
	p1 := Node(n.p1)
	lo, err := e.removeBase(Node(n.p0))
	if err != nil {
		return Empty, err
	}
	result, err := e.getNode(top, lo, p1)
	if err != nil {
		return Empty, err
	}
	e.cache.put(key, result)
	return result, nil
}

// Contains reports whether g, taken as a family of combinations, is a subset
// of f: both non-empty, and either identical or with their intersection
// equal to g.
func (e *Engine) Contains(f, g Node) (bool, error) {
	if !e.IsValidZbdd(f) {
		return false, newError(InvalidZbdd, "contains: %d is not a valid zbdd", f)
	}
	if !e.IsValidZbdd(g) {
		return false, newError(InvalidZbdd, "contains: %d is not a valid zbdd", g)
	}
	if f == Empty || g == Empty {
		return false, nil
	}
	if f == g {
		return true, nil
	}
	e.protected.push(f)
	e.protected.push(g)
	inter, err := e.intersect(f, g)
	e.protected.pop(2)
	if err != nil {
		return false, err
	}
	return inter == g, nil
}

// ContainsCombination reports whether vars, taken as a single combination, is
// a member of family f: an auxiliary membership test built from a direct
// walk rather than one of the named algebraic operations.
func (e *Engine) ContainsCombination(f Node, vars []int32) (bool, error) {
	if !e.IsValidZbdd(f) {
		return false, newError(InvalidZbdd, "containsCombination: %d is not a valid zbdd", f)
	}
	sorted := make([]int32, len(vars))
	copy(sorted, vars)
	for _, v := range sorted {
		if !e.vars.isValid(v) {
			return false, newError(InvalidVar, "containsCombination: variable %d is not registered", v)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return false, newError(InvalidVar, "containsCombination: duplicate variable %d in combination", sorted[i])
		}
	}
	return e.containsCombination(f, sorted), nil
}

// containsCombination walks f in variable order, vars sorted descending to
// match the top-down order of the DAG. No allocation happens on this path, so
// no protection is needed.
func (e *Engine) containsCombination(id Node, vars []int32) bool {
	if len(vars) == 0 {
		for id != Empty && id != Base {
			id = Node(e.arena.get(id).p0)
		}
		return id == Base
	}
	if id == Empty || id == Base {
		return false
	}
	n := e.arena.get(id)
	top := n.variable()
	v := vars[0]
	if top < v {
		return false
	}
	if top > v {
		return e.containsCombination(Node(n.p0), vars)
	}
	return e.containsCombination(Node(n.p1), vars[1:])
}

// Count returns the number of distinct combinations in family f. It can
// exceed the range of any fixed-width integer for a sufficiently dense
// family, which is the entire point of representing it as a ZBDD instead of
// enumerating it.
func (e *Engine) Count(f Node) (*big.Int, error) {
	if !e.IsValidZbdd(f) {
		return nil, newError(InvalidZbdd, "count: %d is not a valid zbdd", f)
	}
	return e.count(f), nil
}

func (e *Engine) count(id Node) *big.Int {
	if id == Empty {
		return big.NewInt(0)
	}
	if id == Base {
		return big.NewInt(1)
	}
	if v, ok := e.countMemo[int32(id)]; ok {
		return v
	}
	n := e.arena.get(id)
	c0 := e.count(Node(n.p0))
	c1 := e.count(Node(n.p1))
	sum := new(big.Int).Add(c0, c1)
	e.countMemo[int32(id)] = sum
	return sum
}
