// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// Subset0 returns the family of combinations in id that do not contain v,
// with v itself dropped from consideration.
func (e *Engine) Subset0(id Node, v int32) (Node, error) {
	if !e.IsValidZbdd(id) {
		return Empty, newError(InvalidZbdd, "subset0: %d is not a valid zbdd", id)
	}
	if !e.vars.isValid(v) {
		return Empty, newError(InvalidVar, "subset0: variable %d is not registered", v)
	}
	e.protected.push(id)
	r, err := e.subset0(id, v)
	e.protected.pop(1)
	return r, err
}

func (e *Engine) subset0(id Node, v int32) (Node, error) {
	if id == Empty || id == Base {
		return id, nil
	}
	n := e.arena.get(id)
	top := n.variable()
	if top < v {
		return id, nil
	}
	if top == v {
		return Node(n.p0), nil
	}

	key := cacheKey{op: opSubset0, arg1: int32(id), arg2: v}
	if r, ok := e.cacheGet(key); ok {
		return r, nil
	}

	p0, p1 := Node(n.p0), Node(n.p1)
	lo, err := e.subset0(p0, v)
	if err != nil {
		return Empty, err
	}
	e.protected.push(lo)
	hi, err := e.subset0(p1, v)
	e.protected.pop(1)
	if err != nil {
		return Empty, err
	}
	r, err := e.getNode(top, lo, hi)
	if err != nil {
		return Empty, err
	}
	e.cache.put(key, r)
	return r, nil
}

// Subset1 returns the family of combinations in id that contain v, with v
// itself dropped from consideration (so a combination {v, a, b} becomes
// {a, b}).
func (e *Engine) Subset1(id Node, v int32) (Node, error) {
	if !e.IsValidZbdd(id) {
		return Empty, newError(InvalidZbdd, "subset1: %d is not a valid zbdd", id)
	}
	if !e.vars.isValid(v) {
		return Empty, newError(InvalidVar, "subset1: variable %d is not registered", v)
	}
	e.protected.push(id)
	r, err := e.subset1(id, v)
	e.protected.pop(1)
	return r, err
}

func (e *Engine) subset1(id Node, v int32) (Node, error) {
	if id == Empty || id == Base {
		return Empty, nil
	}
	n := e.arena.get(id)
	top := n.variable()
	if top < v {
		return Empty, nil
	}
	if top == v {
		return Node(n.p1), nil
	}

	key := cacheKey{op: opSubset1, arg1: int32(id), arg2: v}
	if r, ok := e.cacheGet(key); ok {
		return r, nil
	}

	p0, p1 := Node(n.p0), Node(n.p1)
	lo, err := e.subset1(p0, v)
	if err != nil {
		return Empty, err
	}
	e.protected.push(lo)
	hi, err := e.subset1(p1, v)
	e.protected.pop(1)
	if err != nil {
		return Empty, err
	}
	r, err := e.getNode(top, lo, hi)
	if err != nil {
		return Empty, err
	}
	e.cache.put(key, r)
	return r, nil
}

// Change toggles the membership of v in every combination of id: a
// combination containing v loses it, one missing it gains it.
func (e *Engine) Change(id Node, v int32) (Node, error) {
	if !e.IsValidZbdd(id) {
		return Empty, newError(InvalidZbdd, "change: %d is not a valid zbdd", id)
	}
	if !e.vars.isValid(v) {
		return Empty, newError(InvalidVar, "change: variable %d is not registered", v)
	}
	e.protected.push(id)
	r, err := e.change(id, v)
	e.protected.pop(1)
	return r, err
}

func (e *Engine) change(id Node, v int32) (Node, error) {
	if id == Empty {
		return Empty, nil
	}
	if id == Base {
		return e.getNode(v, Empty, Base)
	}
	n := e.arena.get(id)
	top := n.variable()
	if top < v {
		return e.getNode(v, Empty, id)
	}
	if top == v {
		return e.getNode(v, Node(n.p1), Node(n.p0))
	}

	key := cacheKey{op: opChange, arg1: int32(id), arg2: v}
	if r, ok := e.cacheGet(key); ok {
		return r, nil
	}

	p0, p1 := Node(n.p0), Node(n.p1)
	lo, err := e.change(p0, v)
	if err != nil {
		return Empty, err
	}
	e.protected.push(lo)
	hi, err := e.change(p1, v)
	e.protected.pop(1)
	if err != nil {
		return Empty, err
	}
	r, err := e.getNode(top, lo, hi)
	if err != nil {
		return Empty, err
	}
	e.cache.put(key, r)
	return r, nil
}

// Cube returns the family containing exactly the single combination
// {vars...}. Duplicate variables are collapsed; order does not matter. The
// chain is built bottom-up, smallest variable first, so each getNode call
// wraps a strictly larger variable around the chain so far.
func (e *Engine) Cube(vars []int32) (Node, error) {
	seen := make(map[int32]bool, len(vars))
	uniq := make([]int32, 0, len(vars))
	for _, v := range vars {
		if !e.vars.isValid(v) {
			return Empty, newError(InvalidVar, "cube: variable %d is not registered", v)
		}
		if !seen[v] {
			seen[v] = true
			uniq = append(uniq, v)
		}
	}
	sortAscending(uniq)

	acc := Base
	for _, v := range uniq {
		e.protected.push(acc)
		next, err := e.getNode(v, Empty, acc)
		e.protected.pop(1)
		if err != nil {
			return Empty, err
		}
		acc = next
	}
	return acc, nil
}

func sortAscending(vs []int32) {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vs[j-1] > vs[j]; j-- {
			vs[j-1], vs[j] = vs[j], vs[j-1]
		}
	}
}
