// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// Union returns the family of combinations present in f, in g, or both.
func (e *Engine) Union(f, g Node) (Node, error) {
	if !e.IsValidZbdd(f) {
		return Empty, newError(InvalidZbdd, "union: %d is not a valid zbdd", f)
	}
	if !e.IsValidZbdd(g) {
		return Empty, newError(InvalidZbdd, "union: %d is not a valid zbdd", g)
	}
	e.protected.push(f)
	e.protected.push(g)
	r, err := e.union(f, g)
	e.protected.pop(2)
	return r, err
}

// union recurses on the larger of the two top variables: the operand whose
// top is higher gets decomposed, the other rides along in the 0-branch. With
// equal tops, both are decomposed at once.
func (e *Engine) union(f, g Node) (Node, error) {
	if f == Empty {
		return g, nil
	}
	if g == Empty {
		return f, nil
	}
	if f == g {
		return f, nil
	}

	key := cacheKey{op: opUnion, arg1: int32(f), arg2: int32(g)}
	if key.arg1 > key.arg2 {
		key.arg1, key.arg2 = key.arg2, key.arg1
	}
	if r, ok := e.cacheGet(key); ok {
		return r, nil
	}

	tf, tg := e.topVar(f), e.topVar(g)
	var top int32
	var lo, hi Node
	var err error

	switch {
	case tf == tg:
		nf, ng := e.arena.get(f), e.arena.get(g)
		f0, f1, g0, g1 := Node(nf.p0), Node(nf.p1), Node(ng.p0), Node(ng.p1)
		top = tf
		lo, err = e.union(f0, g0)
		if err != nil {
			return Empty, err
		}
		e.protected.push(lo)
		hi, err = e.union(f1, g1)
		e.protected.pop(1)
	case tf > tg:
		f0 := Node(e.arena.get(f).p0)
		top = tf
		lo, err = e.union(f0, g)
		if err != nil {
			return Empty, err
		}
		hi = Node(e.arena.get(f).p1)
	default:
		g0 := Node(e.arena.get(g).p0)
		top = tg
		lo, err = e.union(f, g0)
		if err != nil {
			return Empty, err
		}
		hi = Node(e.arena.get(g).p1)
	}
	if err != nil {
		return Empty, err
	}
	result, err := e.getNode(top, lo, hi)
	if err != nil {
		return Empty, err
	}
	e.cache.put(key, result)
	return result, nil
}

// Intersect returns the family of combinations present in both f and g.
func (e *Engine) Intersect(f, g Node) (Node, error) {
	if !e.IsValidZbdd(f) {
		return Empty, newError(InvalidZbdd, "intersect: %d is not a valid zbdd", f)
	}
	if !e.IsValidZbdd(g) {
		return Empty, newError(InvalidZbdd, "intersect: %d is not a valid zbdd", g)
	}
	e.protected.push(f)
	e.protected.push(g)
	r, err := e.intersect(f, g)
	e.protected.pop(2)
	return r, err
}

func (e *Engine) intersect(f, g Node) (Node, error) {
	if f == Empty || g == Empty {
		return Empty, nil
	}
	if f == g {
		return f, nil
	}

	key := cacheKey{op: opIntersect, arg1: int32(f), arg2: int32(g)}
	if key.arg1 > key.arg2 {
		key.arg1, key.arg2 = key.arg2, key.arg1
	}
	if r, ok := e.cacheGet(key); ok {
		return r, nil
	}

	tf, tg := e.topVar(f), e.topVar(g)
	var result Node
	var err error
	switch {
	case tf == tg:
		nf, ng := e.arena.get(f), e.arena.get(g)
		f0, f1, g0, g1 := Node(nf.p0), Node(nf.p1), Node(ng.p0), Node(ng.p1)
		lo, lerr := e.intersect(f0, g0)
		if lerr != nil {
			return Empty, lerr
		}
		e.protected.push(lo)
		hi, herr := e.intersect(f1, g1)
		e.protected.pop(1)
		if herr != nil {
			return Empty, herr
		}
		result, err = e.getNode(tf, lo, hi)
	case tf > tg:
		// f's top never occurs in g, so only f's 0-branch can contribute.
		f0 := Node(e.arena.get(f).p0)
		result, err = e.intersect(f0, g)
	default:
		g0 := Node(e.arena.get(g).p0)
		result, err = e.intersect(f, g0)
	}
	if err != nil {
		return Empty, err
	}
	e.cache.put(key, result)
	return result, nil
}

// Difference returns the family of combinations present in f but not in g.
func (e *Engine) Difference(f, g Node) (Node, error) {
	if !e.IsValidZbdd(f) {
		return Empty, newError(InvalidZbdd, "difference: %d is not a valid zbdd", f)
	}
	if !e.IsValidZbdd(g) {
		return Empty, newError(InvalidZbdd, "difference: %d is not a valid zbdd", g)
	}
	e.protected.push(f)
	e.protected.push(g)
	r, err := e.difference(f, g)
	e.protected.pop(2)
	return r, err
}

func (e *Engine) difference(f, g Node) (Node, error) {
	if f == Empty {
		return Empty, nil
	}
	if g == Empty {
		return f, nil
	}
	if f == g {
		return Empty, nil
	}

	key := cacheKey{op: opDifference, arg1: int32(f), arg2: int32(g)}
	if r, ok := e.cacheGet(key); ok {
		return r, nil
	}

	tf, tg := e.topVar(f), e.topVar(g)
	var result Node
	var err error
	switch {
	case tf == tg:
		nf, ng := e.arena.get(f), e.arena.get(g)
		f0, f1, g0, g1 := Node(nf.p0), Node(nf.p1), Node(ng.p0), Node(ng.p1)
		lo, lerr := e.difference(f0, g0)
		if lerr != nil {
			return Empty, lerr
		}
		e.protected.push(lo)
		hi, herr := e.difference(f1, g1)
		e.protected.pop(1)
		if herr != nil {
			return Empty, herr
		}
		result, err = e.getNode(tf, lo, hi)
	case tf > tg:
		// Combinations of f containing f's top cannot appear in g, so the
		// whole 1-branch survives untouched.
		f0 := Node(e.arena.get(f).p0)
		f1 := Node(e.arena.get(f).p1)
		lo, lerr := e.difference(f0, g)
		if lerr != nil {
			return Empty, lerr
		}
		result, err = e.getNode(tf, lo, f1)
	default:
		g0 := Node(e.arena.get(g).p0)
		result, err = e.difference(f, g0)
	}
	if err != nil {
		return Empty, err
	}
	e.cache.put(key, result)
	return result, nil
}
