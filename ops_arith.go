// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// Multiply returns the family {a ∪ b : a ∈ f, b ∈ g}, the product of two
// families under combination union.
func (e *Engine) Multiply(f, g Node) (Node, error) {
	if !e.IsValidZbdd(f) {
		return Empty, newError(InvalidZbdd, "multiply: %d is not a valid zbdd", f)
	}
	if !e.IsValidZbdd(g) {
		return Empty, newError(InvalidZbdd, "multiply: %d is not a valid zbdd", g)
	}
	e.protected.push(f)
	e.protected.push(g)
	r, err := e.multiply(f, g)
	e.protected.pop(2)
	return r, err
}

// multiply decomposes both operands by v, the smaller of the two top
// variables, and recombines the four partial products as
//
//	f0·g0 ∪ v·(f0·g1 ∪ f1·g0 ∪ f1·g1)
//
// where f0/f1 are f's subsets without and with v (and likewise for g). For
// the operand whose top is exactly v this is just its two edges; for the
// other, subset0/subset1 dig v out from below its top. None of the partial
// products mention v, so the v· prefix is a Change at the very end.
func (e *Engine) multiply(f, g Node) (Node, error) {
	if f == Empty || g == Empty {
		return Empty, nil
	}
	if f == Base {
		return g, nil
	}
	if g == Base {
		return f, nil
	}

	key := cacheKey{op: opMultiply, arg1: int32(f), arg2: int32(g)}
	if key.arg1 > key.arg2 {
		key.arg1, key.arg2 = key.arg2, key.arg1
	}
	if r, ok := e.cacheGet(key); ok {
		return r, nil
	}

	v := e.topVar(f)
	if tg := e.topVar(g); tg < v {
		v = tg
	}

	f0, err := e.subset0(f, v)
	if err != nil {
		return Empty, err
	}
	e.protected.push(f0)
	f1, err := e.subset1(f, v)
	if err != nil {
		e.protected.pop(1)
		return Empty, err
	}
	e.protected.push(f1)
	g0, err := e.subset0(g, v)
	if err != nil {
		e.protected.pop(2)
		return Empty, err
	}
	e.protected.push(g0)
	g1, err := e.subset1(g, v)
	if err != nil {
		e.protected.pop(3)
		return Empty, err
	}
	e.protected.push(g1)

	result, err := e.multiplyCombine(v, f0, f1, g0, g1)
	e.protected.pop(4)
	if err != nil {
		return Empty, err
	}
	e.cache.put(key, result)
	return result, nil
}

func (e *Engine) multiplyCombine(v int32, f0, f1, g0, g1 Node) (Node, error) {
	lo, err := e.multiply(f0, g0)
	if err != nil {
		return Empty, err
	}
	e.protected.push(lo)
	a, err := e.multiply(f0, g1)
	if err != nil {
		e.protected.pop(1)
		return Empty, err
	}
	e.protected.push(a)
	b, err := e.multiply(f1, g0)
	if err != nil {
		e.protected.pop(2)
		return Empty, err
	}
	e.protected.push(b)
	ab, err := e.union(a, b)
	if err != nil {
		e.protected.pop(3)
		return Empty, err
	}
	e.protected.push(ab)
	c, err := e.multiply(f1, g1)
	if err != nil {
		e.protected.pop(4)
		return Empty, err
	}
	e.protected.push(c)
	hi, err := e.union(ab, c)
	if err != nil {
		e.protected.pop(5)
		return Empty, err
	}
	e.protected.push(hi)
	vhi, err := e.change(hi, v)
	if err != nil {
		e.protected.pop(6)
		return Empty, err
	}
	e.protected.push(vhi)
	result, err := e.union(lo, vhi)
	e.protected.pop(7)
	return result, err
}

// Divide returns the quotient of Minato's weak division of f by g: the
// largest family q with Multiply(q, g) ⊆ f.
func (e *Engine) Divide(f, g Node) (Node, error) {
	if !e.IsValidZbdd(f) {
		return Empty, newError(InvalidZbdd, "divide: %d is not a valid zbdd", f)
	}
	if !e.IsValidZbdd(g) {
		return Empty, newError(InvalidZbdd, "divide: %d is not a valid zbdd", g)
	}
	e.protected.push(f)
	e.protected.push(g)
	r, err := e.divide(f, g)
	e.protected.pop(2)
	return r, err
}

func (e *Engine) divide(f, g Node) (Node, error) {
	if g == Base {
		return f, nil
	}
	if f == Empty || f == Base || g == Empty {
		return Empty, nil
	}
	if f == g {
		return Base, nil
	}

	key := cacheKey{op: opDivide, arg1: int32(f), arg2: int32(g)}
	if r, ok := e.cacheGet(key); ok {
		return r, nil
	}

	v := e.topVar(g)
	ng := e.arena.get(g)
	g0, g1 := Node(ng.p0), Node(ng.p1)

	f0, f1, err := e.cofactor(f, v)
	if err != nil {
		return Empty, err
	}
	e.protected.push(f0)
	e.protected.push(f1)

	result, err := e.divide(f1, g1)
	if err != nil {
		e.protected.pop(2)
		return Empty, err
	}
	if result != Empty && g0 != Empty {
		e.protected.push(result)
		q0, qerr := e.divide(f0, g0)
		if qerr != nil {
			e.protected.pop(3)
			return Empty, qerr
		}
		e.protected.push(q0)
		result, err = e.intersect(result, q0)
		e.protected.pop(2)
	}
	e.protected.pop(2)
	if err != nil {
		return Empty, err
	}
	e.cache.put(key, result)
	return result, nil
}

// cofactor splits id into the combinations that do not contain v and the
// combinations that do (v removed from the latter), treating v as a plain
// variable rather than requiring it to be id's own top variable. It
// generalizes Subset0/Subset1 to an arbitrary v, descending through id's
// variables above v to reach it.
func (e *Engine) cofactor(id Node, v int32) (without, with Node, err error) {
	if id == Empty || id == Base {
		if id == Base {
			return Base, Empty, nil
		}
		return Empty, Empty, nil
	}
	top := e.topVar(id)
	if top < v {
		return id, Empty, nil
	}
	n := e.arena.get(id)
	if top == v {
		return Node(n.p0), Node(n.p1), nil
	}
	lo0, lo1, err := e.cofactor(Node(n.p0), v)
	if err != nil {
		return Empty, Empty, err
	}
	e.protected.push(lo0)
	e.protected.push(lo1)
	hi0, hi1, err := e.cofactor(Node(e.arena.get(id).p1), v)
	if err != nil {
		e.protected.pop(2)
		return Empty, Empty, err
	}
	e.protected.push(hi0)
	e.protected.push(hi1)

	without, err = e.getNode(top, lo0, hi0)
	if err != nil {
		e.protected.pop(4)
		return Empty, Empty, err
	}
	e.protected.push(without)
	with, err = e.getNode(top, lo1, hi1)
	e.protected.pop(5)
	return without, with, err
}

// Modulo returns the remainder of dividing f by g: the combinations of f not
// covered by Multiply(Divide(f, g), g). It factors through a single call to
// Divide so that the quotient's own recursive sub-results are computed, and
// cached, exactly once.
func (e *Engine) Modulo(f, g Node) (Node, error) {
	if !e.IsValidZbdd(f) {
		return Empty, newError(InvalidZbdd, "modulo: %d is not a valid zbdd", f)
	}
	if !e.IsValidZbdd(g) {
		return Empty, newError(InvalidZbdd, "modulo: %d is not a valid zbdd", g)
	}
	e.protected.push(f)
	e.protected.push(g)
	defer e.protected.pop(2)

	q, err := e.divide(f, g)
	if err != nil {
		return Empty, err
	}
	e.protected.push(q)
	qg, err := e.multiply(q, g)
	e.protected.pop(1)
	if err != nil {
		return Empty, err
	}
	e.protected.push(qg)
	r, err := e.difference(f, qg)
	e.protected.pop(1)
	return r, err
}
