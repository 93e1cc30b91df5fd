// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// getNode returns the canonical node for (v, p0, p1), applying zero
// suppression and enforcing uniqueness via the hash chain rooted at each
// bucket's chainHead. A newly created node starts in the fresh phase
// (refcount -1): it becomes live only once something calls Ref on it.
func (e *Engine) getNode(v int32, p0, p1 Node) (Node, error) {
	if p1 == Empty {
		return p0, nil
	}
	if !e.vars.isValid(v) {
		return Empty, newError(InvalidVar, "variable %d is not registered", v)
	}

	if id, ok := e.lookup(v, p0, p1); ok {
		e.uniqueHit++
		e.metrics.incUniqueHit()
		return id, nil
	}
	e.uniqueMiss++
	e.metrics.incUniqueMiss()

	id := e.arena.allocSlot()
	if id == -1 {
		// A collection triggered here must not reap p0 or p1: either may
		// still be a fresh intermediate the caller has already popped from
		// the protection stack in anticipation of this very call.
		e.protected.push(p0)
		e.protected.push(p1)
		e.ensureCapacity()
		e.protected.pop(2)
		id = e.arena.allocSlot()
		if id == -1 {
			return Empty, newError(CapacityExhausted, "no free node after collection and growth")
		}
	}

	n := e.arena.get(Node(id))
	n.vr = v
	n.p0 = int32(p0)
	n.p1 = int32(p1)
	n.refcount = -1
	e.arena.produced++

	h := hashTriple(v, int32(p0), int32(p1), e.arena.capacity())
	head := e.arena.get(Node(h))
	n.next = head.chainHead
	head.chainHead = id

	return Node(id), nil
}

// lookup walks the hash chain for (v, p0, p1) looking for a canonicity hit.
func (e *Engine) lookup(v int32, p0, p1 Node) (Node, bool) {
	capacity := e.arena.capacity()
	h := hashTriple(v, int32(p0), int32(p1), capacity)
	id := e.arena.get(Node(h)).chainHead
	for id != 0 {
		n := e.arena.get(Node(id))
		if n.variable() == v && n.p0 == int32(p0) && n.p1 == int32(p1) {
			return Node(id), true
		}
		e.uniqueChain++
		id = n.next
	}
	return Empty, false
}
