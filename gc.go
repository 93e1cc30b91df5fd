// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// gc runs a mark-and-sweep collection over the arena. Roots are every node
// with refcount > 0 together with every id currently pushed on protected (the
// operations' intermediate-node protection stack, see protect in
// refcount.go). A node reachable from a root survives even if its own
// refcount has dropped to zero: the dead phase only means "nobody outside
// the ZBDD holds this directly", not "unreachable". Only nodes that are both
// unmarked and occupied going into the sweep are reclaimed.
//
// gc always rebuilds every hash chain afterward, since the set of occupied
// slots has changed.
func (a *arena) gc(protected []int32) (freed int) {
	stack := make([]int32, 0, 64)
	for id := 2; id < len(a.nodes); id++ {
		n := &a.nodes[id]
		if n.occupied() && n.refcount > 0 {
			stack = append(stack, int32(id))
		}
	}
	for _, id := range protected {
		if id >= 2 {
			stack = append(stack, id)
		}
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &a.nodes[id]
		if n.isMarked() {
			continue
		}
		n.mark()
		if n.p0 >= 2 {
			stack = append(stack, n.p0)
		}
		if n.p1 >= 2 {
			stack = append(stack, n.p1)
		}
	}

	a.freeHead = 0
	a.freeCount = 0
	a.deadCount = 0
	for id := len(a.nodes) - 1; id >= 2; id-- {
		n := &a.nodes[id]
		switch {
		case !n.occupied():
			n.next = a.freeHead
			a.freeHead = int32(id)
			a.freeCount++
		case n.isMarked():
			n.unmark()
			if n.refcount == 0 {
				a.deadCount++
			}
		default:
			n.vr = _VARNONE
			n.p0 = -1
			n.p1 = 0
			n.next = a.freeHead
			a.freeHead = int32(id)
			a.freeCount++
			freed++
		}
	}
	a.rehashAll()
	return freed
}
