// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// node is a single arena slot. It plays a different role depending on its
// state:
//
//   - when occupied, vr/p0/p1 describe the ZBDD node, next links to the next
//     node in its unique-table hash chain (0 if last), and refcount encodes
//     its lifetime phase;
//   - when free, next links to the next free slot (0 if last);
//   - the chainHead field of slot k, regardless of whether k itself is
//     occupied or free, is the head of the hash chain for bucket k (0 if
//     empty), so the buckets live inside the arena rather than in a side
//     table and are resized along with it for free.
type node struct {
	vr        int32 // variable, _VARNONE for sentinels and free slots
	p0, p1    int32
	next      int32
	chainHead int32
	refcount  int32 // -1 fresh, 0 dead, k>0 live
}

func (n *node) isMarked() bool {
	return n.vr&_MARKBIT != 0
}

func (n *node) mark() {
	n.vr |= _MARKBIT
}

func (n *node) unmark() {
	n.vr &= _VARMASK
}

// variable returns the node's variable with the mark bit stripped.
func (n *node) variable() int32 {
	return n.vr & _VARMASK
}

func (n *node) occupied() bool {
	return n.variable() != _VARNONE
}
