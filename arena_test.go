// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import "testing"

func TestNewArenaSentinels(t *testing.T) {
	a := newArena(16)
	if a.capacity() != 16 {
		t.Fatalf("capacity = %d, want 16", a.capacity())
	}
	empty := a.get(Empty)
	base := a.get(Base)
	if empty.refcount != -1 || base.refcount != -1 {
		t.Fatalf("sentinels must start in the fresh phase, got empty=%d base=%d", empty.refcount, base.refcount)
	}
	if empty.occupied() || base.occupied() {
		t.Fatalf("sentinels must never be occupied, since that would make them eligible for unique-table hits")
	}
}

func TestArenaMinimumCapacity(t *testing.T) {
	a := newArena(1)
	if a.capacity() < 8 {
		t.Fatalf("capacity = %d, want at least 8", a.capacity())
	}
}

func TestArenaAllocAndFreeList(t *testing.T) {
	a := newArena(8)
	var ids []int32
	for {
		id := a.allocSlot()
		if id == -1 {
			break
		}
		ids = append(ids, id)
	}
	if len(ids) != 6 {
		t.Fatalf("allocated %d slots from capacity 8 (2 reserved for sentinels), want 6", len(ids))
	}
	seen := make(map[int32]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("slot %d allocated twice", id)
		}
		seen[id] = true
	}
}

func TestArenaGrowPreservesIds(t *testing.T) {
	a := newArena(8)
	id := a.allocSlot()
	a.nodes[id] = node{vr: 3, p0: int32(Empty), p1: int32(Base), refcount: -1}
	a.grow(16)
	if a.capacity() != 24 {
		t.Fatalf("capacity after grow = %d, want 24", a.capacity())
	}
	n := a.get(Node(id))
	if n.variable() != 3 || n.p0 != int32(Empty) || n.p1 != int32(Base) {
		t.Fatalf("grow must preserve existing node contents at the same id")
	}
}

func TestArenaRehashAllFindsOccupiedNode(t *testing.T) {
	a := newArena(8)
	id := a.allocSlot()
	a.nodes[id] = node{vr: 5, p0: int32(Empty), p1: int32(Base), refcount: -1}
	a.rehashAll()
	h := hashTriple(5, int32(Empty), int32(Base), a.capacity())
	chain := a.get(Node(h)).chainHead
	found := false
	for chain != 0 {
		if chain == id {
			found = true
			break
		}
		chain = a.get(Node(chain)).next
	}
	if !found {
		t.Fatalf("rehashAll did not place node %d into its bucket", id)
	}
}
