// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import "testing"

func TestRefcountLifetimePhases(t *testing.T) {
	e := newTestEngine(t, 2)
	id, err := e.getNode(1, Empty, Base)
	if err != nil {
		t.Fatalf("getNode: %v", err)
	}
	if e.arena.refState(id) != -1 {
		t.Fatalf("a freshly created node should report the fresh phase (-1), got %d", e.arena.refState(id))
	}
	e.Ref(id)
	if e.arena.refState(id) != 1 {
		t.Fatalf("after one Ref, refcount should be 1, got %d", e.arena.refState(id))
	}
	e.Ref(id)
	if e.arena.refState(id) != 2 {
		t.Fatalf("after two Refs, refcount should be 2, got %d", e.arena.refState(id))
	}
	e.Deref(id)
	if e.arena.refState(id) != 1 {
		t.Fatalf("after one Deref from 2, refcount should be 1, got %d", e.arena.refState(id))
	}
	e.Deref(id)
	if e.arena.refState(id) != 0 {
		t.Fatalf("after the final Deref, a node should reach the dead phase (0), got %d", e.arena.refState(id))
	}
	if e.arena.deadCount != 1 {
		t.Fatalf("dead count should track the single dead node, got %d", e.arena.deadCount)
	}
	e.Ref(id) // revival: dead nodes stay canonical until collected
	if e.arena.refState(id) != 1 || e.arena.deadCount != 0 {
		t.Fatalf("reviving a dead node should restore live(1) and drop the dead count, got refcount %d dead %d",
			e.arena.refState(id), e.arena.deadCount)
	}
}

func TestRefcountFloorNeverNegative(t *testing.T) {
	e := newTestEngine(t, 2)
	id, err := e.getNode(1, Empty, Base)
	if err != nil {
		t.Fatalf("getNode: %v", err)
	}
	e.Ref(id)
	e.Deref(id) // live(1) -> dead
	e.Deref(id) // dead nodes must not be driven further by extra Derefs
	if e.arena.refState(id) != 0 {
		t.Fatalf("refcount must floor at 0 (dead), got %d", e.arena.refState(id))
	}
}

func TestRefcountSentinelsAreNoops(t *testing.T) {
	e := newTestEngine(t, 1)
	e.Ref(Empty)
	e.Ref(Base)
	e.Deref(Empty)
	e.Deref(Base)
	if e.arena.refState(Empty) != 1 || e.arena.refState(Base) != 1 {
		t.Fatalf("sentinels must always report live, regardless of Ref/Deref calls")
	}
}

func TestProtectStack(t *testing.T) {
	var p protect
	p.push(10)
	p.push(20)
	if len(p.stack) != 2 {
		t.Fatalf("protect stack length = %d, want 2", len(p.stack))
	}
	p.pop(1)
	if len(p.stack) != 1 || p.stack[0] != 10 {
		t.Fatalf("pop(1) should leave [10], got %v", p.stack)
	}
	p.reset()
	if len(p.stack) != 0 {
		t.Fatalf("reset should empty the stack")
	}
}
