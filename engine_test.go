// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import "testing"

// newTestEngine builds an engine roomy enough that none of the small
// deterministic tests ever triggers a collection: tests that chain fresh,
// unacknowledged intermediates across calls rely on that. Tests exercising
// gc and growth build their own engine with a deliberately small capacity
// and follow the Ref/Deref discipline instead.
func newTestEngine(t *testing.T, varnum int32) *Engine {
	t.Helper()
	e, err := New(varnum, WithCapacity(1024))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNewRejectsNegativeVarnum(t *testing.T) {
	if _, err := New(-1); err == nil {
		t.Fatalf("New(-1) should have failed")
	}
}

func TestCreateVarMonotonic(t *testing.T) {
	e := newTestEngine(t, 0)
	v0, err := e.CreateVar()
	if err != nil {
		t.Fatalf("CreateVar: %v", err)
	}
	v1, err := e.CreateVar()
	if err != nil {
		t.Fatalf("CreateVar: %v", err)
	}
	if v1 != v0+1 {
		t.Fatalf("CreateVar not monotonic: %d then %d", v0, v1)
	}
	if !e.IsValidVar(v0) || !e.IsValidVar(v1) {
		t.Fatalf("created variables should be valid")
	}
	if e.IsValidVar(v1 + 1) {
		t.Fatalf("an un-created variable should not be valid")
	}
}

func TestGetNodeCanonicity(t *testing.T) {
	e := newTestEngine(t, 4)
	a, err := e.getNode(2, Empty, Base)
	if err != nil {
		t.Fatalf("getNode: %v", err)
	}
	b, err := e.getNode(2, Empty, Base)
	if err != nil {
		t.Fatalf("getNode: %v", err)
	}
	if a != b {
		t.Fatalf("getNode is not canonical: got %d and %d for identical arguments", a, b)
	}
}

func TestGetNodeZeroSuppression(t *testing.T) {
	e := newTestEngine(t, 4)
	id, err := e.getNode(1, Base, Empty)
	if err != nil {
		t.Fatalf("getNode: %v", err)
	}
	if id != Base {
		t.Fatalf("a node with a 1-edge to Empty must be suppressed to its 0-edge, got %d want %d", id, Base)
	}
}

func TestGetNodeRejectsUnknownVariable(t *testing.T) {
	e := newTestEngine(t, 2)
	if _, err := e.getNode(5, Empty, Base); err == nil {
		t.Fatalf("getNode should reject a variable that was never created")
	}
}

func TestClearResetsSlotsAndVariableCounter(t *testing.T) {
	e := newTestEngine(t, 3)
	capacity := e.arena.capacity()
	if _, err := e.getNode(1, Empty, Base); err != nil {
		t.Fatalf("getNode: %v", err)
	}
	e.Clear()
	if e.arena.capacity() != capacity {
		t.Fatalf("Clear changed capacity: got %d want %d", e.arena.capacity(), capacity)
	}
	if e.Varnum() != 0 {
		t.Fatalf("Clear should reset the variable counter, got varnum %d", e.Varnum())
	}
	if e.IsValidVar(1) {
		t.Fatalf("variable 1 should be invalid after Clear until re-created")
	}
	if !e.IsValidZbdd(Empty) || !e.IsValidZbdd(Base) {
		t.Fatalf("sentinels must remain valid after Clear")
	}
	v, err := e.CreateVar()
	if err != nil {
		t.Fatalf("CreateVar: %v", err)
	}
	if v != 1 {
		t.Fatalf("first variable after Clear should be 1, got %d", v)
	}
}

func TestClearFiresCallbacks(t *testing.T) {
	e := newTestEngine(t, 1)
	var events []string
	e.Callbacks().OnBeforeClear(func() { events = append(events, "before") })
	e.Callbacks().OnAfterClear(func() { events = append(events, "after") })
	e.Callbacks().OnBeforeClear(func() { panic("must be swallowed") })
	e.Clear()
	if len(events) != 2 || events[0] != "before" || events[1] != "after" {
		t.Fatalf("callbacks fired as %v, want [before after]", events)
	}
}

func TestStatsStructReportsProduced(t *testing.T) {
	e := newTestEngine(t, 2)
	before := e.StatsStruct().Produced
	if _, err := e.getNode(1, Empty, Base); err != nil {
		t.Fatalf("getNode: %v", err)
	}
	after := e.StatsStruct().Produced
	if after != before+1 {
		t.Fatalf("Produced = %d, want %d", after, before+1)
	}
}
