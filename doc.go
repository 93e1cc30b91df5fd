// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package zbdd implements Zero-suppressed Binary Decision Diagrams (ZBDD), a
data structure for representing families of finite sets (equivalently,
combinations of Boolean variables) with heavy structural sharing.

Basics

A ZBDD is a DAG of nodes, each carrying a variable and two successors: the
0-edge (variable absent) and the 1-edge (variable present). Unlike an
ordinary BDD, a node whose 1-edge points to the empty family is never
materialized: it collapses to its 0-edge. This zero-suppression rule makes
ZBDD especially compact for sparse families, where most variables are
absent from most combinations.

Nodes live in a single flat arena per Engine and are identified by a
non-negative integer, the Node id. Two ids are reserved forever: Empty (the
family with no combinations) and Base (the family containing only the empty
combination). All other nodes are built through the unique table, which
hash-conses triples (variable, p0, p1) so that at most one live node ever
exists for a given triple.

Lifetime

Nodes are not garbage collected the moment they become unreachable from
every root. Instead each node has an explicit reference count with three
phases: fresh (just built, not yet acknowledged by any caller), live (held
by one or more callers via Ref), and dead (was live, now not, but still
canonical until the next collection). A garbage collection is considered
only when the arena's free-list is exhausted, where the CapacityAdvisor
decides between collecting and growing; Engine.Collect forces one at any
time. A collection reclaims every node that is not live (fresh or dead) and
not reachable from a live node or from an operation's protected
intermediates.

Concurrency

Engine is not safe for concurrent use; wrap it with Atomic (see
threadsafe.go) to serialize access from multiple goroutines, including
around composite sequences of calls via Atomic.RunAtomic.
*/
package zbdd
