// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// Node is the identifier of a ZBDD: a non-negative integer indexing into an
// Engine's arena. Two values are reserved forever, see Empty and Base.
type Node int32

// Empty is the family containing no combinations.
const Empty Node = 0

// Base is the family containing exactly the empty combination.
const Base Node = 1

// _MAXVAR is the maximal value of a variable id. The 32-bit variable word
// reserves its upper bits for the gc mark bit and the "none" encoding,
// leaving 21 bits for the variable value itself; _VARNONE (the all-ones
// pattern within those 21 bits) is reserved and therefore excluded from the
// range of valid variables.
const _MAXVAR int32 = 0x1FFFFE

// _MARKBIT is set on a node's variable word by the garbage collector's mark
// phase and cleared again during sweep; see §9 "Hash of the top bit".
const _MARKBIT int32 = 0x200000

// _VARMASK isolates the variable value from the mark bit.
const _VARMASK int32 = 0x1FFFFF

// _VARNONE is the variable value used for sentinels and for freed slots.
const _VARNONE int32 = 0x1FFFFF

// _MINFREENODES is the floor, in slots, of the default advisor's free-slot
// threshold after a garbage collection (below which the arena grows) and of
// its growth increment.
const _MINFREENODES int = 20

// _DEFAULTMAXNODEINC is the default limit on how many nodes a single resize
// may add to the arena.
const _DEFAULTMAXNODEINC int = 1 << 20

// _DEFAULTCAPACITY is the initial arena capacity used when the caller does
// not request one explicitly via an Option.
const _DEFAULTCAPACITY int = 128

// _DEFAULTCACHESIZE is the initial capacity of the bounded operation cache.
const _DEFAULTCACHESIZE int = 10000

// opcode identifies an algebraic operation for the purposes of memoization in
// the operation cache. Unary and binary operations share the same key space;
// a cache entry is only ever looked up with the opcode it was stored under.
type opcode uint8

const (
	opSubset0 opcode = iota
	opSubset1
	opChange
	opUnion
	opIntersect
	opDifference
	opMultiply
	opDivide
	opAtomize
	opRemoveBase
)
