// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// topNone is the effective variable position of the two terminals: it
// compares below every real variable id (variables start at 1), so that
// algorithms comparing topVar(f) against topVar(g) need no special terminal
// cases beyond the Empty/Base short-circuits each operation already performs.
// The node with the larger top variable is always the one closer to the root.
const topNone int32 = 0

// topVar reports the top variable of id, or topNone for a terminal.
func (e *Engine) topVar(id Node) int32 {
	if id == Empty || id == Base {
		return topNone
	}
	return e.arena.get(id).variable()
}
