// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import (
	"fmt"
	"strings"
)

// LiteralResolver turns variable ids into display text. Name maps a single
// variable to its name; CubeString renders a whole combination, given its
// variables sorted descending as VisitCubes yields them. A resolver never
// mutates engine state. An Engine's default resolver prints the decimal id
// prefixed with "v" (variable 3 is "v3").
type LiteralResolver interface {
	Name(v int32) string
	CubeString(vars []int32) string
}

type defaultResolver struct{}

func (defaultResolver) Name(v int32) string { return fmt.Sprintf("v%d", v) }

func (r defaultResolver) CubeString(vars []int32) string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = r.Name(v)
	}
	return "{" + strings.Join(names, ",") + "}"
}

// varRegistry hands out variable ids in increasing order and bounds-checks
// them; a variable, once granted, can never be retracted short of Clear. It
// also keeps the optional per-variable payloads, so a caller can hang a
// domain object off each variable and get it back when rendering cubes.
type varRegistry struct {
	count    int32
	resolver LiteralResolver
	payloads map[int32]interface{}
}

// newVarRegistry returns a registry with initial variables 1..initial
// already allocated.
func newVarRegistry(initial int32, resolver LiteralResolver) *varRegistry {
	if resolver == nil {
		resolver = defaultResolver{}
	}
	return &varRegistry{count: initial, resolver: resolver}
}

// CreateVar allocates and returns a fresh variable id, extending the
// registry's count by one. Variable ids start at 1.
func (r *varRegistry) CreateVar() (int32, error) {
	if r.count >= _MAXVAR {
		return 0, newError(InvalidVar, "variable space exhausted at %d", r.count)
	}
	r.count++
	return r.count, nil
}

// Varnum reports how many variables have been created so far.
func (r *varRegistry) Varnum() int32 {
	return r.count
}

func (r *varRegistry) isValid(v int32) bool {
	return v >= 1 && v <= r.count
}

// reset forgets every variable and payload, returning the counter to zero.
// The resolver is kept: it names ids, not specific variables.
func (r *varRegistry) reset() {
	r.count = 0
	r.payloads = nil
}

func (r *varRegistry) setPayload(v int32, payload interface{}) {
	if r.payloads == nil {
		r.payloads = make(map[int32]interface{})
	}
	r.payloads[v] = payload
}

func (r *varRegistry) payload(v int32) (interface{}, bool) {
	p, ok := r.payloads[v]
	return p, ok
}

func (r *varRegistry) Name(v int32) string {
	return r.resolver.Name(v)
}

// SetVarPayload attaches an arbitrary payload to variable v, replacing any
// previous one. Payloads are purely caller-facing: the engine stores them and
// hands them back, nothing more.
func (e *Engine) SetVarPayload(v int32, payload interface{}) error {
	if !e.vars.isValid(v) {
		return newError(InvalidVar, "setVarPayload: variable %d is not registered", v)
	}
	e.vars.setPayload(v, payload)
	return nil
}

// VarPayload returns the payload attached to v, if any.
func (e *Engine) VarPayload(v int32) (interface{}, bool, error) {
	if !e.vars.isValid(v) {
		return nil, false, newError(InvalidVar, "varPayload: variable %d is not registered", v)
	}
	p, ok := e.vars.payload(v)
	return p, ok, nil
}

// VarName resolves v's display name through the engine's LiteralResolver.
func (e *Engine) VarName(v int32) (string, error) {
	if !e.vars.isValid(v) {
		return "", newError(InvalidVar, "varName: variable %d is not registered", v)
	}
	return e.vars.Name(v), nil
}

// CubeString renders a single combination through the engine's
// LiteralResolver. The variables are expected sorted descending, the order
// VisitCubes delivers them in.
func (e *Engine) CubeString(vars []int32) (string, error) {
	for _, v := range vars {
		if !e.vars.isValid(v) {
			return "", newError(InvalidVar, "cubeString: variable %d is not registered", v)
		}
	}
	return e.vars.resolver.CubeString(vars), nil
}
