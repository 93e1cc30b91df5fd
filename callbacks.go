// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// CallbackBus lets callers observe an Engine's lifecycle without coupling to
// its internals: hooks fire around every Clear and every garbage collection.
// A panicking callback is recovered and swallowed, so a misbehaving observer
// cannot take down an otherwise-healthy engine.
type CallbackBus struct {
	beforeClear []func()
	afterClear  []func()
	beforeGC    []func(Stats)
	afterGC     []func(Stats)
}

// OnBeforeClear registers a hook invoked just before Engine.Clear discards
// every node.
func (b *CallbackBus) OnBeforeClear(f func()) {
	b.beforeClear = append(b.beforeClear, f)
}

// OnAfterClear registers a hook invoked just after Engine.Clear completes.
func (b *CallbackBus) OnAfterClear(f func()) {
	b.afterClear = append(b.afterClear, f)
}

// OnBeforeGC registers a hook invoked just before a collection's mark phase,
// given the stats as they stood before collection.
func (b *CallbackBus) OnBeforeGC(f func(Stats)) {
	b.beforeGC = append(b.beforeGC, f)
}

// OnAfterGC registers a hook invoked just after a collection's sweep phase,
// given the stats as they stand after collection.
func (b *CallbackBus) OnAfterGC(f func(Stats)) {
	b.afterGC = append(b.afterGC, f)
}

func (b *CallbackBus) fireClear(hooks []func()) {
	for _, f := range hooks {
		callSafely(f)
	}
}

func (b *CallbackBus) fireGC(hooks []func(Stats), s Stats) {
	for _, f := range hooks {
		callSafelyStats(f, s)
	}
}

func callSafely(f func()) {
	defer func() { recover() }()
	f()
}

func callSafelyStats(f func(Stats), s Stats) {
	defer func() { recover() }()
	f(s)
}
