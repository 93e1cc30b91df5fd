// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// CapacityAdvisor decides how an Engine should react when the arena's free
// list runs dry: whether a garbage collection is warranted first, and by how
// much to grow the arena if collection alone will not free enough room. Apart
// from InitialCapacity, which New reads once, it is consulted from
// ensureCapacity only, so every resize decision funnels through a single
// choke point.
type CapacityAdvisor interface {
	// InitialCapacity returns the arena size to allocate when an Engine is
	// constructed without an explicit WithCapacity option.
	InitialCapacity() int

	// GCRequired reports whether a collection should be attempted before
	// considering growth, given the current stats.
	GCRequired(s Stats) bool

	// MinFreeAfterGC is the number of free slots that must remain after a
	// collection for growth to be skipped.
	MinFreeAfterGC(s Stats) int

	// GrowthIncrement returns how many additional slots to append when
	// growth is required.
	GrowthIncrement(s Stats) int
}

// defaultAdvisor is the policy used when an Engine is not given one
// explicitly. The thresholds favor collecting over growing once the arena is
// large, and generous growth while it is small.
type defaultAdvisor struct {
	initialCapacity int
}

func newDefaultAdvisor() *defaultAdvisor {
	return &defaultAdvisor{initialCapacity: _DEFAULTCAPACITY}
}

func (d *defaultAdvisor) InitialCapacity() int {
	if d.initialCapacity < 8 {
		return 8
	}
	return d.initialCapacity
}

// GCRequired asks for a collection whenever the arena has grown past 250,000
// slots, or whenever more than one tenth of its slots are dead (live nodes
// that have been fully dereferenced but not yet reclaimed).
func (d *defaultAdvisor) GCRequired(s Stats) bool {
	if s.Capacity > 250000 {
		return true
	}
	return s.Dead > s.Capacity/10
}

// MinFreeAfterGC requires five percent of capacity (floored at
// _MINFREENODES) to be free after a collection before growth can be skipped.
func (d *defaultAdvisor) MinFreeAfterGC(s Stats) int {
	min := s.Capacity / 20
	if min < _MINFREENODES {
		min = _MINFREENODES
	}
	return min
}

// GrowthIncrement appends one and a half times the current capacity while
// under 500,000 slots, and thirty percent beyond that, capped at
// _DEFAULTMAXNODEINC per step.
func (d *defaultAdvisor) GrowthIncrement(s Stats) int {
	var inc int
	if s.Capacity < 500000 {
		inc = s.Capacity + s.Capacity/2
	} else {
		inc = (s.Capacity * 3) / 10
	}
	if inc < _MINFREENODES {
		inc = _MINFREENODES
	}
	if inc > _DEFAULTMAXNODEINC {
		inc = _DEFAULTMAXNODEINC
	}
	return inc
}
