// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import (
	"fmt"
	"text/tabwriter"

	"bytes"
)

// Stats is a snapshot of an Engine's internal counters, used both for the
// human-readable report returned by Engine.Stats and as the input to a
// CapacityAdvisor's policy decisions.
type Stats struct {
	Capacity    int
	Produced    int64
	Free        int
	Dead        int
	LastVar     int32
	GCCount     int64
	UniqueHit   int64
	UniqueMiss  int64
	UniqueChain int64
	CacheHit    int64
	CacheMiss   int64
}

// Used returns the number of slots not on the free list (capacity minus
// free), the two sentinel slots included.
func (s Stats) Used() int {
	return s.Capacity - s.Free
}

// String renders the stats as a tab-aligned report.
func (s Stats) String() string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Capacity:\t%d\n", s.Capacity)
	fmt.Fprintf(tw, "Produced:\t%d\n", s.Produced)
	fmt.Fprintf(tw, "Free:\t%d\n", s.Free)
	fmt.Fprintf(tw, "Dead:\t%d\n", s.Dead)
	fmt.Fprintf(tw, "Variables:\t%d\n", s.LastVar)
	fmt.Fprintf(tw, "GC count:\t%d\n", s.GCCount)
	fmt.Fprintf(tw, "Unique hit/miss/chain:\t%d / %d / %d\n", s.UniqueHit, s.UniqueMiss, s.UniqueChain)
	fmt.Fprintf(tw, "Cache hit/miss:\t%d / %d\n", s.CacheHit, s.CacheMiss)
	tw.Flush()
	return buf.String()
}
