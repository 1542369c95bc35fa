package hashtab

import (
	"fmt"
	"math"
)

// Stats describes the occupancy of a table at one point in time.
type Stats struct {
	Elems int // stored elements
	Slots int // slot count

	LoadFactor float64 // Elems / Slots
	ChainMax   int     // longest chain
	ChainDev   float64 // standard deviation of chain lengths

	ResizeChecks  int // growth checks performed
	ResizeActions int // rehashes performed
}

// Stats computes occupancy statistics in O(slots + elements).
func (h *Table[T]) Stats() Stats {
	s := Stats{
		Elems:         h.elemCount,
		Slots:         len(h.slots),
		ResizeChecks:  h.resizeChecks,
		ResizeActions: h.resizeActions,
	}
	if s.Slots == 0 {
		return s
	}

	s.LoadFactor = float64(s.Elems) / float64(s.Slots)
	sumsq := 0.0
	for i := range h.slots {
		n := h.slots[i].Len()
		if n > s.ChainMax {
			s.ChainMax = n
		}
		d := float64(n) - s.LoadFactor
		sumsq += d * d
	}
	s.ChainDev = math.Sqrt(sumsq / float64(s.Slots))
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"%d elements in %d slots, load %.2f, longest chain %d (dev %.2f), %d/%d resize actions/checks",
		s.Elems, s.Slots, s.LoadFactor, s.ChainMax, s.ChainDev,
		s.ResizeActions, s.ResizeChecks,
	)
}
