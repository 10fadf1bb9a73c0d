// File: internal/simulation/street.go
// Description: The physical street model. Every location has two bins - one
// for garbage, one for recyclables - filled independently of the day's
// schedule. The serviced bin is projected into the day-relative BinState the
// policy consumes.

package simulation

import "math/rand"

// BinContents counts items physically present in one bin.
type BinContents struct {
	Garbage int
	Recycle int
}

// LocationState is the pair of bins at one curbside location.
type LocationState struct {
	GarbageBin BinContents
	RecycleBin BinContents
}

// Serviced projects the bin collected on the given day into the day-relative
// view: scheduled waste is the matching item type in the serviced bin,
// contamination is the other item type found in that same bin.
func (ls LocationState) Serviced(day DayType) BinState {
	if day == Garbage {
		return BinState{
			HasScheduledWaste: ls.GarbageBin.Garbage > 0,
			IsContaminated:    ls.GarbageBin.Recycle > 0,
		}
	}
	return BinState{
		HasScheduledWaste: ls.RecycleBin.Recycle > 0,
		IsContaminated:    ls.RecycleBin.Garbage > 0,
	}
}

// StreetGenerator fills both bins at each location and serves the projection
// for the run's day type. Each correct item lands with probability pItem per
// bin, each contaminating item with probability pContam per bin; the four
// draws are independent.
type StreetGenerator struct {
	rng     *rand.Rand
	day     DayType
	pItem   float64
	pContam float64
}

func NewStreetGenerator(rng *rand.Rand, day DayType, pItem, pContam float64) *StreetGenerator {
	return &StreetGenerator{rng: rng, day: day, pItem: pItem, pContam: pContam}
}

// NextLocation draws the full two-bin state for the next location. The draw
// order (correct items first, then contamination) is part of the reproducible
// sequence under a fixed seed.
func (g *StreetGenerator) NextLocation() LocationState {
	var ls LocationState
	if g.rng.Float64() < g.pItem {
		ls.GarbageBin.Garbage++
	}
	if g.rng.Float64() < g.pItem {
		ls.RecycleBin.Recycle++
	}
	if g.rng.Float64() < g.pContam {
		ls.GarbageBin.Recycle++
	}
	if g.rng.Float64() < g.pContam {
		ls.RecycleBin.Garbage++
	}
	return ls
}

func (g *StreetGenerator) Generate() BinState {
	return g.NextLocation().Serviced(g.day)
}
