// File: internal/simulation/types.go
package simulation

import (
	"fmt"
	"strings"
)

// DayType selects which waste stream is serviced for the whole run.
// It is fixed for a simulation and supplied by the caller after boundary
// validation; the core never interprets raw user text itself.
type DayType int

const (
	Garbage DayType = iota
	Recycle
)

func (d DayType) String() string {
	switch d {
	case Garbage:
		return "garbage"
	case Recycle:
		return "recycle"
	default:
		return fmt.Sprintf("DayType(%d)", int(d))
	}
}

// ParseDayType maps user-facing text to a DayType. This is the boundary
// validation the CLI layer uses; an unrecognized value never reaches the
// policy.
func ParseDayType(s string) (DayType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "garbage", "g":
		return Garbage, nil
	case "recycle", "r":
		return Recycle, nil
	default:
		return 0, fmt.Errorf("unrecognized day type %q (want %q or %q)", s, Garbage, Recycle)
	}
}

// Action is the agent's decision at one location.
type Action int

const (
	Collect Action = iota
	Skip
)

func (a Action) String() string {
	switch a {
	case Collect:
		return "collect"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// FineReason identifies why a fine was issued at a location.
type FineReason int

const (
	ReasonUncollected FineReason = iota
	ReasonContamination
)

func (r FineReason) String() string {
	switch r {
	case ReasonUncollected:
		return "uncollected"
	case ReasonContamination:
		return "contamination"
	default:
		return fmt.Sprintf("FineReason(%d)", int(r))
	}
}

// BinState is the day-relative view of one location's serviced bin.
// HasScheduledWaste reports waste matching today's DayType; IsContaminated
// reports waste of the wrong type mixed into the same bin. The two are
// independent: a bin may have neither, either, or both. Values are immutable
// once drawn.
type BinState struct {
	HasScheduledWaste bool
	IsContaminated    bool
}

// Outcome records one location's evaluation. FineReasons is empty exactly
// when FineAmount is zero.
type Outcome struct {
	LocationIndex int
	Bin           BinState
	Action        Action
	FineAmount    int
	FineReasons   []FineReason
}

// Result aggregates a full run. Outcomes are ordered by LocationIndex
// ascending, starting at 1, and TotalFines is the sum of per-location fines.
type Result struct {
	DayType       DayType
	LocationCount int
	Outcomes      []Outcome
	TotalFines    int
}
