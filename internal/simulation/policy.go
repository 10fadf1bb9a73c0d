// File: internal/simulation/policy.go
// Description: The agent's reflex policy. It is the sole decision authority:
// given the day type and one location's bin state it decides collect/skip and
// computes the fine owed, with no randomness and no mutable state.

package simulation

// Fine amounts in dollars, per city ordinance.
const (
	FineUncollected   = 100
	FineContamination = 200
)

// Decision is the policy's verdict for one location.
type Decision struct {
	Action      Action
	FineAmount  int
	FineReasons []FineReason
}

// Decide evaluates the reflex policy against a single bin. BinState is
// already day-relative, so the table below is exhaustive over its 2x2 space
// and does not branch on day; the parameter is kept because the day is part
// of the percept the agent receives.
//
// Contamination dominates when scheduled waste is also present: the agent
// collects the scheduled portion, so no uncollected fine stacks on top of the
// contamination fine. An empty bin is fined as uncollected; the simulated
// city expects schedulable waste at every location.
func Decide(day DayType, bin BinState) Decision {
	switch {
	case bin.HasScheduledWaste && bin.IsContaminated:
		return Decision{
			Action:      Collect,
			FineAmount:  FineContamination,
			FineReasons: []FineReason{ReasonContamination},
		}
	case bin.HasScheduledWaste:
		return Decision{Action: Collect}
	case bin.IsContaminated:
		return Decision{
			Action:      Skip,
			FineAmount:  FineContamination,
			FineReasons: []FineReason{ReasonContamination},
		}
	default:
		return Decision{
			Action:      Skip,
			FineAmount:  FineUncollected,
			FineReasons: []FineReason{ReasonUncollected},
		}
	}
}
