// File: internal/reporting/envelope.go
package reporting

import (
	"time"

	"github.com/kennedy-st/curbside-cli/api/schemas"
	"github.com/kennedy-st/curbside-cli/internal/simulation"
)

// BuildEnvelope converts a simulation result into the report document.
// Per-location entries keep the result's index order; the summary rolls up
// fines and action counts by reason.
func BuildEnvelope(runID string, ts time.Time, seed int64, res *simulation.Result) *schemas.ReportEnvelope {
	env := &schemas.ReportEnvelope{
		RunID:         runID,
		Timestamp:     ts,
		DayType:       res.DayType.String(),
		LocationCount: res.LocationCount,
		Seed:          seed,
		Locations:     make([]schemas.LocationReport, 0, len(res.Outcomes)),
	}

	for _, o := range res.Outcomes {
		entry := schemas.LocationReport{
			Index:      o.LocationIndex,
			Action:     o.Action.String(),
			FineAmount: o.FineAmount,
		}
		for _, r := range o.FineReasons {
			entry.FineReasons = append(entry.FineReasons, r.String())
			switch r {
			case simulation.ReasonUncollected:
				env.Summary.UncollectedFines += o.FineAmount
				env.Summary.UncollectedLocations = append(env.Summary.UncollectedLocations, o.LocationIndex)
			case simulation.ReasonContamination:
				env.Summary.ContaminationFines += o.FineAmount
				env.Summary.ContaminationLocations = append(env.Summary.ContaminationLocations, o.LocationIndex)
			}
		}
		switch o.Action {
		case simulation.Collect:
			env.Summary.Collected++
		case simulation.Skip:
			env.Summary.Skipped++
		}
		env.Locations = append(env.Locations, entry)
	}

	env.Summary.TotalFines = res.TotalFines
	return env
}
