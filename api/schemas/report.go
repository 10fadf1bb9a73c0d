// File: api/schemas/report.go
// Description: Externally visible report types. Reporters render these
// without re-deriving the decision table; everything they need is already
// structured here.

package schemas

import "time"

// ReportEnvelope is the top-level document a reporter writes for one run.
type ReportEnvelope struct {
	RunID         string           `json:"run_id"`
	Timestamp     time.Time        `json:"timestamp"`
	DayType       string           `json:"day_type"`
	LocationCount int              `json:"location_count"`
	Seed          int64            `json:"seed"`
	Locations     []LocationReport `json:"locations"`
	Summary       Summary          `json:"summary"`
}

// LocationReport is one location's outcome, index-ordered starting at 1.
type LocationReport struct {
	Index       int      `json:"index"`
	Action      string   `json:"action"`
	FineAmount  int      `json:"fine_amount"`
	FineReasons []string `json:"fine_reasons,omitempty"`
}

// Summary rolls the run up: total fines, per-reason fine totals with the
// offending locations, and action counts.
type Summary struct {
	TotalFines             int   `json:"total_fines"`
	UncollectedFines       int   `json:"uncollected_fines"`
	ContaminationFines     int   `json:"contamination_fines"`
	UncollectedLocations   []int `json:"uncollected_locations"`
	ContaminationLocations []int `json:"contamination_locations"`
	Collected              int   `json:"collected"`
	Skipped                int   `json:"skipped"`
}
