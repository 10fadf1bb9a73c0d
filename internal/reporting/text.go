// File: internal/reporting/text.go
package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/kennedy-st/curbside-cli/api/schemas"
)

// TextReporter renders the step-by-step collection narrative and a summary
// block, in the register of a route supervisor's end-of-day log.
type TextReporter struct {
	writer io.WriteCloser
}

func NewTextReporter(writer io.WriteCloser) *TextReporter {
	return &TextReporter{writer: writer}
}

func (r *TextReporter) Write(env *schemas.ReportEnvelope) error {
	var b strings.Builder

	fmt.Fprintf(&b, "--- %s collection run %s ---\n", env.DayType, env.RunID)
	fmt.Fprintf(&b, "Locations: 1 .. %d (seed %d)\n\n", env.LocationCount, env.Seed)

	for _, loc := range env.Locations {
		switch loc.Action {
		case "collect":
			fmt.Fprintf(&b, "[location %d] Collected %s.", loc.Index, env.DayType)
		default:
			fmt.Fprintf(&b, "[location %d] Skipped.", loc.Index)
		}
		for _, reason := range loc.FineReasons {
			fmt.Fprintf(&b, " Fine $%d for %s.", loc.FineAmount, reason)
		}
		b.WriteByte('\n')
	}

	s := env.Summary
	fmt.Fprintf(&b, "\n--- Summary ---\n")
	fmt.Fprintf(&b, "day type: %s\n", env.DayType)
	fmt.Fprintf(&b, "locations: %d (collected %d, skipped %d)\n", env.LocationCount, s.Collected, s.Skipped)
	fmt.Fprintf(&b, "uncollected fines: $%d%s\n", s.UncollectedFines, formatLocations(s.UncollectedLocations))
	fmt.Fprintf(&b, "contamination fines: $%d%s\n", s.ContaminationFines, formatLocations(s.ContaminationLocations))
	fmt.Fprintf(&b, "total fines: $%d\n", s.TotalFines)

	_, err := io.WriteString(r.writer, b.String())
	if err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}

func (r *TextReporter) Close() error {
	return r.writer.Close()
}

func formatLocations(indices []int) string {
	if len(indices) == 0 {
		return ""
	}
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return " at locations " + strings.Join(parts, ", ")
}
