package services

import (
	"arena-route-planner/internal/domain"
	"fmt"
	"strings"
)

// FormatInfoPanel renders an analysis as the text shown beside the arena:
// the totals first, then one line per segment.
func FormatInfoPanel(a *domain.RouteAnalysis) string {
	if a == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total Distance: %.1fpx\n", a.TotalDistance)
	fmt.Fprintf(&b, "Total Time: %.2fs\n", a.TotalTime)

	lines := make([]string, 0, len(a.Segments))
	for _, s := range a.Segments {
		line := fmt.Sprintf("Segment %d: %.1fpx, %.2fs", s.Index, s.Distance, s.Time)
		if s.Active {
			line += " [ACTIVE]"
		}
		lines = append(lines, line)
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}
