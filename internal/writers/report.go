// internal/writers/report.go
package writers

import (
	"fmt"
	"io"

	"sptliq/pkg/api"
)

func init() {
	Register("report", WriteReport)
}

// WriteReport prints a human-readable block per site: the summary
// followed by the per-layer breakdown table.
func WriteReport(w io.Writer, reports []api.SiteReportV1, _ bool) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeSiteBlock(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeSiteBlock(w io.Writer, r api.SiteReportV1) error {
	s := r.Summary
	fmt.Fprintf(w, "Site %s\n", s.Site)
	if s.SeismicMode == "intensity" {
		fmt.Fprintf(w, "  Seismic parameter:      intensity (amax=%.2fg, N'=%d)\n", s.Amax, s.NPrime)
	} else {
		fmt.Fprintf(w, "  Seismic parameter:      amax=%.2fg\n", s.Amax)
	}
	fmt.Fprintf(w, "  Adjustment factor beta: %.3f (%s)\n", s.Beta, s.BetaMode)
	fmt.Fprintf(w, "  Discrimination depth:   %d m\n", s.DiscriminationDepth)
	fmt.Fprintf(w, "  Groundwater depth:      %.2f m\n", s.Groundwater)
	fmt.Fprintf(w, "  Liquefaction index ILE: %.3f\n", s.Index)
	fmt.Fprintf(w, "  Grade:                  %s\n", s.GradeLabel)
	fmt.Fprintf(w, "  Overall possibility:    %s (mean PL=%.3f)\n", s.Possibility, s.MeanPL)
	if s.Measure != "" {
		fmt.Fprintf(w, "  Recommended measure:    %s\n", s.Measure)
	}
	for _, warn := range s.Warnings {
		fmt.Fprintf(w, "  Warning:                %s\n", warn)
	}

	fmt.Fprintf(w, "  %-8s %-6s %-12s %-9s %-7s %-9s %-6s %-8s %s\n",
		"ds(m)", "N", "content(%)", "Ncr", "PL", "Ncr,PL", "wi", "contrib", "possibility")
	for _, l := range r.Layers {
		_, err := fmt.Fprintf(w, "  %-8.2f %-6.1f %-12.1f %-9.3f %-7.3f %-9.3f %-6.1f %-8.3f %s\n",
			l.Depth, l.BlowCount, l.Content, l.Ncr, l.PL, l.NcrPL, l.Weight, l.Contribution, l.Possibility)
		if err != nil {
			return err
		}
	}
	return nil
}
