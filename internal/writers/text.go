// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"sptliq/pkg/api"
)

func init() {
	Register("text", WriteLayerRows)
	Register("summary", WriteSummaryRows)
}

// WriteLayerRows prints one TSV line per soil layer.
func WriteLayerRows(w io.Writer, reports []api.SiteReportV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "site\tds_m\tn\tcontent_pct\tncr\tpl\tncr_pl\tpossibility\twi\tcontribution"); err != nil {
			return err
		}
	}
	for _, r := range reports {
		for _, l := range r.Layers {
			_, err := fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.1f\t%.3f\t%.3f\t%.3f\t%s\t%.1f\t%.3f\n",
				l.Site, l.Depth, l.BlowCount, l.Content,
				l.Ncr, l.PL, l.NcrPL, l.Possibility,
				l.Weight, l.Contribution,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSummaryRows prints one TSV line per site.
func WriteSummaryRows(w io.Writer, reports []api.SiteReportV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "site\tseismic\tbeta\tamax_g\tdepth_m\tdw_m\tile\tgrade\tmean_pl\tpossibility\tlayers\tmeasure"); err != nil {
			return err
		}
	}
	for _, r := range reports {
		s := r.Summary
		_, err := fmt.Fprintf(w, "%s\t%s\t%.3f\t%.2f\t%d\t%.2f\t%.3f\t%s\t%.3f\t%s\t%d\t%s\n",
			s.Site, s.SeismicMode, s.Beta, s.Amax,
			s.DiscriminationDepth, s.Groundwater,
			s.Index, s.Grade, s.MeanPL, s.Possibility,
			s.LayerCount, s.Measure,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
