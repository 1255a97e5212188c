// pkg/api/report_v1.go
package api

// SiteSummaryV1 is the stable JSON schema for one site's summary row.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SiteSummaryV1 struct {
	Site                string   `json:"site"`
	SeismicMode         string   `json:"seismic_mode"` // "amax" | "intensity"
	ContentMode         string   `json:"content_mode"` // "clay" | "fine"
	BetaMode            string   `json:"beta_mode"`    // "group" | "formula"
	Beta                float64  `json:"beta"`
	Amax                float64  `json:"amax"`
	NPrime              int      `json:"n_prime,omitempty"`
	DiscriminationDepth int      `json:"discrimination_depth"`
	Groundwater         float64  `json:"groundwater"`
	Index               float64  `json:"index"`
	Grade               string   `json:"grade"`
	GradeLabel          string   `json:"grade_label"`
	MeanPL              float64  `json:"mean_pl"`
	Possibility         string   `json:"possibility"`
	Measure             string   `json:"measure,omitempty"`
	LayerCount          int      `json:"layer_count"`
	Warnings            []string `json:"warnings,omitempty"`
}

// LayerV1 is the stable schema for one per-layer detail row.
type LayerV1 struct {
	Site         string  `json:"site"`
	Depth        float64 `json:"depth"`
	BlowCount    float64 `json:"blow_count"`
	Content      float64 `json:"content"`
	Ncr          float64 `json:"ncr"`
	PL           float64 `json:"pl"`
	NcrPL        float64 `json:"ncr_pl"`
	Possibility  string  `json:"possibility"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// SiteReportV1 pairs a site summary with its layer breakdown.
type SiteReportV1 struct {
	Summary SiteSummaryV1 `json:"summary"`
	Layers  []LayerV1     `json:"layers"`
}
