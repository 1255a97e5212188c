// internal/report/report.go

// Package report flattens engine results into the stable export rows:
// one summary per site, one detail row per layer.
package report

import (
	"gonum.org/v1/gonum/stat"

	"sptliq-core/engine"
	"sptliq-core/measures"
	"sptliq-core/spt"
	"sptliq/pkg/api"
)

// Build assembles one site's export document. class may be empty, in
// which case no measure is attached.
func Build(s spt.Site, res engine.Result, class measures.BuildingClass) api.SiteReportV1 {
	pls := make([]float64, len(res.Layers))
	layers := make([]api.LayerV1, len(res.Layers))
	for i, l := range res.Layers {
		pls[i] = l.PL
		layers[i] = api.LayerV1{
			Site:         s.ID,
			Depth:        l.Depth,
			BlowCount:    l.BlowCount,
			Content:      l.Content,
			Ncr:          l.Ncr,
			PL:           l.PL,
			NcrPL:        l.NcrPL,
			Possibility:  string(measures.Of(l.PL)),
			Weight:       l.Weight,
			Contribution: l.Contribution,
		}
	}
	meanPL := stat.Mean(pls, nil)

	sum := api.SiteSummaryV1{
		Site:                s.ID,
		SeismicMode:         string(s.Seismic.Mode),
		ContentMode:         string(s.Content),
		BetaMode:            string(s.Beta.Mode),
		Beta:                res.Beta,
		Amax:                res.Amax,
		NPrime:              res.NPrime,
		DiscriminationDepth: s.DiscriminationDepth,
		Groundwater:         s.Groundwater,
		Index:               res.Index,
		Grade:               string(res.Grade),
		GradeLabel:          res.Grade.Label(),
		MeanPL:              meanPL,
		Possibility:         string(measures.Of(meanPL)),
		LayerCount:          len(res.Layers),
		Warnings:            res.Warnings,
	}
	if class != "" {
		sum.Measure = measures.Recommend(class, res.Grade)
	}
	return api.SiteReportV1{Summary: sum, Layers: layers}
}
