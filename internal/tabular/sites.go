// internal/tabular/sites.go
package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"sptliq-core/columns"
	"sptliq-core/spt"
)

// Params are the site-level choices that apply to every site built
// from one import (the original sheet carries only per-row data).
type Params struct {
	Seismic             spt.SeismicMode
	Content             spt.ContentMode
	BetaMode            spt.BetaMode
	Group               string
	Magnitude           float64
	DiscriminationDepth int
	Groundwater         float64
}

// Group is one site assembled from the table, or the reason it could
// not be. A bad row poisons only its own site; the rest of the batch
// proceeds.
type Group struct {
	ID   string
	Site spt.Site
	Err  error
}

// Sites resolves the table's columns and groups rows by site number
// into one Site per measurement point, preserving first-seen order.
// It fails outright only when required columns are unresolved.
func Sites(t Table, p Params) ([]Group, columns.Mapping, error) {
	m := columns.Resolve(t.Headers)
	if miss := m.Missing(); len(miss) > 0 {
		names := make([]string, len(miss))
		for i, f := range miss {
			names[i] = f.Canonical()
		}
		return nil, m, fmt.Errorf("%s: required columns not recognized: %s", t.Path, strings.Join(names, ", "))
	}
	if !m.HasSeismic() {
		return nil, m, fmt.Errorf("%s: no seismic parameter column (amax or intensity) recognized", t.Path)
	}

	idx := indexOf(t.Headers, m)
	seismicField := columns.FieldAmax
	if p.Seismic == spt.SeismicIntensity {
		seismicField = columns.FieldIntensity
	}
	if _, ok := idx[seismicField]; !ok {
		return nil, m, fmt.Errorf("%s: %s column required in %s mode", t.Path, seismicField.Canonical(), p.Seismic)
	}

	var order []string
	byID := map[string]*Group{}
	for rn, row := range t.Rows {
		id := strings.TrimSpace(cell(row, idx[columns.FieldSite]))
		if id == "" {
			continue // blank separator rows are common in exports
		}
		g, ok := byID[id]
		if !ok {
			g = &Group{ID: id}
			byID[id] = g
			order = append(order, id)
		}
		if g.Err != nil {
			continue
		}

		layer, seismicVal, err := parseRow(row, idx, p)
		if err != nil {
			g.Err = fmt.Errorf("%s: row %d: %w", t.Path, rn+2, err)
			continue
		}
		if len(g.Site.Layers) == 0 {
			g.Site = newSite(id, seismicVal, p)
		}
		g.Site.Layers = append(g.Site.Layers, layer)
	}

	out := make([]Group, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, m, nil
}

// parseRow extracts one layer plus the row's seismic parameter value.
// Blank content falls back to the mode floor; blank seismic falls
// back to the mode default (0.1 g / intensity 7).
func parseRow(row []string, idx map[columns.Field]int, p Params) (spt.Layer, float64, error) {
	ds, err := parseFloat("depth", cell(row, idx[columns.FieldDepth]))
	if err != nil {
		return spt.Layer{}, 0, err
	}
	n, err := parseFloat("blow count", cell(row, idx[columns.FieldBlowCount]))
	if err != nil {
		return spt.Layer{}, 0, err
	}

	content := p.Content.Floor()
	if raw := strings.TrimSpace(cell(row, idx[columns.FieldContent])); raw != "" {
		if content, err = parseFloat("content", raw); err != nil {
			return spt.Layer{}, 0, err
		}
	}

	seismicVal := 0.1
	if p.Seismic == spt.SeismicIntensity {
		seismicVal = 7
	}
	f := columns.FieldAmax
	if p.Seismic == spt.SeismicIntensity {
		f = columns.FieldIntensity
	}
	if raw := strings.TrimSpace(cell(row, idx[f])); raw != "" {
		if seismicVal, err = parseFloat(string(f), raw); err != nil {
			return spt.Layer{}, 0, err
		}
	}

	return spt.Layer{Depth: ds, BlowCount: n, Content: content}, seismicVal, nil
}

func newSite(id string, seismicVal float64, p Params) spt.Site {
	s := spt.Site{
		ID:                  id,
		Content:             p.Content,
		DiscriminationDepth: p.DiscriminationDepth,
		Groundwater:         p.Groundwater,
	}
	if p.Seismic == spt.SeismicIntensity {
		s.Seismic = spt.Intensity(int(seismicVal))
	} else {
		s.Seismic = spt.PeakAcceleration(seismicVal)
	}
	if p.BetaMode == spt.BetaFormula {
		s.Beta = spt.MagnitudeBeta(p.Magnitude)
	} else {
		s.Beta = spt.GroupBeta(p.Group)
	}
	return s
}

// indexOf maps each resolved field to its column position (first
// header occurrence wins on duplicates).
func indexOf(headers []string, m columns.Mapping) map[columns.Field]int {
	idx := map[columns.Field]int{}
	for _, f := range columns.Fields() {
		raw, ok := m[f]
		if !ok || raw == "" {
			continue
		}
		for i, h := range headers {
			if h == raw {
				idx[f] = i
				break
			}
		}
	}
	return idx
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q", field, strings.TrimSpace(raw))
	}
	return v, nil
}
