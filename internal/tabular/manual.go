// internal/tabular/manual.go
package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"sptliq-core/spt"
)

// ParseLayer parses a manual "ds:N[:content]" spec. An omitted
// content takes the mode floor, same as a blank sheet cell.
func ParseLayer(spec string, mode spt.ContentMode) (spt.Layer, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return spt.Layer{}, fmt.Errorf("bad layer spec %q (want ds:N[:content])", spec)
	}
	ds, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return spt.Layer{}, fmt.Errorf("bad depth in layer spec %q", spec)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return spt.Layer{}, fmt.Errorf("bad blow count in layer spec %q", spec)
	}
	content := mode.Floor()
	if len(parts) == 3 {
		if content, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err != nil {
			return spt.Layer{}, fmt.Errorf("bad content in layer spec %q", spec)
		}
	}
	return spt.Layer{Depth: ds, BlowCount: n, Content: content}, nil
}

// ManualSite builds a single site from repeated --layer specs and the
// site-level parameters. amax/intensity come from Params defaults
// carried in seismicVal.
func ManualSite(id string, specs []string, seismicVal float64, p Params) (spt.Site, error) {
	s := newSite(id, seismicVal, p)
	for _, spec := range specs {
		layer, err := ParseLayer(spec, p.Content)
		if err != nil {
			return spt.Site{}, err
		}
		s.Layers = append(s.Layers, layer)
	}
	return s, nil
}
