// core/spt/spt.go
package spt

// SeismicMode selects which seismic input is authoritative for a site.
type SeismicMode string

const (
	SeismicAmax      SeismicMode = "amax"
	SeismicIntensity SeismicMode = "intensity"
)

// Seismic is the amax|intensity variant. Build it with PeakAcceleration
// or Intensity so only the authoritative field is ever populated.
type Seismic struct {
	Mode      SeismicMode
	Amax      float64 // g, set when Mode == SeismicAmax
	Intensity int     // 7|8|9, set when Mode == SeismicIntensity
}

// PeakAcceleration returns a Seismic carrying a directly measured
// surface peak acceleration in g.
func PeakAcceleration(g float64) Seismic {
	return Seismic{Mode: SeismicAmax, Amax: g}
}

// Intensity returns a Seismic carrying a seismic intensity degree.
func Intensity(degree int) Seismic {
	return Seismic{Mode: SeismicIntensity, Intensity: degree}
}

// BetaMode selects how the design earthquake adjustment coefficient β
// is derived.
type BetaMode string

const (
	BetaGroup   BetaMode = "group"
	BetaFormula BetaMode = "formula"
)

// Beta is the group|formula variant for β.
type Beta struct {
	Mode      BetaMode
	Group     string  // "1"|"2"|"3", set when Mode == BetaGroup
	Magnitude float64 // surface wave magnitude Ms, set when Mode == BetaFormula
}

// GroupBeta returns a Beta derived from the design earthquake group.
func GroupBeta(group string) Beta {
	return Beta{Mode: BetaGroup, Group: group}
}

// MagnitudeBeta returns a Beta derived from the surface wave magnitude
// via β = 0.20·Ms − 0.50.
func MagnitudeBeta(ms float64) Beta {
	return Beta{Mode: BetaFormula, Magnitude: ms}
}

// ContentMode selects which particle-content correction applies to
// every layer of a site.
type ContentMode string

const (
	ContentClay ContentMode = "clay" // clay content ρc, floored to 3%
	ContentFine ContentMode = "fine" // fine particle content Fc, floored to 15%
)

// Floor returns the minimum content percentage the mode permits.
func (m ContentMode) Floor() float64 {
	if m == ContentFine {
		return 15.0
	}
	return 3.0
}

// Layer is one SPT test point within a site.
type Layer struct {
	Depth     float64 // saturated sand depth ds (m)
	BlowCount float64 // measured SPT blow count N
	Content   float64 // clay/fine particle content (%), floored by ContentMode
}

// Site is one measurement point: site-level seismic parameters plus
// the ordered layer measurements. Layers keep input order; they are
// not required to be sorted by depth.
type Site struct {
	ID                  string
	Seismic             Seismic
	Beta                Beta
	Content             ContentMode
	DiscriminationDepth int     // 15 or 20 (m); selects the grade threshold table
	Groundwater         float64 // groundwater burial depth dw (m)
	Layers              []Layer
}
