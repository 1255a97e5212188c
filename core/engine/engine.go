// core/engine/engine.go
package engine

import (
	"fmt"
	"math"

	"sptliq-core/spt"
)

// DefaultLayerThickness is the standard layer thickness di (m) used
// for the weighted index when the input carries no per-layer
// thickness.
const DefaultLayerThickness = 3.0

// logisticSlope is the 0.32 coefficient shared by the PL curve and
// its inversion for Ncr,PL.
const logisticSlope = 0.32

// Config holds calculation parameters.
type Config struct {
	LayerThickness float64 // 0 = DefaultLayerThickness
}

// Engine computes liquefaction indices with a given config.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine {
	if c.LayerThickness <= 0 {
		c.LayerThickness = DefaultLayerThickness
	}
	return &Engine{cfg: c}
}

// LayerResult is the per-layer breakdown. Immutable once computed.
type LayerResult struct {
	Depth        float64 // ds (m)
	BlowCount    float64 // measured N
	Content      float64 // content after mode floor (%)
	Ncr          float64 // critical blow count, ≥ 1.0
	PL           float64 // liquefaction probability, in [0,1]
	NcrPL        float64 // critical value at probability PL, ≥ 0.1
	Weight       float64 // depth weight wi ∈ {10, 5, 2, 0}
	Contribution float64 // PL · di · wi
}

// Result aggregates one site's computation.
type Result struct {
	Beta     float64
	Amax     float64 // input or intensity-derived value actually used
	NPrime   int     // base blow count N', intensity mode only
	Index    float64 // ILE = Σ contributions
	Grade    Grade
	Layers   []LayerResult
	Warnings []string // silent defaults taken during the computation
}

// Compute runs the full calculation for one site. It is pure and
// deterministic; the only fatal condition is a ValidationError
// (out-of-range amax or an empty/invalid record).
func (e *Engine) Compute(s spt.Site) (Result, error) {
	if len(s.Layers) == 0 {
		return Result{}, validationf("site %q has no soil layers", s.ID)
	}

	var warn []string
	beta := resolveBeta(s.Beta, &warn)

	amax, nPrime, err := resolveSeismic(s.Seismic, &warn)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Beta:   beta,
		Amax:   amax,
		NPrime: nPrime,
		Layers: make([]LayerResult, 0, len(s.Layers)),
	}

	for i, l := range s.Layers {
		if math.IsNaN(l.Depth) || math.IsNaN(l.BlowCount) || math.IsNaN(l.Content) {
			return Result{}, validationf("site %q layer %d has a non-numeric field", s.ID, i+1)
		}
		content := math.Max(s.Content.Floor(), l.Content)

		ncr := e.criticalBlowCount(s, beta, amax, nPrime, l.Depth, content)
		pl := liquefactionProbability(l.BlowCount, ncr)
		ncrPL := probabilityCritical(l.BlowCount, ncr, pl)
		wi := depthWeight(l.Depth)
		contribution := pl * e.cfg.LayerThickness * wi

		res.Index += contribution
		res.Layers = append(res.Layers, LayerResult{
			Depth:        l.Depth,
			BlowCount:    l.BlowCount,
			Content:      content,
			Ncr:          ncr,
			PL:           pl,
			NcrPL:        ncrPL,
			Weight:       wi,
			Contribution: contribution,
		})
	}

	res.Grade = Classify(res.Index, s.DiscriminationDepth)
	res.Warnings = warn
	return res, nil
}

// resolveSeismic returns the effective amax and, in intensity mode,
// the base blow count N'. amax mode rejects values outside the open
// interval (0.09, 0.41) g.
func resolveSeismic(s spt.Seismic, warn *[]string) (amax float64, nPrime int, err error) {
	if s.Mode == spt.SeismicAmax {
		a := s.Amax
		if !(a > 0.09 && a < 0.41) {
			return 0, 0, validationf("amax %.2fg outside valid range (0.1-0.4g)", a)
		}
		return a, 0, nil
	}

	switch s.Intensity {
	case 7:
		amax = 0.10
	case 8:
		amax = 0.20
	case 9:
		amax = 0.40
	default:
		amax = 0.10
		*warn = append(*warn, fmt.Sprintf("seismic intensity %d not in {7,8,9}, using amax=0.10g", s.Intensity))
	}

	switch amax {
	case 0.10:
		nPrime = 16
	case 0.15:
		nPrime = 20
	case 0.20:
		nPrime = 23
	case 0.30:
		nPrime = 31
	case 0.40:
		nPrime = 37
	default:
		nPrime = 16
		*warn = append(*warn, fmt.Sprintf("amax %.2fg has no N' table entry, using N'=16", amax))
	}
	return amax, nPrime, nil
}

// criticalBlowCount evaluates the Ncr formula selected by the site's
// seismic and content modes, floored at 1.0. The fine-content amax
// formula carries no β factor.
func (e *Engine) criticalBlowCount(s spt.Site, beta, amax float64, nPrime int, ds, content float64) float64 {
	var ncr float64
	if s.Seismic.Mode == spt.SeismicAmax {
		t1 := (69 * amax) / (amax + 0.40)
		t2 := 1 - 0.02*s.Groundwater
		t3 := 0.21 + (0.79*ds)/(ds+6.2)
		if s.Content == spt.ContentClay {
			ncr = beta * t1 * t2 * t3 * math.Sqrt(3/content)
		} else {
			ncr = t1 * t2 * t3 * math.Sqrt(12/(content-3))
		}
	} else {
		ncr = 0.79 * float64(nPrime) * (1 - 0.02*s.Groundwater) * (0.27 + ds/(ds+6.2))
	}
	return math.Max(1.0, ncr)
}

// liquefactionProbability is the decreasing logistic of N − Ncr.
func liquefactionProbability(n, ncr float64) float64 {
	pl := 1.0 / (1.0 + math.Exp(logisticSlope*(n-ncr)))
	return math.Max(0.0, math.Min(1.0, pl))
}

// probabilityCritical inverts the logistic for Ncr at probability PL,
// saturating ±20 around N at the extremes to avoid log(0).
func probabilityCritical(n, ncr, pl float64) float64 {
	var v float64
	switch {
	case pl <= 0.001:
		v = n + 20.0
	case pl >= 0.999:
		v = n - 20.0
	default:
		v = ncr - math.Log(pl/(1.0-pl))/logisticSlope
	}
	return math.Max(0.1, v)
}

// depthWeight is the wi step function of test depth.
func depthWeight(ds float64) float64 {
	switch {
	case ds <= 5:
		return 10.0
	case ds <= 15:
		return 5.0
	case ds <= 20:
		return 2.0
	default:
		return 0.0
	}
}
