// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"sptliq/internal/version"
)

// Output formats
const (
	OutputText    = "text"    // per-layer TSV rows
	OutputSummary = "summary" // per-site TSV rows
	OutputJSON    = "json"    // full report document
	OutputReport  = "report"  // human-readable block per site
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	InputFiles []string // CSV/TSV tables, repeatable
	Layers     []string // manual "ds:N[:content]" layer specs, repeatable
	SiteID     string   // label for a manually entered site

	// Site-level parameters
	Seismic     string // amax | intensity
	Amax        float64
	Intensity   int
	Content     string // clay | fine
	BetaMode    string // group | formula
	Group       string // "1" | "2" | "3"
	Magnitude   float64
	Depth       int // 15 | 20
	Groundwater float64
	Thickness   float64 // standard layer thickness di (m)

	// Output
	Output        string
	BuildingClass string // "" | B | C | D
	Sort          bool
	Header        bool // true unless --no-header

	// Misc
	Quiet   bool
	Debug   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: SPT-based seismic liquefaction index calculator

Computes per-layer liquefaction probability and the depth-weighted
liquefaction index ILE from standard penetration test data, grades the
result, and recommends anti-liquefaction measures.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	var inputs, layers stringSlice
	fs.Var(&inputs, "input", "CSV/TSV borehole table (repeatable) [*]")
	fs.Var(&inputs, "i", "alias of --input")
	fs.Var(&layers, "layer", "manual soil layer ds:N[:content] (repeatable) [*]")
	fs.Var(&layers, "l", "alias of --layer")
	fs.StringVar(&opt.SiteID, "site-id", "manual", "site label for --layer input [manual]")

	// Site-level parameters
	fs.StringVar(&opt.Seismic, "seismic", "amax", "seismic parameter source: amax | intensity [amax]")
	fs.Float64Var(&opt.Amax, "amax", 0.1, "surface peak acceleration amax (g), amax mode [0.1]")
	fs.IntVar(&opt.Intensity, "intensity", 7, "seismic intensity 7|8|9, intensity mode [7]")
	fs.StringVar(&opt.Content, "content", "clay", "particle content type: clay (ρc, floor 3%) | fine (Fc, floor 15%) [clay]")
	fs.StringVar(&opt.BetaMode, "beta", "group", "β derivation: group | formula [group]")
	fs.StringVar(&opt.Group, "group", "1", "design earthquake group 1|2|3, group mode [1]")
	fs.Float64Var(&opt.Magnitude, "magnitude", 6.5, "surface wave magnitude Ms, formula mode [6.5]")
	fs.IntVar(&opt.Depth, "depth", 15, "discrimination depth (m): 15 | 20 [15]")
	fs.Float64Var(&opt.Groundwater, "groundwater", 2.0, "groundwater burial depth dw (m) [2.0]")
	fs.Float64Var(&opt.Thickness, "layer-thickness", 3.0, "standard layer thickness di (m) [3.0]")

	// Output
	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | summary | json | report [text]")
	fs.StringVar(&opt.Output, "o", OutputText, "alias of --output")
	fs.StringVar(&opt.BuildingClass, "building-class", "", "seismic fortification class B|C|D for measure lookup [none]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort sites by site number [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Debug, "debug", false, "verbose diagnostics [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.InputFiles = inputs
	opt.Layers = layers
	opt.Header = !noHeader

	// Validation
	usingFile := len(opt.InputFiles) > 0
	usingManual := len(opt.Layers) > 0
	switch {
	case usingFile && usingManual:
		return opt, errors.New("--input conflicts with --layer")
	case !usingFile && !usingManual:
		return opt, errors.New("provide --input or at least one --layer")
	}
	if opt.Seismic != "amax" && opt.Seismic != "intensity" {
		return opt, fmt.Errorf("invalid --seismic %q", opt.Seismic)
	}
	if opt.Content != "clay" && opt.Content != "fine" {
		return opt, fmt.Errorf("invalid --content %q", opt.Content)
	}
	if opt.BetaMode != "group" && opt.BetaMode != "formula" {
		return opt, fmt.Errorf("invalid --beta %q", opt.BetaMode)
	}
	if opt.BetaMode == "group" && opt.Group != "1" && opt.Group != "2" && opt.Group != "3" {
		return opt, fmt.Errorf("invalid --group %q (want 1, 2 or 3)", opt.Group)
	}
	if opt.Depth != 15 && opt.Depth != 20 {
		return opt, errors.New("--depth must be 15 or 20")
	}
	if opt.Groundwater < 0 {
		return opt, errors.New("--groundwater must be ≥ 0")
	}
	if opt.Thickness <= 0 {
		return opt, errors.New("--layer-thickness must be > 0")
	}
	switch opt.Output {
	case OutputText, OutputSummary, OutputJSON, OutputReport:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	switch opt.BuildingClass {
	case "", "B", "C", "D":
	default:
		return opt, fmt.Errorf("invalid --building-class %q (want B, C or D)", opt.BuildingClass)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
