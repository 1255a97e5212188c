// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"sptliq-core/engine"
	"sptliq-core/measures"
	"sptliq-core/spt"
	"sptliq/internal/cli"
	"sptliq/internal/logging"
	"sptliq/internal/report"
	"sptliq/internal/tabular"
	"sptliq/internal/version"
	"sptliq/internal/writers"
	"sptliq/pkg/api"
)

// RunContext executes one CLI invocation: parse, load sites, compute
// each one independently, write the selected format. Site failures
// are isolated; the batch continues and the failures are logged.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("sptliq")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "sptliq version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	log := logging.New(stderr, opts.Debug, opts.Quiet)
	defer func() { _ = log.Sync() }()

	groups, code := loadSites(opts, log, stderr)
	if code != 0 {
		return code
	}

	eng := engine.New(engine.Config{LayerThickness: opts.Thickness})
	class := measures.BuildingClass(opts.BuildingClass)

	var reports []api.SiteReportV1
	failed := 0
	for _, g := range groups {
		if parent.Err() != nil {
			return 130
		}
		if g.Err != nil {
			log.Warnw("site skipped", "site", g.ID, "error", g.Err)
			failed++
			continue
		}
		res, err := eng.Compute(g.Site)
		if err != nil {
			log.Warnw("site failed", "site", g.ID, "error", err)
			failed++
			continue
		}
		for _, warn := range res.Warnings {
			log.Infow("default applied", "site", g.ID, "detail", warn)
		}
		reports = append(reports, report.Build(g.Site, res, class))
	}
	if failed > 0 {
		log.Warnf("%d of %d sites not computed", failed, len(groups))
	}

	if opts.Sort {
		sort.Slice(reports, func(i, j int) bool {
			return reports[i].Summary.Site < reports[j].Summary.Site
		})
	}

	if err := writers.Write(opts.Output, outw, reports, opts.Header); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if len(reports) == 0 {
		return 1
	}
	return flushCode(outw, stderr, 0)
}

// loadSites assembles the computation input from --input tables or
// --layer specs. A non-zero second return is the exit code to use.
func loadSites(opts cli.Options, log *zap.SugaredLogger, stderr io.Writer) ([]tabular.Group, int) {
	params := tabular.Params{
		Seismic:             spt.SeismicMode(opts.Seismic),
		Content:             spt.ContentMode(opts.Content),
		BetaMode:            spt.BetaMode(opts.BetaMode),
		Group:               opts.Group,
		Magnitude:           opts.Magnitude,
		DiscriminationDepth: opts.Depth,
		Groundwater:         opts.Groundwater,
	}

	if len(opts.InputFiles) == 0 {
		seismicVal := opts.Amax
		if params.Seismic == spt.SeismicIntensity {
			seismicVal = float64(opts.Intensity)
		}
		site, err := tabular.ManualSite(opts.SiteID, opts.Layers, seismicVal, params)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return nil, 2
		}
		return []tabular.Group{{ID: site.ID, Site: site}}, 0
	}

	var groups []tabular.Group
	for _, path := range opts.InputFiles {
		tb, err := tabular.ReadFile(path)
		if err != nil {
			log.Errorw("table not readable", "path", path, "error", err)
			return nil, 2
		}
		gs, mapping, err := tabular.Sites(tb, params)
		if err != nil {
			log.Errorw("table not usable", "path", path, "error", err)
			return nil, 2
		}
		log.Debugw("columns resolved", "path", path, "mapping", mapping)
		groups = append(groups, gs...)
	}
	return groups, 0
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
