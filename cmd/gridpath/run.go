// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/gridpath/geo"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/network"
	"github.com/katalvlaran/gridpath/spatial"
)

const (
	exitFound = iota
	exitInvalidEndpoint
	exitNoRoute
	exitUsage
)

var errBadPoint = errors.New("point must be X,Y")

type point struct{ x, y float64 }

func (p point) coordinate() network.Coordinate {
	return network.Coordinate{X: int(math.Round(p.x)), Y: int(math.Round(p.y))}
}

func parsePoint(s string) (point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	return point{x, y}, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return exitUsage
	}

	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mapPath := fs.String("map", "", "ASCII map file (- for stdin)")
	fromArg := fs.String("from", "", "start cell X,Y")
	toArg := fs.String("to", "", "target cell X,Y")
	snap := fs.Bool("snap", false, "move endpoints to the nearest open cell")
	asGeoJSON := fs.Bool("geojson", false, "print the route as a GeoJSON feature")
	maxCost := fs.Int64("max-cost", 0, "abandon routes costlier than this (0 = unbounded)")
	showStats := fs.Bool("stats", false, "print search counters to stderr")
	if err = fs.Parse(args); err != nil {
		return exitUsage
	}
	if *mapPath == "" || *fromArg == "" || *toArg == "" {
		fs.Usage()
		return exitUsage
	}

	from, err := parsePoint(*fromArg)
	if err != nil {
		fmt.Fprintln(stderr, "-from:", err)
		return exitUsage
	}
	to, err := parsePoint(*toArg)
	if err != nil {
		fmt.Fprintln(stderr, "-to:", err)
		return exitUsage
	}

	logger := logging.New(stderr, cfg.Logging)

	net, err := buildNetwork(*mapPath, cfg, logger)
	if err != nil {
		logger.Error("load map", slog.String("path", *mapPath), slog.Any("err", err))
		return exitUsage
	}

	start, target := from.coordinate(), to.coordinate()
	if *snap {
		idx := spatial.NewIndex(net)
		if c, ok := idx.Nearest(from.x, from.y); ok {
			start = c
		}
		if c, ok := idx.Nearest(to.x, to.y); ok {
			target = c
		}
		logger.Debug("snapped endpoints", slog.String("start", start.String()), slog.String("target", target.String()))
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		logger.Error("register metrics", slog.Any("err", err))
		return exitUsage
	}

	res, err := net.Search(start, target,
		network.WithMaxCost(*maxCost),
		network.WithObserver(collector),
	)
	if err != nil && !errors.Is(err, network.ErrNoPath) {
		logger.Error("search", slog.Any("err", err))
		return exitUsage
	}
	if *showStats {
		writeStats(stderr, reg)
	}

	if *asGeoJSON && res.Outcome == network.OutcomeFound {
		data, gerr := geo.Marshal(res)
		if gerr != nil {
			logger.Error("encode geojson", slog.Any("err", gerr))
			return exitUsage
		}
		fmt.Fprintln(stdout, string(data))
	} else {
		writePath(stdout, res)
	}

	switch res.Outcome {
	case network.OutcomeFound:
		return exitFound
	case network.OutcomeInvalidEndpoint:
		return exitInvalidEndpoint
	default:
		return exitNoRoute
	}
}

// buildNetwork loads the map at path and converts it with cfg's weights and threshold.
func buildNetwork(path string, cfg config.Config, logger *slog.Logger) (*network.Network, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	values, err := gridgraph.ParseASCII(r)
	if err != nil {
		return nil, err
	}
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = cfg.LandThreshold
	opts.WeightFromValue = !cfg.OverrideWeights
	grid, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil, err
	}

	return grid.ToNetwork(network.WithDefaultWeight(cfg.DefaultWeight), network.WithLogger(logger)), nil
}

// writePath prints the route start first, one cell per line, followed by its cost.
func writePath(w io.Writer, res network.Result) {
	switch res.Outcome {
	case network.OutcomeInvalidEndpoint:
		fmt.Fprintln(w, "invalid endpoint")
		return
	case network.OutcomeNoRoute:
		fmt.Fprintln(w, "no route")
		return
	}
	route := network.Reverse(res.Path)
	for _, c := range route {
		fmt.Fprintln(w, c)
	}
	fmt.Fprintf(w, "cost %d, expanded %d\n", res.Cost, res.Expanded)
}

func writeStats(w io.Writer, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels(m.GetLabel()), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Fprintf(w, "%s_count %d\n", mf.GetName(), m.GetHistogram().GetSampleCount())
			}
		}
	}
}

func labels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
