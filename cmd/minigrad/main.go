// Package main provides the minigrad CLI.
//
// Usage:
//
//	minigrad version
//	minigrad list
//	minigrad [-epsilon=1e-6] [-tolerance=1e-2] [-workers=N] [-at=x,y] check [case...]
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/born-ml/minigrad/gradcheck"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.1.0"

var (
	defaults = gradcheck.DefaultConfig()

	flagEpsilon   = flag.Float64("epsilon", defaults.Epsilon, "Step size of the central difference.")
	flagTolerance = flag.Float64("tolerance", defaults.Tolerance, "Largest accepted |analytic - numeric| difference.")
	flagWorkers   = flag.Int("workers", runtime.NumCPU(), "Number of checks run in parallel. 1 disables parallelism.")
	flagAt        = flag.String("at", "", "Comma-separated point to check every selected case at, "+
		"instead of the catalogue's own points. Its length must match the arity of each selected case.")
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return
	}

	switch args[0] {
	case "version":
		fmt.Printf("minigrad %s\n", version)
	case "list":
		fmt.Println(catalogTable(gradcheck.Catalog()))
	case "check":
		os.Exit(check(args[1:]))
	default:
		klog.Errorf("Unknown command %q. See 'minigrad -help'.", args[0])
		os.Exit(1)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "minigrad %s - reverse-mode autodiff gradient checker\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  list       List the built-in expressions")
	fmt.Fprintln(out, "  check      Compare backpropagated and numerical derivatives")
	fmt.Fprintln(out, "\nFlags:")
	flag.PrintDefaults()
}

// check runs the selected cases and returns the process exit code.
func check(names []string) int {
	cases, err := selectCases(names)
	if err != nil {
		klog.Errorf("%v", err)
		return 1
	}

	cfg := gradcheck.DefaultConfig()
	cfg.Epsilon = *flagEpsilon
	cfg.Tolerance = *flagTolerance
	cfg.Parallel.NumWorkers = *flagWorkers
	cfg.Parallel.Enabled = *flagWorkers > 1

	if *flagAt != "" {
		point := parsePoint(*flagAt)
		for i := range cases {
			cases[i].Points = [][]float64{point}
		}
	}

	results, err := gradcheck.CheckAll(cfg, cases)
	fmt.Println(resultsTable(results))
	if err != nil {
		klog.Errorf("%v", err)
		return 1
	}
	fmt.Printf("%d gradient checks passed (epsilon=%g, tolerance=%g)\n", len(results), cfg.Epsilon, cfg.Tolerance)
	return 0
}

func selectCases(names []string) ([]gradcheck.Case, error) {
	if len(names) == 0 {
		return gradcheck.Catalog(), nil
	}
	cases := make([]gradcheck.Case, 0, len(names))
	for _, name := range names {
		c, found := gradcheck.Lookup(name)
		if !found {
			return nil, errors.Errorf("unknown case %q, see 'minigrad list'", name)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func parsePoint(s string) []float64 {
	parts := strings.Split(s, ",")
	point := make([]float64, len(parts))
	for i, p := range parts {
		point[i] = must.M1(strconv.ParseFloat(strings.TrimSpace(p), 64))
	}
	return point
}
