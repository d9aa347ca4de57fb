// Command tspsolver computes exact Travelling Salesman tours with the
// Held–Karp algorithm.
//
// Usage:
//
//	tspsolver                      interactive menu (stdin is a terminal)
//	tspsolver < distances.txt      solve a matrix piped on stdin
//	tspsolver -file distances.txt  solve a matrix file
//	tspsolver -random 12 -seed 7   solve a generated instance
//
// Matrix files hold the city count on the first line and one row of
// space-separated integers per line after it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/report"
	"github.com/katalvlaran/heldkarp/tsp"
)

// config carries the flag values shared by every mode.
type config struct {
	opts tsp.Options
	dir  string // interactive load/save directory
	out  string // batch report path
}

func main() {
	var (
		file    = flag.String("file", "", "Solve the matrix in this file and exit")
		dir     = flag.String("dir", "test", "Directory the interactive menu loads from and saves to")
		out     = flag.String("out", "", "Save the report to this path (non-interactive modes)")
		maxN    = flag.Int("max", tsp.DefaultMaxCities, "Largest accepted number of cities")
		random  = flag.Int("random", 0, "Solve a random instance with this many cities")
		seed    = flag.Int64("seed", 0, "Seed for -random (0 selects the default seed)")
		maxW    = flag.Int("maxw", 100, "Largest distance drawn by -random")
		sym     = flag.Bool("sym", false, "Make -random instances symmetric")
		gen     = flag.String("gen", "", "Write the -random matrix to this path")
		verbose = flag.Bool("v", false, "Debug logging to stderr")
		plain   = flag.Bool("plain", false, "Disable styled output")
	)
	flag.Parse()

	log := newLogger(*verbose)
	defer func() { _ = log.Sync() }()
	tsp.SetLogger(log.Named("tsp"))
	report.SetLogger(log.Named("report"))

	cfg := config{
		opts: tsp.Options{MaxCities: *maxN},
		dir:  *dir,
		out:  *out,
	}
	ui := newStyles(*plain || !term.IsTerminal(int(os.Stdout.Fd())))

	var err error
	switch {
	case *random > 0:
		err = runRandom(os.Stdout, ui, cfg, *random, *maxW, *seed, *sym, *gen)
	case *file != "":
		err = runFile(os.Stdout, ui, cfg, *file)
	case term.IsTerminal(int(os.Stdin.Fd())):
		err = newSession(os.Stdin, os.Stdout, ui, cfg, log).Run()
	default:
		err = runBatch(os.Stdin, os.Stdout, ui, cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.err.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// newLogger returns a development logger when verbose, a no-op one otherwise.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// solve runs the exact solver and times it.
func solve(dist [][]int, opts tsp.Options) (report.Report, error) {
	start := time.Now()
	res, err := tsp.Solve(dist, opts)
	if err != nil {
		return report.Report{}, err
	}
	return report.New(dist, res, time.Since(start)), nil
}

// runBatch solves one matrix in the file format read from r.
func runBatch(r io.Reader, w io.Writer, ui styles, cfg config) error {
	dist, err := matrix.Read(r)
	if err != nil {
		return fmt.Errorf("read matrix: %w", err)
	}
	return finish(w, ui, cfg, dist)
}

// runFile solves the matrix stored at path.
func runFile(w io.Writer, ui styles, cfg config, path string) error {
	dist, err := matrix.ReadFile(path)
	if err != nil {
		return err
	}
	return finish(w, ui, cfg, dist)
}

// runRandom generates an instance, optionally writes it to gen, and solves it.
func runRandom(w io.Writer, ui styles, cfg config, n, maxW int, seed int64, symmetric bool, gen string) error {
	dist, err := matrix.Random(n, maxW, seed, symmetric)
	if err != nil {
		return err
	}
	if gen != "" {
		if err = writeMatrixFile(gen, dist); err != nil {
			return err
		}
	}
	return finish(w, ui, cfg, dist)
}

func writeMatrixFile(path string, dist [][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = matrix.Write(f, dist); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// finish solves dist, prints the result and saves it when cfg.out is set.
func finish(w io.Writer, ui styles, cfg config, dist [][]int) error {
	r, err := solve(dist, cfg.opts)
	if err != nil {
		return err
	}
	printReport(w, ui, r)
	if cfg.out == "" {
		return nil
	}
	if err = report.Save(cfg.out, r); err != nil {
		return err
	}
	fmt.Fprintf(w, "Results saved to %q.\n", cfg.out)
	return nil
}

// printReport writes the console form of r.
func printReport(w io.Writer, ui styles, r report.Report) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Number of cities: %d\n", len(r.Dist))
	fmt.Fprintln(w, "Distance matrix:")
	fmt.Fprint(w, matrix.Format(r.Dist))
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.result.Render(fmt.Sprintf("Optimal route found with cost: %d", r.Cost)))
	fmt.Fprintf(w, "Route sequence: %s\n", report.FormatRoute(r.Tour))
	fmt.Fprintf(w, "Calculation time: %s\n", report.FormatElapsed(r.Elapsed))
}
