// SPDX-License-Identifier: MIT

// Command qdplot draws a quick text plot of a CSV or XLSX table.
//
// Usage:
//
//	qdplot [flags] <input.csv | input.xlsx | ->
//
// The first row holds the series labels (its first cell is ignored); every
// other row holds a numeric index followed by one value per series.
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/qdplot/canvas"
	"github.com/katalvlaran/qdplot/dataset"
	"github.com/katalvlaran/qdplot/stats"
)

var version = "dev"

// config holds the parsed command line.
type config struct {
	kind    dataset.PlotKind
	width   int
	height  int
	margin  float64
	bins    int
	sheet   string
	xmin    float64
	xmax    float64
	summary bool
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "qdplot [flags] <input>",
		Short: "Quick and dirty text plots of tabular data",
		Long: `qdplot reads a table of labelled series from a CSV or XLSX file ("-" reads
CSV from stdin) and prints a point plot, box plots, empirical CDFs or
histograms as a character grid.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args[0])
		},
	}

	f := cmd.Flags()
	f.VarP(&cfg.kind, "kind", "k", "plot kind: point, boxplot, cdf or histogram")
	f.IntVarP(&cfg.width, "width", "W", 0, "grid width in columns (0: terminal width, else 80)")
	f.IntVarP(&cfg.height, "height", "H", canvas.DefaultHeight, "grid height in rows")
	f.Float64Var(&cfg.margin, "margin", canvas.DefaultMargin, "fraction of the data span padded onto each end of a computed x range (point plots, box plot and CDF)")
	f.IntVar(&cfg.bins, "bins", stats.DefaultBins, "histogram bin count")
	f.StringVar(&cfg.sheet, "sheet", "", "XLSX worksheet (default: the active sheet)")
	f.Float64Var(&cfg.xmin, "xmin", 0, "lower x bound of box plots and CDFs (default: smallest value)")
	f.Float64Var(&cfg.xmax, "xmax", 0, "upper x bound of box plots and CDFs (default: largest value)")
	f.BoolVar(&cfg.summary, "summary", false, "print the five-number summary of each series after the plot")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}

func run(cmd *cobra.Command, cfg *config, input string) error {
	setupLogging(cfg.verbose, cmd.ErrOrStderr())
	if err := cfg.validate(); err != nil {
		return err
	}

	ds, err := load(cmd.InOrStdin(), input, cfg.sheet)
	if err != nil {
		return err
	}
	log.Printf("read %d series, %d points from %s", ds.Len(), ds.NumPoints(), input)

	out := cmd.OutOrStdout()
	width := cfg.width
	if width == 0 {
		width = terminalWidth(out)
	}
	c := canvas.New(canvas.WithSize(cfg.height, width), canvas.WithMargin(cfg.margin))
	log.Printf("%s plot on a %d×%d grid", cfg.kind, cfg.height, width)

	if cfg.kind == dataset.Boxplot || cfg.kind == dataset.CDF {
		if err := presetXRange(cmd, cfg, ds, c); err != nil {
			return err
		}
	}
	if err := ds.Draw(c, cfg.kind, dataset.WithBins(cfg.bins)); err != nil {
		return fmt.Errorf("draw %s: %w", cfg.kind, err)
	}
	if _, err := c.WriteTo(out); err != nil {
		return err
	}

	if cfg.summary {
		return writeSummary(out, ds)
	}
	return nil
}

func (cfg *config) validate() error {
	switch {
	case cfg.width < 0:
		return fmt.Errorf("--width must be >= 0, got %d", cfg.width)
	case cfg.height <= 0:
		return fmt.Errorf("--height must be > 0, got %d", cfg.height)
	case cfg.margin < 0 || math.IsNaN(cfg.margin) || math.IsInf(cfg.margin, 0):
		return fmt.Errorf("--margin must be finite and >= 0, got %g", cfg.margin)
	case cfg.bins <= 0:
		return fmt.Errorf("--bins must be > 0, got %d", cfg.bins)
	}
	return nil
}

// load reads input with the XLSX reader when it names a .xlsx file or a
// sheet was requested, with the CSV reader otherwise. "-" is stdin.
func load(stdin io.Reader, input, sheet string) (*dataset.DataSet, error) {
	var r io.Reader = stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if sheet != "" || strings.EqualFold(filepath.Ext(input), ".xlsx") {
		return dataset.FromXLSX(r, sheet)
	}
	return dataset.FromCSV(r)
}

// presetXRange sets the x range of value-axis plots from --xmin/--xmax,
// each bound defaulting to the data's value range.
func presetXRange(cmd *cobra.Command, cfg *config, ds *dataset.DataSet, c *canvas.Canvas) error {
	lo, hi, err := ds.ValueRange()
	if err != nil {
		return fmt.Errorf("draw %s: %w", cfg.kind, err)
	}
	lo, hi = canvas.Widen(lo, hi)
	if cmd.Flags().Changed("xmin") {
		lo = cfg.xmin
	}
	if cmd.Flags().Changed("xmax") {
		hi = cfg.xmax
	}
	if !(lo < hi) {
		return fmt.Errorf("x range [%g, %g] is empty", lo, hi)
	}

	if cmd.Flags().Changed("xmin") || cmd.Flags().Changed("xmax") {
		c.FixXRange(lo, hi)
	} else {
		c.SetXRange(lo, hi)
	}
	log.Printf("x range %v", c.XRange())
	return nil
}

func writeSummary(w io.Writer, ds *dataset.DataSet) error {
	qs := ds.Quantiles()
	for _, l := range ds.Labels() {
		q, ok := qs[l]
		if !ok {
			continue
		}
		_, err := fmt.Fprintf(w, "%s: min=%g q1=%g median=%g q3=%g max=%g outliers=%d\n",
			l, q.Min, q.Q1, q.Q2, q.Q3, q.Max, len(q.Outliers))
		if err != nil {
			return err
		}
	}
	return nil
}

// terminalWidth returns the column count of w when it is a terminal,
// canvas.DefaultWidth otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return canvas.DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return canvas.DefaultWidth
	}
	return width
}

// setupLogging routes the standard logger to w when verbose, and discards
// it otherwise.
func setupLogging(verbose bool, w io.Writer) {
	log.SetFlags(0)
	log.SetPrefix("qdplot: ")
	if !verbose {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(w)
}
