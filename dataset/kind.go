// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"
)

// PlotKind selects how a DataSet is drawn. The zero value is Point.
type PlotKind int

// Plot kinds.
const (
	Point PlotKind = iota
	Boxplot
	CDF
	Histogram
)

var kindNames = [...]string{
	Point:     "point",
	Boxplot:   "boxplot",
	CDF:       "cdf",
	Histogram: "histogram",
}

// PlotKinds returns every plot kind in declaration order.
func PlotKinds() []PlotKind {
	return []PlotKind{Point, Boxplot, CDF, Histogram}
}

// String returns the lower-case name used on the command line.
func (k PlotKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("PlotKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParsePlotKind maps a case-insensitive name to its PlotKind.
func ParsePlotKind(s string) (PlotKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return PlotKind(i), nil
		}
	}
	return Point, fmt.Errorf("%w %q (want one of %s)", ErrUnknownKind, s, strings.Join(kindNames[:], ", "))
}

// Set implements pflag.Value.
func (k *PlotKind) Set(s string) error {
	v, err := ParsePlotKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Type implements pflag.Value.
func (k *PlotKind) Type() string {
	return "kind"
}

// Renderer returns the renderer of k configured by opts.
// Panics on a value outside the declared kinds.
func (k PlotKind) Renderer(opts ...Option) Renderer {
	o := gatherOptions(opts)
	switch k {
	case Point:
		return PointRenderer{}
	case Boxplot:
		return BoxplotRenderer{RowStep: o.rowStep}
	case CDF:
		return CDFRenderer{}
	case Histogram:
		return HistogramRenderer{Bins: o.bins}
	default:
		panic(fmt.Sprintf("dataset: Renderer: unknown plot kind %d", int(k)))
	}
}
