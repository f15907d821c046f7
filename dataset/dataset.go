// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/qdplot/canvas"
	"github.com/katalvlaran/qdplot/stats"
)

// DataSet maps series labels to their points. The zero value is not usable;
// build one with New or an ingestion function.
//
// A DataSet is not safe for concurrent mutation.
type DataSet struct {
	series map[string]plotter.XYs
}

// Bounds is the bounding box of a set of points.
type Bounds struct {
	X, Y canvas.Interval
}

// New returns an empty DataSet.
func New() *DataSet {
	return &DataSet{series: make(map[string]plotter.XYs)}
}

// AddSeries appends a copy of points to the series named label, creating it
// when absent.
func (d *DataSet) AddSeries(label string, points plotter.XYs) {
	d.series[label] = append(d.series[label], points...)
}

func (d *DataSet) addPoint(label string, p plotter.XY) {
	d.series[label] = append(d.series[label], p)
}

// Labels returns the series labels in lexicographic order, the order in
// which every renderer visits them.
func (d *DataSet) Labels() []string {
	labels := make([]string, 0, len(d.series))
	for l := range d.series {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Series returns a copy of the points of label.
func (d *DataSet) Series(label string) (plotter.XYs, bool) {
	pts, ok := d.series[label]
	if !ok {
		return nil, false
	}
	return append(plotter.XYs(nil), pts...), true
}

// All returns every series in label order. Points are shared with the
// DataSet and must not be modified.
func (d *DataSet) All() []Series {
	labels := d.Labels()
	out := make([]Series, len(labels))
	for i, l := range labels {
		out[i] = Series{Label: l, Points: d.series[l]}
	}
	return out
}

// Len returns the number of series.
func (d *DataSet) Len() int {
	return len(d.series)
}

// NumPoints returns the number of points over all series, NaN included.
func (d *DataSet) NumPoints() int {
	n := 0
	for _, pts := range d.series {
		n += len(pts)
	}
	return n
}

// Bounds returns the bounding box of every point with finite coordinates.
// It fails with canvas.ErrNoData when there is none.
func (d *DataSet) Bounds() (Bounds, error) {
	return boundsOf(d.All())
}

func boundsOf(series []Series) (Bounds, error) {
	var pts plotter.XYs
	for _, s := range series {
		pts = append(pts, s.Drawable()...)
	}
	if len(pts) == 0 {
		return Bounds{}, fmt.Errorf("%w: no finite point in %d series", canvas.ErrNoData, len(series))
	}
	xmin, xmax, ymin, ymax := plotter.XYRange(pts)

	return Bounds{
		X: canvas.Interval{Min: xmin, Max: xmax},
		Y: canvas.Interval{Min: ymin, Max: ymax},
	}, nil
}

// ValueRange returns the smallest and largest finite y value over all
// series, the natural x range of box plots and CDFs.
func (d *DataSet) ValueRange() (min, max float64, err error) {
	var vs plotter.Values
	for _, s := range d.All() {
		vs = append(vs, s.Values()...)
	}
	if len(vs) == 0 {
		return 0, 0, fmt.Errorf("%w: no finite value", canvas.ErrNoData)
	}
	min, max = plotter.Range(vs)
	return min, max, nil
}

// Quantiles returns the five-number summary of the y values of each series.
// Series without a finite value are omitted.
func (d *DataSet) Quantiles() map[string]*stats.Quantiles {
	out := make(map[string]*stats.Quantiles, len(d.series))
	for _, s := range d.All() {
		if vs := s.Values(); len(vs) > 0 {
			out[s.Label] = stats.NewQuantiles(vs)
		}
	}
	return out
}

// Cumulatives returns, for each series, the points where the empirical CDF
// of its y values changes. Series without a finite value are omitted.
func (d *DataSet) Cumulatives() map[string][]stats.Step {
	out := make(map[string][]stats.Step, len(d.series))
	for _, s := range d.All() {
		if vs := s.Values(); len(vs) > 0 {
			out[s.Label] = stats.NewECDF(vs).Steps()
		}
	}
	return out
}

// Draw renders d onto c as kind. opts tune the renderer; see WithBins and
// WithRowStep.
//
// Fails with canvas.ErrNoData when d holds no point at all, before any
// range is touched. Other errors come from the renderer.
func (d *DataSet) Draw(c *canvas.Canvas, kind PlotKind, opts ...Option) error {
	return d.DrawWith(c, kind.Renderer(opts...))
}

// DrawWith renders d onto c with r.
func (d *DataSet) DrawWith(c *canvas.Canvas, r Renderer) error {
	if d.NumPoints() == 0 {
		return fmt.Errorf("%w: data set is empty", canvas.ErrNoData)
	}
	return r.Render(d.All(), c)
}
