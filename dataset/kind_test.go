// SPDX-License-Identifier: MIT

package dataset_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qdplot/dataset"
)

func TestParsePlotKind(t *testing.T) {
	cases := []struct {
		in   string
		want dataset.PlotKind
	}{
		{"point", dataset.Point},
		{"boxplot", dataset.Boxplot},
		{"CDF", dataset.CDF},
		{" Histogram ", dataset.Histogram},
	}
	for _, tc := range cases {
		got, err := dataset.ParsePlotKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := dataset.ParsePlotKind("pie")
	assert.ErrorIs(t, err, dataset.ErrUnknownKind)
}

// TestPlotKind_StringRoundTrip parses back every kind name.
func TestPlotKind_StringRoundTrip(t *testing.T) {
	for _, k := range dataset.PlotKinds() {
		got, err := dataset.ParsePlotKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "PlotKind(9)", dataset.PlotKind(9).String())
	assert.Equal(t, dataset.Point, dataset.PlotKind(0))
}

// TestPlotKind_Flag binds a PlotKind to a pflag flag set.
func TestPlotKind_Flag(t *testing.T) {
	var k dataset.PlotKind
	fs := pflag.NewFlagSet("qdplot", pflag.ContinueOnError)
	fs.VarP(&k, "kind", "k", "plot kind")

	require.NoError(t, fs.Parse([]string{"-k", "cdf"}))
	assert.Equal(t, dataset.CDF, k)
	assert.Equal(t, "kind", fs.Lookup("kind").Value.Type())

	assert.Error(t, fs.Parse([]string{"--kind", "pie"}))
	assert.Equal(t, dataset.CDF, k, "a rejected value leaves the flag unchanged")
}

func TestPlotKind_Renderer(t *testing.T) {
	assert.IsType(t, dataset.PointRenderer{}, dataset.Point.Renderer())
	assert.Equal(t, dataset.BoxplotRenderer{RowStep: dataset.DefaultRowStep}, dataset.Boxplot.Renderer())
	assert.Equal(t, dataset.BoxplotRenderer{RowStep: 6}, dataset.Boxplot.Renderer(dataset.WithRowStep(6)))
	assert.IsType(t, dataset.CDFRenderer{}, dataset.CDF.Renderer())
	assert.Equal(t, dataset.HistogramRenderer{Bins: 10}, dataset.Histogram.Renderer())
	assert.Equal(t, dataset.HistogramRenderer{Bins: 3}, dataset.Histogram.Renderer(dataset.WithBins(3)))

	assert.Panics(t, func() { dataset.PlotKind(-1).Renderer() })
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dataset.WithBins(0) })
	assert.Panics(t, func() { dataset.WithRowStep(2) })
	assert.NotPanics(t, func() { dataset.WithRowStep(3) })
}
