package plot_test

import (
	"image/color"
	"testing"

	"github.com/katalvlaran/paraxial/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNiceStep checks the 1-2-5 ladder and the fallbacks.
func TestNiceStep(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{0.07, 0.1},
		{0.15, 0.2},
		{0.3, 0.5},
		{0.8, 1},
		{1, 1},
		{3, 5},
		{42, 50},
		{0, 1},
		{-2, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, plot.NiceStep(tt.raw), 1e-12, "raw=%v", tt.raw)
	}
}

// TestTicks checks spacing, snapping and the empty range.
func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5}, plot.Ticks(-1.26, 0.5, 6))
	assert.Equal(t, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, plot.Ticks(0, 1, 5))
	assert.Nil(t, plot.Ticks(1, 1, 5))
	assert.Nil(t, plot.Ticks(0, 1, 0))
}

// TestInvertedLabels negates and rounds to two decimals without "-0".
func TestInvertedLabels(t *testing.T) {
	got := plot.InvertedLabels([]float64{-1.5, -0.123, 0, 0.5, 2})
	assert.Equal(t, []string{"1.5", "0.12", "0", "-0.5", "-2"}, got)
}

// TestParseColor resolves names, short codes and hex strings.
func TestParseColor(t *testing.T) {
	c, ok := plot.ParseColor("lime")
	require.True(t, ok)
	assert.Equal(t, plot.Lime, c)

	c, ok = plot.ParseColor(" K ")
	require.True(t, ok)
	assert.Equal(t, plot.Black, c)

	c, ok = plot.ParseColor("#1a2B3c")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xFF}, c)

	_, ok = plot.ParseColor("#12345")
	assert.False(t, ok)
	_, ok = plot.ParseColor("#gg0000")
	assert.False(t, ok)
	_, ok = plot.ParseColor("chartreuse-ish")
	assert.False(t, ok)
}

// TestRecorder keeps calls in order and copies tick slices.
func TestRecorder(t *testing.T) {
	var r plot.Recorder
	st := plot.Style{Color: plot.Red, Line: plot.Dashed}

	r.DrawSegment(0, 1, 2, 3, st)
	r.DrawHorizontal(1, -1, 0, st)
	r.DrawVertical(-1, 0, 1, st)
	r.DrawPoint(0.5, 0, st)
	ticks := []float64{1, 2}
	r.SetXTicks(ticks, []string{"-1", "-2"})
	ticks[0] = 99
	require.NoError(t, r.Show())

	assert.Equal(t, []plot.Op{
		plot.OpSegment, plot.OpHorizontal, plot.OpVertical, plot.OpPoint, plot.OpSetXTicks, plot.OpShow,
	}, r.Ops())
	assert.Equal(t, plot.Call{Op: plot.OpHorizontal, X0: -1, Y0: 1, X1: 0, Y1: 1, Style: st}, r.Calls[1])
	assert.Equal(t, plot.Call{Op: plot.OpVertical, X0: -1, Y0: 0, X1: -1, Y1: 1, Style: st}, r.Calls[2])
	assert.Equal(t, []float64{1, 2}, r.Calls[4].Ticks)

	r.Reset()
	assert.Empty(t, r.Calls)
}

// TestStyle_StrokeWidth resolves the zero width.
func TestStyle_StrokeWidth(t *testing.T) {
	assert.Equal(t, plot.DefaultWidth, plot.Style{}.StrokeWidth())
	assert.Equal(t, 0.7, plot.Style{Width: 0.7}.StrokeWidth())
	assert.Equal(t, "dotted", plot.Dotted.String())
	assert.Equal(t, "show", plot.OpShow.String())
}
