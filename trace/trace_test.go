package trace_test

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/katalvlaran/paraxial/optics"
	"github.com/katalvlaran/paraxial/plot"
	"github.com/katalvlaran/paraxial/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger records every formatted message.
type captureLogger struct{ lines []string }

func (c *captureLogger) Printf(format string, args ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

// failingSurface records like plot.Recorder but fails on Show.
type failingSurface struct {
	plot.Recorder
	err error
}

func (f *failingSurface) Show() error { return f.err }

var (
	concave  = optics.Mirror{R: -1}
	biconvex = optics.Lens{R1: 0.2, R2: -0.3, N0: 1, N: 1.5}
	unitLens = optics.Lens{R1: 1, R2: -1, N0: 1, N: 1.5} // f1 = -1
)

// TestMirror_DrawOrder checks the full call sequence of the concave mirror
// scenario.
func TestMirror_DrawOrder(t *testing.T) {
	rec := &plot.Recorder{}
	res, err := trace.Mirror(rec, optics.Object{X: -1.2, Y: 1}, concave, trace.WithLogger(&captureLogger{}))
	require.NoError(t, err)
	require.True(t, res.Formed())

	// outline, centre ray, focus ray, parallel ray, markers, f, axis, show
	assert.Equal(t, []plot.Op{
		plot.OpVertical,
		plot.OpSegment, plot.OpSegment,
		plot.OpSegment, plot.OpHorizontal,
		plot.OpHorizontal, plot.OpSegment,
		plot.OpVertical, plot.OpVertical,
		plot.OpPoint,
		plot.OpHorizontal,
		plot.OpShow,
	}, rec.Ops())

	outline := rec.Calls[0]
	assert.Equal(t, plot.Blue, outline.Style.Color)
	assert.Equal(t, plot.Dashed, outline.Style.Line)
	assert.Equal(t, 0.7, outline.Style.Width)
	assert.Equal(t, 0.0, outline.X0)
	assert.Equal(t, 1.0, outline.Y1)
	assert.InDelta(t, res.Image.Y, outline.Y0, 1e-12)

	assert.Equal(t, plot.Gray, rec.Calls[1].Style.Color)
	assert.Equal(t, plot.Red, rec.Calls[3].Style.Color)
	assert.Equal(t, plot.Lime, rec.Calls[5].Style.Color)

	obj, img := rec.Calls[7], rec.Calls[8]
	assert.Equal(t, plot.Style{Color: plot.Black, Width: 2}, obj.Style)
	assert.Equal(t, -1.2, obj.X0)
	assert.Equal(t, 1.0, obj.Y1)
	assert.Equal(t, res.Image.X, img.X0)
	assert.Equal(t, res.Image.Y, img.Y1)

	assert.Equal(t, -0.5, rec.Calls[9].X0)

	axis := rec.Calls[10]
	assert.Equal(t, plot.Style{Color: plot.Black, Width: 0.5}, axis.Style)
	assert.Equal(t, -1.2, axis.X0)
	assert.Equal(t, 0.5, axis.X1)
}

// TestLens_DrawOrder checks the full call sequence of the biconvex lens
// scenario.
func TestLens_DrawOrder(t *testing.T) {
	rec := &plot.Recorder{}
	res, err := trace.Lens(rec, optics.Object{X: -0.8, Y: 1}, biconvex)
	require.NoError(t, err)
	require.True(t, res.Formed())

	// outline, centre ray, f2 ray, f1 ray, markers, foci, axis, show
	assert.Equal(t, []plot.Op{
		plot.OpVertical,
		plot.OpSegment, plot.OpSegment,
		plot.OpHorizontal, plot.OpSegment,
		plot.OpSegment, plot.OpHorizontal,
		plot.OpVertical, plot.OpVertical,
		plot.OpPoint, plot.OpPoint,
		plot.OpHorizontal,
		plot.OpShow,
	}, rec.Ops())

	assert.Equal(t, plot.Gray, rec.Calls[1].Style.Color)
	assert.Equal(t, plot.Lime, rec.Calls[3].Style.Color)
	assert.Equal(t, plot.Red, rec.Calls[5].Style.Color)

	assert.InDelta(t, -0.24, rec.Calls[9].X0, 1e-12)
	assert.InDelta(t, 0.24, rec.Calls[10].X0, 1e-12)

	axis := rec.Calls[11]
	assert.Equal(t, -0.8, axis.X0)
	assert.InDelta(t, res.Image.X, axis.X1, 1e-12)
}

// TestMirror_Degenerate checks the object-at-focus short circuit.
func TestMirror_Degenerate(t *testing.T) {
	rec := &plot.Recorder{}
	logger := &captureLogger{}

	res, err := trace.Mirror(rec, optics.Object{X: -0.5, Y: 1}, concave, trace.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, optics.Degenerate, res.Outcome)
	xIm, yIm, m, f := res.Values()
	assert.True(t, math.IsNaN(xIm))
	assert.True(t, math.IsNaN(yIm))
	assert.True(t, math.IsNaN(m))
	assert.Equal(t, -0.5, f)

	assert.Equal(t, []string{"object at focus, no image formed"}, logger.lines)
	assert.Equal(t, []plot.Op{plot.OpVertical, plot.OpHorizontal, plot.OpShow}, rec.Ops())

	outline, axis := rec.Calls[0], rec.Calls[1]
	assert.Equal(t, 0.0, outline.Y0)
	assert.Equal(t, 1.0, outline.Y1)
	assert.Equal(t, -0.5, axis.X0)
	assert.Equal(t, 0.5, axis.X1)
}

// TestLens_Degenerate checks the object-at-principal-focus short circuit.
func TestLens_Degenerate(t *testing.T) {
	rec := &plot.Recorder{}
	logger := &captureLogger{}
	res, err := trace.Lens(rec, optics.Object{X: -1, Y: -2}, unitLens, trace.WithLogger(logger))
	require.NoError(t, err)

	assert.False(t, res.Formed())
	assert.Equal(t, -1.0, res.F1)
	assert.Equal(t, 1.0, res.F2)
	assert.Len(t, logger.lines, 1)
	assert.Equal(t, []plot.Op{plot.OpVertical, plot.OpHorizontal, plot.OpShow}, rec.Ops())
	assert.Equal(t, -2.0, rec.Calls[0].Y0)
	assert.Equal(t, 0.0, rec.Calls[0].Y1)
}

// TestTrace_ValidationDrawsNothing ensures invalid input fails before any
// drawing call.
func TestTrace_ValidationDrawsNothing(t *testing.T) {
	rec := &plot.Recorder{}

	_, err := trace.Mirror(rec, optics.Object{X: 1, Y: 1}, concave)
	assert.ErrorIs(t, err, optics.ErrInvalidObjectPosition)

	_, err = trace.Mirror(rec, optics.Object{X: -1, Y: 1}, optics.Mirror{})
	assert.ErrorIs(t, err, optics.ErrInvalidGeometry)

	_, err = trace.Lens(rec, optics.Object{X: 0, Y: 1}, biconvex)
	assert.ErrorIs(t, err, optics.ErrObjectAtElement)

	_, err = trace.Lens(rec, optics.Object{X: -1, Y: 0}, biconvex)
	assert.ErrorIs(t, err, optics.ErrInvalidObjectHeight)

	// Finite but subnormal: 1/x_obj overflows, no image is drawn.
	_, err = trace.Mirror(rec, optics.Object{X: -5e-324, Y: 1}, concave)
	assert.ErrorIs(t, err, optics.ErrNonFinite)

	assert.Empty(t, rec.Calls)
}

// TestTrace_InvertXAxis checks that ticks are relabelled right before Show.
func TestTrace_InvertXAxis(t *testing.T) {
	rec := &plot.Recorder{Ticks: []float64{-1, -0.5, 0, 0.333}}

	_, err := trace.Lens(rec, optics.Object{X: -0.8, Y: 1}, biconvex, trace.WithInvertXAxis(true))
	require.NoError(t, err)

	ops := rec.Ops()
	require.GreaterOrEqual(t, len(ops), 2)
	assert.Equal(t, plot.OpSetXTicks, ops[len(ops)-2])
	assert.Equal(t, plot.OpShow, ops[len(ops)-1])

	set := rec.Calls[len(rec.Calls)-2]
	assert.Equal(t, []float64{-1, -0.5, 0, 0.333}, set.Ticks)
	assert.Equal(t, []string{"1", "0.5", "0", "-0.33"}, set.Labels)

	// Without the option the ticks are left alone.
	rec.Reset()
	_, err = trace.Lens(rec, optics.Object{X: -0.8, Y: 1}, biconvex)
	require.NoError(t, err)
	assert.NotContains(t, rec.Ops(), plot.OpSetXTicks)
}

// TestTrace_Colors checks that every colour option reaches its stroke.
func TestTrace_Colors(t *testing.T) {
	purple := color.RGBA{R: 0x80, B: 0x80, A: 0xFF}

	rec := &plot.Recorder{}
	_, err := trace.Mirror(rec, optics.Object{X: -1.2, Y: 1}, concave,
		trace.WithElementColor(plot.Green),
		trace.WithCentreRayColor(plot.Black),
		trace.WithFocusRayColor(purple),
		trace.WithParallelRayColor(plot.Blue),
	)
	require.NoError(t, err)

	assert.Equal(t, plot.Green, rec.Calls[0].Style.Color)
	assert.Equal(t, plot.Black, rec.Calls[1].Style.Color)
	assert.Equal(t, purple, rec.Calls[3].Style.Color)
	assert.Equal(t, plot.Blue, rec.Calls[5].Style.Color)
}

// TestTrace_Idempotent runs the same input twice on fresh surfaces.
func TestTrace_Idempotent(t *testing.T) {
	a, b := &plot.Recorder{}, &plot.Recorder{}

	r1, err := trace.Lens(a, optics.Object{X: -0.2, Y: 0.5}, biconvex)
	require.NoError(t, err)
	r2, err := trace.Lens(b, optics.Object{X: -0.2, Y: 0.5}, biconvex)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, a.Calls, b.Calls)

	m1, err := trace.Mirror(plot.Nop{}, optics.Object{X: -1.2, Y: 1}, concave)
	require.NoError(t, err)
	m2, err := trace.Mirror(plot.Nop{}, optics.Object{X: -1.2, Y: 1}, concave)
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

// TestTrace_ShowError checks that a Show failure is wrapped and the result
// is still returned.
func TestTrace_ShowError(t *testing.T) {
	boom := errors.New("display closed")
	s := &failingSurface{err: boom}

	res, err := trace.Mirror(s, optics.Object{X: -1.2, Y: 1}, concave)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Mirror")
	assert.True(t, res.Formed())

	lres, err := trace.Lens(s, optics.Object{X: -1, Y: 1}, unitLens, trace.WithLogger(&captureLogger{}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Lens")
	assert.False(t, lres.Formed())
}

// TestWithLogger_PanicsOnNil checks the option-constructor contract.
func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { trace.WithLogger(nil) })
}
