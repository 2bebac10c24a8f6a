package rays_test

import (
	"testing"

	"github.com/katalvlaran/paraxial/optics"
	"github.com/katalvlaran/paraxial/plot"
	"github.com/katalvlaran/paraxial/rays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(x0, y0, x1, y1 float64, l plot.LineStyle) rays.Segment {
	return rays.Segment{Shape: rays.Line, X0: x0, Y0: y0, X1: x1, Y1: y1, Line: l}
}

func horiz(y, x0, x1 float64, l plot.LineStyle) rays.Segment {
	return rays.Segment{Shape: rays.Horizontal, X0: x0, Y0: y, X1: x1, Y1: y, Line: l}
}

// TestMirrorCentre covers every ordering of x_im against 0.
func TestMirrorCentre(t *testing.T) {
	tests := []struct {
		name     string
		xIm, yIm float64
		wantCase rays.Case
		extra    []rays.Segment
	}{
		{"virtual image", 0.4, 0.5, rays.CaseMirrorCentreVirtual, []rays.Segment{
			line(0, 0, 0.4, 0.5, plot.Dashed),
			line(0, 0, -0.2, -0.25, plot.Solid),
		}},
		{"real image", -0.8, -0.6, rays.CaseMirrorCentreReal, []rays.Segment{
			line(0, 0, -0.8, -0.6, plot.Solid),
		}},
		{"image at pole", 0, 0, rays.CaseNone, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rays.MirrorCentre(-1.2, 1, tt.xIm, tt.yIm)
			assert.Equal(t, rays.ThroughCentre, r.Kind)
			assert.Equal(t, tt.wantCase, r.Case)
			want := append([]rays.Segment{line(-1.2, 1, 0, 0, plot.Solid)}, tt.extra...)
			assert.Equal(t, want, r.Segments)
		})
	}
}

// TestMirrorFocus covers the three focus-ray branches and the fallthrough.
func TestMirrorFocus(t *testing.T) {
	const xObj, yObj = -0.3, 1.0

	tests := []struct {
		name        string
		xIm, yIm, f float64
		wantCase    rays.Case
		extra       []rays.Segment
	}{
		{"real image", -0.9, -2, -0.5, rays.CaseMirrorFocusReal, []rays.Segment{
			horiz(-2, 0, -0.9, plot.Solid),
		}},
		{"concave, object inside focus", 0.75, 2.5, -0.5, rays.CaseMirrorFocusConcaveInner, []rays.Segment{
			line(-0.5, 0, xObj, yObj, plot.Solid),
			horiz(2.5, 0, 0.75, plot.Dashed),
			horiz(2.5, 0, -0.25, plot.Solid),
		}},
		{"convex", 0.2, 0.4, 0.5, rays.CaseMirrorFocusConvex, []rays.Segment{
			horiz(0.4, 0, 0.2, plot.Dashed),
			horiz(0.4, 0, -0.1, plot.Solid),
			line(0, 0.4, 0.5, 0, plot.Dotted),
		}},
		{"convex, image beyond focus", 0.7, 0.4, 0.5, rays.CaseNone, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rays.MirrorFocus(xObj, yObj, tt.xIm, tt.yIm, tt.f)
			assert.Equal(t, rays.ThroughFocus, r.Kind)
			assert.Equal(t, tt.wantCase, r.Case)
			want := append([]rays.Segment{line(xObj, yObj, 0, tt.yIm, plot.Solid)}, tt.extra...)
			assert.Equal(t, want, r.Segments)
		})
	}
}

// TestMirrorParallel covers the four parallel-ray branches and the fallthrough.
func TestMirrorParallel(t *testing.T) {
	const xObj, yObj = -1.2, 1.0

	tests := []struct {
		name        string
		xIm, yIm, f float64
		wantCase    rays.Case
		extra       []rays.Segment
	}{
		{"image beyond focus", -0.8, -0.7, -0.5, rays.CaseMirrorParallelBeyondFocus, []rays.Segment{
			line(0, yObj, -0.8, -0.7, plot.Solid),
		}},
		{"image inside focus", -0.4, -0.3, -0.5, rays.CaseMirrorParallelInsideFocus, []rays.Segment{
			line(0, yObj, -0.5, 0, plot.Solid),
		}},
		{"virtual image", 0.75, 2.5, -0.5, rays.CaseMirrorParallelVirtual, []rays.Segment{
			line(0, yObj, 0.75, 2.5, plot.Dashed),
			line(0, yObj, -0.5, 0, plot.Solid),
		}},
		{"convex", 0.2, 0.4, 0.5, rays.CaseMirrorParallelConvex, []rays.Segment{
			line(0, yObj, 0.5, 0, plot.Dashed),
			line(0, yObj, -0.25, 1.5, plot.Solid),
		}},
		{"image on focus", -0.5, -0.3, -0.5, rays.CaseNone, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rays.MirrorParallel(xObj, yObj, tt.xIm, tt.yIm, tt.f)
			assert.Equal(t, rays.ParallelToAxis, r.Kind)
			assert.Equal(t, tt.wantCase, r.Case)
			want := append([]rays.Segment{horiz(yObj, xObj, 0, plot.Solid)}, tt.extra...)
			assert.Equal(t, want, r.Segments)
		})
	}
}

// TestMirror_SolvedConfigurations feeds solver output into the classifiers
// and checks which branches physical configurations land in.
func TestMirror_SolvedConfigurations(t *testing.T) {
	tests := []struct {
		name                    string
		xObj, r                 float64
		centre, focus, parallel rays.Case
	}{
		{"concave, beyond centre", -1.2, -1,
			rays.CaseMirrorCentreReal, rays.CaseMirrorFocusReal, rays.CaseMirrorParallelBeyondFocus},
		{"concave, between focus and centre", -0.8, -1,
			rays.CaseMirrorCentreReal, rays.CaseMirrorFocusReal, rays.CaseMirrorParallelBeyondFocus},
		{"concave, inside focus", -0.3, -1,
			rays.CaseMirrorCentreVirtual, rays.CaseMirrorFocusConcaveInner, rays.CaseMirrorParallelVirtual},
		{"convex", -1.2, 1,
			rays.CaseMirrorCentreVirtual, rays.CaseMirrorFocusConvex, rays.CaseMirrorParallelConvex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := optics.SolveMirror(optics.Object{X: tt.xObj, Y: 1}, optics.Mirror{R: tt.r})
			require.NoError(t, err)
			require.True(t, res.Formed())
			im := res.Image

			assert.Equal(t, tt.centre, rays.MirrorCentre(tt.xObj, 1, im.X, im.Y).Case)
			assert.Equal(t, tt.focus, rays.MirrorFocus(tt.xObj, 1, im.X, im.Y, res.F).Case)
			assert.Equal(t, tt.parallel, rays.MirrorParallel(tt.xObj, 1, im.X, im.Y, res.F).Case)
		})
	}
}
