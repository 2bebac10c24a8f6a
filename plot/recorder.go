// SPDX-License-Identifier: MIT
// Package: paraxial/plot
//
// recorder.go — headless surfaces for tests and dry runs.

package plot

// Op identifies a recorded Surface call.
type Op uint8

const (
	// OpSegment records DrawSegment.
	OpSegment Op = iota + 1
	// OpHorizontal records DrawHorizontal.
	OpHorizontal
	// OpVertical records DrawVertical.
	OpVertical
	// OpPoint records DrawPoint.
	OpPoint
	// OpSetXTicks records SetXTicks; XTicks itself is a read and is not recorded.
	OpSetXTicks
	// OpShow records Show.
	OpShow
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpSegment:
		return "segment"
	case OpHorizontal:
		return "horizontal"
	case OpVertical:
		return "vertical"
	case OpPoint:
		return "point"
	case OpSetXTicks:
		return "xticks"
	case OpShow:
		return "show"
	default:
		return "unknown"
	}
}

// Call is one recorded Surface call. Coordinates are stored as the
// segment they describe:
//
//	segment:    (X0,Y0) -> (X1,Y1)
//	horizontal: (X0,Y)  -> (X1,Y)   with Y0 == Y1 == y
//	vertical:   (X,Y0)  -> (X,Y1)   with X0 == X1 == x
//	point:      (X0,Y0), X1 == X0, Y1 == Y0
type Call struct {
	Op     Op
	X0, Y0 float64
	X1, Y1 float64
	Style  Style
	Ticks  []float64
	Labels []string
}

// Recorder is a headless Surface that keeps every call in order.
// XTicks returns Ticks, or nil when unset.
type Recorder struct {
	Calls []Call
	Ticks []float64
}

var _ Surface = (*Recorder)(nil)

// DrawSegment records an OpSegment call.
func (r *Recorder) DrawSegment(x0, y0, x1, y1 float64, s Style) {
	r.Calls = append(r.Calls, Call{Op: OpSegment, X0: x0, Y0: y0, X1: x1, Y1: y1, Style: s})
}

// DrawHorizontal records an OpHorizontal call.
func (r *Recorder) DrawHorizontal(y, x0, x1 float64, s Style) {
	r.Calls = append(r.Calls, Call{Op: OpHorizontal, X0: x0, Y0: y, X1: x1, Y1: y, Style: s})
}

// DrawVertical records an OpVertical call.
func (r *Recorder) DrawVertical(x, y0, y1 float64, s Style) {
	r.Calls = append(r.Calls, Call{Op: OpVertical, X0: x, Y0: y0, X1: x, Y1: y1, Style: s})
}

// DrawPoint records an OpPoint call.
func (r *Recorder) DrawPoint(x, y float64, s Style) {
	r.Calls = append(r.Calls, Call{Op: OpPoint, X0: x, Y0: y, X1: x, Y1: y, Style: s})
}

// XTicks returns a copy of r.Ticks.
func (r *Recorder) XTicks() []float64 {
	return append([]float64(nil), r.Ticks...)
}

// SetXTicks records an OpSetXTicks call with copies of both slices.
func (r *Recorder) SetXTicks(ticks []float64, labels []string) {
	r.Calls = append(r.Calls, Call{
		Op:     OpSetXTicks,
		Ticks:  append([]float64(nil), ticks...),
		Labels: append([]string(nil), labels...),
	})
}

// Show records an OpShow call and never fails.
func (r *Recorder) Show() error {
	r.Calls = append(r.Calls, Call{Op: OpShow})
	return nil
}

// Ops returns the sequence of recorded operations.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset drops every recorded call.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Nop is a Surface that discards everything.
type Nop struct{}

var _ Surface = Nop{}

// Nop methods satisfy Surface and do nothing; XTicks returns nil and Show
// returns nil.

func (Nop) DrawSegment(_, _, _, _ float64, _ Style) {}
func (Nop) DrawHorizontal(_, _, _ float64, _ Style) {}
func (Nop) DrawVertical(_, _, _ float64, _ Style)   {}
func (Nop) DrawPoint(_, _ float64, _ Style)         {}
func (Nop) XTicks() []float64                       { return nil }
func (Nop) SetXTicks(_ []float64, _ []string)       {}
func (Nop) Show() error                             { return nil }
