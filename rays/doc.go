// Package rays classifies the three construction rays of a paraxial
// diagram and emits the strokes that draw them.
//
// Each function is a case table: the ordering of the object position, the
// image position and the relevant focus against 0 selects one branch, and
// each branch fixes the segments to draw and their style.
//
//   - Solid:  a light path that is physically travelled.
//   - Dashed: a virtual backward extension locating a virtual image.
//   - Dotted: an auxiliary line to a focus on the far side.
//
// The lens and mirror pipelines assign the "parallel" and "through focus"
// roles to different constructions; each pipeline keeps its own mapping
// (see lens.go and mirror.go). The Case field of a Ray records which
// ordering matched, CaseNone when a boundary equality left only the
// unconditional strokes.
//
// All functions are pure and O(1).
package rays
