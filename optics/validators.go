// SPDX-License-Identifier: MIT
// Package: paraxial/optics
//
// validators.go — input contracts shared by both solvers.
//
// Priority (first failure wins):
//   NaN/Inf -> object position -> object at element -> geometry -> height
//   -> medium (lens only).

package optics

import "math"

// ValidateMirror checks obj and m against the mirror solver contract.
// Complexity: O(1).
func ValidateMirror(obj Object, m Mirror) error {
	if !finite(obj.X, obj.Y, m.R) {
		return opticsErrorf(MethodSolveMirror, ErrNonFinite, "x_obj=%v y_obj=%v r=%v", obj.X, obj.Y, m.R)
	}
	if err := validateObjectPosition(MethodSolveMirror, obj.X); err != nil {
		return err
	}
	if m.R == 0 {
		return opticsErrorf(MethodSolveMirror, ErrInvalidGeometry, "radius cannot be zero")
	}
	if obj.Y == 0 {
		return opticsErrorf(MethodSolveMirror, ErrInvalidObjectHeight, "y_obj == 0")
	}

	return nil
}

// ValidateLens checks obj and l against the lens solver contract.
// Complexity: O(1).
func ValidateLens(obj Object, l Lens) error {
	if !finite(obj.X, obj.Y, l.R1, l.R2, l.N0, l.N) {
		return opticsErrorf(MethodSolveLens, ErrNonFinite,
			"x_obj=%v y_obj=%v r1=%v r2=%v n0=%v n=%v", obj.X, obj.Y, l.R1, l.R2, l.N0, l.N)
	}
	if err := validateObjectPosition(MethodSolveLens, obj.X); err != nil {
		return err
	}
	if l.R1 == 0 || l.R2 == 0 {
		return opticsErrorf(MethodSolveLens, ErrInvalidGeometry, "neither radius can be zero")
	}
	if obj.Y == 0 {
		return opticsErrorf(MethodSolveLens, ErrInvalidObjectHeight, "y_obj == 0")
	}
	// The remaining checks guard divisions in the lensmaker formula.
	if l.N0 <= 0 || l.N <= 0 {
		return opticsErrorf(MethodSolveLens, ErrInvalidMedium, "indices must be positive, n0=%v n=%v", l.N0, l.N)
	}
	if l.N == l.N0 {
		return opticsErrorf(MethodSolveLens, ErrInvalidMedium, "n == n0 == %v", l.N)
	}
	if l.R1 == l.R2 {
		return opticsErrorf(MethodSolveLens, ErrInvalidGeometry, "r1 == r2 == %v", l.R1)
	}

	return nil
}

// validateObjectPosition enforces x_obj < 0.
func validateObjectPosition(method string, x float64) error {
	if x > 0 {
		return opticsErrorf(method, ErrInvalidObjectPosition, "x_obj=%v", x)
	}
	if x == 0 {
		return opticsErrorf(method, ErrObjectAtElement, "x_obj == 0")
	}

	return nil
}

// finite reports whether none of vs is NaN or ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
