// Package fuzzy implements triangular fuzzy sets and a classifier that grades
// a value against an ordered collection of them.
package fuzzy

import (
	"fmt"
	"math"
)

// Triangle is a named fuzzy set with a triangular membership function.
// Membership rises from 0 at A to 1 at B and falls back to 0 at C.
//
// A <= B <= C must hold. NewTriangle enforces it; a zero value or a literal
// that breaks it produces an unspecified curve.
type Triangle struct {
	Name    string
	A, B, C float64
}

// NewTriangle returns a Triangle after checking that a <= b <= c and that all
// breakpoints are finite.
func NewTriangle(name string, a, b, c float64) (Triangle, error) {
	t := Triangle{Name: name, A: a, B: b, C: c}
	if err := t.validate(); err != nil {
		return Triangle{}, &ConfigError{Set: name, Err: err}
	}
	return t, nil
}

// validate reports ErrMalformedTriangle for non-finite or unordered
// breakpoints.
func (t Triangle) validate() error {
	for _, v := range []float64{t.A, t.B, t.C} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite breakpoint %v", ErrMalformedTriangle, v)
		}
	}
	if t.A > t.B || t.B > t.C {
		return fmt.Errorf("%w: want a <= b <= c, got a=%g b=%g c=%g", ErrMalformedTriangle, t.A, t.B, t.C)
	}
	return nil
}

// MustTriangle is like NewTriangle but panics on error. Use it for
// compiled-in configuration only.
func MustTriangle(name string, a, b, c float64) Triangle {
	t, err := NewTriangle(name, a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}

// Degree returns the membership of x in the set, in [0, 1].
//
// The peak x == B is always 1, including degenerate shapes where A == B or
// B == C. Away from the peak the edges are open at A and C: x <= A and
// x >= C yield 0.
func (t Triangle) Degree(x float64) float64 {
	switch {
	case x == t.B:
		return 1
	case x <= t.A:
		return 0
	case x <= t.B:
		// A < x < B here, so B > A.
		return (x - t.A) / (t.B - t.A)
	case x < t.C:
		// B < x < C here, so C > B.
		return (t.C - x) / (t.C - t.B)
	default:
		return 0
	}
}

// Support returns the closed interval [A, C] outside which Degree is 0.
func (t Triangle) Support() (lo, hi float64) {
	return t.A, t.C
}

// String renders the set as "Name (a, b, c)".
func (t Triangle) String() string {
	return fmt.Sprintf("%s (%g, %g, %g)", t.Name, t.A, t.B, t.C)
}
