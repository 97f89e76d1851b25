// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slv implements scalar root finding for the design equations.
// The solver is deliberately self-contained: the capacity equation may
// report an invalid evaluation at any point of the bracket and the search
// must carry that failure out instead of aborting the whole run.
package slv

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Fcn defines a scalar function y = f(x). A non-nil error flags an
// invalid evaluation (e.g. outside the domain of the design equation).
type Fcn func(x float64) (float64, error)

// Bisection finds a root of f within [a, b] using the bisection method.
//  Input:
//   f     -- function
//   a, b  -- bracket with f(a) and f(b) of opposite signs
//   tol   -- absolute tolerance on f and on the half-bracket
//   maxIt -- maximum number of iterations
//  Output:
//   root -- x such that f(x) ≈ 0
//  Notes:
//   A) if f(a) and f(b) have the same sign, an error is returned since a
//      root cannot be guaranteed within the bracket
//   B) if maxIt is exhausted, the current midpoint is returned without
//      error; with tol=1e-6 over brackets of a few units this is far
//      tighter than engineering significance
func Bisection(f Fcn, a, b, tol float64, maxIt int) (root float64, err error) {
	fa, err := f(a)
	if err != nil {
		return 0, err
	}
	fb, err := f(b)
	if err != nil {
		return 0, err
	}
	if fa*fb > 0 {
		return 0, chk.Err("bisection: f(a)=%g and f(b)=%g have the same sign; no root guaranteed in [%g,%g]", fa, fb, a, b)
	}
	var c, fc float64
	for it := 0; it < maxIt; it++ {
		c = (a + b) / 2.0
		fc, err = f(c)
		if err != nil {
			return 0, err
		}
		if math.Abs(fc) < tol || (b-a)/2.0 < tol {
			return c, nil
		}
		if fa*fc < 0 {
			b = c
		} else {
			a = c
			fa = fc
		}
	}
	return (a + b) / 2.0, nil
}
