// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rigid

import (
	"math"

	"github.com/cpmech/gopave/slv"
)

// default thickness search bracket [in]
const (
	DminDefault = 6.0
	DmaxDefault = 20.0
)

// bisection settings; W18 spans about six decades over the bracket so
// 1e-6 within 100 iterations is far tighter than the 0.01 in significance
// of a slab thickness
const (
	solverTol   = 1e-6
	solverMaxIt = 100
)

// Status distinguishes the outcomes of a thickness solve
type Status int

const (
	Found          Status = iota // root located within the bracket
	AtMinimum                    // minimum thickness already carries the demand
	ExceedsMaximum               // even the maximum thickness is insufficient
	NoSolution                   // equation ill-posed at these parameters
)

// String returns a human readable status
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case AtMinimum:
		return "at minimum"
	case ExceedsMaximum:
		return "exceeds maximum"
	}
	return "no solution"
}

// Solution is the outcome of a thickness solve. D is meaningful for Found
// (the root) and AtMinimum (the lower bracket); for ExceedsMaximum it
// carries dmax+1 as an out-of-range numeric signal preserved for callers
// that only look at the number.
type Solution struct {
	Status Status
	D      float64 // slab thickness [in]
}

// SolveThickness finds the slab thickness D within [dmin, dmax] such that
// the ESAL capacity W18(D) equals the design traffic w18. The objective
// log₁₀W18(D) - log₁₀(w18) is monotone in D over the valid domain, so a
// sign change over the bracket implies a unique root.
//  Decision tree:
//   1) objective(dmin) > 0 => AtMinimum: no root search needed
//   2) objective(dmax) < 0 => ExceedsMaximum: redesign with different
//      parameters (thicker bracket, better foundation, stronger concrete)
//   3) otherwise bisection over [dmin, dmax]
//  Any domain-guard failure of the capacity equation, at the bracket ends
//  or during the search, yields NoSolution rather than a crash.
func SolveThickness(w18 float64, prm Params, dmin, dmax float64) Solution {
	target := math.Log10(w18)
	objective := func(D float64) (float64, error) {
		logW18, err := LogW18(D, prm)
		if err != nil {
			return 0, err
		}
		return logW18 - target, nil
	}

	fmin, err := objective(dmin)
	if err != nil {
		return Solution{Status: NoSolution}
	}
	fmax, err := objective(dmax)
	if err != nil {
		return Solution{Status: NoSolution}
	}

	if fmin > 0 {
		return Solution{Status: AtMinimum, D: dmin}
	}
	if fmax < 0 {
		return Solution{Status: ExceedsMaximum, D: dmax + 1.0}
	}

	root, err := slv.Bisection(objective, dmin, dmax, solverTol, solverMaxIt)
	if err != nil {
		return Solution{Status: NoSolution}
	}
	return Solution{Status: Found, D: root}
}
