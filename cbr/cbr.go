// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cbr characterizes subgrade strength from California Bearing
// Ratio field samples: percentile analysis of a sample set and the
// empirical CBR to resilient modulus conversion.
package cbr

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Distribution sorts a CBR sample set and attaches the cumulative
// percentile of each value (share of samples less than or equal to it).
// The input slice is not modified.
func Distribution(values []float64) (sorted, cumulative []float64, err error) {
	n := len(values)
	if n == 0 {
		return nil, nil, chk.Err("cbr: sample set is empty")
	}
	sorted = make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	cumulative = make([]float64, n)
	for i := range cumulative {
		cumulative[i] = float64(i+1) / float64(n) * 100.0
	}
	return
}

// DesignCBR returns the CBR value such that target percent of the samples
// are at least as strong; e.g. target=90 yields the value exceeded by 90%
// of the samples (common design practice). Linear interpolation on the
// cumulative distribution, clamped at the sample extremes.
func DesignCBR(values []float64, target float64) (float64, error) {
	sorted, cumulative, err := Distribution(values)
	if err != nil {
		return 0, err
	}

	// target percent "at least" maps to 100-target cumulative "at most"
	q := 100.0 - target
	n := len(sorted)
	if q <= cumulative[0] {
		return sorted[0], nil
	}
	if q >= cumulative[n-1] {
		return sorted[n-1], nil
	}
	for i := 1; i < n; i++ {
		if q <= cumulative[i] {
			dq := cumulative[i] - cumulative[i-1]
			w := (q - cumulative[i-1]) / dq
			return sorted[i-1] + w*(sorted[i]-sorted[i-1]), nil
		}
	}
	return sorted[n-1], nil
}

// MRFromCBR converts CBR [%] to the subgrade resilient modulus [psi]:
// MR = 1500·CBR up to CBR=10%, then 500 psi per additional percent
func MRFromCBR(cbr float64) float64 {
	if cbr <= 10 {
		return 1500.0 * cbr
	}
	return 1500.0*10.0 + 500.0*(cbr-10.0)
}
