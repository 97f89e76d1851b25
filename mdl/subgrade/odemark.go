// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subgrade implements the foundation model for rigid pavement
// design per AASHTO 1993: Odemark's equivalent thickness transformation of
// the base/subbase stack and the modulus of subgrade reaction chain
// (subgrade, composite and effective k).
package subgrade

import (
	"math"
)

// Layer represents one base or subbase course on top of the subgrade.
// Layers are plain values owned by the caller; a stack is given as a slice
// ordered from top to bottom.
type Layer struct {
	Name string  // label; e.g. "CTB" (not interpreted)
	E    float64 // elastic modulus [psi]
	H    float64 // thickness [in]
}

// LayerResult holds the Odemark transformation of one layer
type LayerResult struct {
	Name         string  // copied from Layer
	E            float64 // elastic modulus [psi]
	H            float64 // actual thickness [in]
	ModulusRatio float64 // (E/MR)^(1/3)
	Hequiv       float64 // equivalent thickness [in]
}

// default Poisson's ratios
const (
	NuConcrete = 0.15 // concrete / bound layers
	NuSubgrade = 0.40 // subgrade soil
)

// EquivalentThickness computes the total equivalent thickness of a layer
// stack with respect to the subgrade using Odemark's method
//
//   h_e = h · (E_layer/MR)^(1/3) · [(1-ν_sg²)/(1-ν_lay²)]^(1/3)
//
//  Input:
//   layers -- base/subbase courses, top to bottom (may be empty)
//   mr     -- resilient modulus of the subgrade [psi]; must be positive
//   nuLay  -- Poisson's ratio of the layers (NuConcrete if in doubt)
//   nuSub  -- Poisson's ratio of the subgrade (NuSubgrade if in doubt)
//  Output:
//   hequiv  -- total equivalent thickness [in]
//   results -- per-layer transformation, in input order
//  Note: layers with non-positive thickness or modulus are absent courses
//  and are skipped, not errors. An empty stack yields hequiv = 0.
func EquivalentThickness(layers []Layer, mr, nuLay, nuSub float64) (hequiv float64, results []LayerResult) {
	if len(layers) == 0 {
		return
	}

	// Poisson correction, shared by all layers
	poisson := math.Pow((1.0-nuSub*nuSub)/(1.0-nuLay*nuLay), 1.0/3.0)

	for _, lay := range layers {
		if lay.H <= 0 || lay.E <= 0 {
			continue
		}
		ratio := math.Pow(lay.E/mr, 1.0/3.0)
		he := lay.H * ratio * poisson
		hequiv += he
		results = append(results, LayerResult{
			Name:         lay.Name,
			E:            lay.E,
			H:            lay.H,
			ModulusRatio: ratio,
			Hequiv:       he,
		})
	}
	return
}
