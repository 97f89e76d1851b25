// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subgrade

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Reaction implements the modulus of subgrade reaction model of AASHTO
// 1993 using Odemark's equivalent thickness. The chain is:
//
//   k_subgrade  = MR / 19.4
//   k_composite = k_subgrade · [1 + C1·h_e^C2·(E_eq/MR)^C3]   (clamped)
//   k_effective = k_composite · 10^(-LS·0.25)                 (clamped)
//
// where h_e is the Odemark equivalent thickness of the base/subbase stack,
// E_eq the thickness-weighted equivalent modulus and LS the loss of
// support level.
type Reaction struct {

	// parameters
	NuLay float64 // Poisson's ratio of base/subbase layers
	NuSub float64 // Poisson's ratio of subgrade
	LS    float64 // loss of support level; AASHTO defines 0,1,2,3
}

// empirical constants approximating the AASHTO composite-k nomograph
// (Figure 3.3). Reproduce exactly; calibrated for h_e [in] and moduli [psi]
const (
	enhC1 = 0.025
	enhC2 = 0.80
	enhC3 = 0.33
)

// practical engineering bounds on k [pci]
const (
	kCompositeMax = 1500.0
	kEffectiveMin = 25.0
	kEffectiveMax = 1000.0
)

// ReactionResult holds the derived reaction moduli for one layer stack.
// Invariants: Ksubgrade ≤ Kcomposite ≤ 1500 and Keffective ≤ Kcomposite;
// loss of support only ever reduces k.
type ReactionResult struct {
	Ksubgrade  float64       // k of the semi-infinite subgrade [pci]
	Kcomposite float64       // k enhanced by the base/subbase stack [pci]
	Keffective float64       // k derated by loss of support [pci]
	Hequiv     float64       // total Odemark equivalent thickness [in]
	Eequiv     float64       // thickness-weighted equivalent modulus [psi]
	Layers     []LayerResult // per-layer Odemark breakdown
}

// Init initialises the model with named parameters. Missing parameters
// keep their defaults (NuConcrete, NuSubgrade, LS=0).
func (o *Reaction) Init(prms utl.Params) (err error) {
	o.NuLay, o.NuSub, o.LS = NuConcrete, NuSubgrade, 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "nulay":
			o.NuLay = p.V
		case "nusub":
			o.NuSub = p.V
		case "ls":
			o.LS = p.V
		default:
			return chk.Err("subgrade: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Reaction) GetPrms() utl.Params {
	return []*utl.P{
		&utl.P{N: "nulay", V: NuConcrete},
		&utl.P{N: "nusub", V: NuSubgrade},
		&utl.P{N: "ls", V: 0},
	}
}

// Calc computes the reaction moduli for a layer stack over a subgrade with
// resilient modulus mr [psi]. mr must be positive; this is the caller's
// contract and is not checked here. No step fails: out-of-range values
// saturate at the practical bounds.
func (o Reaction) Calc(layers []Layer, mr float64) (res ReactionResult) {

	// semi-infinite subgrade: k ≈ MR/19.4 [psi → pci]
	res.Ksubgrade = mr / 19.4
	res.Eequiv = mr

	// composite k from the Odemark equivalent thickness
	res.Kcomposite = res.Ksubgrade
	if len(layers) > 0 {
		res.Hequiv, res.Layers = EquivalentThickness(layers, mr, o.NuLay, o.NuSub)
		if res.Hequiv > 0 {

			// thickness-weighted equivalent modulus: E_eq = (Σ h·√E / Σ h)²
			var totH, sumHsqrtE float64
			for _, lay := range layers {
				if lay.H <= 0 || lay.E <= 0 {
					continue
				}
				totH += lay.H
				sumHsqrtE += lay.H * math.Sqrt(lay.E)
			}
			if totH > 0 {
				res.Eequiv = math.Pow(sumHsqrtE/totH, 2.0)
			}

			enhancement := 1.0 + enhC1*math.Pow(res.Hequiv, enhC2)*math.Pow(res.Eequiv/mr, enhC3)
			res.Kcomposite = res.Ksubgrade * enhancement
			if res.Kcomposite > kCompositeMax {
				res.Kcomposite = kCompositeMax
			}
			if res.Kcomposite < res.Ksubgrade {
				res.Kcomposite = res.Ksubgrade
			}
		}
	}

	// loss of support derating (AASHTO Figure 3.6)
	res.Keffective = res.Kcomposite
	if o.LS > 0 {
		res.Keffective = res.Kcomposite * math.Pow(10.0, -o.LS*0.25)
	}
	if res.Keffective > kEffectiveMax {
		res.Keffective = kEffectiveMax
	}
	if res.Keffective < kEffectiveMin {
		res.Keffective = kEffectiveMin
	}
	return
}
