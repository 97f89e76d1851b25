// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rigid implements the AASHTO 1993 performance equation for rigid
// pavements and the inversion of that equation for the required slab
// thickness.
package rigid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Params holds the design parameters of the AASHTO 1993 rigid pavement
// equation. All values are consumed as-is; validation of physically
// sensible ranges is the caller's concern.
type Params struct {
	ZR   float64 // standard normal deviate for the design reliability (negative)
	S0   float64 // overall standard deviation; AASHTO suggests 0.35 for rigid
	Pt   float64 // terminal serviceability index
	Sc   float64 // concrete modulus of rupture [psi]
	Cd   float64 // drainage coefficient; typically 0.7 to 1.25
	J    float64 // load transfer coefficient; typically 2.0 to 4.5
	Ec   float64 // concrete elastic modulus [psi]
	K    float64 // effective modulus of subgrade reaction [pci]
	DPSI float64 // serviceability loss ΔPSI = Pi - pt
}

// Init initialises parameters from a named set
func (o *Params) Init(prms utl.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "zr":
			o.ZR = p.V
		case "s0":
			o.S0 = p.V
		case "pt":
			o.Pt = p.V
		case "sc":
			o.Sc = p.V
		case "cd":
			o.Cd = p.V
		case "j":
			o.J = p.V
		case "ec":
			o.Ec = p.V
		case "k":
			o.K = p.V
		case "dpsi":
			o.DPSI = p.V
		default:
			return chk.Err("rigid: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters: 90% reliability, C35 concrete,
// JPCP with concrete shoulders
func (o Params) GetPrms() utl.Params {
	return []*utl.P{
		&utl.P{N: "zr", V: -1.282},
		&utl.P{N: "s0", V: 0.35},
		&utl.P{N: "pt", V: 2.5},
		&utl.P{N: "sc", V: 600},
		&utl.P{N: "cd", V: 1.20},
		&utl.P{N: "j", V: 2.8},
		&utl.P{N: "ec", V: 3670559},
		&utl.P{N: "k", V: 400},
		&utl.P{N: "dpsi", V: 2.0},
	}
}
