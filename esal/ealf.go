// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package esal implements the traffic-loading side of AASHTO 1993 design:
// axle load equivalency factors (EALF), truck factors from axle
// configurations and the accumulation of equivalent single axle loads
// (ESAL) over the design life.
package esal

import (
	"math"
)

// constants
const (
	TonToKip        = 2.2046 // metric ton to kip
	StandardAxleKip = 18.0   // standard single axle load [kip]
)

// axle codes (L2)
const (
	Single = 1
	Tandem = 2
	Tridem = 3
)

// Axle is one axle group of a truck
type Axle struct {
	Name    string  // label; e.g. "front"
	LoadTon float64 // axle group load [metric ton]
	L2      int     // axle code: 1=single, 2=tandem, 3=tridem
}

// EALFFlexible computes the axle load equivalency factor for flexible
// pavements (AASHTO 1993 Eq. 2-1) for an axle group of lxKip [kip] with
// axle code l2, terminal serviceability pt and structural number sn.
// Non-positive load or axle code yields zero (absent axle).
func EALFFlexible(lxKip float64, l2 int, pt, sn float64) float64 {
	if lxKip <= 0 || l2 <= 0 {
		return 0
	}
	lx := lxKip
	fl2 := float64(l2)
	gt := math.Log10((4.2 - pt) / (4.2 - 1.5))
	betaX := 0.40 + 0.081*math.Pow(lx+fl2, 3.23)/(math.Pow(sn+1.0, 5.19)*math.Pow(fl2, 3.23))
	beta18 := 0.40 + 0.081*math.Pow(StandardAxleKip+1.0, 3.23)/math.Pow(sn+1.0, 5.19)
	logRatio := 4.79*math.Log10(StandardAxleKip+1.0) - 4.79*math.Log10(lx+fl2) +
		4.33*math.Log10(fl2) + gt/betaX - gt/beta18
	return math.Pow(10, -logRatio)
}

// EALFRigid computes the axle load equivalency factor for rigid pavements
// (AASHTO 1993 Eq. 2-2) for an axle group of lxKip [kip] with axle code
// l2, terminal serviceability pt and slab thickness d [in]. Non-positive
// load or axle code yields zero (absent axle).
func EALFRigid(lxKip float64, l2 int, pt, d float64) float64 {
	if lxKip <= 0 || l2 <= 0 {
		return 0
	}
	lx := lxKip
	fl2 := float64(l2)
	gt := math.Log10((4.5 - pt) / (4.5 - 1.5))
	betaX := 1.00 + 3.63*math.Pow(lx+fl2, 5.20)/(math.Pow(d+1.0, 8.46)*math.Pow(fl2, 3.52))
	beta18 := 1.00 + 3.63*math.Pow(StandardAxleKip+1.0, 5.20)/math.Pow(d+1.0, 8.46)
	logRatio := 4.62*math.Log10(StandardAxleKip+1.0) - 4.62*math.Log10(lx+fl2) +
		3.28*math.Log10(fl2) + gt/betaX - gt/beta18
	return math.Pow(10, -logRatio)
}

// TruckFactorFlexible sums the equivalency factors of all axles of one
// truck for a flexible pavement with structural number sn
func TruckFactorFlexible(axles []Axle, pt, sn float64) (tf float64) {
	for _, a := range axles {
		if a.LoadTon > 0 && a.L2 > 0 {
			tf += EALFFlexible(a.LoadTon*TonToKip, a.L2, pt, sn)
		}
	}
	return
}

// TruckFactorRigid sums the equivalency factors of all axles of one truck
// for a rigid pavement with slab thickness d [in]
func TruckFactorRigid(axles []Axle, pt, d float64) (tf float64) {
	for _, a := range axles {
		if a.LoadTon > 0 && a.L2 > 0 {
			tf += EALFRigid(a.LoadTon*TonToKip, a.L2, pt, d)
		}
	}
	return
}
