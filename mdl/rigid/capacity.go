// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rigid

import (
	"errors"
	"math"
)

// ErrInvalid flags a slab thickness outside the valid domain of the AASHTO
// equation: the argument of the second logarithm becomes non-positive when
// D^0.75 does not exceed 1.132 and 18.42/(Ec/k)^0.25. Callers treat this
// as "infeasible at these parameters", not as a fatal condition.
var ErrInvalid = errors.New("rigid: AASHTO equation undefined for this thickness")

// LogW18 evaluates the AASHTO 1993 rigid pavement performance equation
//
//   log₁₀ W18 = ZR·S0 + 7.35·log₁₀(D+1) - 0.06
//             + log₁₀(ΔPSI/3.0) / [1 + 1.624e7/(D+1)^8.46]
//             + (4.22 - 0.32·pt) · log₁₀( Sc·Cd·(D^0.75 - 1.132) /
//               { 215.63·J·[D^0.75 - 18.42/(Ec/k)^0.25] } )
//
// returning the base-10 logarithm of the ESAL capacity for slab thickness
// D [in]. The numeric constants are specific to D in inches, moduli in psi
// and k in pci and must not be altered. Returns ErrInvalid when the inner
// ratio is non-positive.
func LogW18(D float64, prm Params) (float64, error) {

	// serviceability term
	num1 := math.Log10(prm.DPSI / 3.0)
	den1 := 1.0 + 1.624e7/math.Pow(D+1.0, 8.46)
	term1 := num1 / den1

	// stress term; undefined for thin slabs or extreme parameters
	d075 := math.Pow(D, 0.75)
	eck := math.Pow(prm.Ec/prm.K, 0.25)
	num2 := prm.Sc * prm.Cd * (d075 - 1.132)
	den2 := 215.63 * prm.J * (d075 - 18.42/eck)
	if num2 <= 0 || den2 <= 0 {
		return 0, ErrInvalid
	}
	term2 := (4.22 - 0.32*prm.Pt) * math.Log10(num2/den2)

	return prm.ZR*prm.S0 + 7.35*math.Log10(D+1.0) - 0.06 + term1 + term2, nil
}
