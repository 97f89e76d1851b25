// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subgrade

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_odemark01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("odemark01. single AC layer")

	// AC layer: E = 2500 MPa = 362500 psi, h = 5 cm = 1.9685 in
	layers := []Layer{
		{Name: "AC", E: 362500, H: 5.0 / 2.54},
	}
	mr := 7500.0

	hequiv, results := EquivalentThickness(layers, mr, NuConcrete, NuSubgrade)
	io.Pforan("hequiv = %v\n", hequiv)

	chk.IntAssert(len(results), 1)
	if hequiv <= 0 {
		tst.Errorf("equivalent thickness must be positive: %g\n", hequiv)
		return
	}

	// hand computation
	poisson := math.Pow((1.0-0.40*0.40)/(1.0-0.15*0.15), 1.0/3.0)
	ratio := math.Pow(362500.0/7500.0, 1.0/3.0)
	chk.Float64(tst, "ratio", 1e-14, results[0].ModulusRatio, ratio)
	chk.Float64(tst, "hequiv", 1e-14, hequiv, 5.0/2.54*ratio*poisson)
	chk.Float64(tst, "hequiv[0]", 1e-14, results[0].Hequiv, hequiv)
}

func Test_odemark02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("odemark02. empty and degenerate stacks")

	hequiv, results := EquivalentThickness(nil, 7500, NuConcrete, NuSubgrade)
	chk.Float64(tst, "hequiv empty", 1e-17, hequiv, 0)
	chk.IntAssert(len(results), 0)

	// zero thickness and zero modulus layers are absent courses
	layers := []Layer{
		{Name: "a", E: 50750, H: 0},
		{Name: "b", E: 0, H: 6},
		{Name: "c", E: 21750, H: 6},
	}
	hequiv, results = EquivalentThickness(layers, 7500, NuConcrete, NuSubgrade)
	chk.IntAssert(len(results), 1)
	chk.StrAssert(results[0].Name, "c")
	if hequiv <= 0 {
		tst.Errorf("equivalent thickness must be positive: %g\n", hequiv)
	}
}

func Test_odemark03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("odemark03. order and additivity of the breakdown")

	layers := []Layer{
		{Name: "AC", E: 362500, H: 2.0},
		{Name: "CTB", E: 174000, H: 8.0},
		{Name: "CBR25", E: 21750, H: 6.0},
		{Name: "sand", E: 14500, H: 12.0},
	}
	hequiv, results := EquivalentThickness(layers, 7500, NuConcrete, NuSubgrade)

	chk.IntAssert(len(results), 4)
	names := []string{"AC", "CTB", "CBR25", "sand"}
	sum := 0.0
	for i, r := range results {
		chk.StrAssert(r.Name, names[i])
		sum += r.Hequiv
	}
	chk.Float64(tst, "Σ h_e,i", 1e-13, sum, hequiv)

	// stiffer layers stretch more per unit thickness
	if results[0].ModulusRatio <= results[2].ModulusRatio {
		tst.Errorf("modulus ratio must grow with E: %g <= %g\n", results[0].ModulusRatio, results[2].ModulusRatio)
	}
}
