// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package esal

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_ealf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ealf01. standard axle equivalency is one")

	// an 18 kip single axle is the reference load by definition
	chk.Float64(tst, "rigid 18k", 1e-12, EALFRigid(StandardAxleKip, Single, 2.5, 12), 1.0)
	chk.Float64(tst, "flexible 18k", 1e-12, EALFFlexible(StandardAxleKip, Single, 2.5, 5), 1.0)
}

func Test_ealf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ealf02. load monotonicity and absent axles")

	prev := 0.0
	for _, lx := range []float64{6, 12, 18, 24, 30, 36} {
		f := EALFRigid(lx, Single, 2.5, 12)
		io.Pf("Lx=%2g kip => EALF = %v\n", lx, f)
		if f <= prev {
			tst.Errorf("EALF must grow with axle load: %g <= %g\n", f, prev)
			return
		}
		prev = f
	}

	chk.Float64(tst, "zero load", 1e-17, EALFRigid(0, Single, 2.5, 12), 0)
	chk.Float64(tst, "zero code", 1e-17, EALFRigid(18, 0, 2.5, 12), 0)
	chk.Float64(tst, "zero load flex", 1e-17, EALFFlexible(0, Single, 2.5, 5), 0)
}

func Test_ealf03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ealf03. truck factors against tabulated values")

	trucks := DefaultTrucks()

	// heavy truck on rigid pavement, pt=2.5, D=12 in
	tf := TruckFactorRigid(trucks["HT"].Axles, 2.5, 12)
	ref, err := DefaultTruckFactor("HT", "rigid", 2.5, 12)
	if err != nil {
		tst.Errorf("DefaultTruckFactor failed: %v\n", err)
		return
	}
	io.Pforan("HT: computed=%v tabulated=%v\n", tf, ref)
	chk.Float64(tst, "HT rigid pt2.5 D12", 0.05, tf, ref)

	// medium bus
	tf = TruckFactorRigid(trucks["MB"].Axles, 2.5, 12)
	ref, err = DefaultTruckFactor("MB", "rigid", 2.5, 12)
	if err != nil {
		tst.Errorf("DefaultTruckFactor failed: %v\n", err)
		return
	}
	io.Pforan("MB: computed=%v tabulated=%v\n", tf, ref)
	chk.Float64(tst, "MB rigid pt2.5 D12", 0.05, tf, ref)
}

func Test_ealf04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ealf04. table lookups")

	tf, err := DefaultTruckFactor("STR", "rigid", 2.5, 10)
	if err != nil {
		tst.Errorf("lookup failed: %v\n", err)
		return
	}
	chk.Float64(tst, "STR rigid pt2.5 D10", 1e-17, tf, 11.7203)

	tf, err = DefaultTruckFactor("TR", "flexible", 2.0, 6)
	if err != nil {
		tst.Errorf("lookup failed: %v\n", err)
		return
	}
	chk.Float64(tst, "TR flexible pt2.0 SN6", 1e-17, tf, 5.1978)

	_, err = DefaultTruckFactor("HT", "rigid", 3.0, 12)
	if err == nil {
		tst.Errorf("lookup should have failed for pt=3.0\n")
	}
	_, err = DefaultTruckFactor("XX", "rigid", 2.5, 12)
	if err == nil {
		tst.Errorf("lookup should have failed for unknown class\n")
	}
	_, err = DefaultTruckFactor("HT", "rigid", 2.5, 9)
	if err == nil {
		tst.Errorf("lookup should have failed for D=9\n")
	}
}

func Test_ealf05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ealf05. default truck catalog")

	trucks := DefaultTrucks()
	chk.IntAssert(len(trucks), len(TruckCodes))
	for _, code := range TruckCodes {
		t, ok := trucks[code]
		if !ok {
			tst.Errorf("truck %q missing from catalog\n", code)
			return
		}
		chk.StrAssert(t.Code, code)
		if len(t.Axles) < 2 {
			tst.Errorf("truck %q must have at least two axle groups\n", code)
			return
		}
	}
}
