// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rigid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

func Test_capacity01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("capacity01. evaluation and parameter init")

	var prm Params
	err := prm.Init(prm.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ZR", 1e-17, prm.ZR, -1.282)
	chk.Float64(tst, "J", 1e-17, prm.J, 2.8)
	chk.Float64(tst, "K", 1e-17, prm.K, 400)

	logW18, err := LogW18(10, prm)
	if err != nil {
		tst.Errorf("LogW18 failed: %v\n", err)
		return
	}
	io.Pforan("log10(W18) @ D=10 = %v\n", logW18)

	// a 10 in slab on a decent foundation carries millions of ESAL but
	// not billions
	if logW18 < 6 || logW18 > 10 {
		tst.Errorf("log10(W18)=%g outside plausible range\n", logW18)
	}
}

func Test_capacity02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("capacity02. domain guard")

	var prm Params
	err := prm.Init(prm.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// D^0.75 < 1.132 makes the stress-term numerator non-positive
	_, err = LogW18(1.0, prm)
	if err != ErrInvalid {
		tst.Errorf("LogW18 should have returned ErrInvalid: %v\n", err)
	}

	// extreme Ec/k makes the denominator non-positive
	prm.Ec, prm.K = 100000, 1000
	_, err = LogW18(6.0, prm)
	if err != ErrInvalid {
		tst.Errorf("LogW18 should have returned ErrInvalid: %v\n", err)
	}
}

func Test_capacity03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("capacity03. monotonicity in D")

	var prm Params
	err := prm.Init(prm.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	D := utl.LinSpace(6, 20, 29)
	L := make([]float64, len(D))
	for i, d := range D {
		L[i], err = LogW18(d, prm)
		if err != nil {
			tst.Errorf("LogW18 failed @ D=%g: %v\n", d, err)
			return
		}
		if i > 0 && L[i] <= L[i-1] {
			tst.Errorf("log10(W18) must increase with D: L(%g)=%g <= L(%g)=%g\n", D[i], L[i], D[i-1], L[i-1])
			return
		}
	}

	// derivative is positive over the whole bracket
	for _, d := range []float64{7, 10, 13, 16, 19} {
		dnum := num.DerivCen5(d, 1e-3, func(x float64) (res float64) {
			res, _ = LogW18(x, prm)
			return
		})
		io.Pf("d(logW18)/dD @ %2g = %v\n", d, dnum)
		if dnum <= 0 {
			tst.Errorf("derivative must be positive @ D=%g: %g\n", d, dnum)
			return
		}
	}

	if chk.Verbose {
		for i, d := range D {
			io.Pf("D = %5.2f  log10(W18) = %v\n", d, L[i])
		}
	}
}
