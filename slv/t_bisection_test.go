// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slv

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_bisection01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisection01. parabola")

	f := func(x float64) (float64, error) {
		return x*x - 4.0, nil
	}

	root, err := Bisection(f, 0, 3, 1e-6, 100)
	if err != nil {
		tst.Errorf("Bisection failed: %v\n", err)
		return
	}
	io.Pforan("root = %v\n", root)
	chk.Float64(tst, "root", 1e-6, root, 2.0)
}

func Test_bisection02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisection02. no sign change")

	f := func(x float64) (float64, error) {
		return x*x + 1.0, nil
	}

	_, err := Bisection(f, -1, 1, 1e-6, 100)
	if err == nil {
		tst.Errorf("Bisection should have failed with same-sign bracket\n")
	}
	io.Pf("err = %v\n", err)
}

func Test_bisection03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisection03. transcendental")

	f := func(x float64) (float64, error) {
		return math.Cos(x) - x, nil
	}

	root, err := Bisection(f, 0, 1, 1e-6, 100)
	if err != nil {
		tst.Errorf("Bisection failed: %v\n", err)
		return
	}
	io.Pforan("root = %v\n", root)
	chk.Float64(tst, "cos(x)=x", 1e-6, root, 0.7390851332151607)
}

func Test_bisection04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisection04. error propagation")

	f := func(x float64) (float64, error) {
		if x > 1.4 {
			return x - 1.5, nil
		}
		return 0, chk.Err("invalid evaluation @ x=%g", x)
	}

	_, err := Bisection(f, 1, 2, 1e-6, 100)
	if err == nil {
		tst.Errorf("Bisection should have propagated the evaluation error\n")
	}
	io.Pf("err = %v\n", err)
}
