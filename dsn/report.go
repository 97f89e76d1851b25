// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsn

import (
	"math"

	"github.com/cpmech/gopave/mdl/rigid"
	"github.com/cpmech/gosl/io"
)

// Report prints the design results to the console
func (o *Main) Report() {

	io.Pf("\n")
	io.PfWhite("=== rigid pavement design (AASHTO 1993) =======================\n")
	if o.Dsg.Desc != "" {
		io.Pf("%s\n", o.Dsg.Desc)
	}

	// input summary
	io.Pf("\n%v\n", io.ArgsTable("DESIGN INPUT",
		"design traffic W18", "w18", io.Sf("%.0f", o.Dsg.W18),
		"log10(W18)", "logw18", io.Sf("%.4f", math.Log10(o.Dsg.W18)),
		"reliability [%]", "reliability", o.Dsg.Reliability,
		"standard normal deviate", "zr", o.Prm.ZR,
		"overall standard deviation", "s0", o.Prm.S0,
		"serviceability loss", "dpsi", o.Prm.DPSI,
		"modulus of rupture [psi]", "sc", o.Prm.Sc,
		"concrete modulus [psi]", "ec", o.Prm.Ec,
		"load transfer coefficient", "j", o.Prm.J,
		"drainage coefficient", "cd", o.Prm.Cd,
		"loss of support", "ls", o.Dsg.LS,
		"subgrade modulus MR [psi]", "mr", o.MR,
	))

	// foundation
	io.Pfyel("\nfoundation (Odemark + AASHTO reaction chain)\n")
	for _, lr := range o.Reaction.Layers {
		io.Pf("  %-28s h=%6.2f in  E=%8.0f psi  (E/MR)^(1/3)=%6.3f  h_e=%6.2f in\n",
			lr.Name, lr.H, lr.E, lr.ModulusRatio, lr.Hequiv)
	}
	io.Pf("  equivalent thickness      h_e = %.2f in (%.1f cm)\n", o.Reaction.Hequiv, o.Reaction.Hequiv*2.54)
	io.Pf("  k (subgrade)                  = %.0f pci\n", o.Reaction.Ksubgrade)
	io.Pf("  k (composite)                 = %.0f pci\n", o.Reaction.Kcomposite)
	io.Pf("  k (effective)                 = %.0f pci\n", o.Reaction.Keffective)

	// thickness
	io.Pfyel("\nrequired thickness\n")
	switch o.Sol.Status {
	case rigid.Found:
		io.Pf("  computed D = %.2f in (%.1f cm)\n", o.Sol.D, o.Sol.D*2.54)
	case rigid.AtMinimum:
		io.Pf("  minimum bracket thickness %.0f in already sufficient\n", o.Sol.D)
	case rigid.ExceedsMaximum:
		io.PfRed("  required thickness exceeds %.0f in: redesign with different parameters\n", rigid.DmaxDefault)
	}
	io.Pf("  design D   = %.0f cm (%.2f in)\n", o.Dcm, o.Din)

	// capacity check
	io.Pfyel("\ncapacity check @ design thickness\n")
	io.Pf("  log10(W18) = %.4f  =>  W18 = %.0f ESAL\n", o.LogW18, o.W18cap)
	if o.W18cap >= o.Dsg.W18 {
		io.Pfgreen("  OK: margin = %+.1f%%\n", o.MarginPct)
	} else {
		io.PfRed("  NOT OK: margin = %+.1f%% (increase thickness or improve materials)\n", o.MarginPct)
	}

	// comparison table
	io.Pfyel("\ncapacity for standard thicknesses\n")
	io.Pf("  %-6s %-7s %-12s %-10s %-8s %s\n", "D [in]", "D [cm]", "W18", "log10", "ratio", "status")
	for _, row := range o.Table {
		status := "insufficient"
		if row.Enough {
			status = "sufficient"
		}
		io.Pf("  %-6.0f %-7.0f %-12.3e %-10.4f %-8.2f %s\n", row.Din, row.Dcm, row.W18, row.LogW18, row.Ratio, status)
	}
	io.Pf("\n")
}
