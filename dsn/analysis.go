// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsn runs a complete rigid pavement design: foundation reaction
// chain, required slab thickness, rounding to a standard construction
// thickness and the capacity check at the selected thickness.
package dsn

import (
	"math"

	"github.com/cpmech/gopave/cbr"
	"github.com/cpmech/gopave/inp"
	"github.com/cpmech/gopave/mdl/rigid"
	"github.com/cpmech/gopave/mdl/subgrade"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// standard construction slab thicknesses [cm]
var standardSlabsCm = []float64{28, 30, 32, 35, 36}

// Capacity is one row of the thickness comparison table
type Capacity struct {
	Din    float64 // slab thickness [in]
	Dcm    float64 // slab thickness [cm]
	LogW18 float64 // log10 of the ESAL capacity
	W18    float64 // ESAL capacity
	Ratio  float64 // capacity over demand
	Enough bool    // capacity >= demand
}

// Main holds all data for one rigid pavement design analysis
type Main struct {

	// input
	Dsg     *inp.Design // design data
	Mdb     *inp.MatDb  // materials database
	ShowMsg bool        // show messages

	// resolved input
	Prm    rigid.Params     // equation parameters; K set during Run
	Layers []subgrade.Layer // resolved base/subbase stack
	MR     float64          // subgrade resilient modulus [psi]

	// results
	Reaction  subgrade.ReactionResult // foundation chain
	Sol       rigid.Solution          // thickness solve outcome
	Dcm       float64                 // selected standard thickness [cm]
	Din       float64                 // selected standard thickness [in]
	LogW18    float64                 // capacity at the selected thickness
	W18cap    float64                 // ESAL capacity at the selected thickness
	MarginPct float64                 // capacity margin over demand [%]
	Table     []Capacity              // comparison for D = 10..14 in
}

// NewMain returns a new analysis from a design (.pav) file and a materials
// database (DefaultMatDb if mdb is nil). Panics on unresolvable input,
// following the input-reading convention.
func NewMain(pavfilepath string, mdb *inp.MatDb, verbose bool) (o *Main) {
	o = new(Main)
	o.Dsg = inp.ReadDesign(pavfilepath)
	o.Mdb = mdb
	if o.Mdb == nil {
		o.Mdb = inp.DefaultMatDb()
	}
	o.ShowMsg = verbose
	o.resolve()
	if o.ShowMsg {
		io.Pf("> Design (.pav) file read\n")
		io.Pf("> Input data resolved against the materials database\n")
	}
	return
}

// resolve maps catalog names to numeric parameters
func (o *Main) resolve() {
	dsg, mdb := o.Dsg, o.Mdb

	// reliability
	zr, err := inp.ReliabilityZR(dsg.Reliability)
	if err != nil {
		chk.Panic("cannot resolve reliability:\n%v", err)
	}
	o.Prm.ZR = zr
	o.Prm.S0 = dsg.S0
	o.Prm.Pt = dsg.Pt
	o.Prm.DPSI = dsg.Pi - dsg.Pt
	o.Prm.Cd = dsg.Cd

	// concrete
	o.Prm.Sc = dsg.ScPsi
	o.Prm.Ec = dsg.EcPsi
	if o.Prm.Sc <= 0 || o.Prm.Ec <= 0 {
		conc := mdb.GetConcrete(dsg.Concrete)
		if conc == nil {
			chk.Panic("cannot find concrete class %q", dsg.Concrete)
		}
		if o.Prm.Sc <= 0 {
			o.Prm.Sc = conc.ScPsi
		}
		if o.Prm.Ec <= 0 {
			o.Prm.Ec = conc.EcPsi
		}
	}

	// load transfer
	o.Prm.J = dsg.J
	if o.Prm.J <= 0 {
		pav := mdb.GetPavement(dsg.Pavement)
		if pav == nil {
			chk.Panic("cannot find pavement type %q", dsg.Pavement)
		}
		o.Prm.J = pav.Jdefault
	}

	// subgrade: explicit MR wins, then catalog soil, then CBR conversion
	switch {
	case dsg.SubgradeMR > 0:
		o.MR = dsg.SubgradeMR
	case dsg.Subgrade != "":
		soil := mdb.GetSubgrade(dsg.Subgrade)
		if soil == nil {
			chk.Panic("cannot find subgrade soil %q", dsg.Subgrade)
		}
		o.MR = soil.MRPsi
	case dsg.SubgradeCBR > 0:
		o.MR = cbr.MRFromCBR(dsg.SubgradeCBR)
	default:
		chk.Panic("design must specify subgrademr, subgrade or subgradecbr")
	}

	// base/subbase stack
	for _, lay := range dsg.Layers {
		epsi := lay.EPsi
		if epsi <= 0 {
			m := mdb.GetMaterial(lay.Material)
			if m == nil {
				chk.Panic("cannot find base material %q", lay.Material)
			}
			epsi = m.EPsi
		}
		o.Layers = append(o.Layers, subgrade.Layer{
			Name: lay.Material,
			E:    epsi,
			H:    lay.ThickCm / 2.54,
		})
	}
}

// Run performs the design analysis. An error is returned when the solver
// yields no solution; boundary outcomes (at minimum / exceeds maximum) are
// regular results.
func (o *Main) Run() (err error) {

	// foundation chain
	var reaction subgrade.Reaction
	err = reaction.Init([]*utl.P{&utl.P{N: "ls", V: o.Dsg.LS}})
	if err != nil {
		return
	}
	o.Reaction = reaction.Calc(o.Layers, o.MR)
	o.Prm.K = o.Reaction.Keffective
	if o.ShowMsg {
		io.Pf("> Effective modulus of subgrade reaction computed\n")
	}

	// required thickness
	o.Sol = rigid.SolveThickness(o.Dsg.W18, o.Prm, rigid.DminDefault, rigid.DmaxDefault)
	if o.Sol.Status == rigid.NoSolution {
		return chk.Err("thickness solve failed: equation ill-posed for these parameters")
	}
	if o.ShowMsg {
		io.Pf("> Thickness solve completed: %v\n", o.Sol.Status)
	}

	// standard construction thickness; the out-of-range outcome keeps the
	// largest standard slab so the capacity check below reports the gap
	if o.Sol.Status == rigid.ExceedsMaximum {
		o.Dcm = standardSlabsCm[len(standardSlabsCm)-1]
	} else {
		o.Dcm = StandardSlabCm(o.Sol.D)
	}
	o.Din = o.Dcm / 2.54

	// capacity check at the selected thickness
	o.LogW18, err = rigid.LogW18(o.Din, o.Prm)
	if err != nil {
		return chk.Err("capacity check failed at D=%g in:\n%v", o.Din, err)
	}
	o.W18cap = math.Pow(10, o.LogW18)
	o.MarginPct = (o.W18cap - o.Dsg.W18) / o.Dsg.W18 * 100.0

	// comparison table
	o.Table = o.Table[:0]
	cms := []float64{25, 28, 30, 32, 35}
	for i, din := range []float64{10, 11, 12, 13, 14} {
		logw, err := rigid.LogW18(din, o.Prm)
		if err != nil {
			continue
		}
		w := math.Pow(10, logw)
		o.Table = append(o.Table, Capacity{
			Din:    din,
			Dcm:    cms[i],
			LogW18: logw,
			W18:    w,
			Ratio:  w / o.Dsg.W18,
			Enough: w >= o.Dsg.W18,
		})
	}
	return nil
}

// StandardSlabCm rounds a computed thickness [in] up to the next half inch
// and then to the smallest standard construction slab [cm] that covers it
// (the largest standard slab if none does)
func StandardSlabCm(din float64) float64 {
	half := math.Ceil(din*2.0) / 2.0
	cm := math.Round(half * 2.54)
	for _, t := range standardSlabsCm {
		if t >= cm {
			return t
		}
	}
	return standardSlabsCm[len(standardSlabsCm)-1]
}
