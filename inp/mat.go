// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp handles input data: the engineering catalogs (base/subbase
// materials, subgrade soils, concrete classes, pavement types) and the
// design input file (.pav).
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// BaseMaterial is one base/subbase course material
type BaseMaterial struct {
	Name string  `json:"name"` // name of material
	EMPa float64 `json:"empa"` // elastic modulus [MPa]
	EPsi float64 `json:"epsi"` // elastic modulus [psi]
}

// SubgradeSoil is one subgrade soil class
type SubgradeSoil struct {
	Name  string  `json:"name"`  // name of soil
	CBR   float64 `json:"cbr"`   // California Bearing Ratio [%]
	MRPsi float64 `json:"mrpsi"` // resilient modulus [psi]
}

// ConcreteClass is one concrete strength class
type ConcreteClass struct {
	Name  string  `json:"name"`  // name of class; e.g. "C35"
	FcPsi float64 `json:"fcpsi"` // compressive strength [psi]
	ScPsi float64 `json:"scpsi"` // modulus of rupture [psi]
	EcPsi float64 `json:"ecpsi"` // elastic modulus [psi]
}

// PavementType is one rigid pavement construction type
type PavementType struct {
	Name        string  `json:"name"`  // short name; e.g. "JPCP"
	Description string  `json:"desc"`  // description
	Jdefault    float64 `json:"jdef"`  // default load transfer coefficient
}

// MatDb implements a database of pavement engineering materials
type MatDb struct {
	Materials []*BaseMaterial  `json:"materials"` // base/subbase materials
	Subgrades []*SubgradeSoil  `json:"subgrades"` // subgrade soil classes
	Concretes []*ConcreteClass `json:"concretes"` // concrete classes
	Pavements []*PavementType  `json:"pavements"` // pavement types
}

// ReadMat reads a materials database from a JSON file
func ReadMat(fn string) (mdb *MatDb) {
	b := io.ReadFile(fn)
	mdb = new(MatDb)
	err := json.Unmarshal(b, mdb)
	if err != nil {
		chk.Panic("ReadMat: cannot unmarshal materials file %q", fn)
	}
	return
}

// GetMaterial returns a base/subbase material or nil if not available
func (o MatDb) GetMaterial(name string) *BaseMaterial {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// GetSubgrade returns a subgrade soil class or nil if not available
func (o MatDb) GetSubgrade(name string) *SubgradeSoil {
	for _, s := range o.Subgrades {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// GetConcrete returns a concrete class or nil if not available
func (o MatDb) GetConcrete(name string) *ConcreteClass {
	for _, c := range o.Concretes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// GetPavement returns a pavement type or nil if not available
func (o MatDb) GetPavement(name string) *PavementType {
	for _, p := range o.Pavements {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// DefaultMatDb returns the built-in catalog with moduli per the Thai DOH
// practice used throughout the examples
func DefaultMatDb() *MatDb {
	return &MatDb{
		Materials: []*BaseMaterial{
			{Name: "asphalt-concrete", EMPa: 2500, EPsi: 362500},
			{Name: "cement-treated-base", EMPa: 1200, EPsi: 174000},
			{Name: "cement-modified-crushed-rock", EMPa: 850, EPsi: 123250},
			{Name: "crushed-rock-cbr80", EMPa: 350, EPsi: 50750},
			{Name: "soil-aggregate-cbr25", EMPa: 150, EPsi: 21750},
			{Name: "selected-material", EMPa: 76, EPsi: 11020},
			{Name: "sand-fill", EMPa: 100, EPsi: 14500},
		},
		Subgrades: []*SubgradeSoil{
			{Name: "embankment-cbr3", CBR: 3, MRPsi: 4500},
			{Name: "embankment-cbr4", CBR: 4, MRPsi: 6000},
			{Name: "embankment-cbr5", CBR: 5, MRPsi: 7500},
			{Name: "embankment-cbr6", CBR: 6, MRPsi: 9000},
			{Name: "sand-embankment-cbr10", CBR: 10, MRPsi: 15000},
		},
		Concretes: []*ConcreteClass{
			{Name: "C24", FcPsi: 3980, ScPsi: 500, EcPsi: 3200000},
			{Name: "C28", FcPsi: 4550, ScPsi: 550, EcPsi: 3400000},
			{Name: "C35", FcPsi: 4978, ScPsi: 600, EcPsi: 3670559},
			{Name: "C40", FcPsi: 5688, ScPsi: 650, EcPsi: 3900000},
		},
		Pavements: []*PavementType{
			{Name: "JPCP", Description: "jointed plain concrete pavement", Jdefault: 2.8},
			{Name: "JRCP", Description: "jointed reinforced concrete pavement", Jdefault: 2.8},
			{Name: "CRCP", Description: "continuously reinforced concrete pavement", Jdefault: 2.5},
		},
	}
}

// ReliabilityZR returns the standard normal deviate for a design
// reliability level [%]
func ReliabilityZR(r float64) (float64, error) {
	switch r {
	case 80:
		return -0.841, nil
	case 85:
		return -1.037, nil
	case 90:
		return -1.282, nil
	case 95:
		return -1.645, nil
	case 99:
		return -2.326, nil
	}
	return 0, chk.Err("inp: reliability level %g%% is unavailable", r)
}
