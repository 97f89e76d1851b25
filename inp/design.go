// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// LayerSpec specifies one base/subbase course of the design input. The
// modulus comes from the materials catalog unless EPsi overrides it.
type LayerSpec struct {
	Material string  `json:"material"` // catalog material name
	EPsi     float64 `json:"epsi"`     // explicit modulus [psi]; overrides catalog if positive
	ThickCm  float64 `json:"thickcm"`  // thickness [cm]
}

// Design holds all design input data read from a .pav JSON file
type Design struct {

	// general
	Desc string `json:"desc"` // description of this design

	// traffic
	W18 float64 `json:"w18"` // design traffic [ESAL]

	// reliability and serviceability
	Reliability float64 `json:"reliability"` // design reliability [%]; e.g. 90
	S0          float64 `json:"s0"`          // overall standard deviation
	Pi          float64 `json:"pi"`          // initial serviceability
	Pt          float64 `json:"pt"`          // terminal serviceability

	// concrete
	Concrete string  `json:"concrete"` // concrete class; e.g. "C35"
	ScPsi    float64 `json:"scpsi"`    // modulus of rupture override [psi]
	EcPsi    float64 `json:"ecpsi"`    // elastic modulus override [psi]

	// coefficients
	Pavement string  `json:"pavement"` // pavement type; e.g. "JPCP"
	J        float64 `json:"j"`        // load transfer coefficient; 0 => pavement type default
	Cd       float64 `json:"cd"`       // drainage coefficient
	LS       float64 `json:"ls"`       // loss of support level

	// foundation
	Subgrade    string       `json:"subgrade"`    // catalog subgrade soil name
	SubgradeCBR float64      `json:"subgradecbr"` // CBR [%]; used when no catalog soil and no MR
	SubgradeMR  float64      `json:"subgrademr"`  // resilient modulus [psi]; strongest override
	Layers      []*LayerSpec `json:"layers"`      // base/subbase courses, top to bottom
}

// SetDefault sets default values matching common Thai DOH practice
func (o *Design) SetDefault() {
	o.Reliability = 90
	o.S0 = 0.35
	o.Pi = 4.5
	o.Pt = 2.5
	o.Concrete = "C35"
	o.Pavement = "JPCP"
	o.Cd = 1.20
	o.LS = 0
}

// ReadDesign reads all design data from a .pav JSON file
func ReadDesign(fn string) *Design {
	b := io.ReadFile(fn)
	var o Design
	o.SetDefault()
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadDesign: cannot unmarshal design file %q", fn)
	}
	return &o
}
