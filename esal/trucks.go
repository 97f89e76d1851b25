// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package esal

import (
	"github.com/cpmech/gosl/chk"
)

// Truck is one vehicle class of a traffic survey
type Truck struct {
	Code  string // short code; e.g. "HT"
	Name  string // description
	Axles []Axle // axle configuration, front to rear
}

// TruckCodes lists the six standard vehicle classes of the Thai DOH
// classification, in conventional order
var TruckCodes = []string{"MB", "HB", "MT", "HT", "STR", "TR"}

// DefaultTrucks returns the standard truck catalog with typical axle group
// loads [metric ton]
func DefaultTrucks() map[string]Truck {
	return map[string]Truck{
		"MB": {Code: "MB", Name: "Medium Bus", Axles: []Axle{
			{Name: "front", LoadTon: 3.1, L2: Single},
			{Name: "rear", LoadTon: 12.2, L2: Tandem},
		}},
		"HB": {Code: "HB", Name: "Heavy Bus", Axles: []Axle{
			{Name: "front", LoadTon: 4.0, L2: Single},
			{Name: "rear", LoadTon: 14.3, L2: Tandem},
		}},
		"MT": {Code: "MT", Name: "Medium Truck", Axles: []Axle{
			{Name: "front", LoadTon: 4.0, L2: Single},
			{Name: "rear", LoadTon: 11.0, L2: Single},
		}},
		"HT": {Code: "HT", Name: "Heavy Truck", Axles: []Axle{
			{Name: "front", LoadTon: 5.0, L2: Single},
			{Name: "rear", LoadTon: 20.0, L2: Tandem},
		}},
		"STR": {Code: "STR", Name: "Semi-Trailer", Axles: []Axle{
			{Name: "front", LoadTon: 5.0, L2: Single},
			{Name: "rear", LoadTon: 20.0, L2: Tandem},
			{Name: "trailer rear", LoadTon: 20.0, L2: Tandem},
		}},
		"TR": {Code: "TR", Name: "Full Trailer", Axles: []Axle{
			{Name: "front", LoadTon: 5.0, L2: Single},
			{Name: "rear", LoadTon: 20.0, L2: Tandem},
			{Name: "trailer front", LoadTon: 11.0, L2: Single},
			{Name: "trailer rear", LoadTon: 11.0, L2: Single},
		}},
	}
}

// tabulated truck factors, checked against AASHTO tables D.13-D.16 (rigid)
// and D.4-D.7 (flexible). Keys: slab thickness D [in] for rigid,
// structural number SN for flexible.
var (
	truckFactorsRigidPt25 = map[string]map[int]float64{
		"MB":  {10: 0.7327, 11: 0.7318, 12: 0.7314, 13: 0.7312, 14: 0.7311},
		"HB":  {10: 1.4579, 11: 1.4623, 12: 1.4643, 13: 1.4653, 14: 1.4659},
		"MT":  {10: 3.6578, 11: 3.7113, 12: 3.7383, 13: 3.7520, 14: 3.7591},
		"HT":  {10: 5.9211, 11: 6.0928, 12: 6.1867, 13: 6.2362, 14: 6.2626},
		"STR": {10: 11.7203, 11: 12.0643, 12: 12.2523, 13: 12.3516, 14: 12.4044},
		"TR":  {10: 13.1410, 11: 13.4203, 12: 13.5684, 13: 13.6454, 14: 13.6860},
	}
	truckFactorsRigidPt20 = map[string]map[int]float64{
		"MB":  {10: 0.5765, 11: 0.5758, 12: 0.5755, 13: 0.5754, 14: 0.5753},
		"HB":  {10: 1.1691, 11: 1.1725, 12: 1.1740, 13: 1.1748, 14: 1.1752},
		"MT":  {10: 3.0458, 11: 3.0879, 12: 3.1091, 13: 3.1197, 14: 3.1252},
		"HT":  {10: 4.9862, 11: 5.1310, 12: 5.2101, 13: 5.2518, 14: 5.2740},
		"STR": {10: 9.8709, 11: 10.1609, 12: 10.3192, 13: 10.4028, 14: 10.4474},
		"TR":  {10: 8.0167, 11: 8.1311, 12: 8.1891, 13: 8.2185, 14: 8.2339},
	}
	truckFactorsFlexPt25 = map[string]map[int]float64{
		"MB":  {4: 0.4788, 5: 0.4368, 6: 0.4116, 7: 0.3990},
		"HB":  {4: 0.9002, 5: 0.8580, 6: 0.8295, 7: 0.8146},
		"MT":  {4: 3.0695, 5: 3.2038, 6: 3.4511, 7: 3.6452},
		"HT":  {4: 3.0536, 5: 3.1575, 6: 3.3118, 7: 3.4218},
		"STR": {4: 5.9557, 5: 6.1828, 6: 6.5016, 7: 6.7265},
		"TR":  {4: 6.0018, 5: 6.1519, 6: 6.3433, 7: 6.4731},
	}
	truckFactorsFlexPt20 = map[string]map[int]float64{
		"MB":  {4: 0.3665, 5: 0.3376, 6: 0.3202, 7: 0.3116},
		"HB":  {4: 0.7089, 5: 0.6814, 6: 0.6626, 7: 0.6534},
		"MT":  {4: 2.5455, 5: 2.6613, 6: 2.8713, 7: 3.0364},
		"HT":  {4: 2.5080, 5: 2.5937, 6: 2.7220, 7: 2.8131},
		"STR": {4: 4.8886, 5: 5.0778, 6: 5.3438, 7: 5.5286},
		"TR":  {4: 4.9138, 5: 5.0387, 6: 5.1978, 7: 5.3023},
	}
)

// DefaultTruckFactor looks up the tabulated truck factor for a vehicle
// class.
//  Input:
//   code     -- vehicle class; e.g. "HT"
//   pavement -- "rigid" or "flexible"
//   pt       -- terminal serviceability; tables exist for 2.5 and 2.0
//   param    -- slab thickness D [in] (rigid) or structural number SN
//               (flexible)
func DefaultTruckFactor(code, pavement string, pt float64, param int) (float64, error) {
	var table map[string]map[int]float64
	switch {
	case pavement == "rigid" && pt == 2.5:
		table = truckFactorsRigidPt25
	case pavement == "rigid" && pt == 2.0:
		table = truckFactorsRigidPt20
	case pavement == "flexible" && pt == 2.5:
		table = truckFactorsFlexPt25
	case pavement == "flexible" && pt == 2.0:
		table = truckFactorsFlexPt20
	default:
		return 0, chk.Err("esal: no truck factor table for pavement=%q pt=%g", pavement, pt)
	}
	byParam, ok := table[code]
	if !ok {
		return 0, chk.Err("esal: vehicle class %q is unavailable", code)
	}
	tf, ok := byParam[param]
	if !ok {
		return 0, chk.Err("esal: no tabulated factor for class %q @ param=%d", code, param)
	}
	return tf, nil
}
