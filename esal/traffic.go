// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package esal

import (
	"math"
)

// default distribution factors
const (
	LaneFactorDefault      = 0.5 // design-lane share of the surveyed volume
	DirectionFactorDefault = 1.0 // directional share
)

// YearTraffic holds the average annual daily traffic of one design year,
// per vehicle class
type YearTraffic struct {
	Year int                // design year, starting at 1
	AADT map[string]float64 // vehicle class => average annual daily traffic
}

// YearESAL holds the accumulated equivalent axle loads of one design year
type YearESAL struct {
	Year    int                // design year
	ByClass map[string]float64 // vehicle class => ESAL of this year
	Total   float64            // ESAL of this year, all classes
}

// Accumulate converts a multi-year traffic projection into equivalent
// single axle load repetitions
//
//   ESAL = AADT · TF · LF · DF · 365
//
//  Input:
//   traffic -- per-year AADT by vehicle class
//   factors -- truck factor by vehicle class; classes without a factor
//              are ignored
//   lf, df  -- lane and direction distribution factors
//  Output:
//   years -- per-year breakdown, in input order
//   total -- cumulative design ESAL (W18)
func Accumulate(traffic []YearTraffic, factors map[string]float64, lf, df float64) (years []YearESAL, total float64) {
	for _, yt := range traffic {
		ye := YearESAL{Year: yt.Year, ByClass: make(map[string]float64)}
		for code, aadt := range yt.AADT {
			tf, ok := factors[code]
			if !ok {
				continue
			}
			e := aadt * tf * lf * df * 365.0
			ye.ByClass[code] = e
			ye.Total += e
		}
		total += ye.Total
		years = append(years, ye)
	}
	return
}

// Template builds a traffic projection growing each class geometrically
// from a base-year AADT; e.g. growthRate=0.045 for 4.5% per year
func Template(base map[string]float64, growthRate float64, nyears int) (traffic []YearTraffic) {
	for i := 0; i < nyears; i++ {
		yt := YearTraffic{Year: i + 1, AADT: make(map[string]float64)}
		for code, aadt := range base {
			yt.AADT[code] = math.Floor(aadt * math.Pow(1.0+growthRate, float64(i)))
		}
		traffic = append(traffic, yt)
	}
	return
}
