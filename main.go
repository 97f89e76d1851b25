// Copyright 2025 The Gopave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopave/dsn"
	"github.com/cpmech/gopave/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	pavfilepath, _ := io.ArgToFilename(0, "", ".pav", true)
	verbose := io.ArgToBool(1, true)
	matfilepath := io.ArgToString(2, "")

	// message
	if verbose {
		io.PfWhite("\nGopave -- AASHTO 1993 Rigid Pavement Design\n")
		io.Pf("Copyright 2025 The Gopave Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"design filename path", "pavfilepath", pavfilepath,
			"show messages", "verbose", verbose,
			"materials database file", "matfilepath", matfilepath,
		))
	}

	// materials database
	var mdb *inp.MatDb
	if matfilepath != "" {
		mdb = inp.ReadMat(matfilepath)
	}

	// run analysis
	analysis := dsn.NewMain(pavfilepath, mdb, verbose)
	err := analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	analysis.Report()
}
