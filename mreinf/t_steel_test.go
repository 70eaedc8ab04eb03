// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mreinf

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// verbose turns on tracing
func verbose() {
	chk.Verbose = true
}

func Test_steel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steel01. bilinear law")

	stl := NewBilinearSteel(500, 210000)

	// elastic
	chk.Float64(tst, "σ (elastic)", 1e-14, stl.CalcStress(0.001), 210)
	chk.Float64(tst, "secant", 1e-14, stl.Secant(), 210000)
	if stl.Yielded() {
		tst.Errorf("elastic strain must not yield\n")
		return
	}

	// yield plateau, both signs
	chk.Float64(tst, "σ (yield+)", 1e-14, stl.CalcStress(0.004), 500)
	if !stl.Yielded() {
		tst.Errorf("plateau strain must yield\n")
		return
	}
	chk.Float64(tst, "σ (yield-)", 1e-14, stl.CalcStress(-0.004), -500)
	io.Pforan("secant (yielded) = %v\n", stl.Secant())
	chk.Float64(tst, "secant (yielded)", 1e-11, stl.Secant(), 125000)

	// near-zero state falls back to the elastic modulus
	stl.CalcStress(0)
	chk.Float64(tst, "secant (zero)", 1e-14, stl.Secant(), 210000)
}

func Test_steel02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steel02. hardening and rupture")

	var stl BilinearSteel
	err := stl.Init([]*dbf.P{
		&dbf.P{N: "fy", V: 500},
		&dbf.P{N: "Es", V: 200000},
		&dbf.P{N: "Esh", V: 2000},
		&dbf.P{N: "esh", V: 0.005},
		&dbf.P{N: "eu", V: 0.05},
	})
	if err != nil {
		tst.Errorf("initialisation failed: %v\n", err)
		return
	}

	// plateau between εy and εsh
	chk.Float64(tst, "σ (plateau)", 1e-14, stl.CalcStress(0.004), 500)

	// hardening branch
	chk.Float64(tst, "σ (hardening)", 1e-12, stl.CalcStress(0.01), 500+2000*0.005)
	chk.Float64(tst, "σ (hardening-)", 1e-12, stl.CalcStress(-0.01), -510)

	// rupture
	chk.Float64(tst, "σ (ruptured)", 1e-17, stl.CalcStress(0.06), 0)

	// bad parameter names are rejected
	err = stl.Init([]*dbf.P{&dbf.P{N: "wrong", V: 1}})
	if err == nil {
		tst.Errorf("invalid parameter must fail\n")
	}
}
