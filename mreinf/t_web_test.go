// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mreinf

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_web01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("web01. ratio and direction quantities")

	stl := NewBilinearSteel(500, 210000)
	dir, err := NewDirection(10, 100, 1, 100, 0, stl)
	if err != nil {
		tst.Errorf("construction failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ρ", 1e-15, dir.Ratio(), 0.007853981633974483)

	// degenerate geometry gives zero ratio
	bare, _ := NewDirection(0, 100, 1, 100, 0, stl)
	chk.Float64(tst, "ρ (no bars)", 1e-17, bare.Ratio(), 0)
	bare.Phi, bare.Spacing = 10, 0
	chk.Float64(tst, "ρ (no spacing)", 1e-17, bare.Ratio(), 0)

	dir.SetStrain(0.001)
	chk.Float64(tst, "stress", 1e-14, dir.Stress(), 0.007853981633974483*210)
	chk.Float64(tst, "stiffness", 1e-10, dir.Stiffness(), 0.007853981633974483*210000)
	chk.Float64(tst, "reserve", 1e-14, dir.CapacityReserve(), 290)
}

func Test_web02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("web02. composite bond quantities")

	// nil composite and empty composite: exact zeros
	var none *WebReinforcement
	chk.Float64(tst, "m (nil)", 1e-17, none.TensionStiffening(0.3), 0)
	chk.Float64(tst, "fmax (nil)", 1e-17, none.MaxTensileStress(0.3), 0)
	empty := &WebReinforcement{}
	chk.Float64(tst, "m (empty)", 1e-17, empty.TensionStiffening(0.3), 0)
	chk.Float64(tst, "fmax (empty)", 1e-17, empty.MaxTensileStress(0.3), 0)
	if !empty.Empty() || !none.Empty() {
		tst.Errorf("emptiness misreported\n")
		return
	}

	// orthogonal grid, crack normal along x: only the x bars carry bond
	dx, _ := NewDirection(10, 100, 1, 100, 0, NewBilinearSteel(500, 210000))
	dy, _ := NewDirection(10, 100, 1, 100, 0, NewBilinearSteel(500, 210000))
	web := NewWebOrthogonal(dx, dy)
	chk.Float64(tst, "θy", 1e-15, dy.Angle, math.Pi/2.0)

	m := web.TensionStiffening(0)
	io.Pforan("m = %v\n", m)
	chk.Float64(tst, "m", 1e-9, m, 318.30988618379064)

	web.SetStrains(0.001, -0.002, 0)
	chk.Float64(tst, "εsx", 1e-17, dx.Steel.Strain(), 0.001)
	chk.Float64(tst, "εsy", 1e-17, dy.Steel.Strain(), -0.002)
	chk.Float64(tst, "fmax", 1e-9, web.MaxTensileStress(0), 290)

	// no yielded direction yet
	if _, ok := web.YieldedStrain(); ok {
		tst.Errorf("no direction has yielded\n")
		return
	}
	web.SetStrains(0.004, -0.002, 0)
	εsf, ok := web.YieldedStrain()
	if !ok {
		tst.Errorf("x direction must be yielded\n")
		return
	}
	chk.Float64(tst, "εsf", 1e-17, εsf, 0.004)
}

func Test_web03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("web03. smeared stresses and stiffness")

	dx, _ := NewDirection(10, 100, 1, 100, 0, NewBilinearSteel(500, 210000))
	dy, _ := NewDirection(10, 100, 1, 100, 0, NewBilinearSteel(500, 210000))
	web := NewWebOrthogonal(dx, dy)
	web.SetStrains(0.001, -0.002, 0)

	ρ := dx.Ratio()
	σx, σy, τxy := web.Stresses()
	chk.Float64(tst, "σsx", 1e-12, σx, ρ*210)
	chk.Float64(tst, "σsy", 1e-12, σy, ρ*(-420))
	chk.Float64(tst, "τsxy", 1e-12, τxy, 0)

	D := web.Stiffness()
	chk.Float64(tst, "D00", 1e-9, D[0][0], ρ*210000)
	chk.Float64(tst, "D11", 1e-9, D[1][1], ρ*210000)
	chk.Float64(tst, "D01", 1e-9, D[0][1], 0)
	chk.Float64(tst, "D22", 1e-9, D[2][2], 0)
	if D[1][0] != D[0][1] || D[2][0] != D[0][2] {
		tst.Errorf("stiffness matrix must be symmetric\n")
	}
}
