// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func Test_biax01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("biax01. orchestrator on principal axes")

	mdl, _ := New("mcft")
	mdl.Init(testParams(), nil)
	pt := NewBiaxialConcrete(mdl)

	// principal axes aligned with x-y: θ1 = 0
	err := pt.Calculate(&StrainState{Ex: 0.001, Ey: -0.002}, nil, 0)
	if err != nil {
		tst.Errorf("calculate failed: %v\n", err)
		return
	}
	io.Pforan("σ = %+v\n", pt.Sig)
	if pt.Cracks != Cracked {
		tst.Errorf("cracking criterion failed\n")
		return
	}
	chk.Float64(tst, "σx", 1e-14, pt.Sig.Sx, 1.757359312880715)
	chk.Float64(tst, "σy", 1e-14, pt.Sig.Sy, -30)
	chk.Float64(tst, "τxy", 1e-14, pt.Sig.Txy, 0)
	chk.Float64(tst, "σ1", 1e-14, pt.PrincSig.S1, 1.757359312880715)
	chk.Float64(tst, "σ2", 1e-14, pt.PrincSig.S2, -30)

	// secant stiffness: Ec1 = σ1/ε1, Ec2 = σ2/ε2, Gc = Ec1 Ec2/(Ec1+Ec2)
	chk.Deep2(tst, "D", 1e-11, pt.D, [][]float64{
		{1757.359312880715, 0, 0},
		{0, 15000, 0},
		{0, 0, 1573.0634642982527},
	})

	// zero strain afterwards: exact zero stresses, crack state kept
	err = pt.Calculate(&StrainState{}, nil, 0)
	if err != nil {
		tst.Errorf("calculate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "σx (zero)", 1e-17, pt.Sig.Sx, 0)
	chk.Float64(tst, "σy (zero)", 1e-17, pt.Sig.Sy, 0)
	chk.Float64(tst, "τxy (zero)", 1e-17, pt.Sig.Txy, 0)
	if pt.Cracks != Cracked {
		tst.Errorf("crack state must survive a zero strain state\n")
	}
}

func Test_biax02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("biax02. rotated axes and stiffness rotation")

	mdl, _ := New("mcft")
	mdl.Init(testParams(), nil)
	pt := NewBiaxialConcrete(mdl)

	ε := &StrainState{Ex: 0.001, Ey: -0.002, Gxy: 0.0015}
	err := pt.Calculate(ε, nil, 0)
	if err != nil {
		tst.Errorf("calculate failed: %v\n", err)
		return
	}
	io.Pforan("pσ = %+v\n", pt.PrincSig)

	// ordering invariants
	if pt.PrincEps.E1 < pt.PrincEps.E2 || pt.PrincSig.S1 < pt.PrincSig.S2 {
		tst.Errorf("ordering invariant failed\n")
		return
	}

	// recomposition round trip: decomposing the Cartesian stresses must
	// recover the principal pair the law produced
	back := NewPrincStresses(&pt.Sig)
	chk.Float64(tst, "σ1 round trip", 1e-9, back.S1, pt.PrincSig.S1)
	chk.Float64(tst, "σ2 round trip", 1e-9, back.S2, pt.PrincSig.S2)

	// cross-check D = transpose(T) * diag * T with gonum
	ec1 := mdl.SecantModulus(pt.PrincSig.S1, pt.PrincEps.E1)
	ec2 := mdl.SecantModulus(pt.PrincSig.S2, pt.PrincEps.E2)
	gc := ec1 * ec2 / (ec1 + ec2)
	Tm := StrainTransMat(pt.PrincEps.Theta1)
	T := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T.Set(i, j, Tm[i][j])
		}
	}
	dp := mat.NewDiagDense(3, []float64{ec1, ec2, gc})
	var tmp, ref mat.Dense
	tmp.Mul(dp, T)
	ref.Mul(T.T(), &tmp)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Float64(tst, io.Sf("D[%d][%d]", i, j), 1e-9, pt.D[i][j], ref.At(i, j))
		}
	}
}

func Test_biax03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("biax03. SMM shear reconstruction and deviation angle")

	mdl, _ := New("smm")
	mdl.Init(testParams(), nil)
	pt := NewBiaxialConcrete(mdl)

	ε := &StrainState{Ex: 0.001, Ey: -0.002, Gxy: 0.0015}
	err := pt.Calculate(ε, nil, 0)
	if err != nil {
		tst.Errorf("calculate failed: %v\n", err)
		return
	}
	io.Pforan("σ = %+v, δ = %v\n", pt.Sig, pt.Dev)

	// with the concrete evaluated on the strain axes the reconstructed
	// shear matches the rotated one and the deviation angle stays null
	if pt.PrincSig.S1 < pt.PrincSig.S2 {
		tst.Errorf("ordering invariant failed\n")
		return
	}
	τrot := (pt.PrincSig.S1 - pt.PrincSig.S2) *
		math.Sin(pt.PrincSig.Theta1) * math.Cos(pt.PrincSig.Theta1)
	chk.Float64(tst, "τxy", 1e-12, pt.Sig.Txy, τrot)
	chk.Float64(tst, "δ", 1e-12, pt.Dev, 0)

	// a second call must see a non-zero deviation angle without failing
	err = pt.Calculate(ε, nil, 0)
	if err != nil {
		tst.Errorf("second calculate failed: %v\n", err)
		return
	}
	if pt.Cracks != Cracked {
		tst.Errorf("crack state lost between calls\n")
	}
}
