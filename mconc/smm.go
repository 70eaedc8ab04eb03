// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// devRef is the reference deviation angle (about 24 degrees) of the SMM
// softening function
const devRef = 0.4189

// SMM implements the Softened Membrane Model [Hsu & Zhu 2002]: the applied
// principal axes may deviate from the concrete ones and a strain-dependent
// Poisson coupling is removed from the strains before the branch laws
type SMM struct {
	Smeared
}

// add model to factory
func init() {
	allocators["smm"] = func() Model { return new(SMM) }
}

// Init initialises model
func (o *SMM) Init(par *Params, prms dbf.Params) error {
	return o.InitBase(par, prms)
}

// GetPrms gets (an example) of parameters
func (o SMM) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Cs", V: 0.55},
		&dbf.P{N: "conf", V: 0},
	}
}

// Name returns the factory name
func (o SMM) Name() string { return "smm" }

// DeviatedAxes tells that SMM allows the concrete principal axes to
// deviate from the applied ones; the shear stress must be reconstructed
func (o SMM) DeviatedAxes() bool { return true }

// CalcStresses removes the Poisson coupling from the principal strains and
// applies the branch laws to the decoupled pair
func (o *SMM) CalcStresses(in *Input) *Output {
	v12 := 0.2
	if εsf, ok := in.Reinf.YieldedStrain(); ok {
		v12 += 850.0 * εsf
	}
	v21 := 0.2
	if in.Cracks == Cracked {
		v21 = 0
	}
	v1 := 1.0 / (1.0 - v12*v21)
	v2 := v21 * v1
	ε1 := v1*in.E1 + v2*in.E2
	ε2 := v2*in.E1 + v1*in.E2
	return o.calcBranches(o, in, ε1, ε2)
}

// zeta is the softening coefficient ζ = f(ε1)·g(fc)·h(δ)
func (o *SMM) zeta(ε1, δ float64) float64 {
	f := 1.0 / math.Sqrt(1.0+400.0*utl.Max(ε1, 0))
	g := utl.Min(5.8/math.Sqrt(o.Par.Fc), 0.9)
	h := utl.Min(utl.Max(1.0-math.Abs(δ)/devRef, 0), 1)
	return f * g * h
}

// compressive evaluates the softened curve at strain ε with transverse
// strain εt and confinement factor cf: pre-peak parabola, post-peak
// quadratic descending branch
func (o *SMM) compressive(in *Input, ε, εt, cf float64) float64 {
	ζ := o.zeta(εt, in.Dev)
	if ζ == 0 {
		return 0
	}
	fp := -ζ * o.Par.Fc * cf
	ep := ζ * o.Par.Epsc * cf
	x := ε / ep
	if x <= 1 {
		return fp * (2.0*x - x*x)
	}
	fall := 1.0 - math.Pow((x-1.0)/(4.0/ζ-1.0), 2)
	return fp * utl.Max(fall, 0)
}

// tensile evaluates the tension branch at strain ε with transverse strain
// εt: linear until cracking, then a power-law decay capped by the
// reinforcement capacity
func (o *SMM) tensile(in *Input, ε, εt float64) (float64, CrackState) {
	fc1 := ε * o.Par.Ec
	cs := o.CheckCracked(fc1, εt, in.Cracks)
	if cs == Uncracked {
		return fc1, cs
	}
	εcr := o.Par.EpsCr()
	σ := o.Par.Ft
	if ε > εcr {
		σ = o.Par.Ft * math.Pow(εcr/ε, 0.4)
	}
	if !in.Reinf.Empty() {
		σ = utl.Min(σ, in.Reinf.MaxTensileStress(in.Theta1))
	}
	return σ, cs
}
