// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// MCFT implements the Modified Compression Field Theory [Vecchio & Collins
// 1986]: softened parabolic compression and a bond-independent cracked
// tension branch
type MCFT struct {
	Smeared
}

// add model to factory
func init() {
	allocators["mcft"] = func() Model { return new(MCFT) }
}

// Init initialises model
func (o *MCFT) Init(par *Params, prms dbf.Params) error {
	return o.InitBase(par, prms)
}

// GetPrms gets (an example) of parameters
func (o MCFT) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Cs", V: 0.55},
		&dbf.P{N: "conf", V: 0},
	}
}

// Name returns the factory name
func (o MCFT) Name() string { return "mcft" }

// DeviatedAxes tells that MCFT assumes coincident principal axes
func (o MCFT) DeviatedAxes() bool { return false }

// CalcStresses maps principal strains to principal stresses
func (o *MCFT) CalcStresses(in *Input) *Output {
	return o.calcBranches(o, in, in.E1, in.E2)
}

// compressive evaluates the softened parabola at strain ε with transverse
// strain εt and confinement factor cf
func (o *MCFT) compressive(in *Input, ε, εt, cf float64) float64 {
	fc, εc := o.Par.Fc, o.Par.Epsc
	f2max := -fc
	if εt > 0 {
		f2max = -fc / (0.8 - 0.34*εt/εc)
	}
	f2max = utl.Max(f2max, -fc)
	n := ε / (εc * cf)
	σ := cf * f2max * (2.0*n - n*n)
	if math.IsNaN(σ) || math.IsInf(σ, 0) {
		σ = -fc * (2.0*n - n*n)
	}
	return σ
}

// tensile evaluates the tension branch at strain ε with transverse strain
// εt, returning the new crack state
func (o *MCFT) tensile(in *Input, ε, εt float64) (float64, CrackState) {
	fc1 := ε * o.Par.Ec
	cs := o.CheckCracked(fc1, εt, in.Cracks)
	if cs == Uncracked {
		return fc1, cs
	}
	return o.Par.Ft / (1.0 + math.Sqrt(500.0*ε)), cs
}
