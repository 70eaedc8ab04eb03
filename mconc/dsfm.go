// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// DSFM implements the Disturbed Stress Field Model [Vecchio 2000]: MCFT
// compression softening generalised by the Popovics base curve, plus
// post-cracking tension softening (fracture energy) and tension
// stiffening (bond to the reinforcement)
type DSFM struct {
	Smeared
}

// add model to factory
func init() {
	allocators["dsfm"] = func() Model { return new(DSFM) }
}

// Init initialises model
func (o *DSFM) Init(par *Params, prms dbf.Params) error {
	return o.InitBase(par, prms)
}

// GetPrms gets (an example) of parameters
func (o DSFM) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Cs", V: 0.55},
		&dbf.P{N: "cslip", V: 1},
		&dbf.P{N: "conf", V: 0},
	}
}

// Name returns the factory name
func (o DSFM) Name() string { return "dsfm" }

// DeviatedAxes tells that DSFM assumes coincident principal axes
func (o DSFM) DeviatedAxes() bool { return false }

// CalcStresses maps principal strains to principal stresses
func (o *DSFM) CalcStresses(in *Input) *Output {
	return o.calcBranches(o, in, in.E1, in.E2)
}

// compressive evaluates the softened Popovics curve at strain ε with
// transverse strain εt and confinement factor cf
func (o *DSFM) compressive(in *Input, ε, εt, cf float64) float64 {

	// softening from the transverse tensile strain
	r := -εt / ε
	Cd := 1.0
	if !math.IsNaN(r) {
		r = utl.Min(r, 400)
		if r < 0.28 {
			Cd = 0
		} else {
			Cd = 0.35 * math.Pow(r-0.28, 0.8)
			if math.IsNaN(Cd) {
				Cd = 1
			}
		}
	}
	βd := utl.Min(1.0/(1.0+o.Cs*Cd), 1)

	// softened and confined peak
	fp := -βd * o.Par.Fc * cf
	ep := βd * o.Par.Epsc * cf

	// Popovics/Thorenfeldt base curve
	k := 1.0
	if ε < ep {
		k = 0.67 - fp/62.0
	}
	n := 0.8 - fp/17.0
	x := ε / ep
	return fp * n * x / (n - 1.0 + math.Pow(x, n*k))
}

// tensile evaluates the tension branch at strain ε with transverse strain
// εt. Once cracked, the larger of the softening and stiffening branches
// governs, capped by the maximum stress the reinforcement can transmit
// across the crack.
func (o *DSFM) tensile(in *Input, ε, εt float64) (float64, CrackState) {
	fc1 := ε * o.Par.Ec
	cs := o.CheckCracked(fc1, εt, in.Cracks)
	if cs == Uncracked {
		return fc1, cs
	}

	// tension softening from the fracture energy over the crack band
	εcr := o.Par.EpsCr()
	fa := 0.0
	if in.RefLength > 0 {
		εts := 2.0 * o.Par.Gf / (o.Par.Ft * in.RefLength)
		fa = utl.Min(utl.Max(o.Par.Ft*(1.0-(ε-εcr)/(εts-εcr)), 0), o.Par.Ft)
	}

	// no reinforcement => no stiffening and no cap
	if in.Reinf.Empty() {
		return fa, cs
	}

	// tension stiffening via bond. m = 0 means no bar crosses the
	// crack; the cap still applies and drops the stress to whatever
	// the bars can carry across it
	σ := fa
	if m := in.Reinf.TensionStiffening(in.Theta1); m > 0 {
		σ = utl.Max(fa, o.Par.Ft/(1.0+math.Sqrt(2.2*m*ε)))
	}
	return utl.Min(σ, in.Reinf.MaxTensileStress(in.Theta1)), cs
}
