// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// tolerances and limits shared by all smeared-crack models
const (
	tolSig    = 1e-3 // stress below which the secant modulus falls back to Ec
	tolEps    = 1e-9 // strain below which the secant modulus falls back to Ec
	confMaxIt = 20   // maximum Kupfer fixed-point iterations
	confTol   = 0.01 // stress tolerance of the Kupfer fixed point
)

// Smeared collects the data and helpers shared by all smeared-crack
// models. Variants embed it and provide the tension and compression
// branch laws.
type Smeared struct {
	Par         *Params // concrete parameters
	Cs          float64 // softening coefficient
	CrackSlip   bool    // consider crack slip (DSFM)
	Confinement bool    // enhance biaxial compression via the Kupfer loop
}

// branchLaw gives the variant-specific tensile and compressive branches.
// tensile receives the strain to evaluate and the transverse strain;
// compressive additionally receives the confinement factor cf.
type branchLaw interface {
	tensile(in *Input, ε, εt float64) (σ float64, cs CrackState)
	compressive(in *Input, ε, εt, cf float64) float64
}

// InitBase parses the shared parameters
func (o *Smeared) InitBase(par *Params, prms dbf.Params) (err error) {
	if par == nil {
		return chk.Err("concrete model requires parameters")
	}
	err = par.Validate()
	if err != nil {
		return
	}
	o.Par = par
	o.Cs = 0.55
	for _, p := range prms {
		switch p.N {
		case "Cs":
			o.Cs = p.V
		case "cslip":
			o.CrackSlip = p.V > 0
		case "conf":
			o.Confinement = p.V > 0
		default:
			return chk.Err("concrete model: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// SecantModulus returns σ/ε, falling back to the initial elastic modulus
// near the zero state
func (o *Smeared) SecantModulus(σ, ε float64) float64 {
	if math.Abs(σ) < tolSig || math.Abs(ε) < tolEps {
		return o.Par.Ec
	}
	return σ / ε
}

// CheckCracked applies the Gupta (1998) cracking criterion to the
// uncracked tensile stress fc1 with transverse strain ε2. Cracking is
// sticky: once cracked, the criterion is never re-evaluated.
func (o *Smeared) CheckCracked(fc1, ε2 float64, cs CrackState) CrackState {
	if cs == Cracked {
		return Cracked
	}
	fcr := o.Par.Ft * (1.0 - ε2/o.Par.Epsc)
	fcr = utl.Min(utl.Max(fcr, 0.25*o.Par.Ft), o.Par.Ft)
	if fc1 >= fcr {
		return Cracked
	}
	return Uncracked
}

// calcBranches classifies the principal strain pair into the five sign
// cases and applies the variant branches. The classification is shared by
// all models; only the branch formulas differ.
func (o *Smeared) calcBranches(b branchLaw, in *Input, ε1, ε2 float64) (out *Output) {
	out = &Output{Cracks: in.Cracks, ConfConverged: true}
	switch {

	// zero strain state
	case ε1 == 0 && ε2 == 0:

	// tension-compression
	case ε1 > 0 && ε2 < 0:
		out.Sig1, out.Cracks = b.tensile(in, ε1, ε2)
		out.Sig2 = b.compressive(in, ε2, ε1, 1)

	// uniaxial or biaxial tension
	case ε1 > 0:
		out.Sig1, out.Cracks = b.tensile(in, ε1, ε2)
		var cs CrackState
		out.Sig2, cs = b.tensile(in, ε2, ε1)
		if cs == Cracked {
			out.Cracks = Cracked
		}

	// biaxial compression with confinement
	case o.Confinement:
		out.Sig1, out.Sig2, out.ConfIter, out.ConfConverged = o.confined(b, in, ε1, ε2)

	// biaxial compression
	default:
		out.Sig1 = b.compressive(in, ε1, ε2, 1)
		out.Sig2 = b.compressive(in, ε2, ε1, 1)
	}
	return
}

// confined runs the Kupfer fixed-point iteration for biaxial compression.
// The last iterate is returned even without convergence; callers observe
// nit and conv.
func (o *Smeared) confined(b branchLaw, in *Input, ε1, ε2 float64) (σ1, σ2 float64, nit int, conv bool) {
	σ1 = b.compressive(in, ε1, ε2, 1)
	σ2 = b.compressive(in, ε2, ε1, 1)
	for nit = 1; nit <= confMaxIt; nit++ {
		n1 := b.compressive(in, ε1, ε2, o.ConfinementFactor(σ2))
		n2 := b.compressive(in, ε2, ε1, o.ConfinementFactor(σ1))
		if math.Abs(n1-σ1) < confTol && math.Abs(n2-σ2) < confTol {
			σ1, σ2 = n1, n2
			conv = true
			return
		}
		σ1, σ2 = n1, n2
	}
	nit = confMaxIt
	return
}

// ConfinementFactor returns the Kupfer biaxial strength enhancement for a
// given transverse compressive stress. Non-finite ratios collapse to 1.
func (o *Smeared) ConfinementFactor(σt float64) float64 {
	r := σt / o.Par.Fc
	c := 1.0 + 0.92*math.Abs(r) - 0.76*r*r
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 1
	}
	return utl.Min(utl.Max(c, 1), 2)
}
