// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gorcm/mreinf"
)

// BiaxialConcrete holds the stress-strain state of one membrane material
// point. It owns the crack state and the current tensors; each Calculate
// call fully replaces them. Instances are not safe for concurrent use:
// one instance per integration point.
type BiaxialConcrete struct {

	// model
	Mdl Model // constitutive model

	// state carried between calls
	Cracks CrackState // sticky crack state
	Dev    float64    // deviation angle between strain and stress principal axes (SMM)

	// current tensors
	Eps      StrainState   // current strain state
	Sig      StressState   // current stress state
	PrincEps PrincStrains  // current principal strains
	PrincSig PrincStresses // current principal stresses

	// derived
	D [][]float64 // 3x3 secant stiffness in the working axes

	// confinement diagnostics of the last call
	ConfIter      int  // iterations of the Kupfer loop (0 => not run)
	ConfConverged bool // the loop met its tolerance
}

// NewBiaxialConcrete returns a material point for the given model
func NewBiaxialConcrete(mdl Model) *BiaxialConcrete {
	return &BiaxialConcrete{Mdl: mdl, D: utl.Alloc(3, 3), ConfConverged: true}
}

// Calculate updates the stress state for a given total strain state.
// reinf may be nil (zero contribution); refLength is the crack-band
// reference length used by the DSFM tension-softening branch.
func (o *BiaxialConcrete) Calculate(ε *StrainState, reinf *mreinf.WebReinforcement, refLength float64) (err error) {
	if o.Mdl == nil {
		return chk.Err("biaxial concrete: model is not set")
	}

	// principal decomposition
	o.Eps = *ε
	o.PrincEps = *NewPrincStrains(ε)

	// constitutive law
	out := o.Mdl.CalcStresses(&Input{
		E1:        o.PrincEps.E1,
		E2:        o.PrincEps.E2,
		Theta1:    o.PrincEps.Theta1,
		Dev:       o.Dev,
		Cracks:    o.Cracks,
		Reinf:     reinf,
		RefLength: refLength,
	})
	o.Cracks = out.Cracks
	o.ConfIter = out.ConfIter
	o.ConfConverged = out.ConfConverged

	// rotation back to the working axes
	o.PrincSig = PrincStresses{S1: out.Sig1, S2: out.Sig2, Theta1: o.PrincEps.Theta1}
	o.Sig = *o.PrincSig.ToBasis(ε.Theta)
	if o.Mdl.DeviatedAxes() {

		// the concrete principal axes do not follow the applied ones:
		// reconstruct the shear stress and derive the deviation angle
		o.Sig.Txy = shearFromPrincipal(ε.Gxy, out.Sig1, out.Sig2, o.PrincEps.E1, o.PrincEps.E2)
		o.PrincSig = *NewPrincStresses(&o.Sig)
		o.Dev = o.PrincEps.Theta1 - o.PrincSig.Theta1
	}

	// secant stiffness
	o.calcStiffness()
	return
}

// Stiffness returns the current 3x3 secant stiffness matrix
func (o *BiaxialConcrete) Stiffness() [][]float64 { return o.D }

// calcStiffness assembles the secant stiffness in the principal axes and
// rotates it into the working axes: D = transpose(T) * diag(E1,E2,Gc) * T
func (o *BiaxialConcrete) calcStiffness() {
	ec1 := o.Mdl.SecantModulus(o.PrincSig.S1, o.PrincEps.E1)
	ec2 := o.Mdl.SecantModulus(o.PrincSig.S2, o.PrincEps.E2)
	gc := 0.0
	if ec1+ec2 != 0 {
		gc = ec1 * ec2 / (ec1 + ec2)
	}
	T := StrainTransMat(o.PrincEps.Theta1 - o.Eps.Theta)
	dp := []float64{ec1, ec2, gc}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.D[i][j] = 0
			for k := 0; k < 3; k++ {
				o.D[i][j] += T[k][i] * dp[k] * T[k][j]
			}
		}
	}
}

// shearFromPrincipal reconstructs the shear stress from the principal
// normal stresses and strains. Coincident principal strains give zero.
func shearFromPrincipal(γ, σ1, σ2, ε1, ε2 float64) float64 {
	if ε1 == ε2 {
		return 0
	}
	τ := 0.5 * γ * (σ1 - σ2) / (ε1 - ε2)
	if math.IsNaN(τ) || math.IsInf(τ, 0) {
		return 0
	}
	return τ
}
