// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mconc implements smeared-crack constitutive models for biaxial
// (membrane) concrete: MCFT, DSFM and SMM
/*
 *   caller ──► BiaxialConcrete.Calculate(ε, reinforcement, refLength)
 *                │  principal decomposition
 *                ▼
 *              Model.CalcStresses  (per-branch tensile/compressive laws,
 *                │                  Gupta cracking, Kupfer confinement)
 *                ▼
 *              rotation back to the working axes + secant stiffness
 */
package mconc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gorcm/mreinf"
)

// CrackState tells whether the concrete has cracked. The transition is
// one-way: accumulated microcracking damage never heals.
type CrackState int

const (
	// Uncracked is the virgin state
	Uncracked CrackState = iota

	// Cracked is reached once the Gupta criterion is met and is permanent
	Cracked
)

// String returns a readable crack state
func (o CrackState) String() string {
	if o == Cracked {
		return "cracked"
	}
	return "uncracked"
}

// Input collects everything a model needs for one stress evaluation.
// The crack state is owned by the orchestrator and passed through here;
// models hold no mutable state.
type Input struct {
	E1        float64                   // ε1: larger principal strain
	E2        float64                   // ε2: smaller principal strain
	Theta1    float64                   // angle of the ε1 direction from the reference axis
	Dev       float64                   // deviation angle between stress and strain principal axes (SMM)
	Cracks    CrackState                // current crack state
	Reinf     *mreinf.WebReinforcement  // optional reinforcement (nil => zero contribution)
	RefLength float64                   // crack-band reference length (DSFM tension softening)
}

// Output collects the results of one stress evaluation
type Output struct {
	Sig1          float64    // σ1: principal stress along the ε1 direction
	Sig2          float64    // σ2: principal stress along the ε2 direction
	Cracks        CrackState // updated crack state
	ConfIter      int        // confinement iterations performed (0 => loop not run)
	ConfConverged bool       // confinement loop met the tolerance
}

// Model defines the interface for biaxial concrete constitutive models
type Model interface {
	Init(par *Params, prms dbf.Params) error // initialises the model
	GetPrms() dbf.Params                     // gets (an example) of parameters
	Name() string                          // model name as registered in the factory
	CalcStresses(in *Input) *Output        // maps principal strains to principal stresses
	DeviatedAxes() bool                    // concrete principal axes may deviate from the applied ones
	SecantModulus(σ, ε float64) float64    // secant modulus with zero-state guards
}

// New returns a new concrete model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mconc' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}
