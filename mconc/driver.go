// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gorcm/mreinf"
)

// Snapshot records the membrane state after one strain increment
type Snapshot struct {
	Eps           StrainState   // applied strain state
	Sig           StressState   // resulting stress state
	PrincEps      PrincStrains  // principal strains
	PrincSig      PrincStresses // principal stresses
	Cracks        CrackState    // crack state after the increment
	ConfIter      int           // Kupfer iterations
	ConfConverged bool          // Kupfer loop converged
}

// Driver runs strain paths on one biaxial concrete material point
type Driver struct {

	// input
	Pt     *BiaxialConcrete          // material point
	Reinf  *mreinf.WebReinforcement  // optional reinforcement
	RefLen float64                   // crack-band reference length

	// settings
	Silent bool // do not print increment traces

	// results
	Res []*Snapshot // one snapshot per increment
}

// Init initialises the driver with a model built by the factory
func (o *Driver) Init(mdl Model, reinf *mreinf.WebReinforcement, refLen float64) (err error) {
	if mdl == nil {
		return chk.Err("driver: model is required")
	}
	o.Pt = NewBiaxialConcrete(mdl)
	o.Reinf = reinf
	o.RefLen = refLen
	o.Silent = !chk.Verbose
	return
}

// Run applies the strain path, one state per increment, recording results
func (o *Driver) Run(path []*StrainState) (err error) {
	o.Res = make([]*Snapshot, len(path))
	for i, ε := range path {
		o.Reinf.SetStrains(ε.Ex, ε.Ey, ε.Gxy)
		err = o.Pt.Calculate(ε, o.Reinf, o.RefLen)
		if err != nil {
			return
		}
		o.Res[i] = &Snapshot{
			Eps:           o.Pt.Eps,
			Sig:           o.Pt.Sig,
			PrincEps:      o.Pt.PrincEps,
			PrincSig:      o.Pt.PrincSig,
			Cracks:        o.Pt.Cracks,
			ConfIter:      o.Pt.ConfIter,
			ConfConverged: o.Pt.ConfConverged,
		}
		if !o.Silent {
			io.Pf("%3d: ε=(%11.4e,%11.4e,%11.4e) σ=(%11.4e,%11.4e,%11.4e) %s\n",
				i, ε.Ex, ε.Ey, ε.Gxy, o.Pt.Sig.Sx, o.Pt.Sig.Sy, o.Pt.Sig.Txy, o.Pt.Cracks)
		}
	}
	return
}

// ResultsMatrix returns the response table as a dense matrix with columns
// εx, εy, γxy, σx, σy, τxy; one row per increment
func (o *Driver) ResultsMatrix() *mat.Dense {
	n := len(o.Res)
	res := mat.NewDense(n, 6, nil)
	for i, r := range o.Res {
		res.SetRow(i, []float64{r.Eps.Ex, r.Eps.Ey, r.Eps.Gxy, r.Sig.Sx, r.Sig.Sy, r.Sig.Txy})
	}
	return res
}

// PathProportional builds a strain path scaling linearly from zero to the
// target state in n increments (the first state is not zero)
func PathProportional(n int, target StrainState) (path []*StrainState) {
	path = make([]*StrainState, n)
	for i, t := range utl.LinSpace(1.0/float64(n), 1, n) {
		path[i] = &StrainState{
			Ex:    t * target.Ex,
			Ey:    t * target.Ey,
			Gxy:   t * target.Gxy,
			Theta: target.Theta,
		}
	}
	return
}
