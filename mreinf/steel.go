// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mreinf implements uniaxial steel laws and smeared reinforcement
// for membrane elements
package mreinf

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Steel defines the uniaxial stress-strain law of reinforcing bars.
// Implementations cache the last computed strain/stress pair so that
// Stress, Secant and Yielded refer to the last CalcStress call.
type Steel interface {
	CalcStress(ε float64) float64 // computes and caches σ(ε)
	Stress() float64              // last computed stress
	Strain() float64              // last computed strain
	YieldStress() float64         // fy
	Elastic() float64             // E: initial elastic modulus
	Secant() float64              // secant modulus at the cached state
	Yielded() bool                // |cached strain| beyond yield strain
}

// BilinearSteel implements an elastic-perfectly-plastic law with optional
// linear hardening after the hardening strain
type BilinearSteel struct {

	// parameters
	fy  float64 // yield stress
	E   float64 // elastic modulus
	Esh float64 // hardening modulus (0 => perfectly plastic)
	εsh float64 // hardening strain (defaults to εy)
	εu  float64 // ultimate strain (0 => no rupture)

	// state
	εs float64 // cached strain
	σs float64 // cached stress
}

// NewBilinearSteel returns a perfectly plastic steel with given fy and E
func NewBilinearSteel(fy, E float64) *BilinearSteel {
	return &BilinearSteel{fy: fy, E: E, εsh: fy / E}
}

// Init initialises the law from parameters
func (o *BilinearSteel) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "fy":
			o.fy = p.V
		case "Es":
			o.E = p.V
		case "Esh":
			o.Esh = p.V
		case "esh":
			o.εsh = p.V
		case "eu":
			o.εu = p.V
		default:
			return chk.Err("steel: parameter named %q is incorrect", p.N)
		}
	}
	if o.fy <= 0 || o.E <= 0 {
		return chk.Err("steel: fy=%g and Es=%g must be positive", o.fy, o.E)
	}
	if o.εsh == 0 {
		o.εsh = o.fy / o.E
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BilinearSteel) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "fy", V: 500},
		&dbf.P{N: "Es", V: 210000},
		&dbf.P{N: "Esh", V: 0},
		&dbf.P{N: "esh", V: 0},
		&dbf.P{N: "eu", V: 0.01},
	}
}

// CalcStress computes the stress for given strain and caches the pair.
// Beyond the ultimate strain (if set) the bar is ruptured and carries
// no stress.
func (o *BilinearSteel) CalcStress(ε float64) float64 {
	o.εs = ε
	εa := math.Abs(ε)
	sgn := 1.0
	if ε < 0 {
		sgn = -1
	}
	εy := o.fy / o.E
	switch {
	case o.εu > 0 && εa > o.εu:
		o.σs = 0
	case εa <= εy:
		o.σs = o.E * ε
	case o.Esh > 0 && εa > o.εsh:
		o.σs = sgn * (o.fy + o.Esh*(εa-o.εsh))
	default:
		o.σs = sgn * o.fy
	}
	return o.σs
}

// Stress returns the last computed stress
func (o BilinearSteel) Stress() float64 { return o.σs }

// Strain returns the last computed strain
func (o BilinearSteel) Strain() float64 { return o.εs }

// YieldStress returns fy
func (o BilinearSteel) YieldStress() float64 { return o.fy }

// Elastic returns the initial elastic modulus
func (o BilinearSteel) Elastic() float64 { return o.E }

// Secant returns the secant modulus at the cached state
func (o BilinearSteel) Secant() float64 {
	if math.Abs(o.εs) < 1e-9 || math.Abs(o.σs) < 1e-3 {
		return o.E
	}
	return o.σs / o.εs
}

// Yielded tells whether the cached strain is beyond the yield strain
func (o BilinearSteel) Yielded() bool {
	return math.Abs(o.εs) >= o.fy/o.E
}
