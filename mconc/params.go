// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Params holds the concrete parameters for one strength grade. Strength
// values are magnitudes in consistent stress units (e.g. MPa); Epsc and
// Epscu are negative (compression).
type Params struct {
	Fc    float64 // compressive strength (magnitude, > 0)
	Ft    float64 // tensile strength
	Ec    float64 // initial elastic modulus
	Epsc  float64 // strain at peak compressive stress (< 0)
	Epscu float64 // ultimate compressive strain (≤ Epsc)
	Gf    float64 // fracture energy
	PhiAg float64 // maximum aggregate diameter
}

// ParamsProvider computes Params from a design-code formulation given the
// compressive strength. Implementations live outside this library.
type ParamsProvider interface {
	Calculate(fc float64) (*Params, error)
}

// EpsCr returns the cracking strain ft/Ec
func (o Params) EpsCr() float64 {
	if o.Ec == 0 {
		return 0
	}
	return o.Ft / o.Ec
}

// Validate checks the parameters for consistency
func (o Params) Validate() error {
	if o.Fc <= 0 {
		return chk.Err("concrete: fc=%g must be positive", o.Fc)
	}
	if o.Ec <= 0 {
		return chk.Err("concrete: Ec=%g must be positive", o.Ec)
	}
	if o.Epsc >= 0 {
		return chk.Err("concrete: epsc=%g must be negative", o.Epsc)
	}
	if o.Epscu > o.Epsc {
		return chk.Err("concrete: epscu=%g must not exceed epsc=%g", o.Epscu, o.Epsc)
	}
	return nil
}

// ParamsFromPrms builds and validates Params from parameters
func ParamsFromPrms(prms dbf.Params) (par *Params, err error) {
	par = new(Params)
	for _, p := range prms {
		switch p.N {
		case "fc":
			par.Fc = p.V
		case "ft":
			par.Ft = p.V
		case "Ec":
			par.Ec = p.V
		case "epsc":
			par.Epsc = p.V
		case "epscu":
			par.Epscu = p.V
		case "Gf":
			par.Gf = p.V
		case "phiag":
			par.PhiAg = p.V
		default:
			return nil, chk.Err("concrete: parameter named %q is incorrect", p.N)
		}
	}
	err = par.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Params) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "fc", V: 30},
		&dbf.P{N: "ft", V: 3},
		&dbf.P{N: "Ec", V: 30000},
		&dbf.P{N: "epsc", V: -0.002},
		&dbf.P{N: "epscu", V: -0.0035},
		&dbf.P{N: "Gf", V: 0.075},
		&dbf.P{N: "phiag", V: 9.5},
	}
}
