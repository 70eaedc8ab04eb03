// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mreinf

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Direction represents one smeared reinforcement direction: a set of
// equally spaced bars sharing diameter and orientation, with an owned
// uniaxial steel law. Angles are measured counter-clockwise from the
// reference horizontal axis, in radians.
type Direction struct {
	Phi     float64 // bar diameter
	Spacing float64 // bar spacing
	NLegs   float64 // number of legs per bar set
	Width   float64 // width of the concrete section
	Angle   float64 // orientation angle
	Steel   Steel   // uniaxial steel law
}

// NewDirection returns a reinforcement direction
func NewDirection(φ, spacing, nlegs, width, angle float64, steel Steel) (*Direction, error) {
	if steel == nil {
		return nil, chk.Err("reinforcement direction requires a steel law")
	}
	return &Direction{φ, spacing, nlegs, width, angle, steel}, nil
}

// Ratio returns the geometric reinforcement ratio ρ. Zero diameter,
// spacing or width means no reinforcement and thus ρ = 0.
func (o *Direction) Ratio() float64 {
	if o.Phi == 0 || o.Spacing == 0 || o.Width == 0 {
		return 0
	}
	return o.NLegs * math.Pi * o.Phi * o.Phi / 4.0 / (o.Spacing * o.Width)
}

// SetStrain evaluates the steel law at the normal strain along this
// direction, caching strain and stress in the steel state
func (o *Direction) SetStrain(ε float64) {
	o.Steel.CalcStress(ε)
}

// Stress returns the smeared stress contribution ρ·fs
func (o *Direction) Stress() float64 {
	return o.Ratio() * o.Steel.Stress()
}

// Stiffness returns the smeared stiffness contribution ρ·Es
func (o *Direction) Stiffness() float64 {
	return o.Ratio() * o.Steel.Secant()
}

// CapacityReserve returns fy - |fs|. The value is not clamped: callers
// must tolerate small negative values from numerical noise.
func (o *Direction) CapacityReserve() float64 {
	return o.Steel.YieldStress() - math.Abs(o.Steel.Stress())
}
