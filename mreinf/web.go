// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mreinf

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// WebReinforcement combines up to two smeared reinforcement directions.
// Conventionally the second direction is orthogonal to the first, but an
// arbitrary pair may be constructed. All methods are nil-safe: a nil
// composite or absent direction contributes exactly zero.
type WebReinforcement struct {
	X *Direction // first direction
	Y *Direction // second direction
}

// NewWebOrthogonal returns a composite whose second direction is rotated
// 90 degrees from the first. Either direction may be nil.
//
//	NOTE: y.Angle is overwritten with x.Angle + π/2; the caller's
//	      Direction is mutated, not copied.
func NewWebOrthogonal(x, y *Direction) *WebReinforcement {
	if y != nil && x != nil {
		y.Angle = x.Angle + math.Pi/2.0
	}
	return &WebReinforcement{x, y}
}

// dirs returns the present directions
func (o *WebReinforcement) dirs() []*Direction {
	if o == nil {
		return nil
	}
	var res []*Direction
	if o.X != nil {
		res = append(res, o.X)
	}
	if o.Y != nil {
		res = append(res, o.Y)
	}
	return res
}

// Empty tells whether no direction is present
func (o *WebReinforcement) Empty() bool {
	return o == nil || (o.X == nil && o.Y == nil)
}

// SetStrains evaluates each steel law at the normal strain along its own
// direction, for the given strain components in the reference axes
func (o *WebReinforcement) SetStrains(εx, εy, γxy float64) {
	for _, d := range o.dirs() {
		c, s := math.Cos(d.Angle), math.Sin(d.Angle)
		d.SetStrain(εx*c*c + εy*s*s + γxy*s*c)
	}
}

// TensionStiffening returns the bond coefficient used by the
// tension-stiffening law, for a crack normal at angle θ1. Returns zero
// when no direction is present.
func (o *WebReinforcement) TensionStiffening(θ1 float64) float64 {
	den := 0.0
	for _, d := range o.dirs() {
		ρ := d.Ratio()
		if ρ == 0 {
			continue
		}
		den += ρ / d.Phi * math.Abs(math.Cos(θ1-d.Angle))
	}
	if den == 0 {
		return 0
	}
	return 0.25 / den
}

// MaxTensileStress returns the maximum principal tensile stress that can
// be transmitted across a crack with normal at angle θ1
func (o *WebReinforcement) MaxTensileStress(θ1 float64) (res float64) {
	for _, d := range o.dirs() {
		c := math.Cos(θ1 - d.Angle)
		res += d.CapacityReserve() * c * c
	}
	return
}

// YieldedStrain returns the largest cached steel strain among yielded
// directions. ok is false when no direction has yielded.
func (o *WebReinforcement) YieldedStrain() (εsf float64, ok bool) {
	for _, d := range o.dirs() {
		if d.Steel.Yielded() && d.Steel.Strain() > εsf {
			εsf = d.Steel.Strain()
			ok = true
		}
	}
	return
}

// Stresses returns the smeared stress contribution of all directions in
// the reference axes
func (o *WebReinforcement) Stresses() (σx, σy, τxy float64) {
	for _, d := range o.dirs() {
		σn := d.Stress()
		c, s := math.Cos(d.Angle), math.Sin(d.Angle)
		σx += σn * c * c
		σy += σn * s * s
		τxy += σn * s * c
	}
	return
}

// Stiffness returns the 3x3 smeared stiffness matrix of all directions in
// the reference axes, for strain components (εx, εy, γxy)
func (o *WebReinforcement) Stiffness() (D [][]float64) {
	D = utl.Alloc(3, 3)
	for _, d := range o.dirs() {
		k := d.Stiffness()
		c, s := math.Cos(d.Angle), math.Sin(d.Angle)
		D[0][0] += k * c * c * c * c
		D[0][1] += k * c * c * s * s
		D[0][2] += k * c * c * c * s
		D[1][1] += k * s * s * s * s
		D[1][2] += k * c * s * s * s
		D[2][2] += k * c * c * s * s
	}
	D[1][0] = D[0][1]
	D[2][0] = D[0][2]
	D[2][1] = D[1][2]
	return
}
