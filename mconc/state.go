// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// StrainState holds the in-plane strain components of a membrane element
// in a basis rotated by Theta from the global reference axis. Gxy is the
// engineering shear strain.
type StrainState struct {
	Ex    float64 // εx: normal strain along x
	Ey    float64 // εy: normal strain along y
	Gxy   float64 // γxy: engineering shear strain
	Theta float64 // angle of the basis x-axis from the reference axis
}

// StressState holds the in-plane stress components, mirroring StrainState
type StressState struct {
	Sx    float64 // σx: normal stress along x
	Sy    float64 // σy: normal stress along y
	Txy   float64 // τxy: shear stress
	Theta float64 // angle of the basis x-axis from the reference axis
}

// PrincStrains holds the principal strains and the angle, from the
// reference axis, of the direction of E1. Invariant: E1 ≥ E2.
type PrincStrains struct {
	E1     float64 // ε1: algebraically larger (more tensile) strain
	E2     float64 // ε2: algebraically smaller strain
	Theta1 float64 // angle of the ε1 direction
}

// PrincStresses mirrors PrincStrains for stresses. Invariant: S1 ≥ S2.
type PrincStresses struct {
	S1     float64 // σ1
	S2     float64 // σ2
	Theta1 float64 // angle of the σ1 direction
}

// NewPrincStrains decomposes a strain state into principal form
func NewPrincStrains(ε *StrainState) *PrincStrains {
	avg := (ε.Ex + ε.Ey) / 2.0
	dif := (ε.Ex - ε.Ey) / 2.0
	rad := math.Sqrt(dif*dif + ε.Gxy*ε.Gxy/4.0)
	θ := 0.5 * math.Atan2(ε.Gxy, ε.Ex-ε.Ey)
	return &PrincStrains{avg + rad, avg - rad, ε.Theta + θ}
}

// NewPrincStresses decomposes a stress state into principal form
func NewPrincStresses(σ *StressState) *PrincStresses {
	avg := (σ.Sx + σ.Sy) / 2.0
	dif := (σ.Sx - σ.Sy) / 2.0
	rad := math.Sqrt(dif*dif + σ.Txy*σ.Txy)
	θ := 0.5 * math.Atan2(2.0*σ.Txy, σ.Sx-σ.Sy)
	return &PrincStresses{avg + rad, avg - rad, σ.Theta + θ}
}

// ToBasis rotates the principal strains back into a basis at angle θbase
// from the reference axis
func (o *PrincStrains) ToBasis(θbase float64) *StrainState {
	θ := o.Theta1 - θbase
	c, s := math.Cos(θ), math.Sin(θ)
	return &StrainState{
		Ex:    o.E1*c*c + o.E2*s*s,
		Ey:    o.E1*s*s + o.E2*c*c,
		Gxy:   2.0 * (o.E1 - o.E2) * s * c,
		Theta: θbase,
	}
}

// ToBasis rotates the principal stresses back into a basis at angle θbase
// from the reference axis
func (o *PrincStresses) ToBasis(θbase float64) *StressState {
	θ := o.Theta1 - θbase
	c, s := math.Cos(θ), math.Sin(θ)
	return &StressState{
		Sx:    o.S1*c*c + o.S2*s*s,
		Sy:    o.S1*s*s + o.S2*c*c,
		Txy:   (o.S1 - o.S2) * s * c,
		Theta: θbase,
	}
}

// StrainTransMat returns the 3x3 strain transformation matrix T(θ) mapping
// (εx, εy, γxy) to the axes rotated by θ. A stiffness given in the rotated
// axes maps back as D = transpose(T) * Drot * T.
func StrainTransMat(θ float64) (T [][]float64) {
	c, s := math.Cos(θ), math.Sin(θ)
	T = utl.Alloc(3, 3)
	T[0][0], T[0][1], T[0][2] = c*c, s*s, c*s
	T[1][0], T[1][1], T[1][2] = s*s, c*c, -c*s
	T[2][0], T[2][1], T[2][2] = -2.0*c*s, 2.0*c*s, c*c-s*s
	return
}
