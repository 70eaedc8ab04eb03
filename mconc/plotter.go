// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"github.com/cpmech/gosl/plt"
)

// Plotter draws stress-strain curves from driver results
type Plotter struct {

	// configuration
	SaveDir string // directory to put figure
	SaveFnk string // filename key (no extension)
	PngRes  int    // resolution for .png files
	UseEps  bool   // save eps figure instead of png
	Clr     string // curve color
	Ls      string // curve linestyle
	Mrk     string // curve marker
	Lbl     string // curve label
}

// SetFig prepares the figure
func (o *Plotter) SetFig(prop, width float64) {
	if o.PngRes == 0 {
		o.PngRes = 150
	}
	if o.Clr == "" {
		o.Clr = "red"
	}
	if o.Ls == "" {
		o.Ls = "-"
	}
	plt.Reset(true, &plt.A{Prop: prop, WidthPt: width, Dpi: o.PngRes, Eps: o.UseEps})
}

// Plot draws the σ1-ε1, σ2-ε2 and τ-γ curves and saves the figure
func (o *Plotter) Plot(res []*Snapshot) {
	n := len(res)
	e1, s1 := make([]float64, n), make([]float64, n)
	e2, s2 := make([]float64, n), make([]float64, n)
	g, t := make([]float64, n), make([]float64, n)
	for i, r := range res {
		e1[i], s1[i] = r.PrincEps.E1, r.PrincSig.S1
		e2[i], s2[i] = r.PrincEps.E2, r.PrincSig.S2
		g[i], t[i] = r.Eps.Gxy, r.Sig.Txy
	}
	args := &plt.A{C: o.Clr, Ls: o.Ls, M: o.Mrk, L: o.Lbl, NoClip: true}
	plt.Subplot(3, 1, 1)
	plt.Plot(e1, s1, args)
	plt.Gll("$\\varepsilon_1$", "$\\sigma_1$", nil)
	plt.Subplot(3, 1, 2)
	plt.Plot(e2, s2, args)
	plt.Gll("$\\varepsilon_2$", "$\\sigma_2$", nil)
	plt.Subplot(3, 1, 3)
	plt.Plot(g, t, args)
	plt.Gll("$\\gamma_{xy}$", "$\\tau_{xy}$", nil)
	plt.Save(o.SaveDir, o.SaveFnk)
}
