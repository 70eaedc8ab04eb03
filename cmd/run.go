// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gorcm/mconc"
	"github.com/cpmech/gorcm/mreinf"
)

// runOpts collects the run command inputs
type runOpts struct {

	// model and concrete
	model string
	fc    float64
	ft    float64
	ec    float64
	epsc  float64
	epscu float64
	gf    float64
	cs    float64
	conf  bool

	// reinforcement (zero diameter => no bars in that direction)
	phix  float64
	sx    float64
	phiy  float64
	sy    float64
	width float64
	fy    float64
	es    float64

	// strain path
	ex     float64
	ey     float64
	gxy    float64
	steps  int
	reflen float64

	// output
	plot    bool
	plotDir string
}

var runFlags runOpts

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a proportional strain path on a membrane element",
	Long: `Drive a membrane element from zero strain to the target strain state
in a number of proportional increments, printing the stress response and
the final secant stiffness.

Examples:
  # MCFT panel, tension-compression
  gorcm run --model mcft --ex 0.001 --ey -0.002 --steps 10

  # DSFM with an orthogonal phi10@100 grid in a 100mm panel
  gorcm run --model dsfm --ex 0.001 --ey -0.002 \
    --phix 10 --sx 100 --phiy 10 --sy 100 --width 100 --reflen 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, err := runPath(&runFlags)
		if err != nil {
			return err
		}
		printResults(drv)
		if runFlags.plot {
			plr := mconc.Plotter{SaveDir: runFlags.plotDir, SaveFnk: "gorcm_run"}
			plr.SetFig(0.75, 500)
			plr.Plot(drv.Res)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// model and concrete
	runCmd.Flags().StringVar(&runFlags.model, "model", "mcft", "Constitutive model: mcft, dsfm or smm")
	runCmd.Flags().Float64Var(&runFlags.fc, "fc", 30, "Concrete compressive strength (MPa)")
	runCmd.Flags().Float64Var(&runFlags.ft, "ft", 3, "Concrete tensile strength (MPa)")
	runCmd.Flags().Float64Var(&runFlags.ec, "ec", 30000, "Concrete elastic modulus (MPa)")
	runCmd.Flags().Float64Var(&runFlags.epsc, "epsc", -0.002, "Strain at peak compressive stress")
	runCmd.Flags().Float64Var(&runFlags.epscu, "epscu", -0.0035, "Ultimate compressive strain")
	runCmd.Flags().Float64Var(&runFlags.gf, "gf", 0.075, "Fracture energy (N/mm)")
	runCmd.Flags().Float64Var(&runFlags.cs, "cs", 0.55, "Softening coefficient Cs")
	runCmd.Flags().BoolVar(&runFlags.conf, "conf", false, "Enable the Kupfer confinement iteration")

	// reinforcement
	runCmd.Flags().Float64Var(&runFlags.phix, "phix", 0, "Bar diameter along x (mm)")
	runCmd.Flags().Float64Var(&runFlags.sx, "sx", 100, "Bar spacing along x (mm)")
	runCmd.Flags().Float64Var(&runFlags.phiy, "phiy", 0, "Bar diameter along y (mm)")
	runCmd.Flags().Float64Var(&runFlags.sy, "sy", 100, "Bar spacing along y (mm)")
	runCmd.Flags().Float64Var(&runFlags.width, "width", 100, "Panel thickness (mm)")
	runCmd.Flags().Float64Var(&runFlags.fy, "fy", 500, "Steel yield strength (MPa)")
	runCmd.Flags().Float64Var(&runFlags.es, "es", 210000, "Steel elastic modulus (MPa)")

	// strain path
	runCmd.Flags().Float64Var(&runFlags.ex, "ex", 0, "Target normal strain along x")
	runCmd.Flags().Float64Var(&runFlags.ey, "ey", 0, "Target normal strain along y")
	runCmd.Flags().Float64Var(&runFlags.gxy, "gxy", 0, "Target engineering shear strain")
	runCmd.Flags().IntVar(&runFlags.steps, "steps", 10, "Number of proportional increments")
	runCmd.Flags().Float64Var(&runFlags.reflen, "reflen", 0, "Crack-band reference length (mm)")

	// output
	runCmd.Flags().BoolVar(&runFlags.plot, "plot", false, "Save stress-strain curves")
	runCmd.Flags().StringVar(&runFlags.plotDir, "plotdir", "/tmp/gorcm", "Directory for figures")
}

// runPath builds the model and reinforcement from the options and runs the
// proportional strain path
func runPath(o *runOpts) (*mconc.Driver, error) {
	if o.steps < 1 {
		return nil, chk.Err("steps=%d must be at least 1", o.steps)
	}

	// concrete and model
	par := &mconc.Params{Fc: o.fc, Ft: o.ft, Ec: o.ec, Epsc: o.epsc, Epscu: o.epscu, Gf: o.gf}
	mdl, err := mconc.New(o.model)
	if err != nil {
		return nil, err
	}
	conf := 0.0
	if o.conf {
		conf = 1
	}
	err = mdl.Init(par, []*dbf.P{
		&dbf.P{N: "Cs", V: o.cs},
		&dbf.P{N: "conf", V: conf},
	})
	if err != nil {
		return nil, err
	}

	// reinforcement
	var web *mreinf.WebReinforcement
	dx, dy, err := buildDirections(o)
	if err != nil {
		return nil, err
	}
	if dx != nil || dy != nil {
		web = mreinf.NewWebOrthogonal(dx, dy)
	}

	// driver
	var drv mconc.Driver
	err = drv.Init(mdl, web, o.reflen)
	if err != nil {
		return nil, err
	}
	drv.Silent = true
	err = drv.Run(mconc.PathProportional(o.steps, mconc.StrainState{Ex: o.ex, Ey: o.ey, Gxy: o.gxy}))
	if err != nil {
		return nil, err
	}
	return &drv, nil
}

// buildDirections creates the reinforcement directions given by the flags
func buildDirections(o *runOpts) (dx, dy *mreinf.Direction, err error) {
	if o.phix > 0 {
		dx, err = mreinf.NewDirection(o.phix, o.sx, 1, o.width, 0, mreinf.NewBilinearSteel(o.fy, o.es))
		if err != nil {
			return
		}
	}
	if o.phiy > 0 {
		dy, err = mreinf.NewDirection(o.phiy, o.sy, 1, o.width, 0, mreinf.NewBilinearSteel(o.fy, o.es))
	}
	return
}

// printResults writes the response table and the final stiffness
func printResults(drv *mconc.Driver) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "inc\tεx\tεy\tγxy\tσx\tσy\tτxy\tstate")
	for i, r := range drv.Res {
		fmt.Fprintf(w, "%d\t%.6e\t%.6e\t%.6e\t%.4f\t%.4f\t%.4f\t%s\n",
			i+1, r.Eps.Ex, r.Eps.Ey, r.Eps.Gxy, r.Sig.Sx, r.Sig.Sy, r.Sig.Txy, r.Cracks)
	}
	w.Flush()

	// final secant stiffness
	D := drv.Pt.Stiffness()
	flat := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		flat = append(flat, D[i]...)
	}
	fmt.Println("\nfinal secant stiffness:")
	fmt.Printf("%.4f\n", mat.Formatted(mat.NewDense(3, 3, flat), mat.Prefix("")))
	if !drv.Pt.ConfConverged {
		fmt.Println("warning: confinement iteration did not converge")
	}
}
