// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the gorcm command line interface
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorcm",
	Short: "Reinforced-concrete membrane constitutive engine",
	Long: `gorcm - biaxial constitutive models for reinforced-concrete membranes

Computes the stress response of a cracked/uncracked concrete membrane
element under a given in-plane strain state, with the MCFT, DSFM and SMM
smeared-crack models and optional smeared reinforcement.

Use 'gorcm run' to drive a strain path and print the stress response.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
