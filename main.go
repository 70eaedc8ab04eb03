// Copyright 2017 The Gorcm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gorcm drives reinforced-concrete membrane constitutive models from the
// command line
package main

import "github.com/cpmech/gorcm/cmd"

func main() {
	cmd.Execute()
}
