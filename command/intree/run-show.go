// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

// display an ASCII picture of the tree with its vital statistics
func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := loadTree(c)
	if nil != err {
		return err
	}

	depth := tree.Print(m.w, wordText)
	fmt.Fprintf(m.w, "values: %d  depth: %d\n", tree.Count(), depth)

	if !tree.CheckParents() || !tree.CheckBalance() {
		return fmt.Errorf("inconsistent tree")
	}
	if m.verbose {
		fmt.Fprintf(m.e, "parent and balance checks passed\n")
	}
	return nil
}
