// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

// dump the tree as a graphviz dot file for visual inspection
// render with the "dot" engine, e.g. at https://edotor.net/
func runGraph(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := loadTree(c)
	if nil != err {
		return err
	}

	tree.Graphviz(m.w, wordText)
	return nil
}
