// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

// emit the input lines in tree order
//
// duplicate lines collapse to their first occurrence, a property of
// the less-than bulk load
func runSort(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := loadTree(c)
	if nil != err {
		return err
	}

	numbered := c.Bool("line-numbers")
	end := tree.End()
	for curr := tree.Begin(); curr != end; curr = curr.Next() {
		w := curr.Item()
		if numbered {
			fmt.Fprintf(m.w, "%6d  %s\n", w.line, w.text)
		} else {
			fmt.Fprintf(m.w, "%s\n", w.text)
		}
	}
	return nil
}
