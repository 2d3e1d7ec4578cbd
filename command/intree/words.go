// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/intree/avl"
)

// one line of input; the node carries its own tree link so the tree
// needs no allocation of its own
type wordNode struct {
	link avl.Link[wordNode]
	text string
	line int
}

// link selector for word trees
func wordLink(w *wordNode) *avl.Link[wordNode] {
	return &w.link
}

// ordering for word trees
func wordLess(a *wordNode, b *wordNode) bool {
	return a.text < b.text
}

// display text for print/graph output
func wordText(w *wordNode) string {
	return w.text
}

// read all lines from the file argument, or stdin when absent
func readWords(c *cli.Context) ([]*wordNode, error) {
	in := os.Stdin
	if name := c.Args().Get(0); "" != name {
		f, err := os.Open(name)
		if nil != err {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	return scanWords(in)
}

// internal: scan a reader into word nodes
func scanWords(r io.Reader) ([]*wordNode, error) {
	words := []*wordNode{}
	n := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		n += 1
		words = append(words, &wordNode{
			text: scanner.Text(),
			line: n,
		})
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return words, nil
}

// build a tree from the command's input, logging the load when a log
// channel is configured
func loadTree(c *cli.Context) (*avl.Tree[wordNode], error) {
	m := c.App.Metadata["config"].(*metadata)

	words, err := readWords(c)
	if nil != err {
		return nil, err
	}

	tree := avl.New(wordLink)
	kept := tree.InsertAll(wordLess, words...)

	if nil != m.log {
		m.log.Infof("lines: %d  unique: %d  dropped: %d", len(words), kept, len(words)-kept)
	}
	return tree, nil
}
