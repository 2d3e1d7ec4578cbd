// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()
	defer logger.Finalise()

	app := cli.NewApp()
	app.Name = "intree"
	app.Usage = "exercise the intrusive AVL tree on line oriented text"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: "",
			Usage: " write a log file into `DIRECTORY` (disabled when empty)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "read lines, load them into a tree, emit them in order",
			ArgsUsage: "[FILE]\n   (reads standard input when no file is given)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "line-numbers, n",
					Usage: " prefix each line with its original line number",
				},
			},
			Action: runSort,
		},
		{
			Name:      "show",
			Usage:     "display an ASCII picture of the loaded tree",
			ArgsUsage: "[FILE]",
			Action:    runShow,
		},
		{
			Name:      "graph",
			Usage:     "dump the loaded tree as a graphviz dot file",
			ArgsUsage: "[FILE]",
			Action:    runGraph,
		},
		{
			Name:  "version",
			Usage: "display intree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if dir := c.GlobalString("log-directory"); "" != dir {
			logging := logger.Configuration{
				Directory: dir,
				File:      "intree.log",
				Size:      1048576,
				Count:     10,
				Console:   m.verbose,
				Levels: map[string]string{
					logger.DefaultTag: "info",
				},
			}
			if err := logger.Initialise(logging); nil != err {
				return err
			}
			m.log = logger.New("intree")
		}

		c.App.Metadata["config"] = m
		return nil
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
