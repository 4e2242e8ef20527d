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
)

type metadata struct {
	connect string
	keyFile string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConnect = "127.0.0.1:2130"
	defaultKeyFile = "nftstages.key"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "nftstages-cli"
	app.Usage = "issue tokens and move them through their levels"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " nftstagesd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "key-file, k",
			Value: defaultKeyFile,
			Usage: " owner private key `FILE` in solana keygen format",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an owner key and store it in the key file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "force, f",
					Usage: " overwrite an existing key file",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "issue",
			Usage:     "create a new token and its first descriptor",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*token name `STRING`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: " token symbol `STRING`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*descriptor base uri ending in 1.json `URI`",
				},
				cli.IntFlag{
					Name:  "fee, f",
					Value: 0,
					Usage: " seller fee in basis points `BPS`",
				},
				cli.BoolFlag{
					Name:  "immutable, i",
					Usage: " descriptor cannot be changed after issue",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: " token mint `ACCOUNT` [default random]",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "delegate",
			Usage:     "give the program authority the descriptor of a token",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{mintFlag()},
			Action:    runDelegate,
		},
		{
			Name:      "init",
			Usage:     "create the level record of a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				mintFlag(),
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: " account paying for the record `ACCOUNT` [default owner]",
				},
			},
			Action: runInit,
		},
		{
			Name:      "level-up",
			Usage:     "advance a token by one level",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{mintFlag()},
			Action:    runLevelUp,
		},
		{
			Name:      "info",
			Usage:     "display the level and descriptor of a token",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{mintFlag()},
			Action:    runInfo,
		},
		{
			Name:   "version",
			Usage:  "display nftstages-cli version",
			Action: runVersion,
		},
	}

	// set up the common options
	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			keyFile: c.GlobalString("key-file"),
			verbose: c.GlobalBool("verbose"),
			e:       app.ErrWriter,
			w:       app.Writer,
		}
		return nil
	}

	return app
}

func mintFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "mint, m",
		Value: "",
		Usage: "*token mint `ACCOUNT`",
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
