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
	connect  string
	identity string
	password string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

const (
	defaultConnect  = "127.0.0.1:2130"
	defaultIdentity = "identity.json"
	defaultCount    = 20
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "receipt-cli"
	app.Usage = "create and query payment receipts"
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
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " receiptd host/IP and port, `HOST:PORT`",
			EnvVar: "RECEIPT_CLI_CONNECT",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  defaultIdentity,
			Usage:  " identity `FILE`",
			EnvVar: "RECEIPT_CLI_IDENTITY",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new signing identity and save it in the identity file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "create",
			Usage:     "create a receipt signed by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payer, P",
					Value: "",
					Usage: "*payer identity `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "tx, t",
					Value: "",
					Usage: " payment transaction hash `TXHASH`",
				},
				cli.StringFlag{
					Name:  "title, T",
					Value: "",
					Usage: " receipt title `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " receipt description `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "file, f",
					Usage: " attach a `FILE` by name and SHA-256 (repeatable)",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "get",
			Usage:     "display one receipt",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "slot, s",
					Value: "",
					Usage: "*receipt `SLOT`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "list",
			Usage:     "list receipts by creator or payer",
			ArgsUsage: "\n   (+ = select one, default is creator of the identity file)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "creator, C",
					Value: "",
					Usage: "+creator `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "payer, P",
					Value: "",
					Usage: "+payer `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " continue from `CURSOR`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: defaultCount,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "find",
			Usage:     "find receipts for a payment transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tx, t",
					Value: "",
					Usage: "*payment transaction hash `TXHASH`",
				},
			},
			Action: runFind,
		},
		{
			Name:   "info",
			Usage:  "display receiptd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display receipt-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		e := c.App.ErrWriter
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			connect:  c.GlobalString("connect"),
			identity: c.GlobalString("identity"),
			password: c.GlobalString("password"),
			verbose:  verbose,
			e:        e,
			w:        c.App.Writer,
		}
		if verbose {
			fmt.Fprintf(e, "connect: %q\n", m.connect)
			fmt.Fprintf(e, "identity: %q\n", m.identity)
		}
		c.App.Metadata["config"] = m
		return nil
	}

	return app
}
