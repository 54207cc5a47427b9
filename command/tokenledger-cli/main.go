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

	"github.com/bitmark-inc/tokenledger/command/tokenledger-cli/rpccalls"
)

type metadata struct {
	connect     string
	fingerprint string
	signer      *rpccalls.Signer // nil if no key was given
	verbose     bool
	e           io.Writer
	w           io.Writer
}

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
	app.Name = "tokenledger-cli"
	app.Usage = "query and update a tokenledgerd"
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
			Value:  "127.0.0.1:2130",
			Usage:  " tokenledgerd host/IP and port, `HOST:PORT`",
			EnvVar: "TOKENLEDGER_CONNECT",
		},
		cli.StringFlag{
			Name:   "fingerprint, f",
			Value:  "",
			Usage:  " expected SHA3-256 of the server certificate `HEX`",
			EnvVar: "TOKENLEDGER_FINGERPRINT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " ED25519 seed or private key to sign requests `HEX`",
			EnvVar: "TOKENLEDGER_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, print it and its address",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "info",
			Usage:     "display tokenledgerd info",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "balance",
			Usage:     "display balances, owners and tokens are paired in order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "owner, o",
					Usage: " owner `ADDRESS` default is the signing key",
				},
				cli.StringSliceFlag{
					Name:  "token, t",
					Usage: "*token `ID`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "supply",
			Usage:     "display total supply of a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
			},
			Action: runSupply,
		},
		{
			Name:      "approved",
			Usage:     "check whether an operator is approved for an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ADDRESS` default is the signing key",
				},
				cli.StringFlag{
					Name:  "operator, p",
					Value: "",
					Usage: "*operator `ADDRESS`",
				},
			},
			Action: runApproved,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an amount of one token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, s",
					Value: "",
					Usage: " source `ADDRESS` default is the signing key",
				},
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*receiver `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*decimal `AMOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "batch-transfer",
			Usage:     "transfer several tokens at once, all or none",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, s",
					Value: "",
					Usage: " source `ADDRESS` default is the signing key",
				},
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*receiver `ADDRESS`",
				},
				cli.StringSliceFlag{
					Name:  "token, t",
					Usage: "*token `ID` (repeat)",
				},
				cli.StringSliceFlag{
					Name:  "amount, a",
					Usage: "*decimal `AMOUNT` (repeat, same order as token)",
				},
			},
			Action: runBatchTransfer,
		},
		{
			Name:      "mint",
			Usage:     "create new tokens, key must be the minter",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*receiver `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*decimal `AMOUNT`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "burn",
			Usage:     "destroy tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ADDRESS` default is the signing key",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*decimal `AMOUNT`",
				},
			},
			Action: runBurn,
		},
		{
			Name:      "approve",
			Usage:     "approve an operator for all of the key's tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operator, p",
					Value: "",
					Usage: "*operator `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "revoke, x",
					Usage: " remove the approval instead",
				},
			},
			Action: runApprove,
		},
		{
			Name:  "version",
			Usage: "display tokenledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// decode the global options
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect:     c.GlobalString("connect"),
			fingerprint: c.GlobalString("fingerprint"),
			verbose:     c.GlobalBool("verbose"),
			e:           c.App.ErrWriter,
			w:           c.App.Writer,
		}

		if key := c.GlobalString("key"); "" != key {
			signer, err := parseSigner(key)
			if nil != err {
				return err
			}
			m.signer = signer
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
			if nil != m.signer {
				fmt.Fprintf(m.e, "signer: %s\n", m.signer.Address)
			}
		}

		c.App.Metadata["config"] = m
		return nil
	}

	return app
}
