// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/token"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// how much of the program must be set up before a command can run
type commandStage int

const (
	stageSetup  commandStage = iota // nothing loaded
	stageConfig                     // configuration file decoded
	stageData                       // database open and token installed
	stageServe                      // the normal daemon loop
)

type command struct {
	name  string
	alias string
	args  string
	stage commandStage
	help  []string
}

var commands = []command{
	{name: "help", alias: "h", stage: stageSetup, help: []string{"display this message"}},
	{name: "version", alias: "v", stage: stageSetup, help: []string{"display version string"}},
	{name: "gen-rpc-cert", alias: "rpc", args: "[IPs...]", stage: stageConfig, help: []string{
		"create the RPC private key and certificate",
		"at the paths named in client_rpc",
	}},
	{name: "dump-config", alias: "cfg", stage: stageConfig, help: []string{"print the decoded configuration"}},
	{name: "start", alias: "run", stage: stageServe, help: []string{
		"run the daemon, same as no arguments",
		"for convenience when passing script arguments",
	}},
	{name: "balance", alias: "bal", args: "TOKEN ADDRESS", stage: stageData, help: []string{"print one balance from the database"}},
	{name: "supply", args: "TOKEN", stage: stageData, help: []string{"print the total supply of a token"}},
}

// an empty argument list is the same as "start"
func lookupCommand(arguments []string) (*command, []string, bool) {
	if 0 == len(arguments) {
		return lookupCommand([]string{"start"})
	}
	for i := range commands {
		c := &commands[i]
		if arguments[0] == c.name || ("" != c.alias && arguments[0] == c.alias) {
			return c, arguments[1:], true
		}
	}
	return nil, nil, false
}

func printUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)
	fmt.Fprintf(w, "supported commands:\n\n")
	for _, c := range commands {
		alias := ""
		if "" != c.alias {
			alias = "(" + c.alias + ")"
		}
		for i, line := range c.help {
			if 0 == i {
				fmt.Fprintf(w, "  %-26s %-8s - %s\n", c.name+" "+c.args, alias, line)
			} else {
				fmt.Fprintf(w, "  %-26s %-8s   %s\n", "", "", line)
			}
		}
		fmt.Fprintf(w, "\n")
	}
}

// commands needing neither configuration nor database
//
// returns true if the command was handled and main should exit
func processSetupCommand(program string, arguments []string) bool {
	c, _, ok := lookupCommand(arguments)
	if !ok {
		fmt.Printf("error: no such command: %q\n", arguments[0])
		printUsage(os.Stdout, program)
		exitwithstatus.Exit(1)
	}

	switch c.name {
	case "help":
		printUsage(os.Stdout, program)
		exitwithstatus.Exit(1)
	case "version":
		fmt.Printf("%s\n", version)
		return true
	}
	return false
}

// commands that only inspect the decoded configuration
func processConfigCommand(arguments []string, options *Configuration) bool {
	c, rest, ok := lookupCommand(arguments)
	if !ok || stageConfig != c.stage {
		return false
	}

	switch c.name {
	case "gen-rpc-cert":
		err := generateRPCCertificate(os.Stdout, options, rest)
		if nil != err {
			exitwithstatus.Message("%s", err)
		}
	case "dump-config":
		err := dumpConfiguration(os.Stdout, options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
	}
	return true
}

// commands that read the open database instead of serving it
func processDataCommand(log *logger.L, arguments []string, tok *token.Token) bool {
	c, rest, ok := lookupCommand(arguments)
	if !ok || stageData != c.stage {
		return false
	}

	var err error
	switch c.name {
	case "balance":
		err = printBalance(os.Stdout, log, tok, rest)
	case "supply":
		err = printSupply(os.Stdout, tok, rest)
	}
	if nil != err {
		exitwithstatus.Message("%s: %s", c.name, err)
	}
	return true
}

// extra arguments are IP addresses or host names for the certificate
func generateRPCCertificate(w io.Writer, options *Configuration, hosts []string) error {
	certificateFilename := options.ClientRPC.Certificate
	privateKeyFilename := options.ClientRPC.PrivateKey

	extra := make([]string, 0, len(hosts))
	for _, h := range hosts {
		if "" != h {
			extra = append(extra, h)
		}
	}

	err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(extra), extra)
	if nil != err {
		return fmt.Errorf("generate RPC key: %q and certificate: %q error: %s", privateKeyFilename, certificateFilename, err)
	}
	fmt.Fprintf(w, "generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)
	return nil
}

func dumpConfiguration(w io.Writer, options *Configuration) error {
	b, err := json.MarshalIndent(options, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func printBalance(w io.Writer, log *logger.L, tok *token.Token, arguments []string) error {
	if len(arguments) < 2 {
		return fmt.Errorf("missing token id and address arguments")
	}
	tokenID := arguments[0]
	owner, err := address.FromBase58(arguments[1])
	if nil != err {
		return fmt.Errorf("address: %q  error: %s", arguments[1], err)
	}
	balance, err := tok.BalanceOf(owner, tokenID)
	if nil != err {
		return err
	}
	log.Infof("balance of: %s  token: %q  is: %s", owner, tokenID, balance.Dec())
	fmt.Fprintf(w, "%s\n", balance.Dec())
	return nil
}

func printSupply(w io.Writer, tok *token.Token, arguments []string) error {
	if len(arguments) < 1 {
		return fmt.Errorf("missing token id argument")
	}
	fmt.Fprintf(w, "%s\n", tok.TotalSupply(arguments[0]).Dec())
	return nil
}
