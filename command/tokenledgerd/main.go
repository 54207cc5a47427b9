// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/background"
	"github.com/bitmark-inc/tokenledger/itemkey"
	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/rpc"
	"github.com/bitmark-inc/tokenledger/storage"
	"github.com/bitmark-inc/tokenledger/token"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		if err := createPidFile(theConfiguration.PidFile); nil != err {
			exitwithstatus.Message("%s: PID file: %q error: %s", program, theConfiguration.PidFile, err)
		}
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		fatalf(log, "storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// already validated by getConfiguration
	keyEncoding, _ := itemkey.EncodingByName(theConfiguration.Database.KeyEncoding)
	err = ledger.InstallEncoding(keyEncoding)
	if nil != err {
		fatalf(log, "database key encoding: %q error: %s", keyEncoding.Name(), err)
	}
	log.Infof("key encoding: %s", keyEncoding.Name())

	minter, _ := address.FromBase58(theConfiguration.Token.Minter)

	log.Info("initialise token")
	tok, err := token.New(logger.New("token"), minter)
	if nil != err {
		fatalf(log, "token initialise error: %s", err)
	}
	err = tok.Install(theConfiguration.Token.URI)
	if nil != err {
		fatalf(log, "token install error: %s", err)
	}
	log.Infof("token uri: %q  minter: %s", tok.URI(), tok.Minter())

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, tok) {
		return
	}

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, tok, version)
	if nil != err {
		fatalf(log, "rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// reload the adjustable settings when the configuration changes
	w, err := newWatcher(configurationFile, logger.New(watcherLoggerPrefix))
	if nil == err {
		err = w.Start()
	}
	if nil != err {
		log.Warnf("configuration watcher disabled: %s", err)
	} else {
		defer w.Stop()

		processes := background.Processes{
			&reloader{
				log:      log,
				fileName: configurationFile,
				current:  theConfiguration,
				watcher:  w,
				setRate:  rpc.SetRequestRate,
			},
		}
		p := background.Start(processes, nil)
		defer p.Stop()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// exclusive create so a second instance fails
func createPidFile(name string) error {
	lockFile, err := os.OpenFile(name, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
	if nil != err {
		if os.IsExist(err) {
			return fmt.Errorf("another instance is already running")
		}
		return err
	}
	defer lockFile.Close()

	_, err = fmt.Fprintf(lockFile, "%d\n", os.Getpid())
	return err
}

// log to file and terminal then exit
func fatalf(log *logger.L, format string, arguments ...interface{}) {
	log.Criticalf(format, arguments...)
	exitwithstatus.Message(format, arguments...)
}
