// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/itemkey"
	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultCount = 10

// key and value highlighting for --colour
type palette struct {
	label string
	key   string
	value string
	reset string
}

var colours = palette{
	label: "\033[1;36m",
	key:   "\033[1;31m",
	value: "\033[1;34m",
	reset: "\033[0m",
}

type request struct {
	fileName string
	tag      byte
	seek     []byte
	count    int
	deriver  *itemkey.Deriver
	colour   palette
	verbose  bool
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "encoding", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'e'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	switch {
	case len(options["version"]) > 0:
		exitwithstatus.Message("%s: version: %s", program, version)
	case len(options["list"]) > 0:
		listPools(os.Stdout)
		return
	case len(options["help"]) > 0 || 0 == len(arguments) || 1 != len(options["file"]):
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--colour] [--count=N] [--encoding=base64|base58] --file=FILE tag [key-prefix]\n       %s --list", program, program)
	}

	req, err := parseRequest(options, arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "tokenledger-dump.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// read only so a running daemon's database is not disturbed
	if err = storage.Initialise(req.fileName, storage.ReadOnly); nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer storage.Finalise()

	if err = dump(os.Stdout, req); nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}
}

func parseRequest(options map[string][]string, arguments []string) (*request, error) {
	req := &request{
		fileName: options["file"][0],
		count:    defaultCount,
		verbose:  len(options["verbose"]) > 0,
	}

	if len(options["colour"]) > 0 {
		req.colour = colours
	}

	if len(options["count"]) > 0 {
		n, err := strconv.Atoi(options["count"][0])
		if nil != err {
			return nil, fmt.Errorf("convert count error: %s", err)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid count: %d", n)
		}
		req.count = n
	}

	// without --encoding the database's recorded encoding is used
	if len(options["encoding"]) > 0 {
		encodingName := options["encoding"][0]
		encoding, ok := itemkey.EncodingByName(encodingName)
		if !ok {
			return nil, fmt.Errorf("unknown key encoding: %q", encodingName)
		}
		req.deriver = itemkey.New(encoding, itemkey.MaximumLength)
	}

	if 1 != len(arguments[0]) {
		return nil, fmt.Errorf("tag must be a single character: %q", arguments[0])
	}
	req.tag = arguments[0][0]

	if len(arguments) > 1 {
		req.seek = []byte(arguments[1])
	}
	return req, nil
}

// print each pool's prefix tag from the struct tags of storage.Pool
func listPools(w io.Writer) {
	poolType := reflect.TypeOf(storage.Pool)
	fmt.Fprintf(w, " tags:\n")
	for i := 0; i < poolType.NumField(); i += 1 {
		field := poolType.Field(i)
		fmt.Fprintf(w, "       %s → %s\n", field.Tag.Get("prefix"), field.Name)
	}
}

func dump(w io.Writer, req *request) error {
	p, err := storage.PoolByPrefix(req.tag)
	if nil != err {
		return fmt.Errorf("no pool corresponding to: %q  error: %s", req.tag, err)
	}

	if nil == req.deriver {
		encoding, err := ledger.RecordedEncoding()
		if nil != err {
			return fmt.Errorf("read key encoding error: %s", err)
		}
		if nil == encoding {
			encoding = itemkey.Base64
		}
		req.deriver = itemkey.New(encoding, itemkey.MaximumLength)
	}

	if req.verbose {
		fmt.Fprintf(w, "read tag: %c from file: %q  key encoding: %s\n", req.tag, req.fileName, req.deriver.Encoding().Name())
	}

	cursor := p.NewFetchCursor()
	if len(req.seek) > 0 {
		cursor.Seek(req.seek)
	}

	data, err := cursor.Fetch(req.count)
	if nil != err {
		return fmt.Errorf("fetch error: %s", err)
	}

	c := req.colour
	for i, e := range data {
		key, value := describe(req.tag, req.deriver, e)
		fmt.Fprintf(w, "%d: %sKey: %s%s%s\n", i, c.label, c.key, key, c.reset)
		fmt.Fprintf(w, "%d: %sVal: %s%s%s\n", i, c.label, c.value, value, c.reset)
	}
	return nil
}
