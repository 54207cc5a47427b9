// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/tokenledger/address"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// in memory handle
type memoryHandle map[string][]byte

func (h memoryHandle) Get(key []byte) []byte {
	return h[string(key)]
}

func (h memoryHandle) Put(key []byte, value []byte) {
	h[string(key)] = value
}

var (
	alice = testAccount(0x0a)
	bob   = testAccount(0x0b)
	carol = testContract(0x0c)
)

func testAccount(b byte) *address.Address {
	a, err := address.NewAccount(bytes.Repeat([]byte{b}, 32))
	if nil != err {
		panic(err)
	}
	return a
}

func testContract(b byte) *address.Address {
	c, err := address.NewContract(bytes.Repeat([]byte{b}, 32))
	if nil != err {
		panic(err)
	}
	return c
}

func n(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func maximum() *uint256.Int {
	return new(uint256.Int).Not(uint256.NewInt(0))
}

func record(v *uint256.Int) []byte {
	b := v.Bytes32()
	return b[:]
}
