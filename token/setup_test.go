// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/storage"
	"github.com/bitmark-inc/tokenledger/token"
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

var (
	minter   = testAccount(0x01)
	alice    = testAccount(0x0a)
	bob      = testAccount(0x0b)
	operator = testContract(0x0c)
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

func setupToken(t *testing.T) *token.Token {
	err := storage.Initialise(storage.InMemory, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	tok, err := token.New(logger.New("token"), minter)
	if nil != err {
		t.Fatalf("token new error: %s", err)
	}
	return tok
}

func teardownToken() {
	storage.Finalise()
}
