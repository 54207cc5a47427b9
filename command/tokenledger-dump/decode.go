// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/tokenledger/itemkey"
	"github.com/bitmark-inc/tokenledger/storage"
)

// pool prefixes with a known record layout
const (
	balancesPrefix  = 'B'
	supplyPrefix    = 'S'
	operatorsPrefix = 'O'
	metadataPrefix  = 'M'
)

// balance and supply records are 32 byte big endian integers
const amountLength = 32

var approvedFlag = []byte{0x01}

// render one element of a pool as a key and value text
func describe(prefix byte, deriver *itemkey.Deriver, e storage.Element) (string, string) {
	switch prefix {
	case balancesPrefix:
		tokenID, owner, err := deriver.Parse(string(e.Key))
		if nil != err {
			return fmt.Sprintf("%s (%s)", e.Key, err), amount(e.Value)
		}
		return fmt.Sprintf("token: %q  owner: %s", tokenID, owner), amount(e.Value)

	case supplyPrefix:
		return string(e.Key), amount(e.Value)

	case operatorsPrefix:
		if bytes.Equal(approvedFlag, e.Value) {
			return string(e.Key), "approved"
		}
		return string(e.Key), fmt.Sprintf("%x", e.Value)

	case metadataPrefix:
		return string(e.Key), fmt.Sprintf("%q", e.Value)

	default:
		return fmt.Sprintf("%x", e.Key), fmt.Sprintf("%x", e.Value)
	}
}

func amount(value []byte) string {
	if amountLength != len(value) {
		return fmt.Sprintf("corrupt: %x", value)
	}
	return new(uint256.Int).SetBytes(value).Dec()
}
