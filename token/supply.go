// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/logger"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/storage"
)

// same record format as a balance
const supplyRecordLength = 32

func readSupply(tokenID string) *uint256.Int {
	key := ledger.Deriver().Supply(tokenID)
	buffer := storage.Pool.Supply.Get([]byte(key))
	if nil == buffer {
		return uint256.NewInt(0)
	}
	if supplyRecordLength != len(buffer) {
		logger.Panicf("token: corrupt supply record: %q  length: %d", key, len(buffer))
	}
	return new(uint256.Int).SetBytes(buffer)
}

func writeSupply(tokenID string, supply *uint256.Int) {
	record := supply.Bytes32()
	storage.Pool.Supply.Put([]byte(ledger.Deriver().Supply(tokenID)), record[:])
}
