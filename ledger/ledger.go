// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// size of a stored balance
const recordLength = 32

// Handle - keyed storage for balance records
//
// Get returns nil for an absent key
type Handle interface {
	Get(key []byte) []byte
	Put(key []byte, value []byte)
}

// BalancesHandle - the database backed balances pool
func BalancesHandle() *storage.PoolHandle {
	handle := storage.Pool.Balances
	if nil == handle {
		logger.Panic("ledger: balances pool is not initialised")
	}
	return handle
}

// ReadBalance - stored balance or zero
func ReadBalance(handle Handle, owner *address.Address, tokenID string) *uint256.Int {
	key := Deriver().Balance(tokenID, owner)
	buffer := handle.Get([]byte(key))
	if nil == buffer {
		return uint256.NewInt(0)
	}
	if recordLength != len(buffer) {
		logger.Panicf("ledger: corrupt balance record: %q  length: %d", key, len(buffer))
	}
	return new(uint256.Int).SetBytes(buffer)
}

// WriteBalance - unconditionally replace the stored balance
func WriteBalance(handle Handle, owner *address.Address, tokenID string, balance *uint256.Int) {
	record := balance.Bytes32()
	handle.Put([]byte(Deriver().Balance(tokenID, owner)), record[:])
}

// TransferBalance - move amount of tokenID from one owner to another
//
// a self transfer or a zero amount returns at once without touching
// the handle; otherwise both balances are computed before either is
// written
func TransferBalance(handle Handle, from *address.Address, to *address.Address, tokenID string, amount *uint256.Int) error {
	if from.Equal(to) || amount.IsZero() {
		return nil
	}

	senderBalance := ReadBalance(handle, from, tokenID)
	newSenderBalance, underflow := new(uint256.Int).SubOverflow(senderBalance, amount)
	if underflow {
		return fault.InsufficientBalance
	}

	recipientBalance := ReadBalance(handle, to, tokenID)
	newRecipientBalance, overflow := new(uint256.Int).AddOverflow(recipientBalance, amount)
	if overflow {
		return fault.Overflow
	}

	WriteBalance(handle, from, tokenID, newSenderBalance)
	WriteBalance(handle, to, tokenID, newRecipientBalance)
	return nil
}

// Credit - add amount to an owner's balance
func Credit(handle Handle, owner *address.Address, tokenID string, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	balance, overflow := new(uint256.Int).AddOverflow(ReadBalance(handle, owner, tokenID), amount)
	if overflow {
		return fault.Overflow
	}
	WriteBalance(handle, owner, tokenID, balance)
	return nil
}

// Debit - remove amount from an owner's balance
func Debit(handle Handle, owner *address.Address, tokenID string, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	balance, underflow := new(uint256.Int).SubOverflow(ReadBalance(handle, owner, tokenID), amount)
	if underflow {
		return fault.InsufficientBalance
	}
	WriteBalance(handle, owner, tokenID, balance)
	return nil
}
