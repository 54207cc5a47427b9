// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/itemkey"
	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/storage"
)

var uriKey = []byte("uri")

// value stored for an approved operator
var approvedFlag = []byte{0x01}

// Token - serialises all access to the ledger
type Token struct {
	sync.Mutex
	log    *logger.L
	minter *address.Address
}

// New - create the entry point layer
//
// storage must already be initialised
func New(log *logger.L, minter *address.Address) (*Token, error) {
	if nil == minter {
		return nil, fault.MissingParameters
	}
	if nil == storage.Pool.Balances {
		return nil, fault.NotInitialised
	}
	return &Token{
		log:    log,
		minter: minter,
	}, nil
}

// Minter - the only address allowed to mint
func (t *Token) Minter() *address.Address {
	return t.minter
}

// Install - store the token URI on first run
//
// an existing different URI is kept
func (t *Token) Install(uri string) error {
	t.Lock()
	defer t.Unlock()

	current := storage.Pool.Metadata.Get(uriKey)
	if nil != current {
		if string(current) != uri {
			t.log.Warnf("keeping installed uri: %q  ignoring: %q", current, uri)
		}
		return nil
	}

	return t.inTransaction(func() error {
		storage.Pool.Metadata.Put(uriKey, []byte(uri))
		t.log.Infof("installed uri: %q", uri)
		return nil
	})
}

// URI - the token metadata URI
func (t *Token) URI() string {
	t.Lock()
	defer t.Unlock()

	return string(storage.Pool.Metadata.Get(uriKey))
}

// TotalSupply - minted less burned, zero for an unknown id
func (t *Token) TotalSupply(tokenID string) *uint256.Int {
	t.Lock()
	defer t.Unlock()

	return readSupply(tokenID)
}

// BalanceOf - balance of one owner
func (t *Token) BalanceOf(owner *address.Address, tokenID string) (*uint256.Int, error) {
	if nil == owner {
		return nil, fault.InvalidAddress
	}

	t.Lock()
	defer t.Unlock()

	return ledger.ReadBalance(ledger.BalancesHandle(), owner, tokenID), nil
}

// BalanceOfBatch - balance of owners[i] in ids[i]
func (t *Token) BalanceOfBatch(owners []*address.Address, tokenIDs []string) ([]*uint256.Int, error) {
	if len(owners) != len(tokenIDs) {
		return nil, fault.LengthMismatch
	}
	for _, owner := range owners {
		if nil == owner {
			return nil, fault.InvalidAddress
		}
	}

	t.Lock()
	defer t.Unlock()

	handle := ledger.BalancesHandle()
	balances := make([]*uint256.Int, len(owners))
	for i, owner := range owners {
		balances[i] = ledger.ReadBalance(handle, owner, tokenIDs[i])
	}
	return balances, nil
}

// SetApprovalForAll - allow or forbid operator to move all of caller's tokens
func (t *Token) SetApprovalForAll(caller *address.Address, operator *address.Address, approved bool) error {
	if nil == caller || nil == operator {
		return fault.InvalidAddress
	}
	if caller.Equal(operator) {
		return fault.SelfApproval
	}

	t.Lock()
	defer t.Unlock()

	key := []byte(itemkey.Operator(caller, operator))
	return t.inTransaction(func() error {
		if approved {
			storage.Pool.Operators.Put(key, approvedFlag)
		} else {
			storage.Pool.Operators.Delete(key)
		}
		t.log.Infof("owner: %s  operator: %s  approved: %t", caller, operator, approved)
		return nil
	})
}

// IsApprovedForAll - true if owner has approved operator
func (t *Token) IsApprovedForAll(owner *address.Address, operator *address.Address) bool {
	if nil == owner || nil == operator {
		return false
	}

	t.Lock()
	defer t.Unlock()

	return isApproved(owner, operator)
}

// SafeTransferFrom - caller moves amount of tokenID from one owner to another
func (t *Token) SafeTransferFrom(caller *address.Address, from *address.Address, to *address.Address, tokenID string, amount *uint256.Int) error {
	if nil == caller || nil == from || nil == to {
		return fault.InvalidAddress
	}
	if nil == amount {
		return fault.InvalidAmount
	}

	t.Lock()
	defer t.Unlock()

	if !authorised(caller, from) {
		return fault.NotAuthorised
	}

	return t.inTransaction(func() error {
		err := ledger.TransferBalance(ledger.BalancesHandle(), from, to, tokenID, amount)
		if nil != err {
			return err
		}
		t.log.Infof("transfer: %s -> %s  id: %q  amount: %s", from, to, tokenID, amount.Dec())
		return nil
	})
}

// SafeBatchTransferFrom - all or nothing transfer of several token ids
func (t *Token) SafeBatchTransferFrom(caller *address.Address, from *address.Address, to *address.Address, tokenIDs []string, amounts []*uint256.Int) error {
	if nil == caller || nil == from || nil == to {
		return fault.InvalidAddress
	}
	if len(tokenIDs) != len(amounts) {
		return fault.LengthMismatch
	}
	for _, amount := range amounts {
		if nil == amount {
			return fault.InvalidAmount
		}
	}

	t.Lock()
	defer t.Unlock()

	if !authorised(caller, from) {
		return fault.NotAuthorised
	}

	return t.inTransaction(func() error {
		err := ledger.BatchTransfer(ledger.BalancesHandle(), from, to, tokenIDs, amounts)
		if nil != err {
			return err
		}
		t.log.Infof("batch transfer: %s -> %s  ids: %q", from, to, tokenIDs)
		return nil
	})
}

// Mint - create amount of tokenID for an owner
func (t *Token) Mint(caller *address.Address, to *address.Address, tokenID string, amount *uint256.Int) error {
	if nil == caller || nil == to {
		return fault.InvalidAddress
	}
	if nil == amount {
		return fault.InvalidAmount
	}
	if !caller.Equal(t.minter) {
		return fault.NotMinter
	}

	t.Lock()
	defer t.Unlock()

	return t.inTransaction(func() error {
		supply, overflow := new(uint256.Int).AddOverflow(readSupply(tokenID), amount)
		if overflow {
			return fault.Overflow
		}
		err := ledger.Credit(ledger.BalancesHandle(), to, tokenID, amount)
		if nil != err {
			return err
		}
		writeSupply(tokenID, supply)
		t.log.Infof("mint: %s  id: %q  amount: %s", to, tokenID, amount.Dec())
		return nil
	})
}

// Burn - destroy amount of an owner's tokenID
func (t *Token) Burn(caller *address.Address, owner *address.Address, tokenID string, amount *uint256.Int) error {
	if nil == caller || nil == owner {
		return fault.InvalidAddress
	}
	if nil == amount {
		return fault.InvalidAmount
	}

	t.Lock()
	defer t.Unlock()

	if !authorised(caller, owner) {
		return fault.NotAuthorised
	}

	return t.inTransaction(func() error {
		supply, underflow := new(uint256.Int).SubOverflow(readSupply(tokenID), amount)
		if underflow {
			return fault.InsufficientBalance
		}
		err := ledger.Debit(ledger.BalancesHandle(), owner, tokenID, amount)
		if nil != err {
			return err
		}
		writeSupply(tokenID, supply)
		t.log.Infof("burn: %s  id: %q  amount: %s", owner, tokenID, amount.Dec())
		return nil
	})
}

// run f as one storage transaction, committing only if it succeeds
//
// must be called with the lock held
func (t *Token) inTransaction(f func() error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.log.Errorf("begin transaction error: %s", err)
		return err
	}

	err = f()
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		t.log.Criticalf("commit error: %s", err)
	}
	return err
}

// owner or an operator approved by the owner
func authorised(caller *address.Address, owner *address.Address) bool {
	return caller.Equal(owner) || isApproved(owner, caller)
}

func isApproved(owner *address.Address, operator *address.Address) bool {
	return storage.Pool.Operators.Has([]byte(itemkey.Operator(owner, operator)))
}
