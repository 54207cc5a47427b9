// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/fault"
)

// BatchTransfer - TransferBalance for each (id, amount) pair, all or nothing
//
// items are applied in order to a staging overlay so later items see
// the effect of earlier ones; the overlay reaches the handle only if
// every item succeeds
func BatchTransfer(handle Handle, from *address.Address, to *address.Address, tokenIDs []string, amounts []*uint256.Int) error {
	if len(tokenIDs) != len(amounts) {
		return fault.LengthMismatch
	}

	staging := newOverlay(handle)
	for i, tokenID := range tokenIDs {
		err := TransferBalance(staging, from, to, tokenID, amounts[i])
		if nil != err {
			return err
		}
	}
	staging.flush()
	return nil
}

// records written during a batch, in first write order
type overlay struct {
	handle Handle
	staged map[string][]byte
	order  []string
}

func newOverlay(handle Handle) *overlay {
	return &overlay{
		handle: handle,
		staged: make(map[string][]byte),
	}
}

func (o *overlay) Get(key []byte) []byte {
	if value, ok := o.staged[string(key)]; ok {
		return value
	}
	return o.handle.Get(key)
}

func (o *overlay) Put(key []byte, value []byte) {
	k := string(key)
	if _, ok := o.staged[k]; !ok {
		o.order = append(o.order, k)
	}
	o.staged[k] = value
}

func (o *overlay) flush() {
	for _, k := range o.order {
		o.handle.Put([]byte(k), o.staged[k])
	}
}
