// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/itemkey"
	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/ledger/mocks"
)

// scenario: second item fails so the first must not be observable
func TestBatchTransferAllOrNothing(t *testing.T) {
	h := memoryHandle{}
	ledger.WriteBalance(h, alice, "A", n(10))
	ledger.WriteBalance(h, alice, "B", n(10))

	err := ledger.BatchTransfer(h, alice, bob, []string{"A", "B"}, []*uint256.Int{n(5), maximum()})
	assert.Equal(t, fault.InsufficientBalance, err, "wrong error")

	assert.Equal(t, n(10), ledger.ReadBalance(h, alice, "A"), "alice A moved")
	assert.True(t, ledger.ReadBalance(h, bob, "A").IsZero(), "bob A received")
	assert.Equal(t, n(10), ledger.ReadBalance(h, alice, "B"), "alice B moved")
	assert.Equal(t, 2, len(h), "records written on failure")
}

func TestBatchTransferFailureNeverWrites(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)
	m.EXPECT().Get([]byte(itemkey.Balance("A", alice))).Return(record(n(10))).AnyTimes()
	m.EXPECT().Get(gomock.Any()).Return(nil).AnyTimes()
	m.EXPECT().Put(gomock.Any(), gomock.Any()).Times(0)

	err := ledger.BatchTransfer(m, alice, bob, []string{"A", "B"}, []*uint256.Int{n(5), n(1)})
	assert.Equal(t, fault.InsufficientBalance, err, "wrong error")
}

func TestBatchTransferSuccess(t *testing.T) {
	h := memoryHandle{}
	ledger.WriteBalance(h, alice, "A", n(10))
	ledger.WriteBalance(h, alice, "B", n(20))

	err := ledger.BatchTransfer(h, alice, bob, []string{"A", "B"}, []*uint256.Int{n(4), n(20)})
	assert.Nil(t, err, "batch error")

	assert.Equal(t, n(6), ledger.ReadBalance(h, alice, "A"), "alice A")
	assert.Equal(t, n(4), ledger.ReadBalance(h, bob, "A"), "bob A")
	assert.True(t, ledger.ReadBalance(h, alice, "B").IsZero(), "alice B")
	assert.Equal(t, n(20), ledger.ReadBalance(h, bob, "B"), "bob B")
}

// later items see earlier staged balances
func TestBatchTransferRepeatedToken(t *testing.T) {
	h := memoryHandle{}
	ledger.WriteBalance(h, alice, "A", n(10))

	err := ledger.BatchTransfer(h, alice, bob, []string{"A", "A"}, []*uint256.Int{n(6), n(4)})
	assert.Nil(t, err, "batch error")
	assert.True(t, ledger.ReadBalance(h, alice, "A").IsZero(), "alice A")
	assert.Equal(t, n(10), ledger.ReadBalance(h, bob, "A"), "bob A")

	ledger.WriteBalance(h, alice, "A", n(10))
	ledger.WriteBalance(h, bob, "A", n(0))

	err = ledger.BatchTransfer(h, alice, bob, []string{"A", "A"}, []*uint256.Int{n(6), n(5)})
	assert.Equal(t, fault.InsufficientBalance, err, "overspend across items")
	assert.Equal(t, n(10), ledger.ReadBalance(h, alice, "A"), "alice A changed")
	assert.True(t, ledger.ReadBalance(h, bob, "A").IsZero(), "bob A changed")
}

func TestBatchTransferFlushOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)
	m.EXPECT().Get([]byte(itemkey.Balance("A", alice))).Return(record(n(10))).Times(1)
	m.EXPECT().Get([]byte(itemkey.Balance("B", alice))).Return(record(n(10))).Times(1)
	m.EXPECT().Get(gomock.Any()).Return(nil).Times(2)

	// one write per key even though "A" is transferred twice
	gomock.InOrder(
		m.EXPECT().Put([]byte(itemkey.Balance("A", alice)), record(n(7))),
		m.EXPECT().Put([]byte(itemkey.Balance("A", bob)), record(n(3))),
		m.EXPECT().Put([]byte(itemkey.Balance("B", alice)), record(n(9))),
		m.EXPECT().Put([]byte(itemkey.Balance("B", bob)), record(n(1))),
	)

	err := ledger.BatchTransfer(m, alice, bob, []string{"A", "B", "A"}, []*uint256.Int{n(1), n(1), n(2)})
	assert.Nil(t, err, "batch error")
}

func TestBatchTransferLengthMismatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)

	err := ledger.BatchTransfer(m, alice, bob, []string{"A", "B"}, []*uint256.Int{n(1)})
	assert.Equal(t, fault.LengthMismatch, err, "wrong error")
	assert.True(t, fault.IsErrLength(err), "wrong error class")
}

func TestBatchTransferEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)

	err := ledger.BatchTransfer(m, alice, bob, nil, nil)
	assert.Nil(t, err, "empty batch error")
}
