// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/rpc/fixtures"
	"github.com/bitmark-inc/tokenledger/rpc/mocks"
	"github.com/bitmark-inc/tokenledger/rpc/node"
	"github.com/bitmark-inc/tokenledger/rpc/server"
	"github.com/bitmark-inc/tokenledger/rpc/tokens"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// the services are reached through a JSON codec over an in-memory pipe
// so method registration and argument decoding are both exercised
func setupClient(t *testing.T, ledger tokens.Ledger) (*rpc.Client, func()) {
	service := tokens.New(logger.New(fixtures.LogCategory), ledger, time.Minute)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", service, atomic.NewUint64(3))

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := jsonrpc.NewClient(clientConn)
	return client, func() {
		_ = client.Close()
		_ = serverConn.Close()
	}
}

func TestTokensBalanceRegistered(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	owner := fixtures.Address(fixtures.OwnerPublicKey)

	l.EXPECT().BalanceOf(gomock.Any(), "gold").Return(uint256.NewInt(9), nil).Times(1)

	client, done := setupClient(t, l)
	defer done()

	var reply tokens.BalanceReply
	err := client.Call("Tokens.Balance", &tokens.BalanceArguments{Owner: owner, TokenId: "gold"}, &reply)
	assert.Nil(t, err, "wrong Tokens.Balance")
	assert.Equal(t, "9", reply.Balance.String(), "wrong balance")
}

func TestTokensTransferRegistered(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	owner := fixtures.Address(fixtures.OwnerPublicKey)
	receiver := fixtures.Address(fixtures.ReceiverPublicKey)

	l.EXPECT().SafeTransferFrom(gomock.Any(), gomock.Any(), gomock.Any(), "gold", uint256.NewInt(4)).Return(fault.InsufficientBalance).Times(1)

	client, done := setupClient(t, l)
	defer done()

	arguments := &tokens.TransferArguments{
		From:    owner,
		To:      receiver,
		TokenId: "gold",
		Amount:  tokens.NewAmount(uint256.NewInt(4)),
	}
	err := tokens.Sign(arguments, owner, fixtures.OwnerPrivateKey, time.Now())
	assert.Nil(t, err, "wrong Sign")

	var reply tokens.MutationReply
	err = client.Call("Tokens.Transfer", arguments, &reply)
	assert.NotNil(t, err, "wrong Tokens.Transfer")
	assert.Equal(t, fault.InsufficientBalance.Error(), err.Error(), "wrong error")
}

func TestNodeInfoRegistered(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	minter := fixtures.Address(fixtures.MinterPublicKey)

	l.EXPECT().URI().Return("uri").Times(1)
	l.EXPECT().Minter().Return(minter).Times(1)

	client, done := setupClient(t, l)
	defer done()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong connection count")
	assert.Equal(t, "uri", reply.URI, "wrong uri")
	assert.True(t, minter.Equal(reply.Minter), "wrong minter")
}
