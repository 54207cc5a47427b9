// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/rpc/node"
	"github.com/bitmark-inc/tokenledger/rpc/tokens"
)

// Info - node version, uptime and token details
func (client *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := client.call("Node.Info", &node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}

	return reply, nil
}

// Balance - one owner's balance of one token
func (client *Client) Balance(owner *address.Address, tokenID string) (*tokens.BalanceReply, error) {
	balanceArgs := tokens.BalanceArguments{
		Owner:   owner,
		TokenId: tokenID,
	}

	reply := &tokens.BalanceReply{}
	err := client.call("Tokens.Balance", &balanceArgs, reply)
	if nil != err {
		return nil, err
	}

	return reply, nil
}

// BalanceBatch - balances of owners[i] for tokenIDs[i]
func (client *Client) BalanceBatch(owners []*address.Address, tokenIDs []string) (*tokens.BalanceBatchReply, error) {
	batchArgs := tokens.BalanceBatchArguments{
		Owners:   owners,
		TokenIds: tokenIDs,
	}

	reply := &tokens.BalanceBatchReply{}
	err := client.call("Tokens.BalanceBatch", &batchArgs, reply)
	if nil != err {
		return nil, err
	}

	return reply, nil
}

// Supply - total minted less burned of one token
func (client *Client) Supply(tokenID string) (*tokens.SupplyReply, error) {
	supplyArgs := tokens.SupplyArguments{
		TokenId: tokenID,
	}

	reply := &tokens.SupplyReply{}
	err := client.call("Tokens.TotalSupply", &supplyArgs, reply)
	if nil != err {
		return nil, err
	}

	return reply, nil
}

// IsApproved - whether operator may move all of owner's tokens
func (client *Client) IsApproved(owner *address.Address, operator *address.Address) (*tokens.IsApprovedReply, error) {
	approvedArgs := tokens.IsApprovedArguments{
		Owner:    owner,
		Operator: operator,
	}

	reply := &tokens.IsApprovedReply{}
	err := client.call("Tokens.IsApproved", &approvedArgs, reply)
	if nil != err {
		return nil, err
	}

	return reply, nil
}
