// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/rpc/tokens"
)

// Transfer - move an amount of one token
func (client *Client) Transfer(signer *Signer, from *address.Address, to *address.Address, tokenID string, amount tokens.Amount) (*tokens.MutationReply, error) {
	transferArgs := &tokens.TransferArguments{
		From:    from,
		To:      to,
		TokenId: tokenID,
		Amount:  amount,
	}
	return client.signedCall("Tokens.Transfer", signer, transferArgs)
}

// BatchTransfer - move amounts[i] of tokenIDs[i] as one operation
func (client *Client) BatchTransfer(signer *Signer, from *address.Address, to *address.Address, tokenIDs []string, amounts []tokens.Amount) (*tokens.MutationReply, error) {
	batchArgs := &tokens.BatchTransferArguments{
		From:     from,
		To:       to,
		TokenIds: tokenIDs,
		Amounts:  amounts,
	}
	return client.signedCall("Tokens.BatchTransfer", signer, batchArgs)
}

// Mint - create new tokens, signer must be the minter
func (client *Client) Mint(signer *Signer, to *address.Address, tokenID string, amount tokens.Amount) (*tokens.MutationReply, error) {
	mintArgs := &tokens.MintArguments{
		To:      to,
		TokenId: tokenID,
		Amount:  amount,
	}
	return client.signedCall("Tokens.Mint", signer, mintArgs)
}

// Burn - destroy tokens held by owner
func (client *Client) Burn(signer *Signer, owner *address.Address, tokenID string, amount tokens.Amount) (*tokens.MutationReply, error) {
	burnArgs := &tokens.BurnArguments{
		Owner:   owner,
		TokenId: tokenID,
		Amount:  amount,
	}
	return client.signedCall("Tokens.Burn", signer, burnArgs)
}

// SetApproval - grant or revoke operator rights over all of the signer's tokens
func (client *Client) SetApproval(signer *Signer, operator *address.Address, approved bool) (*tokens.MutationReply, error) {
	approvalArgs := &tokens.SetApprovalArguments{
		Operator: operator,
		Approved: approved,
	}
	return client.signedCall("Tokens.SetApproval", signer, approvalArgs)
}

func (client *Client) signedCall(method string, signer *Signer, request tokens.Signable) (*tokens.MutationReply, error) {
	if nil == signer {
		return nil, fault.MissingParameters
	}

	err := tokens.Sign(request, signer.Address, signer.PrivateKey, time.Now())
	if nil != err {
		return nil, err
	}

	reply := &tokens.MutationReply{}
	err = client.call(method, request, reply)
	if nil != err {
		return nil, err
	}

	return reply, nil
}
