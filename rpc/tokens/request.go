// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/util"
)

// Authentication - header carried by every mutating request
//
// the signature covers the packed request, see Signable.Pack
type Authentication struct {
	Caller    *address.Address  `json:"caller"`    // base58
	RequestId string            `json:"requestId"` // uuid
	Timestamp int64             `json:"timestamp"` // unix seconds
	Signature address.Signature `json:"signature"` // hex
}

// Signable - a request that can be signed and verified
type Signable interface {
	Header() *Authentication
	Pack() (util.Packed, error)
}

// Header - access the embedded authentication
func (auth *Authentication) Header() *Authentication {
	return auth
}

// the signed prefix: method ++ caller ++ request id ++ timestamp
func (auth *Authentication) pack(method string) (util.Packed, error) {
	if nil == auth.Caller || "" == auth.RequestId {
		return nil, fault.MissingParameters
	}
	return util.PackFields(
		[]byte(method),
		auth.Caller.Bytes(),
		[]byte(auth.RequestId),
		util.ToVarint64(uint64(auth.Timestamp)),
	), nil
}

// Sign - fill in the header of a request and sign it
func Sign(request Signable, caller *address.Address, privateKey ed25519.PrivateKey, now time.Time) error {
	if nil == caller || ed25519.PrivateKeySize != len(privateKey) {
		return fault.MissingParameters
	}

	header := request.Header()
	header.Caller = caller
	header.RequestId = uuid.New().String()
	header.Timestamp = now.Unix()
	header.Signature = nil

	packed, err := request.Pack()
	if nil != err {
		return err
	}
	header.Signature = ed25519.Sign(privateKey, packed)
	return nil
}

// Pack - signed form of a transfer
func (arguments *TransferArguments) Pack() (util.Packed, error) {
	packed, err := arguments.pack("Tokens.Transfer")
	if nil != err {
		return nil, err
	}
	if nil == arguments.From || nil == arguments.To {
		return nil, fault.MissingParameters
	}
	return packed.
		Append(arguments.From.Bytes()).
		Append(arguments.To.Bytes()).
		Append([]byte(arguments.TokenId)).
		Append(arguments.Amount.Bytes()), nil
}

// Pack - signed form of a batch transfer
func (arguments *BatchTransferArguments) Pack() (util.Packed, error) {
	packed, err := arguments.pack("Tokens.BatchTransfer")
	if nil != err {
		return nil, err
	}
	if nil == arguments.From || nil == arguments.To {
		return nil, fault.MissingParameters
	}
	packed = packed.
		Append(arguments.From.Bytes()).
		Append(arguments.To.Bytes()).
		Append(util.ToVarint64(uint64(len(arguments.TokenIds))))
	for _, id := range arguments.TokenIds {
		packed = packed.Append([]byte(id))
	}
	packed = packed.Append(util.ToVarint64(uint64(len(arguments.Amounts))))
	for _, amount := range arguments.Amounts {
		packed = packed.Append(amount.Bytes())
	}
	return packed, nil
}

// Pack - signed form of a mint
func (arguments *MintArguments) Pack() (util.Packed, error) {
	packed, err := arguments.pack("Tokens.Mint")
	if nil != err {
		return nil, err
	}
	if nil == arguments.To {
		return nil, fault.MissingParameters
	}
	return packed.
		Append(arguments.To.Bytes()).
		Append([]byte(arguments.TokenId)).
		Append(arguments.Amount.Bytes()), nil
}

// Pack - signed form of a burn
func (arguments *BurnArguments) Pack() (util.Packed, error) {
	packed, err := arguments.pack("Tokens.Burn")
	if nil != err {
		return nil, err
	}
	if nil == arguments.Owner {
		return nil, fault.MissingParameters
	}
	return packed.
		Append(arguments.Owner.Bytes()).
		Append([]byte(arguments.TokenId)).
		Append(arguments.Amount.Bytes()), nil
}

// Pack - signed form of an approval change
func (arguments *SetApprovalArguments) Pack() (util.Packed, error) {
	packed, err := arguments.pack("Tokens.SetApproval")
	if nil != err {
		return nil, err
	}
	if nil == arguments.Operator {
		return nil, fault.MissingParameters
	}
	flag := []byte{0x00}
	if arguments.Approved {
		flag[0] = 0x01
	}
	return packed.
		Append(arguments.Operator.Bytes()).
		Append(flag), nil
}

// verify header, signature and freshness, then record the request id
//
// a request id is remembered for twice the window so that it cannot be
// replayed while its timestamp is still acceptable
func (tokens *Tokens) authenticate(request Signable) error {
	header := request.Header()

	packed, err := request.Pack()
	if nil != err {
		return err
	}

	id, err := uuid.Parse(header.RequestId)
	if nil != err {
		return fault.InvalidItem
	}

	now := tokens.clock()
	requested := time.Unix(header.Timestamp, 0)
	if requested.Before(now.Add(-tokens.window)) || requested.After(now.Add(tokens.window)) {
		return fault.RequestExpired
	}

	err = header.Caller.CheckSignature(packed, header.Signature)
	if nil != err {
		return err
	}

	err = tokens.seen.Add(id.String(), header.Timestamp, 2*tokens.window)
	if nil != err {
		return fault.RequestReplayed
	}

	return nil
}
