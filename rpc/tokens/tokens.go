// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/holiman/uint256"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/rpc/ratelimit"
)

// Tokens
// ------

const (
	rateLimitTokens = 200
	rateBurstTokens = 100

	// DefaultWindow - accepted clock skew of a signed request
	DefaultWindow = 5 * time.Minute

	// MaximumBatchCount - limit on items in one batch request
	MaximumBatchCount = 100
)

// Ledger - the token operations served over RPC
type Ledger interface {
	URI() string
	Minter() *address.Address
	TotalSupply(tokenID string) *uint256.Int
	BalanceOf(owner *address.Address, tokenID string) (*uint256.Int, error)
	BalanceOfBatch(owners []*address.Address, tokenIDs []string) ([]*uint256.Int, error)
	IsApprovedForAll(owner *address.Address, operator *address.Address) bool
	SetApprovalForAll(caller *address.Address, operator *address.Address, approved bool) error
	SafeTransferFrom(caller *address.Address, from *address.Address, to *address.Address, tokenID string, amount *uint256.Int) error
	SafeBatchTransferFrom(caller *address.Address, from *address.Address, to *address.Address, tokenIDs []string, amounts []*uint256.Int) error
	Mint(caller *address.Address, to *address.Address, tokenID string, amount *uint256.Int) error
	Burn(caller *address.Address, owner *address.Address, tokenID string, amount *uint256.Int) error
}

// Tokens - type for RPC
type Tokens struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
	window  time.Duration
	seen    *cache.Cache
	clock   func() time.Time
}

// New - create the RPC service
//
// a non-positive window selects DefaultWindow
func New(log *logger.L, ledger Ledger, window time.Duration) *Tokens {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tokens{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTokens, rateBurstTokens),
		Ledger:  ledger,
		window:  window,
		seen:    cache.New(2*window, window),
		clock:   time.Now,
	}
}

// Window - accepted clock skew of a signed request
func (tokens *Tokens) Window() time.Duration {
	return tokens.window
}

// MutationReply - result of any signed request
type MutationReply struct {
	RequestId string `json:"requestId"`
}

// Balance of one owner
// --------------------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner   *address.Address `json:"owner"` // base58
	TokenId string           `json:"tokenId"`
}

// BalanceReply - result from RPC
type BalanceReply struct {
	Balance Amount `json:"balance"`
}

// Balance - balance of an owner in one token
func (tokens *Tokens) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	tokens.Log.Infof("Tokens.Balance: %+v", arguments)

	if nil == arguments || nil == arguments.Owner {
		return fault.InvalidAddress
	}

	balance, err := tokens.Ledger.BalanceOf(arguments.Owner, arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Balance = NewAmount(balance)

	return nil
}

// Balances of many owners
// -----------------------

// BalanceBatchArguments - owners[i] is queried in tokenIds[i]
type BalanceBatchArguments struct {
	Owners   []*address.Address `json:"owners"`
	TokenIds []string           `json:"tokenIds"`
}

// BalanceBatchReply - balances in argument order
type BalanceBatchReply struct {
	Balances []Amount `json:"balances"`
}

// BalanceBatch - balances of several (owner, token) pairs
func (tokens *Tokens) BalanceBatch(arguments *BalanceBatchArguments, reply *BalanceBatchReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(tokens.Limiter, len(arguments.Owners), MaximumBatchCount); nil != err {
		return err
	}

	tokens.Log.Infof("Tokens.BalanceBatch: %+v", arguments)

	balances, err := tokens.Ledger.BalanceOfBatch(arguments.Owners, arguments.TokenIds)
	if nil != err {
		return err
	}

	reply.Balances = make([]Amount, len(balances))
	for i, b := range balances {
		reply.Balances[i] = NewAmount(b)
	}

	return nil
}

// Total supply
// ------------

// SupplyArguments - arguments for RPC
type SupplyArguments struct {
	TokenId string `json:"tokenId"`
}

// SupplyReply - result from RPC
type SupplyReply struct {
	Supply Amount `json:"supply"`
}

// TotalSupply - minted less burned for one token
func (tokens *Tokens) TotalSupply(arguments *SupplyArguments, reply *SupplyReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	tokens.Log.Infof("Tokens.TotalSupply: %q", arguments.TokenId)

	reply.Supply = NewAmount(tokens.Ledger.TotalSupply(arguments.TokenId))

	return nil
}

// Metadata
// --------

// URIArguments - empty arguments for metadata request
type URIArguments struct{}

// URIReply - token metadata
type URIReply struct {
	URI    string           `json:"uri"`
	Minter *address.Address `json:"minter"`
}

// URI - the token metadata URI and minter
func (tokens *Tokens) URI(_ *URIArguments, reply *URIReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	reply.URI = tokens.Ledger.URI()
	reply.Minter = tokens.Ledger.Minter()

	return nil
}

// Approval query
// --------------

// IsApprovedArguments - arguments for RPC
type IsApprovedArguments struct {
	Owner    *address.Address `json:"owner"`
	Operator *address.Address `json:"operator"`
}

// IsApprovedReply - result from RPC
type IsApprovedReply struct {
	Approved bool `json:"approved"`
}

// IsApproved - whether operator may move all of owner's tokens
func (tokens *Tokens) IsApproved(arguments *IsApprovedArguments, reply *IsApprovedReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	tokens.Log.Infof("Tokens.IsApproved: %+v", arguments)

	if nil == arguments || nil == arguments.Owner || nil == arguments.Operator {
		return fault.InvalidAddress
	}

	reply.Approved = tokens.Ledger.IsApprovedForAll(arguments.Owner, arguments.Operator)

	return nil
}

// Transfer
// --------

// TransferArguments - signed single token transfer
type TransferArguments struct {
	Authentication
	From    *address.Address `json:"from"`
	To      *address.Address `json:"to"`
	TokenId string           `json:"tokenId"`
	Amount  Amount           `json:"amount"`
}

// Transfer - move an amount of one token
func (tokens *Tokens) Transfer(arguments *TransferArguments, reply *MutationReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	log := tokens.Log
	log.Infof("Tokens.Transfer: %+v", arguments)

	if err := tokens.authenticate(arguments); nil != err {
		log.Warnf("Tokens.Transfer: %s rejected: %s", arguments.RequestId, err)
		return err
	}

	err := tokens.Ledger.SafeTransferFrom(arguments.Caller, arguments.From, arguments.To, arguments.TokenId, arguments.Amount.Int())
	if nil != err {
		return err
	}
	reply.RequestId = arguments.RequestId

	return nil
}

// Batch transfer
// --------------

// BatchTransferArguments - signed multi token transfer
type BatchTransferArguments struct {
	Authentication
	From     *address.Address `json:"from"`
	To       *address.Address `json:"to"`
	TokenIds []string         `json:"tokenIds"`
	Amounts  []Amount         `json:"amounts"`
}

// BatchTransfer - move amounts[i] of tokenIds[i], all or nothing
func (tokens *Tokens) BatchTransfer(arguments *BatchTransferArguments, reply *MutationReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}
	if len(arguments.Amounts) != len(arguments.TokenIds) {
		return fault.LengthMismatch
	}

	count := len(arguments.TokenIds)
	if 0 == count {
		// an empty batch costs one slot
		if err := ratelimit.Limit(tokens.Limiter); nil != err {
			return err
		}
	} else if err := ratelimit.LimitN(tokens.Limiter, count, MaximumBatchCount); nil != err {
		return err
	}

	log := tokens.Log
	log.Infof("Tokens.BatchTransfer: %+v", arguments)

	if err := tokens.authenticate(arguments); nil != err {
		log.Warnf("Tokens.BatchTransfer: %s rejected: %s", arguments.RequestId, err)
		return err
	}

	err := tokens.Ledger.SafeBatchTransferFrom(arguments.Caller, arguments.From, arguments.To, arguments.TokenIds, toInts(arguments.Amounts))
	if nil != err {
		return err
	}
	reply.RequestId = arguments.RequestId

	return nil
}

// Mint
// ----

// MintArguments - signed issue of new tokens
type MintArguments struct {
	Authentication
	To      *address.Address `json:"to"`
	TokenId string           `json:"tokenId"`
	Amount  Amount           `json:"amount"`
}

// Mint - create tokens, caller must be the minter
func (tokens *Tokens) Mint(arguments *MintArguments, reply *MutationReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	log := tokens.Log
	log.Infof("Tokens.Mint: %+v", arguments)

	if err := tokens.authenticate(arguments); nil != err {
		log.Warnf("Tokens.Mint: %s rejected: %s", arguments.RequestId, err)
		return err
	}

	err := tokens.Ledger.Mint(arguments.Caller, arguments.To, arguments.TokenId, arguments.Amount.Int())
	if nil != err {
		return err
	}
	reply.RequestId = arguments.RequestId

	return nil
}

// Burn
// ----

// BurnArguments - signed destruction of tokens
type BurnArguments struct {
	Authentication
	Owner   *address.Address `json:"owner"`
	TokenId string           `json:"tokenId"`
	Amount  Amount           `json:"amount"`
}

// Burn - destroy tokens, caller must be owner or an approved operator
func (tokens *Tokens) Burn(arguments *BurnArguments, reply *MutationReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	log := tokens.Log
	log.Infof("Tokens.Burn: %+v", arguments)

	if err := tokens.authenticate(arguments); nil != err {
		log.Warnf("Tokens.Burn: %s rejected: %s", arguments.RequestId, err)
		return err
	}

	err := tokens.Ledger.Burn(arguments.Caller, arguments.Owner, arguments.TokenId, arguments.Amount.Int())
	if nil != err {
		return err
	}
	reply.RequestId = arguments.RequestId

	return nil
}

// Approval
// --------

// SetApprovalArguments - signed operator approval change
type SetApprovalArguments struct {
	Authentication
	Operator *address.Address `json:"operator"`
	Approved bool             `json:"approved"`
}

// SetApproval - allow or forbid an operator to move all of the caller's tokens
func (tokens *Tokens) SetApproval(arguments *SetApprovalArguments, reply *MutationReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	log := tokens.Log
	log.Infof("Tokens.SetApproval: %+v", arguments)

	if err := tokens.authenticate(arguments); nil != err {
		log.Warnf("Tokens.SetApproval: %s rejected: %s", arguments.RequestId, err)
		return err
	}

	err := tokens.Ledger.SetApprovalForAll(arguments.Caller, arguments.Operator, arguments.Approved)
	if nil != err {
		return err
	}
	reply.RequestId = arguments.RequestId

	return nil
}
