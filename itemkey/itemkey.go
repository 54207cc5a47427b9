// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package itemkey

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/util"
)

// MaximumLength - the storage backend rejects longer keys
const MaximumLength = 64

const (
	balancePrefix = "balances"
	supplyPrefix  = "total_supply"

	reversibleSeparator = "_"
	hashedSeparator     = "#"

	// unpadded base64 of a 32 byte digest
	digestLength = 43
)

// MinimumLength - the longest hashed key, smaller bounds are raised to this
const MinimumLength = len(supplyPrefix) + len(hashedSeparator) + digestLength

// Deriver - key derivation with a fixed encoding and length bound
type Deriver struct {
	encoding      Encoding
	maximumLength int
}

var defaultDeriver = New(Base64, MaximumLength)

// New - create a deriver
//
// a maximumLength below MinimumLength is raised to MinimumLength so
// that no derived key exceeds the bound
func New(encoding Encoding, maximumLength int) *Deriver {
	if maximumLength < MinimumLength {
		maximumLength = MinimumLength
	}
	return &Deriver{
		encoding:      encoding,
		maximumLength: maximumLength,
	}
}

// Encoding - the encoding this deriver applies to owner bytes
func (d *Deriver) Encoding() Encoding {
	return d.encoding
}

// Balance - key for the balance of tokenID held by owner
func (d *Deriver) Balance(tokenID string, owner *address.Address) string {
	ownerBytes := owner.Bytes()
	key := balancePrefix + reversibleSeparator + tokenID + reversibleSeparator + d.encoding.EncodeToString(ownerBytes)
	if len(key) <= d.maximumLength {
		return key
	}
	return hashedKey(balancePrefix, tokenID, ownerBytes)
}

// Supply - key for the total supply of tokenID
func (d *Deriver) Supply(tokenID string) string {
	key := supplyPrefix + reversibleSeparator + tokenID
	if len(key) <= d.maximumLength {
		return key
	}
	return hashedKey(supplyPrefix, tokenID, nil)
}

// Parse - split a balance key back into token id and owner
func (d *Deriver) Parse(key string) (string, *address.Address, error) {
	if strings.HasPrefix(key, balancePrefix+hashedSeparator) {
		return "", nil, fault.KeyNotReversible
	}
	if !strings.HasPrefix(key, balancePrefix+reversibleSeparator) {
		return "", nil, fault.UnrecognisedKey
	}

	rest := key[len(balancePrefix)+len(reversibleSeparator):]
	n := strings.LastIndex(rest, reversibleSeparator)
	if n < 0 {
		return "", nil, fault.UnrecognisedKey
	}

	ownerBytes, err := d.encoding.DecodeString(rest[n+len(reversibleSeparator):])
	if nil != err {
		return "", nil, fault.WrongEncoding
	}
	owner, err := address.FromBytes(ownerBytes)
	if nil != err {
		return "", nil, err
	}
	return rest[:n], owner, nil
}

// Balance - key using the default deriver
func Balance(tokenID string, owner *address.Address) string {
	return defaultDeriver.Balance(tokenID, owner)
}

// Supply - key using the default deriver
func Supply(tokenID string) string {
	return defaultDeriver.Supply(tokenID)
}

// Parse - split a key produced by the default deriver
func Parse(key string) (string, *address.Address, error) {
	return defaultDeriver.Parse(key)
}

// Operator - key recording that owner has approved operator
//
// always 64 hex characters
func Operator(owner *address.Address, operator *address.Address) string {
	digest := sha3.Sum256(append(owner.Bytes(), operator.Bytes()...))
	return hex.EncodeToString(digest[:])
}

// the token id is length prefixed so that id and owner bytes cannot
// be shifted into each other
func hashedKey(prefix string, tokenID string, ownerBytes []byte) string {
	preimage := append(util.ToVarint64(uint64(len(tokenID))), tokenID...)
	preimage = append(preimage, ownerBytes...)
	digest := sha3.Sum256(preimage)
	return prefix + hashedSeparator + base64.RawURLEncoding.EncodeToString(digest[:])
}
