// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tokenledger/fault"
)

// enumeration of address variants
const (
	Account = iota // ED25519 public key
	Contract       // contract hash
	// end of list (one greater than last item)
	variantLimit
)

// miscellaneous constants
const (
	checksumLength = 4
	identityLength = 32

	// bits in variant code starting from LSB
	identityCode = 0x01

	variantShift = 4 // shift 4 bits to get variant

	// variant byte followed by the identity
	BytesLength = 1 + identityLength
)

// Address - base type for ledger endpoints
type Address struct {
	AddressInterface
}

// AddressInterface - the methods every variant provides
type AddressInterface interface {
	Variant() int
	IdentityBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
}

// AccountAddress - an ED25519 public key
type AccountAddress struct {
	PublicKey []byte
}

// ContractAddress - a 32 byte contract hash, it can never sign
type ContractAddress struct {
	Hash []byte
}

// NewAccount - address for an ED25519 public key
func NewAccount(publicKey []byte) (*Address, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}
	key := make([]byte, len(publicKey))
	copy(key, publicKey)
	return &Address{
		AddressInterface: &AccountAddress{
			PublicKey: key,
		},
	}, nil
}

// NewContract - address for a contract hash
func NewContract(hash []byte) (*Address, error) {
	if identityLength != len(hash) {
		return nil, fault.InvalidKeyLength
	}
	h := make([]byte, len(hash))
	copy(h, hash)
	return &Address{
		AddressInterface: &ContractAddress{
			Hash: h,
		},
	}, nil
}

// FromBase58 - convert the checksummed text form back to an address
func FromBase58(s string) (*Address, error) {
	decoded, err := base58.Decode(s)
	if nil != err || 0 == len(decoded) {
		return nil, fault.InvalidAddress
	}

	checksumStart := len(decoded) - checksumLength
	if checksumStart <= 0 {
		return nil, fault.InvalidKeyLength
	}

	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return FromBytes(decoded[:checksumStart])
}

// FromBytes - convert the canonical byte form back to an address
//
// one of the specific variants is returned using the base
// "AddressInterface" interface type
func FromBytes(buffer []byte) (*Address, error) {
	if 0 == len(buffer) {
		return nil, fault.InvalidAddress
	}

	code := buffer[0]
	if code&identityCode != identityCode {
		return nil, fault.InvalidAddress
	}

	variant := int(code >> variantShift)
	if variant >= variantLimit {
		return nil, fault.InvalidKeyType
	}

	if BytesLength != len(buffer) {
		return nil, fault.InvalidKeyLength
	}

	switch variant {
	case Account:
		return NewAccount(buffer[1:])
	case Contract:
		return NewContract(buffer[1:])
	default:
		return nil, fault.InvalidKeyType
	}
}

// Equal - same variant and identity
func (address *Address) Equal(other *Address) bool {
	if nil == address || nil == other {
		return address == other
	}
	if nil == address.AddressInterface || nil == other.AddressInterface {
		return address.AddressInterface == other.AddressInterface
	}
	return bytes.Equal(address.Bytes(), other.Bytes())
}

// IsContract - true for the contract variant
func (address *Address) IsContract() bool {
	return Contract == address.Variant()
}

// UnmarshalText - convert the Base58 JSON form to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	address.AddressInterface = a.AddressInterface
	return nil
}

// encode variant byte and identity
func toBytes(variant int, identity []byte) []byte {
	code := byte(variant<<variantShift) | identityCode
	return append([]byte{code}, identity...)
}

// base58 with a truncated SHA3 checksum
func toBase58(buffer []byte) string {
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Account
// -------

// Variant - see enumeration above
func (account *AccountAddress) Variant() int {
	return Account
}

// IdentityBytes - the public key
func (account *AccountAddress) IdentityBytes() []byte {
	return account.PublicKey
}

// CheckSignature - verify an ED25519 signature over message
func (account *AccountAddress) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - canonical serialisation
func (account *AccountAddress) Bytes() []byte {
	return toBytes(Account, account.PublicKey)
}

// String - base58 text form
func (account *AccountAddress) String() string {
	return toBase58(account.Bytes())
}

// MarshalText - convert to the Base58 JSON form
func (account AccountAddress) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// Contract
// --------

// Variant - see enumeration above
func (contract *ContractAddress) Variant() int {
	return Contract
}

// IdentityBytes - the contract hash
func (contract *ContractAddress) IdentityBytes() []byte {
	return contract.Hash
}

// CheckSignature - contracts never sign
func (contract *ContractAddress) CheckSignature(message []byte, signature Signature) error {
	return fault.InvalidSignature
}

// Bytes - canonical serialisation
func (contract *ContractAddress) Bytes() []byte {
	return toBytes(Contract, contract.Hash)
}

// String - base58 text form
func (contract *ContractAddress) String() string {
	return toBase58(contract.Bytes())
}

// MarshalText - convert to the Base58 JSON form
func (contract ContractAddress) MarshalText() ([]byte, error) {
	return []byte(contract.String()), nil
}
