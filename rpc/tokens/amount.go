// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/tokenledger/fault"
)

// Amount - 256 bit unsigned quantity carried as a decimal string
type Amount struct {
	value uint256.Int
}

// NewAmount - copy a value into an amount, nil is zero
func NewAmount(v *uint256.Int) Amount {
	a := Amount{}
	if nil != v {
		a.value.Set(v)
	}
	return a
}

// ParseAmount - convert decimal text
//
// signs other than a single leading '+' are rejected, as are values
// of 2**256 and above
func ParseAmount(s string) (Amount, error) {
	a := Amount{}
	if err := a.value.SetFromDecimal(s); nil != err {
		return Amount{}, fault.InvalidAmount
	}
	return a, nil
}

// Int - a fresh copy of the value
func (a Amount) Int() *uint256.Int {
	return new(uint256.Int).Set(&a.value)
}

// Bytes - fixed width big endian form used when signing
func (a Amount) Bytes() []byte {
	b := a.value.Bytes32()
	return b[:]
}

// String - decimal text
func (a Amount) String() string {
	return a.value.Dec()
}

// MarshalText - decimal text for JSON
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - decimal text from JSON
func (a *Amount) UnmarshalText(s []byte) error {
	v, err := ParseAmount(string(s))
	if nil != err {
		return err
	}
	*a = v
	return nil
}

func toInts(amounts []Amount) []*uint256.Int {
	values := make([]*uint256.Int, len(amounts))
	for i, a := range amounts {
		values[i] = a.Int()
	}
	return values
}
