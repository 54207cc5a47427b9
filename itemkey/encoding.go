// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package itemkey

import (
	"encoding/base64"

	"github.com/mr-tron/base58"
)

// Encoding - reversible byte to printable text conversion
//
// the output alphabet must not contain the '_' separator
type Encoding interface {
	Name() string
	EncodeToString(src []byte) string
	DecodeString(s string) ([]byte, error)
}

// available encodings
var (
	Base64 Encoding = base64Encoding{}
	Base58 Encoding = base58Encoding{}
)

type base64Encoding struct{}

func (base64Encoding) Name() string { return "base64" }

func (base64Encoding) EncodeToString(src []byte) string {
	return base64.StdEncoding.EncodeToString(src)
}

func (base64Encoding) DecodeString(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

type base58Encoding struct{}

func (base58Encoding) Name() string { return "base58" }

func (base58Encoding) EncodeToString(src []byte) string {
	return base58.Encode(src)
}

func (base58Encoding) DecodeString(s string) ([]byte, error) {
	return base58.Decode(s)
}

// EncodingByName - select an encoding from its configuration name
func EncodingByName(name string) (Encoding, bool) {
	switch name {
	case "", Base64.Name():
		return Base64, true
	case Base58.Name():
		return Base58, true
	default:
		return nil, false
	}
}
