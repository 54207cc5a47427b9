// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
)

// Signature - raw ED25519 signature bytes, hex in text form
type Signature []byte

func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - tagged so %#v output is recognisable in logs
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - lower case hex
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - accepts hex of any even length, the verifier checks size
func (signature *Signature) UnmarshalText(s []byte) error {
	decoded, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	*signature = decoded
	return nil
}
