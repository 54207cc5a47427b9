// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/tokenledger/fault"
)

// Packed - a sequence of length prefixed fields
//
// each field is: Varint64(length) ++ bytes
type Packed []byte

// PackFields - concatenate fields, each prefixed by its length
func PackFields(fields ...[]byte) Packed {
	n := 0
	for _, f := range fields {
		n += Varint64MaximumBytes + len(f)
	}
	buffer := make(Packed, 0, n)
	for _, f := range fields {
		buffer = append(buffer, ToVarint64(uint64(len(f)))...)
		buffer = append(buffer, f...)
	}
	return buffer
}

// Append - add one more length prefixed field
func (p Packed) Append(field []byte) Packed {
	p = append(p, ToVarint64(uint64(len(field)))...)
	return append(p, field...)
}

// Unpack - split a packed buffer back into its fields
//
// the returned slices share storage with the buffer
func (p Packed) Unpack() ([][]byte, error) {
	fields := make([][]byte, 0, 4)
	buffer := []byte(p)
	for len(buffer) > 0 {
		length, count := FromVarint64(buffer)
		if 0 == count {
			return nil, fault.TruncatedRecord
		}
		buffer = buffer[count:]
		if uint64(len(buffer)) < length {
			return nil, fault.TruncatedRecord
		}
		fields = append(fields, buffer[:length])
		buffer = buffer[length:]
	}
	return fields, nil
}
