// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

const (
	varintContinue = 0x80
	varintPayload  = 0x7f
)

// ToVarint64 - little endian groups of 7 bits, high bit set on all but
// the last byte
//
// the ninth byte, if reached, carries the top 8 bits whole so no
// value needs more than Varint64MaximumBytes
func ToVarint64(value uint64) []byte {
	var buffer [Varint64MaximumBytes]byte

	n := 0
	for ; n < Varint64MaximumBytes-1; n += 1 {
		if value <= varintPayload {
			buffer[n] = byte(value)
			return append([]byte{}, buffer[:n+1]...)
		}
		buffer[n] = byte(value&varintPayload) | varintContinue
		value >>= 7
	}
	buffer[n] = byte(value)
	return append([]byte{}, buffer[:]...)
}

// FromVarint64 - decode the value at the start of buffer
//
// returns the value and the number of bytes consumed, or 0, 0 if the
// buffer ends before the value does
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	for i, b := range buffer {
		shift := uint(7 * i)
		if Varint64MaximumBytes-1 == i {
			return value | uint64(b)<<shift, i + 1
		}
		value |= uint64(b&varintPayload) << shift
		if 0 == b&varintContinue {
			return value, i + 1
		}
	}
	return 0, 0
}
