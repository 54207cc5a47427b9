// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/util"
)

func TestVarint64Encoding(t *testing.T) {
	known := map[uint64][]byte{
		0:                  {0x00},
		100:                {0x64},
		127:                {0x7f},
		128:                {0x80, 0x01},
		300:                {0xac, 0x02},
		16384:              {0x80, 0x80, 0x01},
		1600000000:         {0x80, 0xa0, 0xf8, 0xfa, 0x05}, // a unix timestamp
		0x00ffffffffffffff: {0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
		0x0100000000000000: {0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01},
		0xffffffffffffffff: {0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}

	for value, encoded := range known {
		assert.Equal(t, encoded, util.ToVarint64(value), "wrong encoding of: %d", value)

		decoded, n := util.FromVarint64(encoded)
		assert.Equal(t, value, decoded, "wrong decoding of: %x", encoded)
		assert.Equal(t, len(encoded), n, "wrong length of: %x", encoded)
	}
}

func TestVarint64TrailingData(t *testing.T) {
	buffer := append(util.ToVarint64(1600000000), 0xff, 0x01)

	value, n := util.FromVarint64(buffer)
	assert.Equal(t, uint64(1600000000), value, "wrong value")
	assert.Equal(t, []byte{0xff, 0x01}, buffer[n:], "wrong remainder")
}

func TestVarint64Truncated(t *testing.T) {
	truncated := [][]byte{
		nil,
		{0x80},
		{0xac},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for _, b := range truncated {
		value, n := util.FromVarint64(b)
		assert.Equal(t, uint64(0), value, "value from truncated: %x", b)
		assert.Equal(t, 0, n, "length from truncated: %x", b)
	}
}

func TestVarint64MaximumLength(t *testing.T) {
	for shift := uint(0); shift < 64; shift += 1 {
		encoded := util.ToVarint64(1 << shift)
		assert.True(t, len(encoded) <= util.Varint64MaximumBytes, "too long for bit: %d", shift)
	}
}
