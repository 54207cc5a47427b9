// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStagedCache(t *testing.T) {
	value := []byte("staged")

	tests := []struct {
		name      string
		stage     func(Cache)
		wantFound bool
		wantOp    dbOperation
		wantValue []byte
	}{
		{
			name:  "empty",
			stage: func(c Cache) {},
		},
		{
			name: "put",
			stage: func(c Cache) {
				c.Set(dbPut, "k", value)
			},
			wantFound: true,
			wantOp:    dbPut,
			wantValue: value,
		},
		{
			name: "put then delete",
			stage: func(c Cache) {
				c.Set(dbPut, "k", value)
				c.Set(dbDelete, "k", nil)
			},
			wantFound: true,
			wantOp:    dbDelete,
		},
		{
			name: "delete then put",
			stage: func(c Cache) {
				c.Set(dbDelete, "k", nil)
				c.Set(dbPut, "k", value)
			},
			wantFound: true,
			wantOp:    dbPut,
			wantValue: value,
		},
		{
			name: "cleared",
			stage: func(c Cache) {
				c.Set(dbPut, "k", value)
				c.Clear()
			},
		},
		{
			name: "other key",
			stage: func(c Cache) {
				c.Set(dbPut, "other", value)
			},
		},
	}

	for _, test := range tests {
		c := newCache()
		test.stage(c)

		actual, op, found := c.Get("k")
		assert.Equal(t, test.wantFound, found, "%s: found", test.name)
		assert.Equal(t, test.wantOp, op, "%s: operation", test.name)
		assert.Equal(t, test.wantValue, actual, "%s: value", test.name)
	}
}
