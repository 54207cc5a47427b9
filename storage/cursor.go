// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/tokenledger/fault"
)

// FetchCursor - a resumable position within one pool's committed keys
type FetchCursor struct {
	pool  *PoolHandle
	scope ldb_util.Range
}

// NewFetchCursor - a cursor covering every key of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		scope: ldb_util.Range{
			Start: []byte{p.prefix},
			Limit: p.limit,
		},
	}
}

// Seek - restart the cursor at key, or at the pool start for a nil key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.scope.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - up to count elements from the cursor, advancing past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.each(func(e Element) bool {
		results = append(results, e)
		return len(results) < count
	})

	// successor of the last key: keys vary in length so append a zero byte
	if n := len(results); n > 0 {
		cursor.scope.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// each visits copies of the elements in range until visit returns false
func (cursor *FetchCursor) each(visit func(Element) bool) error {
	if nil == cursor.pool.dataAccess {
		return nil
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.scope)
	defer iter.Release()

	for iter.Next() {
		// iterator buffers are reused by Next
		key := iter.Key()
		e := Element{
			Key:   append([]byte(nil), key[1:]...),
			Value: append([]byte(nil), iter.Value()...),
		}
		if !visit(e) {
			break
		}
	}
	return iter.Error()
}
