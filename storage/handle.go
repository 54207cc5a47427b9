// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - the keys sharing one prefix byte
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// Element - a key/value pair with the pool prefix removed
type Element struct {
	Key   []byte
	Value []byte
}

// Prefix - the pool's key prefix byte
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}

func (p *PoolHandle) prefixKey(key []byte) []byte {
	return append([]byte{p.prefix}, key...)
}

// run f with the database held open; false if the pool is closed
func (p *PoolHandle) withAccess(f func(Access)) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return false
	}
	f(p.dataAccess)
	return true
}

// Put - stage a value in the current transaction
func (p *PoolHandle) Put(key []byte, value []byte) {
	open := p.withAccess(func(a Access) {
		logger.PanicIfError("pool.Put", a.Put(p.prefixKey(key), value))
	})
	if !open {
		logger.Panic("pool.Put nil database")
	}
}

// Delete - stage a key removal in the current transaction
func (p *PoolHandle) Delete(key []byte) {
	open := p.withAccess(func(a Access) {
		logger.PanicIfError("pool.Delete", a.Delete(p.prefixKey(key)))
	})
	if !open {
		logger.Panic("pool.Delete nil database")
	}
}

// Get - the value for key, or nil if absent
//
// staged writes are visible; the slice must be copied if it is kept
func (p *PoolHandle) Get(key []byte) []byte {
	var value []byte
	p.withAccess(func(a Access) {
		v, err := a.Get(p.prefixKey(key))
		if leveldb.ErrNotFound == err {
			return
		}
		logger.PanicIfError("pool.Get", err)
		value = v
	})
	return value
}

// Has - whether key is present, including staged writes
func (p *PoolHandle) Has(key []byte) bool {
	found := false
	p.withAccess(func(a Access) {
		ok, err := a.Has(p.prefixKey(key))
		logger.PanicIfError("pool.Has", err)
		found = ok
	})
	return found
}
