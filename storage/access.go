// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/tokenledger/fault"
)

// Access - for Database
//
// outside a transaction writes go straight to the database, inside
// one they are staged in a batch until Commit
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte) error
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte) error
}

// AccessData - one per database
type AccessData struct {
	sync.Mutex
	inUse    bool
	readOnly bool
	db       *leveldb.DB
	batch    *leveldb.Batch
	cache    Cache
}

func newDA(db *leveldb.DB, readOnly bool, cache Cache) Access {
	return &AccessData{
		inUse:    false,
		readOnly: readOnly,
		db:       db,
		batch:    new(leveldb.Batch),
		cache:    cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionInUse
	}

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) error {
	d.Lock()
	defer d.Unlock()

	if d.readOnly {
		return fault.ReadOnly
	}
	if !d.inUse {
		return d.db.Put(key, value, nil)
	}

	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
	return nil
}

func (d *AccessData) Delete(key []byte) error {
	d.Lock()
	defer d.Unlock()

	if d.readOnly {
		return fault.ReadOnly
	}
	if !d.inUse {
		return d.db.Delete(key, nil)
	}

	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
	return nil
}

// Commit - write the batch atomically and close the transaction
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotInUse
	}

	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

func (d *AccessData) DumpTx() []byte {
	d.Lock()
	defer d.Unlock()

	return d.batch.Dump()
}

// Get - staged value first, then the database
//
// returns leveldb.ErrNotFound if the key is absent or staged for delete
func (d *AccessData) Get(key []byte) ([]byte, error) {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		value, op, found := d.cache.Get(string(key))
		if found {
			if dbDelete == op {
				return nil, leveldb.ErrNotFound
			}
			return value, nil
		}
	}
	return d.db.Get(key, nil)
}

// Iterator - over committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		_, op, found := d.cache.Get(string(key))
		if found {
			return dbPut == op, nil
		}
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()

	return d.inUse
}

// Abort - discard everything staged since Begin
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
